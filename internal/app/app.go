// Package app provides the main application logic for the GymTrace exercise tracking system.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anirudhs/gymtrace/internal/capture"
	"github.com/anirudhs/gymtrace/internal/exercise"
	"github.com/anirudhs/gymtrace/internal/metrics"
	"github.com/anirudhs/gymtrace/internal/pose"
	"github.com/anirudhs/gymtrace/internal/store"
)

// settingLastExercise is the settings key remembering the most recently
// started exercise, so the dashboard can preselect it.
const settingLastExercise = "last_exercise"

// Config holds configuration options for the application.
type Config struct {
	Store *store.Store
	// CameraID is the video device index to capture from.
	CameraID int
	// TargetFPS is the capture cadence; zero means capture.DefaultFPS.
	TargetFPS int
	// MotionThresh is the percent pixel change counting as motion.
	MotionThresh float64
	// AutoStopSeconds ends an active session after this much motionless
	// time. Zero disables auto-stop.
	AutoStopSeconds int
}

// App orchestrates capture, pose detection, rep tracking, and persistence.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector pose.Detector
	tracker  *exercise.Tracker
	metrics  *metrics.Metrics
	frames   *FrameBuffer
	mu       sync.RWMutex
	stopCh   chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}
	if config.TargetFPS <= 0 {
		config.TargetFPS = capture.DefaultFPS
	}

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID),
		motion:  capture.NewMotionDetector(motionThreshold),
		tracker: exercise.NewTracker(),
		metrics: metrics.New(),
		frames:  NewFrameBuffer(),
		stopCh:  nil,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := pose.NewMediaPipeDetector(pose.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe pose detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = pose.NewMockDetector()
	}

	return a
}

// SetDetector sets the pose detector implementation to use.
func (a *App) SetDetector(d pose.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use. Must be called before
// Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// StartExercise begins tracking the named exercise, replacing any session
// already in progress. The name is remembered as the last exercise so the
// dashboard can preselect it next time.
func (a *App) StartExercise(name string) error {
	if err := a.tracker.Start(name); err != nil {
		return err
	}

	a.metrics.SessionActive.Set(1)

	if a.config.Store != nil {
		if err := a.config.Store.Settings().Set(settingLastExercise, name); err != nil {
			log.Printf("Failed to remember last exercise: %v", err)
		}
	}

	log.Printf("Started tracking: %s", name)
	return nil
}

// StopExercise ends the active session and persists the finished workout.
// It returns exercise.ErrNoSession when nothing is being tracked.
func (a *App) StopExercise() (*store.Workout, error) {
	summary, err := a.tracker.Stop()
	if err != nil {
		return nil, err
	}

	a.metrics.SessionActive.Set(0)

	workout := &store.Workout{
		ID:        uuid.NewString(),
		Exercise:  summary.Exercise,
		Reps:      summary.Reps,
		StartedAt: summary.StartedAt,
		EndedAt:   summary.EndedAt,
	}

	if a.config.Store != nil {
		if err := a.config.Store.Workouts().Create(workout); err != nil {
			return nil, err
		}
	}

	log.Printf("Stopped tracking: %s (%d reps)", workout.Exercise, workout.Reps)
	return workout, nil
}

// LastExercise returns the most recently started exercise name, or empty
// when none has been recorded.
func (a *App) LastExercise() string {
	if a.config.Store == nil {
		return ""
	}
	name, err := a.config.Store.Settings().Get(settingLastExercise)
	if err != nil {
		return ""
	}
	return name
}

// Start opens the camera and begins the capture pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(a.config.TargetFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Capture pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources. An active session is
// stopped and persisted first.
func (a *App) Stop() {
	if _, err := a.StopExercise(); err != nil && err != exercise.ErrNoSession {
		log.Printf("Error saving workout on shutdown: %v", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Capture pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Tracker returns the rep/form tracker.
func (a *App) Tracker() *exercise.Tracker {
	return a.tracker
}

// Metrics returns the application metrics.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Frames returns the buffer holding the latest annotated frame.
func (a *App) Frames() *FrameBuffer {
	return a.frames
}

// Detector returns the pose detector.
func (a *App) Detector() pose.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// autoStopTimeout returns the no-motion duration after which an active
// session is ended, or zero when auto-stop is disabled.
func (a *App) autoStopTimeout() time.Duration {
	if a.config.AutoStopSeconds <= 0 {
		return 0
	}
	return time.Duration(a.config.AutoStopSeconds) * time.Second
}
