package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/anirudhs/gymtrace/internal/capture"
	"github.com/anirudhs/gymtrace/internal/render"
)

// runPipeline is the main capture loop. Each tick it reads a frame, runs
// motion detection, and, while a session is active, feeds pose landmarks
// through the rep/form engine. The annotated frame is published to the
// frame buffer for the MJPEG stream.
//
// The ticker drops ticks when processing falls behind the target FPS, so
// slow frames are skipped rather than queued.
func (a *App) runPipeline() {
	interval := time.Second / time.Duration(a.config.TargetFPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Between sessions the stream shows a placeholder card instead of the
	// camera image.
	idle := gocv.NewMatWithSize(capture.DefaultHeight, capture.DefaultWidth, gocv.MatTypeCV8UC3)
	render.IdlePlaceholder(&idle)
	defer idle.Close()

	lastMotion := time.Now()
	wasActive := false
	prevCount := 0

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motion, _ := a.motion.Detect(frame)
			if motion {
				lastMotion = time.Now()
			}

			active := a.tracker.Active()
			if active && !wasActive {
				// Fresh session: don't let idle time before the
				// start count against the auto-stop timer.
				lastMotion = time.Now()
				prevCount = 0
			}
			wasActive = active

			if active {
				prevCount = a.processFrame(frame, prevCount)

				if timeout := a.autoStopTimeout(); timeout > 0 && time.Since(lastMotion) > timeout {
					if workout, err := a.StopExercise(); err != nil {
						log.Printf("Auto-stop failed: %v", err)
					} else {
						log.Printf("No motion for %s, session auto-stopped: %s (%d reps)",
							timeout, workout.Exercise, workout.Reps)
					}
				}
				a.publishFrame(frame)
			} else {
				a.publishFrame(&idle)
			}
			frame.Close()
		}
	}
}

// processFrame runs pose detection and the tracking engine on one frame,
// draws the overlay, and updates metrics. It returns the rep count to carry
// into the next tick.
func (a *App) processFrame(frame *gocv.Mat, prevCount int) int {
	detector := a.Detector()
	if detector == nil {
		return prevCount
	}

	landmarks, err := detector.Detect(frame)
	if err != nil {
		log.Printf("Error detecting pose: %v", err)
		return prevCount
	}

	st := a.tracker.ProcessFrame(landmarks)

	a.metrics.FramesProcessed.Inc()
	if !landmarks.Complete() {
		a.metrics.DegradedFrames.Inc()
	}
	if st.WrongExercise {
		a.metrics.WrongExerciseFrames.Inc()
	}
	if st.Count < prevCount {
		prevCount = 0
	}
	if st.Count > prevCount {
		a.metrics.RepsCounted.Add(float64(st.Count - prevCount))
	}

	render.Overlay(frame, st)
	return st.Count
}

// publishFrame JPEG-encodes the frame into the shared buffer.
func (a *App) publishFrame(frame *gocv.Mat) {
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return
	}
	a.frames.Set(buf.GetBytes())
	buf.Close()
}
