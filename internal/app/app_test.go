package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/anirudhs/gymtrace/internal/exercise"
	"github.com/anirudhs/gymtrace/internal/pose"
	"github.com/anirudhs/gymtrace/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := New(Config{Store: s, MotionThresh: 0.05})
	a.SetDetector(pose.NewMockDetector())
	return a
}

func TestApp_StartExercise(t *testing.T) {
	a := newTestApp(t)

	if err := a.StartExercise("squats"); err != nil {
		t.Fatalf("StartExercise() error = %v", err)
	}
	if !a.Tracker().Active() {
		t.Error("tracker should be active after StartExercise")
	}
	if got := a.LastExercise(); got != "squats" {
		t.Errorf("LastExercise() = %q, want %q", got, "squats")
	}
}

func TestApp_StartExercise_UnknownName(t *testing.T) {
	a := newTestApp(t)

	err := a.StartExercise("jumping-jacks")
	if !errors.Is(err, exercise.ErrUnknownExercise) {
		t.Fatalf("StartExercise() error = %v, want ErrUnknownExercise", err)
	}
	if a.Tracker().Active() {
		t.Error("tracker should not be active after rejected start")
	}
	if got := a.LastExercise(); got != "" {
		t.Errorf("LastExercise() = %q, want empty", got)
	}
}

func TestApp_StopExercise_PersistsWorkout(t *testing.T) {
	a := newTestApp(t)

	if err := a.StartExercise("push-up"); err != nil {
		t.Fatalf("StartExercise() error = %v", err)
	}

	workout, err := a.StopExercise()
	if err != nil {
		t.Fatalf("StopExercise() error = %v", err)
	}
	if workout.ID == "" {
		t.Error("workout ID should be assigned")
	}
	if workout.Exercise != "push-up" {
		t.Errorf("workout.Exercise = %q, want %q", workout.Exercise, "push-up")
	}

	saved, err := a.config.Store.Workouts().GetByID(workout.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if saved.Exercise != "push-up" || saved.Reps != 0 {
		t.Errorf("saved workout = %+v, want push-up with 0 reps", saved)
	}
}

func TestApp_StopExercise_NoSession(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.StopExercise(); !errors.Is(err, exercise.ErrNoSession) {
		t.Fatalf("StopExercise() error = %v, want ErrNoSession", err)
	}
}

func TestApp_StartReplacesSession(t *testing.T) {
	a := newTestApp(t)

	if err := a.StartExercise("squats"); err != nil {
		t.Fatalf("StartExercise() error = %v", err)
	}
	if err := a.StartExercise("push-up"); err != nil {
		t.Fatalf("StartExercise() error = %v", err)
	}

	workout, err := a.StopExercise()
	if err != nil {
		t.Fatalf("StopExercise() error = %v", err)
	}
	if workout.Exercise != "push-up" {
		t.Errorf("workout.Exercise = %q, want %q", workout.Exercise, "push-up")
	}
	if got := a.LastExercise(); got != "push-up" {
		t.Errorf("LastExercise() = %q, want %q", got, "push-up")
	}
}

func TestApp_AutoStopTimeout(t *testing.T) {
	a := New(Config{AutoStopSeconds: 30})
	if got := a.autoStopTimeout(); got != 30*time.Second {
		t.Errorf("autoStopTimeout() = %v, want 30s", got)
	}

	a = New(Config{})
	if got := a.autoStopTimeout(); got != 0 {
		t.Errorf("autoStopTimeout() = %v, want 0 (disabled)", got)
	}
}

func TestFrameBuffer(t *testing.T) {
	b := NewFrameBuffer()

	if b.Latest() != nil {
		t.Error("empty buffer should return nil")
	}

	data := []byte{0xff, 0xd8, 0xff}
	b.Set(data)
	data[0] = 0 // The buffer must hold its own copy.

	got := b.Latest()
	if len(got) != 3 || got[0] != 0xff {
		t.Errorf("Latest() = %v, want copy of original frame", got)
	}
}
