package exercise

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/anirudhs/gymtrace/internal/pose"
)

// ErrNoSession is returned when an operation requires an active session.
var ErrNoSession = errors.New("no active tracking session")

// visibilitySuggestion is shown when too few landmarks are detected.
const visibilitySuggestion = "Make sure your body is visible to the camera."

// AngleFunc resolves the interior joint angle at p2 from three landmark ids.
type AngleFunc func(lms pose.Landmarks, p1, p2, p3 int) float64

// Status is an immutable snapshot of the tracking state, safe to hand to
// renderers and API responses.
type Status struct {
	Active        bool        `json:"active"`
	Exercise      string      `json:"exercise"`
	Count         int         `json:"count"`
	Suggestion    string      `json:"suggestion"`
	FormQuality   FormQuality `json:"form_quality"`
	WrongExercise bool        `json:"wrong_exercise"`
	Angle         float64     `json:"angle"`
	Percent       float64     `json:"percent"`
}

// Summary describes a finished tracking run.
type Summary struct {
	Exercise  string
	Reps      int
	StartedAt time.Time
	EndedAt   time.Time
}

// Tracker owns at most one tracking session and applies the per-frame
// rep/form protocol to it. Every read and write of session state happens
// under a single mutex, so callers never observe partial updates.
type Tracker struct {
	mu      sync.Mutex
	session *Session
	angleOf AngleFunc
}

// NewTracker creates a Tracker that measures joint angles with pose.Angle.
func NewTracker() *Tracker {
	return &Tracker{angleOf: pose.Angle}
}

// SetAngleFunc replaces the joint angle provider. Useful in tests to drive
// exact angle sequences.
func (t *Tracker) SetAngleFunc(fn AngleFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if fn != nil {
		t.angleOf = fn
	}
}

// Start begins tracking the named exercise, replacing any active session.
// Unknown names are rejected with ErrUnknownExercise and leave existing
// state untouched.
func (t *Tracker) Start(name string) error {
	session, err := NewSession(name)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.session = session
	return nil
}

// Stop ends the active session and returns its summary. The session state
// is discarded; a subsequent Status reports inactive defaults.
func (t *Tracker) Stop() (Summary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return Summary{}, ErrNoSession
	}

	summary := Summary{
		Exercise:  t.session.Exercise,
		Reps:      t.session.RepCount,
		StartedAt: t.session.StartedAt,
		EndedAt:   time.Now(),
	}
	t.session = nil
	return summary, nil
}

// Active reports whether a tracking session is live.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session != nil
}

// Status returns a snapshot of the current session state. It never mutates
// the session; with no active session it returns inactive defaults.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked()
}

func (t *Tracker) statusLocked() Status {
	if t.session == nil {
		return Status{FormQuality: FormNeutral}
	}
	s := t.session
	return Status{
		Active:        true,
		Exercise:      s.Exercise,
		Count:         s.RepCount,
		Suggestion:    s.Suggestion,
		FormQuality:   s.Quality,
		WrongExercise: s.Quality == FormWrong,
		Angle:         s.Angle,
		Percent:       s.Percent,
	}
}

// ProcessFrame runs the per-frame protocol on one landmark set:
//
//  1. Reset the suggestion and form verdict.
//  2. Degrade to a visibility hint when fewer than 33 landmarks arrived.
//  3. Resolve the joint angle from the profile's triplet.
//  4. Validate the movement pattern; a mismatch suppresses rep counting.
//  5. Classify form from the profile's band table.
//  6. Normalize the angle onto [0, 100] and advance the rep state machine:
//     idle turns extending when the percent hits exactly 0, and a rep is
//     counted when an extending session hits exactly 100.
//
// Malformed input never fails the call; it only defers counting.
func (t *Tracker) ProcessFrame(lms pose.Landmarks) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session
	if s == nil {
		return Status{FormQuality: FormNeutral}
	}

	s.Suggestion = ""
	s.Quality = FormNeutral

	if !lms.Complete() {
		s.Suggestion = visibilitySuggestion
		return t.statusLocked()
	}

	j := s.Profile.Joints
	s.Angle = t.angleOf(lms, j[0], j[1], j[2])

	valid, msg := validateMovement(s, lms)
	if !valid {
		s.Quality = FormWrong
		if msg == "" {
			msg = "This doesn't look like a " + strings.ReplaceAll(s.Exercise, "-", " ")
		}
		s.Suggestion = msg
		return t.statusLocked()
	}

	fb := classify(s.Profile, s.Angle)
	s.Quality = fb.Quality
	s.Suggestion = fb.Suggestion

	per := normalize(s.Angle, s.Profile.LowAngle, s.Profile.HighAngle)
	s.Percent = per

	if per == 100 {
		if s.direction == directionExtending {
			s.RepCount++
			s.direction = directionIdle
		}
	} else if per == 0 {
		if s.direction == directionIdle {
			s.direction = directionExtending
		}
	}

	return t.statusLocked()
}
