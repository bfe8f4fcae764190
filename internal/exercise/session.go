package exercise

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// ErrUnknownExercise is returned when Start is called with an unsupported name.
var ErrUnknownExercise = errors.New("unknown exercise")

// historyCap bounds every rolling history buffer on a session.
const historyCap = 10

// Rep counting direction states.
const (
	directionIdle      = 0
	directionExtending = 1
)

// floatHistory is a bounded FIFO of recent scalar samples (oldest evicted).
type floatHistory struct {
	vals []float64
}

func (h *floatHistory) push(v float64) {
	h.vals = append(h.vals, v)
	if len(h.vals) > historyCap {
		h.vals = h.vals[1:]
	}
}

func (h *floatHistory) len() int { return len(h.vals) }

func (h *floatHistory) values() []float64 { return h.vals }

// pointHistory is a bounded FIFO of recent 2D positions (oldest evicted).
type pointHistory struct {
	pts []image.Point
}

func (h *pointHistory) push(p image.Point) {
	h.pts = append(h.pts, p)
	if len(h.pts) > historyCap {
		h.pts = h.pts[1:]
	}
}

func (h *pointHistory) len() int { return len(h.pts) }

// Session is the live tracking state for one exercise run. All history
// buffers are declared up front and start empty; they are only filled by
// the validator that needs them.
type Session struct {
	Exercise   string
	Profile    Profile
	RepCount   int
	Angle      float64
	Percent    float64
	Quality    FormQuality
	Suggestion string
	StartedAt  time.Time

	direction int

	// Rolling movement histories for pattern validation.
	wristYHist floatHistory
	elbowHist  pointHistory

	lastElbowX    int
	hasLastElbowX bool
}

// NewSession creates a tracking session for the named exercise.
// Unknown exercise names are rejected; the session starts with zero reps
// and the direction state idle.
func NewSession(name string) (*Session, error) {
	profile, ok := LookupProfile(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}

	return &Session{
		Exercise:  name,
		Profile:   profile,
		Quality:   FormNeutral,
		StartedAt: time.Now(),
		direction: directionIdle,
	}, nil
}
