// Package exercise provides repetition counting and form analysis for
// exercises tracked through body pose landmarks.
package exercise

import (
	"math"
	"sort"

	"github.com/anirudhs/gymtrace/internal/pose"
)

// MovementAxis describes the dominant motion direction an exercise requires.
type MovementAxis string

const (
	// AxisNone means no specific motion-direction validation applies.
	AxisNone MovementAxis = "none"
	// AxisVertical marks exercises with primarily vertical movement.
	AxisVertical MovementAxis = "vertical"
	// AxisHorizontal marks exercises with primarily horizontal movement.
	AxisHorizontal MovementAxis = "horizontal"
)

// FormQuality is the per-frame categorical verdict on technique.
type FormQuality string

const (
	// FormNeutral means no strong verdict either way.
	FormNeutral FormQuality = "Neutral"
	// FormGood means the current position shows good technique.
	FormGood FormQuality = "Good Form"
	// FormBad means the current position shows a technique fault.
	FormBad FormQuality = "Bad Form"
	// FormWrong means the motion pattern does not match the declared exercise.
	FormWrong FormQuality = "Wrong Exercise"
)

// Feedback pairs a form verdict with a coaching suggestion.
type Feedback struct {
	Quality    FormQuality
	Suggestion string
}

// BandRule matches when Min < angle < Max. Rules are evaluated top to
// bottom; the first matching rule wins.
type BandRule struct {
	Min, Max float64
	Feedback
}

// Profile holds the static per-exercise tracking parameters.
type Profile struct {
	Name       string
	LowAngle   float64
	HighAngle  float64
	Confidence float64
	Joints     [3]int
	Axis       MovementAxis
	Rules      []BandRule
	Default    Feedback
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// profiles is the static exercise table. Adding an exercise is a data
// change here, not a code change.
var profiles = map[string]Profile{
	"push-up": {
		Name:       "push-up",
		LowAngle:   70,
		HighAngle:  160,
		Confidence: 0.6,
		Joints:     [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		Axis:       AxisNone,
		Rules: []BandRule{
			{negInf, 80, Feedback{FormBad, "Bend your arms more to go lower!"}},
			{150, posInf, Feedback{FormGood, "Straighten your elbows at the top!"}},
			{90, 120, Feedback{FormGood, "Keep your back straight, not too high or low"}},
		},
		Default: Feedback{FormNeutral, "Maintain controlled movement"},
	},
	"squats": {
		Name:       "squats",
		LowAngle:   70,
		HighAngle:  160,
		Confidence: 0.6,
		Joints:     [3]int{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle},
		Axis:       AxisNone,
		Rules: []BandRule{
			{negInf, 80, Feedback{FormGood, "Go deeper, bend your knees more"}},
			{150, posInf, Feedback{FormGood, "Stand tall, keep core engaged"}},
		},
		Default: Feedback{FormNeutral, "Keep knees aligned with toes"},
	},
	"shoulder-press": {
		Name:       "shoulder-press",
		LowAngle:   60,
		HighAngle:  170,
		Confidence: 0.7,
		Joints:     [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		Axis:       AxisVertical,
		Rules: []BandRule{
			{negInf, 70, Feedback{FormGood, "Lower the weights more, full range of motion"}},
			{160, posInf, Feedback{FormGood, "Extend arms fully overhead"}},
		},
		Default: Feedback{FormNeutral, "Press weights directly overhead"},
	},
	"lateral-rise": {
		Name:       "lateral-rise",
		LowAngle:   80,
		HighAngle:  140,
		Confidence: 0.7,
		Joints:     [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		Axis:       AxisHorizontal,
		Rules: []BandRule{
			{negInf, 90, Feedback{FormBad, "Raise arms to shoulder height"}},
			{110, posInf, Feedback{FormBad, "Don't raise arms too high"}},
		},
		Default: Feedback{FormGood, "Perfect height, maintain control"},
	},
	"barbell-row": {
		Name:       "barbell-row",
		LowAngle:   70,
		HighAngle:  150,
		Confidence: 0.6,
		Joints:     [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		Axis:       AxisNone,
		Rules: []BandRule{
			{negInf, 80, Feedback{FormGood, "Pull barbell closer to your body"}},
			{130, posInf, Feedback{FormNeutral, "Lower the weight with control"}},
		},
		Default: Feedback{FormGood, "Keep your back straight"},
	},
	"tricep-dips": {
		Name:       "tricep-dips",
		LowAngle:   70,
		HighAngle:  160,
		Confidence: 0.6,
		Joints:     [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		Axis:       AxisNone,
		Rules: []BandRule{
			{negInf, 70, Feedback{FormGood, "Go deeper for full tricep engagement"}},
			{150, posInf, Feedback{FormGood, "Straighten arms completely at top"}},
		},
		Default: Feedback{FormNeutral, "Keep elbows close to body"},
	},
	"alt-dumbbell-curls": {
		Name:       "alt-dumbbell-curls",
		LowAngle:   50,
		HighAngle:  160,
		Confidence: 0.7,
		Joints:     [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		Axis:       AxisNone,
		Rules: []BandRule{
			{negInf, 60, Feedback{FormGood, "Curl the weight fully to shoulder"}},
			{160, posInf, Feedback{FormGood, "Extend arm fully between reps"}},
		},
		Default: Feedback{FormNeutral, "Keep elbow fixed by your side"},
	},
}

// defaultProfile is used when an unrecognized exercise name reaches the
// engine. Start rejects unknown names first, so this is a safety net.
var defaultProfile = Profile{
	Name:       "",
	LowAngle:   70,
	HighAngle:  160,
	Confidence: 0,
	Joints:     [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
	Axis:       AxisNone,
	Default:    Feedback{FormNeutral, "Maintain proper form throughout"},
}

// LookupProfile returns the profile for the given exercise name.
// Unknown names fall back to the default profile with ok=false.
func LookupProfile(name string) (Profile, bool) {
	if p, ok := profiles[name]; ok {
		return p, true
	}
	p := defaultProfile
	p.Name = name
	return p, false
}

// Names returns the valid exercise names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsValidName reports whether name is a supported exercise.
func IsValidName(name string) bool {
	_, ok := profiles[name]
	return ok
}
