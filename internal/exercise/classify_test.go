package exercise

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		exercise   string
		angle      float64
		quality    FormQuality
		suggestion string
	}{
		{"push-up", 75, FormBad, "Bend your arms more to go lower!"},
		{"push-up", 160, FormGood, "Straighten your elbows at the top!"},
		{"push-up", 100, FormGood, "Keep your back straight, not too high or low"},
		{"push-up", 85, FormNeutral, "Maintain controlled movement"},
		{"push-up", 80, FormNeutral, "Maintain controlled movement"}, // boundary falls through
		{"push-up", 150, FormNeutral, "Maintain controlled movement"},

		{"squats", 70, FormGood, "Go deeper, bend your knees more"},
		{"squats", 155, FormGood, "Stand tall, keep core engaged"},
		{"squats", 120, FormNeutral, "Keep knees aligned with toes"},

		{"shoulder-press", 65, FormGood, "Lower the weights more, full range of motion"},
		{"shoulder-press", 170, FormGood, "Extend arms fully overhead"},
		{"shoulder-press", 120, FormNeutral, "Press weights directly overhead"},

		{"lateral-rise", 85, FormBad, "Raise arms to shoulder height"},
		{"lateral-rise", 120, FormBad, "Don't raise arms too high"},
		{"lateral-rise", 100, FormGood, "Perfect height, maintain control"},

		{"barbell-row", 75, FormGood, "Pull barbell closer to your body"},
		{"barbell-row", 140, FormNeutral, "Lower the weight with control"},
		{"barbell-row", 100, FormGood, "Keep your back straight"},

		{"tricep-dips", 65, FormGood, "Go deeper for full tricep engagement"},
		{"tricep-dips", 160, FormGood, "Straighten arms completely at top"},
		{"tricep-dips", 100, FormNeutral, "Keep elbows close to body"},

		{"alt-dumbbell-curls", 55, FormGood, "Curl the weight fully to shoulder"},
		{"alt-dumbbell-curls", 165, FormGood, "Extend arm fully between reps"},
		{"alt-dumbbell-curls", 100, FormNeutral, "Keep elbow fixed by your side"},
	}

	for _, tt := range tests {
		p, ok := LookupProfile(tt.exercise)
		if !ok {
			t.Fatalf("unknown exercise %q", tt.exercise)
		}
		fb := classify(p, tt.angle)
		if fb.Quality != tt.quality {
			t.Errorf("%s at %v°: quality = %q, want %q", tt.exercise, tt.angle, fb.Quality, tt.quality)
		}
		if fb.Suggestion != tt.suggestion {
			t.Errorf("%s at %v°: suggestion = %q, want %q", tt.exercise, tt.angle, fb.Suggestion, tt.suggestion)
		}
	}
}

func TestClassify_UnknownFallback(t *testing.T) {
	p, _ := LookupProfile("handstand")
	fb := classify(p, 90)
	if fb.Quality != FormNeutral {
		t.Errorf("quality = %q, want %q", fb.Quality, FormNeutral)
	}
	if fb.Suggestion != "Maintain proper form throughout" {
		t.Errorf("suggestion = %q", fb.Suggestion)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		angle, low, high, want float64
	}{
		{70, 70, 160, 0},
		{160, 70, 160, 100},
		{115, 70, 160, 50},
		// Unclamped: values outside the range extrapolate.
		{65, 70, 160, -100.0 / 18},
		{170, 70, 160, 100 + 100.0/9},
		{50, 50, 160, 0},
	}

	for _, tt := range tests {
		got := normalize(tt.angle, tt.low, tt.high)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalize(%v, %v, %v) = %v, want %v", tt.angle, tt.low, tt.high, got, tt.want)
		}
	}

	// Degenerate range must not divide by zero.
	if got := normalize(90, 90, 90); got != 0 {
		t.Errorf("normalize with equal bounds = %v, want 0", got)
	}
}
