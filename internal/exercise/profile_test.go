package exercise

import (
	"reflect"
	"testing"

	"github.com/anirudhs/gymtrace/internal/pose"
)

func TestNames(t *testing.T) {
	want := []string{
		"alt-dumbbell-curls",
		"barbell-row",
		"lateral-rise",
		"push-up",
		"shoulder-press",
		"squats",
		"tricep-dips",
	}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLookupProfile(t *testing.T) {
	tests := []struct {
		name       string
		low, high  float64
		confidence float64
		joints     [3]int
		axis       MovementAxis
	}{
		{"push-up", 70, 160, 0.6, [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist}, AxisNone},
		{"squats", 70, 160, 0.6, [3]int{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle}, AxisNone},
		{"shoulder-press", 60, 170, 0.7, [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist}, AxisVertical},
		{"lateral-rise", 80, 140, 0.7, [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist}, AxisHorizontal},
		{"barbell-row", 70, 150, 0.6, [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist}, AxisNone},
		{"tricep-dips", 70, 160, 0.6, [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist}, AxisNone},
		{"alt-dumbbell-curls", 50, 160, 0.7, [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist}, AxisNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LookupProfile(tt.name)
			if !ok {
				t.Fatalf("LookupProfile(%q) ok = false", tt.name)
			}
			if p.LowAngle != tt.low || p.HighAngle != tt.high {
				t.Errorf("angles = %v/%v, want %v/%v", p.LowAngle, p.HighAngle, tt.low, tt.high)
			}
			if p.Confidence != tt.confidence {
				t.Errorf("confidence = %v, want %v", p.Confidence, tt.confidence)
			}
			if p.Joints != tt.joints {
				t.Errorf("joints = %v, want %v", p.Joints, tt.joints)
			}
			if p.Axis != tt.axis {
				t.Errorf("axis = %v, want %v", p.Axis, tt.axis)
			}
		})
	}
}

func TestLookupProfile_Unknown(t *testing.T) {
	p, ok := LookupProfile("jumping-jacks")
	if ok {
		t.Error("expected ok = false for unknown exercise")
	}
	// Fallback keeps the default arm triplet and neutral feedback.
	if p.Joints != [3]int{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist} {
		t.Errorf("fallback joints = %v", p.Joints)
	}
	if p.Default.Quality != FormNeutral {
		t.Errorf("fallback default quality = %v", p.Default.Quality)
	}
	if len(p.Rules) != 0 {
		t.Errorf("fallback should have no band rules, got %d", len(p.Rules))
	}
}

func TestIsValidName(t *testing.T) {
	if !IsValidName("squats") {
		t.Error("expected squats to be valid")
	}
	if IsValidName("jumping-jacks") {
		t.Error("expected jumping-jacks to be invalid")
	}
	if IsValidName("") {
		t.Error("expected empty name to be invalid")
	}
}
