package exercise

import (
	"image"

	"github.com/anirudhs/gymtrace/internal/pose"
)

// Validator tuning constants.
const (
	// wristHistoryMin is the number of wrist samples needed before the
	// bicep-curl pattern check activates.
	wristHistoryMin = 6
	// pressTopAngle is the angle below which the press is near its top.
	pressTopAngle = 80
	// elbowDriftMax is the largest frame-to-frame horizontal elbow travel
	// (pixels) allowed during a curl.
	elbowDriftMax = 30
	// wristAboveElbowMax is how far (pixels) the wrist may rise above the
	// elbow during a curl before the motion is rejected.
	wristAboveElbowMax = 50
)

// validateMovement checks that the observed motion matches the declared
// exercise, using the session's short-term movement histories. It returns
// whether the motion is valid and, when invalid, a coaching message.
// Only shoulder-press and alt-dumbbell-curls have specialized checks; every
// other exercise passes trivially. Landmark ids through the left wrist (15)
// must be present or validation is skipped for the frame.
func validateMovement(s *Session, lms pose.Landmarks) (bool, string) {
	if len(lms) <= pose.LeftWrist {
		return true, ""
	}

	switch s.Profile.Name {
	case "shoulder-press":
		return validateShoulderPress(s, lms)
	case "alt-dumbbell-curls":
		return validateCurl(s, lms)
	}
	return true, ""
}

// validateShoulderPress distinguishes a press from a bicep curl.
// Both checks run every frame; the buffer check runs first and its message
// takes precedence when both fail.
func validateShoulderPress(s *Session, lms pose.Landmarks) (bool, string) {
	wrist, _ := lms.Get(pose.LeftWrist)
	shoulder, _ := lms.Get(pose.LeftShoulder)

	s.wristYHist.push(float64(wrist.Y))

	valid := true
	msg := ""

	// A wrist that never rises above the shoulder over the recent window
	// is the signature of a curl, not a press. Image y grows downward.
	if s.wristYHist.len() >= wristHistoryMin {
		belowShoulder := true
		for _, y := range s.wristYHist.values() {
			if y <= float64(shoulder.Y) {
				belowShoulder = false
				break
			}
		}
		if belowShoulder {
			valid = false
			msg = "This looks like a bicep curl, not a shoulder press"
		}
	}

	// Near the top of the range the wrist must be above the shoulder.
	if s.Angle < pressTopAngle && wrist.Y >= shoulder.Y {
		valid = false
		if msg == "" {
			msg = "Extend arms upward for shoulder press"
		}
	}

	return valid, msg
}

// validateCurl checks that the elbow stays fixed and the wrist stays in
// front of the body. The elbow position is recorded after both checks so
// drift is measured against the previous frame; the first frame counts as
// zero drift.
func validateCurl(s *Session, lms pose.Landmarks) (bool, string) {
	elbow, _ := lms.Get(pose.LeftElbow)
	wrist, _ := lms.Get(pose.LeftWrist)

	s.elbowHist.push(image.Pt(elbow.X, elbow.Y))

	drift := 0
	if s.hasLastElbowX {
		drift = elbow.X - s.lastElbowX
		if drift < 0 {
			drift = -drift
		}
	}

	valid := true
	msg := ""

	if drift > elbowDriftMax {
		valid = false
		msg = "Keep elbow fixed for bicep curls"
	}

	if wrist.Y < elbow.Y-wristAboveElbowMax {
		valid = false
		msg = "Keep wrist movement in front of body for curls"
	}

	s.lastElbowX = elbow.X
	s.hasLastElbowX = true

	return valid, msg
}
