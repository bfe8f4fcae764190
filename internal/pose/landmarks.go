// Package pose provides body pose detection interfaces and types for exercise tracking.
package pose

import "math"

// Body landmark indices following the MediaPipe Pose convention (33 points).
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// Landmark is a single labeled body-joint position in pixel space for one frame.
type Landmark struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// Landmarks is the full set of landmarks detected in one frame.
// Order is not significant; points are addressed by their anatomical id.
type Landmarks []Landmark

// Get returns the landmark with the given id and whether it was found.
func (l Landmarks) Get(id int) (Landmark, bool) {
	for _, lm := range l {
		if lm.ID == id {
			return lm, true
		}
	}
	return Landmark{}, false
}

// Complete reports whether all 33 body landmarks are present.
func (l Landmarks) Complete() bool {
	return len(l) >= NumLandmarks
}

// Angle computes the interior angle in degrees at joint p2, formed by the
// landmarks p1-p2-p3. The raw atan2 difference is shifted by 360 when
// negative and mirrored when reflex, so the result is always in [0, 180].
// Returns 0 if any of the three landmarks is missing.
func Angle(lms Landmarks, p1, p2, p3 int) float64 {
	a, ok1 := lms.Get(p1)
	b, ok2 := lms.Get(p2)
	c, ok3 := lms.Get(p3)
	if !ok1 || !ok2 || !ok3 {
		return 0
	}

	angle := math.Atan2(float64(c.Y-b.Y), float64(c.X-b.X)) -
		math.Atan2(float64(a.Y-b.Y), float64(a.X-b.X))
	angle = angle * 180 / math.Pi

	if angle < 0 {
		angle += 360
	}
	if angle > 180 {
		angle = 360 - angle
	}
	return angle
}
