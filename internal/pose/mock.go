package pose

import (
	"math"
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results, either as a fixed
// landmark set or as a per-frame sequence.
type MockDetector struct {
	mu        sync.Mutex
	landmarks Landmarks
	sequence  []Landmarks
	index     int
	err       error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetLandmarks sets the landmarks that will be returned by Detect.
func (m *MockDetector) SetLandmarks(lms Landmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.landmarks = lms
	m.sequence = nil
	m.index = 0
}

// SetSequence sets a per-frame landmark sequence. Each Detect call advances
// through the sequence; after the last entry Detect keeps returning it.
func (m *MockDetector) SetSequence(frames []Landmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequence = frames
	m.index = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the pre-configured landmarks or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (Landmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if len(m.sequence) > 0 {
		lms := m.sequence[m.index]
		if m.index < len(m.sequence)-1 {
			m.index++
		}
		return lms, nil
	}
	return m.landmarks, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// StandingLandmarks returns a preset full 33-point body in a neutral upright
// stance on a 640x480 frame, arms hanging at the sides.
func StandingLandmarks() Landmarks {
	points := [NumLandmarks][2]int{
		Nose:           {320, 80},
		LeftEyeInner:   {326, 72},
		LeftEye:        {330, 72},
		LeftEyeOuter:   {334, 72},
		RightEyeInner:  {314, 72},
		RightEye:       {310, 72},
		RightEyeOuter:  {306, 72},
		LeftEar:        {340, 78},
		RightEar:       {300, 78},
		MouthLeft:      {326, 92},
		MouthRight:     {314, 92},
		LeftShoulder:   {360, 150},
		RightShoulder:  {280, 150},
		LeftElbow:      {360, 215},
		RightElbow:     {280, 215},
		LeftWrist:      {360, 280},
		RightWrist:     {280, 280},
		LeftPinky:      {362, 295},
		RightPinky:     {278, 295},
		LeftIndex:      {365, 296},
		RightIndex:     {275, 296},
		LeftThumb:      {357, 292},
		RightThumb:     {283, 292},
		LeftHip:        {345, 290},
		RightHip:       {295, 290},
		LeftKnee:       {345, 365},
		RightKnee:      {295, 365},
		LeftAnkle:      {345, 440},
		RightAnkle:     {295, 440},
		LeftHeel:       {343, 452},
		RightHeel:      {297, 452},
		LeftFootIndex:  {355, 455},
		RightFootIndex: {285, 455},
	}

	lms := make(Landmarks, NumLandmarks)
	for id, p := range points {
		lms[id] = Landmark{ID: id, X: p[0], Y: p[1]}
	}
	return lms
}

// WithElbowAngle returns a standing body whose left arm is bent so the
// interior angle at the left elbow is approximately deg degrees. The upper
// arm hangs straight down from the shoulder; the forearm swings forward.
func WithElbowAngle(deg float64) Landmarks {
	lms := StandingLandmarks()

	shoulder := Landmark{ID: LeftShoulder, X: 360, Y: 150}
	elbow := Landmark{ID: LeftElbow, X: 360, Y: 215}

	// Rotate the elbow->shoulder vector by deg to place the wrist.
	rad := deg * math.Pi / 180
	const forearm = 65.0
	wrist := Landmark{
		ID: LeftWrist,
		X:  elbow.X + int(math.Round(forearm*math.Sin(rad))),
		Y:  elbow.Y - int(math.Round(forearm*math.Cos(rad))),
	}

	lms[LeftShoulder] = shoulder
	lms[LeftElbow] = elbow
	lms[LeftWrist] = wrist
	lms[LeftPinky] = Landmark{ID: LeftPinky, X: wrist.X + 2, Y: wrist.Y + 8}
	lms[LeftIndex] = Landmark{ID: LeftIndex, X: wrist.X + 5, Y: wrist.Y + 9}
	lms[LeftThumb] = Landmark{ID: LeftThumb, X: wrist.X - 3, Y: wrist.Y + 5}
	return lms
}

// WithKneeAngle returns a standing body whose left leg is bent so the
// interior angle at the left knee is approximately deg degrees.
func WithKneeAngle(deg float64) Landmarks {
	lms := StandingLandmarks()

	hip := Landmark{ID: LeftHip, X: 345, Y: 290}
	knee := Landmark{ID: LeftKnee, X: 345, Y: 365}

	rad := deg * math.Pi / 180
	const shin = 75.0
	ankle := Landmark{
		ID: LeftAnkle,
		X:  knee.X + int(math.Round(shin*math.Sin(rad))),
		Y:  knee.Y - int(math.Round(shin*math.Cos(rad))),
	}

	lms[LeftHip] = hip
	lms[LeftKnee] = knee
	lms[LeftAnkle] = ankle
	lms[LeftHeel] = Landmark{ID: LeftHeel, X: ankle.X - 2, Y: ankle.Y + 12}
	lms[LeftFootIndex] = Landmark{ID: LeftFootIndex, X: ankle.X + 10, Y: ankle.Y + 15}
	return lms
}

// OverheadPressLandmarks returns a body with the left arm extended straight
// overhead: wrist above shoulder, elbow nearly locked.
func OverheadPressLandmarks() Landmarks {
	lms := StandingLandmarks()
	lms[LeftElbow] = Landmark{ID: LeftElbow, X: 360, Y: 140}
	lms[LeftWrist] = Landmark{ID: LeftWrist, X: 360, Y: 80}
	lms[LeftPinky] = Landmark{ID: LeftPinky, X: 362, Y: 70}
	lms[LeftIndex] = Landmark{ID: LeftIndex, X: 365, Y: 69}
	lms[LeftThumb] = Landmark{ID: LeftThumb, X: 357, Y: 73}
	return lms
}
