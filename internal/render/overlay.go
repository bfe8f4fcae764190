// Package render draws tracking feedback onto video frames.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/anirudhs/gymtrace/internal/exercise"
)

// Overlay geometry on a 640x480 frame.
const (
	barLeft   = 580
	barRight  = 600
	barTop    = 50
	barBottom = 380

	repBoxWidth  = 120
	repBoxHeight = 100
)

var (
	colorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGreen  = color.RGBA{G: 220, A: 255}
	colorRed    = color.RGBA{R: 220, A: 255}
	colorOrange = color.RGBA{R: 255, G: 140, A: 255}
	colorDark   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// qualityColor maps a form verdict to its display color.
func qualityColor(q exercise.FormQuality) color.RGBA {
	switch q {
	case exercise.FormGood:
		return colorGreen
	case exercise.FormBad:
		return colorOrange
	case exercise.FormWrong:
		return colorRed
	default:
		return colorWhite
	}
}

// Overlay draws the tracking state onto the frame in place: a vertical
// progress bar for the movement range, a rep counter box, and the current
// suggestion. Idle frames are left untouched.
func Overlay(frame *gocv.Mat, st exercise.Status) {
	if !st.Active {
		return
	}

	h := frame.Rows()
	w := frame.Cols()
	if h == 0 || w == 0 {
		return
	}

	drawProgressBar(frame, st)
	drawRepBox(frame, h, st.Count)
	drawHeader(frame, st)
}

// IdlePlaceholder paints the frame as the between-sessions card shown on
// the stream while nothing is tracked, so the camera image never leaves
// the process when no session is live.
func IdlePlaceholder(frame *gocv.Mat) {
	gocv.Rectangle(frame, image.Rect(0, 0, frame.Cols(), frame.Rows()), colorDark, -1)
	gocv.PutText(frame, "Tracking stopped", image.Pt(180, 240), gocv.FontHersheySimplex, 1.0, colorWhite, 2)
	gocv.PutText(frame, "Start an exercise from the dashboard", image.Pt(140, 280), gocv.FontHersheySimplex, 0.6, colorWhite, 1)
}

// drawProgressBar renders the movement range bar on the right edge. The
// percent can run past [0, 100] mid-rep, so the fill is clamped for display.
func drawProgressBar(frame *gocv.Mat, st exercise.Status) {
	p := st.Percent
	if p < 0 {
		p = 0
	} else if p > 100 {
		p = 100
	}

	gocv.Rectangle(frame, image.Rect(barLeft, barTop, barRight, barBottom), colorWhite, 2)

	fillTop := barBottom - int(float64(barBottom-barTop)*p/100)
	if fillTop < barBottom {
		gocv.Rectangle(frame, image.Rect(barLeft, fillTop, barRight, barBottom), qualityColor(st.FormQuality), -1)
	}

	label := fmt.Sprintf("%d%%", int(p))
	gocv.PutText(frame, label, image.Pt(barLeft-15, barTop-15), gocv.FontHersheySimplex, 0.7, colorWhite, 2)
}

// drawRepBox renders the rep counter in the bottom-left corner.
func drawRepBox(frame *gocv.Mat, frameHeight, count int) {
	box := image.Rect(0, frameHeight-repBoxHeight, repBoxWidth, frameHeight)
	gocv.Rectangle(frame, box, colorDark, -1)

	gocv.PutText(frame, "REPS", image.Pt(15, frameHeight-repBoxHeight+30), gocv.FontHersheySimplex, 0.7, colorWhite, 2)
	gocv.PutText(frame, strconv.Itoa(count), image.Pt(25, frameHeight-20), gocv.FontHersheySimplex, 1.6, colorGreen, 3)
}

// drawHeader renders the exercise name and current suggestion at the top.
// A wrong-exercise verdict gets a full-width banner so it cannot be missed.
func drawHeader(frame *gocv.Mat, st exercise.Status) {
	gocv.PutText(frame, st.Exercise, image.Pt(10, 30), gocv.FontHersheySimplex, 0.8, colorWhite, 2)

	if st.Suggestion == "" {
		return
	}

	if st.WrongExercise {
		gocv.Rectangle(frame, image.Rect(0, 40, frame.Cols(), 75), colorRed, -1)
		gocv.PutText(frame, st.Suggestion, image.Pt(10, 65), gocv.FontHersheySimplex, 0.6, colorWhite, 2)
		return
	}

	gocv.PutText(frame, st.Suggestion, image.Pt(10, 65), gocv.FontHersheySimplex, 0.6, qualityColor(st.FormQuality), 2)
}
