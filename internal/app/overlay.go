package app

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"gazectl/pkg/gaze"
	"gazectl/pkg/landmarks"
)

var (
	overlayGreen  = color.RGBA{G: 255, A: 255}
	overlayRed    = color.RGBA{R: 255, A: 255}
	overlayYellow = color.RGBA{R: 255, G: 255, A: 255}
)

// drawOverlay annotates the frame with the pipeline's view of the
// world. Purely observational; nothing here feeds back into state.
func drawOverlay(img *gocv.Mat, set landmarks.Set, found bool, frame gaze.Frame, fps float64) {
	w := float64(img.Cols())
	h := float64(img.Rows())

	if found {
		for _, p := range set {
			pt := image.Pt(int(p.X*w), int(p.Y*h))
			gocv.Circle(img, pt, 2, overlayGreen, -1)
		}
	}

	putLine(img, 25, fmt.Sprintf("Dir: %s (Stable: %d)", frame.Label, frame.Run), overlayGreen)
	putLine(img, 45, fmt.Sprintf("X: %.3f Y: %.3f", frame.Median.X, frame.Median.Y), overlayGreen)
	putLine(img, 65, fmt.Sprintf("EAR: %.3f", frame.EAR), overlayGreen)

	if frame.Paused {
		putLine(img, 85, "Status: COMMANDS PAUSED", overlayRed)
	} else {
		putLine(img, 85, "Status: COMMANDS ACTIVE", overlayGreen)
	}

	if frame.LongBlinkActive {
		putLine(img, 105, fmt.Sprintf("Long Blink: %.0f%%", frame.LongBlinkProgress*100), overlayYellow)
	}

	gocv.PutText(img, fmt.Sprintf("FPS: %.1f", fps),
		image.Pt(img.Cols()-100, 25), gocv.FontHersheySimplex, 0.6, overlayGreen, 1)
}

func putLine(img *gocv.Mat, y int, text string, c color.RGBA) {
	gocv.PutText(img, text, image.Pt(10, y), gocv.FontHersheySimplex, 0.6, c, 1)
}
