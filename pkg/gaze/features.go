// Package gaze implements the signal-processing pipeline that turns eye
// landmarks into cursor commands: feature extraction, calibration,
// nearest-centroid classification, temporal stabilization and blink
// detection.
package gaze

import (
	"math"

	"gazectl/pkg/landmarks"
)

// FeatureVector holds the per-frame gaze features: the iris position
// within the eye span, averaged across both eyes. X is the horizontal
// ratio used for classification; Y is computed identically on the
// vertical axis and carried for the overlay.
type FeatureVector struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two feature vectors.
func (v FeatureVector) Dist(o FeatureVector) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Features extracts the iris-ratio vector and the eye aspect ratio from
// a landmark set. Degenerate geometry (zero eye width or height) yields
// zero components rather than an error; the stability gates downstream
// suppress any spurious output it could cause.
func Features(set landmarks.Set) (FeatureVector, float64) {
	rx := (irisSpanRatio(set[landmarks.LeftIris].X, set[landmarks.LeftEyeOuter].X, set[landmarks.LeftEyeInner].X) +
		irisSpanRatio(set[landmarks.RightIris].X, set[landmarks.RightEyeInner].X, set[landmarks.RightEyeOuter].X)) / 2

	ry := (irisSpanRatio(set[landmarks.LeftIris].Y, set[landmarks.LeftLidTop].Y, set[landmarks.LeftLidBottom].Y) +
		irisSpanRatio(set[landmarks.RightIris].Y, set[landmarks.RightLidTop].Y, set[landmarks.RightLidBottom].Y)) / 2

	ear := (eyeAspect(set, landmarks.LeftLidTop, landmarks.LeftLidBottom, landmarks.LeftEyeOuter, landmarks.LeftEyeInner) +
		eyeAspect(set, landmarks.RightLidTop, landmarks.RightLidBottom, landmarks.RightEyeInner, landmarks.RightEyeOuter)) / 2

	return FeatureVector{X: rx, Y: ry}, ear
}

// irisSpanRatio places the iris coordinate within the near-to-far span,
// yielding roughly 0-1 across the eye. A degenerate span yields 0.
func irisSpanRatio(iris, near, far float64) float64 {
	span := far - near
	if span == 0 {
		return 0
	}
	return (iris - near) / span
}

// eyeAspect is the eyelid gap over the eye width (Euclidean), the
// standard openness signal. A degenerate eye width yields 0.
func eyeAspect(set landmarks.Set, top, bottom, cornerA, cornerB landmarks.Role) float64 {
	width := pointDist(set[cornerA], set[cornerB])
	if width == 0 {
		return 0
	}
	return pointDist(set[top], set[bottom]) / width
}

func pointDist(a, b landmarks.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
