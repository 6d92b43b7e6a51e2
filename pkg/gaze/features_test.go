package gaze

import (
	"math"
	"testing"

	"gazectl/pkg/landmarks"
)

// centeredEyes builds a landmark set with both irises dead-centre and
// a healthy eyelid gap.
func centeredEyes() landmarks.Set {
	var set landmarks.Set
	set[landmarks.LeftEyeOuter] = landmarks.Point{X: 0.30, Y: 0.40}
	set[landmarks.LeftEyeInner] = landmarks.Point{X: 0.40, Y: 0.40}
	set[landmarks.LeftIris] = landmarks.Point{X: 0.35, Y: 0.40}
	set[landmarks.LeftLidTop] = landmarks.Point{X: 0.35, Y: 0.38}
	set[landmarks.LeftLidBottom] = landmarks.Point{X: 0.35, Y: 0.42}

	set[landmarks.RightEyeInner] = landmarks.Point{X: 0.60, Y: 0.40}
	set[landmarks.RightEyeOuter] = landmarks.Point{X: 0.70, Y: 0.40}
	set[landmarks.RightIris] = landmarks.Point{X: 0.65, Y: 0.40}
	set[landmarks.RightLidTop] = landmarks.Point{X: 0.65, Y: 0.38}
	set[landmarks.RightLidBottom] = landmarks.Point{X: 0.65, Y: 0.42}
	return set
}

func TestFeatures_CenteredGaze(t *testing.T) {
	vec, ear := Features(centeredEyes())

	if math.Abs(vec.X-0.5) > 1e-9 {
		t.Errorf("Expected horizontal ratio 0.5 for centred irises, got %v", vec.X)
	}
	if math.Abs(vec.Y-0.5) > 1e-9 {
		t.Errorf("Expected vertical ratio 0.5, got %v", vec.Y)
	}
	// Lid gap 0.04 over eye width 0.10
	if math.Abs(ear-0.4) > 1e-9 {
		t.Errorf("Expected EAR 0.4, got %v", ear)
	}
}

func TestFeatures_LeftGazeShiftsRatio(t *testing.T) {
	set := centeredEyes()
	set[landmarks.LeftIris].X = 0.32
	set[landmarks.RightIris].X = 0.62

	vec, _ := Features(set)
	if vec.X >= 0.5 {
		t.Errorf("Expected ratio below 0.5 for leftward irises, got %v", vec.X)
	}
	if vec.X < 0 || vec.X > 1 {
		t.Errorf("Expected ratio within [0,1], got %v", vec.X)
	}
}

func TestFeatures_DegenerateGeometryYieldsZero(t *testing.T) {
	// All landmarks collapsed onto one point: zero eye width and
	// height. Must degrade to zeros, never NaN, Inf or a panic.
	var set landmarks.Set

	vec, ear := Features(set)

	if vec.X != 0 || vec.Y != 0 || ear != 0 {
		t.Errorf("Expected zero features for degenerate geometry, got %+v ear=%v", vec, ear)
	}
	for _, v := range []float64{vec.X, vec.Y, ear} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Expected finite value, got %v", v)
		}
	}
}

func TestFeatures_ZeroWidthOneEye(t *testing.T) {
	set := centeredEyes()
	// Collapse only the left eye span; the right eye still reads.
	set[landmarks.LeftEyeOuter] = set[landmarks.LeftEyeInner]

	vec, ear := Features(set)

	// Left contributes 0, right contributes 0.5
	if math.Abs(vec.X-0.25) > 1e-9 {
		t.Errorf("Expected averaged ratio 0.25, got %v", vec.X)
	}
	if math.IsNaN(ear) || math.IsInf(ear, 0) {
		t.Errorf("Expected finite EAR, got %v", ear)
	}
}
