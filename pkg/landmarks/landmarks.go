// Package landmarks provides facial landmark extraction for gaze tracking.
package landmarks

import "gocv.io/x/gocv"

// Role indexes a semantically meaningful point within a Set.
type Role int

const (
	LeftEyeOuter Role = iota // left eye, temple-side corner
	LeftEyeInner             // left eye, nose-side corner
	RightEyeInner            // right eye, nose-side corner
	RightEyeOuter            // right eye, temple-side corner
	LeftIris
	RightIris
	LeftLidTop
	LeftLidBottom
	RightLidTop
	RightLidBottom
	NumRoles
)

// MeshIndex maps each Role to its index in the MediaPipe face-mesh
// convention (468 contour points plus 10 refined iris points).
// See: https://developers.google.com/mediapipe/solutions/vision/face_landmarker
var MeshIndex = [NumRoles]int{
	LeftEyeOuter:   33,
	LeftEyeInner:   133,
	RightEyeInner:  362,
	RightEyeOuter:  263,
	LeftIris:       468,
	RightIris:      473,
	LeftLidTop:     159,
	LeftLidBottom:  145,
	RightLidTop:    386,
	RightLidBottom: 374,
}

// Point is a 2D landmark position normalized to the frame (0-1 on both axes).
type Point struct {
	X float64
	Y float64
}

// Set holds the landmark points the gaze pipeline consumes, one per Role.
// A Set is produced once per frame and is read-only downstream.
type Set [NumRoles]Point

// Source extracts a landmark Set from a camera frame.
// The boolean is false when no face was found or confidence was too low;
// the caller must hold its previous state and emit nothing for that frame.
type Source interface {
	Process(frame gocv.Mat) (Set, bool)

	// Close releases resources
	Close() error
}
