package gaze

import (
	"errors"
	"fmt"
)

// Pose names a calibration fixation target.
type Pose string

const (
	PoseLeft   Pose = "left"
	PoseRight  Pose = "right"
	PoseCentre Pose = "centre"
)

// Poses lists the calibration targets in the order they are collected.
var Poses = []Pose{PoseLeft, PoseRight, PoseCentre}

// baseDistEpsilon is the minimum usable base distance. A directional
// centroid closer than this to centre cannot anchor a threshold and the
// direction is never selected.
const baseDistEpsilon = 1e-6

var (
	// ErrNoSamples means a pose window closed without a single valid
	// sample — no face, bad lighting. Calibration must abort rather
	// than proceed with a degenerate centroid.
	ErrNoSamples = errors.New("no valid samples collected for pose")

	// ErrIncompleteProfile means a required pose centroid is missing.
	ErrIncompleteProfile = errors.New("calibration profile is missing required poses")
)

// Collector accumulates feature samples for one calibration pose.
type Collector struct {
	sum   FeatureVector
	count int
}

// Add records one feature sample.
func (c *Collector) Add(v FeatureVector) {
	c.sum.X += v.X
	c.sum.Y += v.Y
	c.count++
}

// Count returns the number of samples collected so far.
func (c *Collector) Count() int {
	return c.count
}

// Centroid returns the arithmetic mean of the collected samples.
// Returns ErrNoSamples when the window collected nothing.
func (c *Collector) Centroid() (FeatureVector, error) {
	if c.count == 0 {
		return FeatureVector{}, ErrNoSamples
	}
	return FeatureVector{
		X: c.sum.X / float64(c.count),
		Y: c.sum.Y / float64(c.count),
	}, nil
}

// Profile holds the calibrated centroids and the per-direction base
// distances that anchor the classifier's acceptance radius.
type Profile struct {
	Centroids map[Pose]FeatureVector
	BaseDist  map[Pose]float64
}

// BuildProfile derives a Profile from per-pose centroids. All three
// poses must be present; base distances are the Euclidean distances
// from the left and right centroids to the centre centroid.
func BuildProfile(centroids map[Pose]FeatureVector) (*Profile, error) {
	for _, pose := range Poses {
		if _, ok := centroids[pose]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteProfile, pose)
		}
	}

	centre := centroids[PoseCentre]
	base := make(map[Pose]float64, 2)
	for _, pose := range []Pose{PoseLeft, PoseRight} {
		base[pose] = centroids[pose].Dist(centre)
	}

	return &Profile{
		Centroids: centroids,
		BaseDist:  base,
	}, nil
}

// Centre returns the centre centroid, the fallback signal when the
// smoothing window is still empty.
func (p *Profile) Centre() FeatureVector {
	return p.Centroids[PoseCentre]
}

// Usable reports whether a direction's calibration spread is wide
// enough to anchor a decision threshold.
func (p *Profile) Usable(pose Pose) bool {
	return p.BaseDist[pose] > baseDistEpsilon
}
