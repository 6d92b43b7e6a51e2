package gaze

// Label is a classified gaze direction.
type Label string

const (
	LabelLeft   Label = "left"
	LabelRight  Label = "right"
	LabelCentre Label = "centre"
)

// Classifier maps a smoothed feature vector to a direction label.
// Implementations must be pure functions of the vector and their
// calibration state, so a vector always classifies the same way.
type Classifier interface {
	Classify(v FeatureVector) Label
}

// NearestCentroid classifies by distance to the calibrated left and
// right centroids, accepting the nearer one only within an acceptance
// radius scaled to that direction's calibration spread. Centre is the
// fallback, not a distance target, so the radius adapts to how
// separable each user's left and right gaze actually is.
type NearestCentroid struct {
	profile   *Profile
	tolerance map[Pose]float64
}

// NewNearestCentroid creates a classifier over a calibrated profile.
// tolerance is the per-direction acceptance fraction of base distance.
func NewNearestCentroid(profile *Profile, tolerance map[Pose]float64) *NearestCentroid {
	return &NearestCentroid{
		profile:   profile,
		tolerance: tolerance,
	}
}

// Classify returns the direction label for a smoothed feature vector.
func (c *NearestCentroid) Classify(v FeatureVector) Label {
	best := Pose("")
	bestDist := 0.0
	for _, pose := range []Pose{PoseLeft, PoseRight} {
		d := v.Dist(c.profile.Centroids[pose])
		if best == "" || d < bestDist {
			best, bestDist = pose, d
		}
	}

	// A degenerate base distance means the pose centroid sat on top of
	// centre during calibration; that direction is never selectable.
	if !c.profile.Usable(best) {
		return LabelCentre
	}

	if bestDist <= c.tolerance[best]*c.profile.BaseDist[best] {
		return Label(best)
	}
	return LabelCentre
}
