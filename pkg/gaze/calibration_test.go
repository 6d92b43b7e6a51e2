package gaze

import (
	"errors"
	"math"
	"testing"
)

func TestCollector_NoiseFreeCentroid(t *testing.T) {
	var col Collector
	for i := 0; i < 10; i++ {
		col.Add(FeatureVector{X: 0.2, Y: 0.5})
	}

	centroid, err := col.Centroid()
	if err != nil {
		t.Fatalf("Centroid returned error: %v", err)
	}
	if centroid.X != 0.2 || centroid.Y != 0.5 {
		t.Errorf("Expected centroid equal to the identical samples, got %+v", centroid)
	}
}

func TestCollector_MeanOfSamples(t *testing.T) {
	var col Collector
	col.Add(FeatureVector{X: 0.2, Y: 0.4})
	col.Add(FeatureVector{X: 0.4, Y: 0.6})

	centroid, err := col.Centroid()
	if err != nil {
		t.Fatalf("Centroid returned error: %v", err)
	}
	if math.Abs(centroid.X-0.3) > 1e-12 || math.Abs(centroid.Y-0.5) > 1e-12 {
		t.Errorf("Expected mean (0.3, 0.5), got %+v", centroid)
	}
}

func TestCollector_EmptyWindowFails(t *testing.T) {
	var col Collector

	_, err := col.Centroid()
	if !errors.Is(err, ErrNoSamples) {
		t.Errorf("Expected ErrNoSamples for an empty window, got %v", err)
	}
}

func TestBuildProfile_BaseDistances(t *testing.T) {
	profile, err := BuildProfile(map[Pose]FeatureVector{
		PoseLeft:   {X: 0.2, Y: 0.5},
		PoseRight:  {X: 0.8, Y: 0.5},
		PoseCentre: {X: 0.5, Y: 0.5},
	})
	if err != nil {
		t.Fatalf("BuildProfile returned error: %v", err)
	}

	if math.Abs(profile.BaseDist[PoseLeft]-0.3) > 1e-12 {
		t.Errorf("Expected left base distance 0.3, got %v", profile.BaseDist[PoseLeft])
	}
	if math.Abs(profile.BaseDist[PoseRight]-0.3) > 1e-12 {
		t.Errorf("Expected right base distance 0.3, got %v", profile.BaseDist[PoseRight])
	}
	if !profile.Usable(PoseLeft) || !profile.Usable(PoseRight) {
		t.Error("Expected both directions usable")
	}
}

func TestBuildProfile_MissingPose(t *testing.T) {
	_, err := BuildProfile(map[Pose]FeatureVector{
		PoseLeft:  {X: 0.2, Y: 0.5},
		PoseRight: {X: 0.8, Y: 0.5},
	})
	if !errors.Is(err, ErrIncompleteProfile) {
		t.Errorf("Expected ErrIncompleteProfile without centre, got %v", err)
	}
}

func TestBuildProfile_DegenerateDirectionNotUsable(t *testing.T) {
	profile, err := BuildProfile(map[Pose]FeatureVector{
		PoseLeft:   {X: 0.5, Y: 0.5}, // sits exactly on centre
		PoseRight:  {X: 0.8, Y: 0.5},
		PoseCentre: {X: 0.5, Y: 0.5},
	})
	if err != nil {
		t.Fatalf("BuildProfile returned error: %v", err)
	}

	if profile.Usable(PoseLeft) {
		t.Error("Expected left unusable with zero base distance")
	}
	if !profile.Usable(PoseRight) {
		t.Error("Expected right usable")
	}
}
