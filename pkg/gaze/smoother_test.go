package gaze

import "testing"

func TestWindow_MedianRejectsOutlier(t *testing.T) {
	w := NewWindow(3)
	w.Push(FeatureVector{X: 0.5, Y: 0.5})
	w.Push(FeatureVector{X: 0.9, Y: 0.1}) // single-frame spike
	w.Push(FeatureVector{X: 0.5, Y: 0.5})

	med := w.Median(FeatureVector{})
	if med.X != 0.5 || med.Y != 0.5 {
		t.Errorf("Expected median to reject the spike, got %+v", med)
	}
}

func TestWindow_EvictsOldestFirst(t *testing.T) {
	w := NewWindow(3)
	for _, x := range []float64{0.1, 0.2, 0.3, 0.9} {
		w.Push(FeatureVector{X: x})
	}

	if w.Len() != 3 {
		t.Fatalf("Expected window length 3, got %d", w.Len())
	}
	// 0.1 evicted; median of {0.2, 0.3, 0.9} is 0.3
	if med := w.Median(FeatureVector{}); med.X != 0.3 {
		t.Errorf("Expected median 0.3 after eviction, got %v", med.X)
	}
}

func TestWindow_EvenLengthMedian(t *testing.T) {
	w := NewWindow(4)
	w.Push(FeatureVector{X: 0.2})
	w.Push(FeatureVector{X: 0.4})

	if med := w.Median(FeatureVector{}); med.X != 0.3 {
		t.Errorf("Expected midpoint 0.3 for even window, got %v", med.X)
	}
}

func TestWindow_EmptyFallsBack(t *testing.T) {
	w := NewWindow(3)
	fallback := FeatureVector{X: 0.5, Y: 0.5}

	if med := w.Median(fallback); med != fallback {
		t.Errorf("Expected fallback for empty window, got %+v", med)
	}
}
