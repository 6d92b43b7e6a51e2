package gaze

import "sort"

// Window is a bounded FIFO of recent feature samples. The working
// signal is the component-wise median of the window, which rejects
// single-frame outliers better than a mean at these depths.
type Window struct {
	xs    []float64
	ys    []float64
	depth int
}

// NewWindow creates a smoothing window holding the last depth samples.
func NewWindow(depth int) *Window {
	if depth < 1 {
		depth = 1
	}
	return &Window{depth: depth}
}

// Push appends a sample, evicting the oldest when the window is full.
func (w *Window) Push(v FeatureVector) {
	w.xs = append(w.xs, v.X)
	w.ys = append(w.ys, v.Y)
	if len(w.xs) > w.depth {
		w.xs = w.xs[1:]
		w.ys = w.ys[1:]
	}
}

// Len returns the number of samples currently held.
func (w *Window) Len() int {
	return len(w.xs)
}

// Median returns the component-wise median of the window, or fallback
// when no samples have been pushed yet.
func (w *Window) Median(fallback FeatureVector) FeatureVector {
	if len(w.xs) == 0 {
		return fallback
	}
	return FeatureVector{
		X: median(w.xs),
		Y: median(w.ys),
	}
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
