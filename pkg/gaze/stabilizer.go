package gaze

import "time"

// Stabilizer gates directional emission behind two independent filters:
// a label must persist for a minimum run of frames (suppresses
// single-frame misclassification jitter) and a cooldown must have
// elapsed since the last emission (suppresses rapid-fire repeats from a
// sustained gaze).
type Stabilizer struct {
	minStableFrames int
	cooldown        time.Duration

	current  Label
	run      int
	lastEmit time.Time
}

// NewStabilizer creates a stabilizer with the given gates.
func NewStabilizer(minStableFrames int, cooldown time.Duration) *Stabilizer {
	return &Stabilizer{
		minStableFrames: minStableFrames,
		cooldown:        cooldown,
		current:         LabelCentre,
	}
}

// Observe feeds one classification into the run counter. A repeated
// label extends the run; a new label starts a run of 1.
func (s *Stabilizer) Observe(label Label) {
	if label == s.current {
		s.run++
		return
	}
	s.current = label
	s.run = 1
}

// Current returns the label currently holding a run.
func (s *Stabilizer) Current() Label {
	return s.current
}

// Run returns the current stable run length.
func (s *Stabilizer) Run() int {
	return s.run
}

// ShouldEmit reports whether a directional command may fire now. When
// paused the gate is forced closed regardless of label, run or cooldown.
func (s *Stabilizer) ShouldEmit(now time.Time, paused bool) bool {
	if paused {
		return false
	}
	if s.current == LabelCentre {
		return false
	}
	if s.run < s.minStableFrames {
		return false
	}
	return now.Sub(s.lastEmit) > s.cooldown
}

// MarkEmitted records an emission. The run resets to zero so the next
// command needs a fresh stability run even if the cooldown alone would
// allow it sooner.
func (s *Stabilizer) MarkEmitted(now time.Time) {
	s.lastEmit = now
	s.run = 0
}

// SuppressMove restarts the cooldown and clears the run without an
// emission. The blink machine uses this so a click is privileged over a
// directional move on the same frame.
func (s *Stabilizer) SuppressMove(now time.Time) {
	s.lastEmit = now
	s.run = 0
}
