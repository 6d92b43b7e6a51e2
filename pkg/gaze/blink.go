package gaze

import "time"

// BlinkResult reports what a single frame of eye-closure tracking
// produced. Click and Toggle can both be set on one frame: the click
// cooldown is much shorter than the long-blink hold, so a click fires
// during the early portion of what becomes a pause toggle.
type BlinkResult struct {
	Click  bool // short blink detected, a click should fire
	Toggle bool // long blink completed, pause state flipped
}

// BlinkMachine tracks eye-closure duration to tell a short blink (click)
// from a sustained long blink (pause/resume toggle). The two detections
// share the eye-aspect-ratio signal but run independent cooldown clocks.
type BlinkMachine struct {
	blinkThreshold     float64
	blinkCooldown      time.Duration
	longBlinkThreshold float64
	longBlinkDuration  time.Duration
	pauseCooldown      time.Duration

	closeStart time.Time
	lastClick  time.Time
	lastToggle time.Time
	paused     bool
}

// NewBlinkMachine creates a blink machine from pipeline config.
func NewBlinkMachine(cfg Config) *BlinkMachine {
	return &BlinkMachine{
		blinkThreshold:     cfg.BlinkThreshold,
		blinkCooldown:      cfg.BlinkCooldown,
		longBlinkThreshold: cfg.LongBlinkThreshold,
		longBlinkDuration:  cfg.LongBlinkDuration,
		pauseCooldown:      cfg.PauseCooldown,
	}
}

// Observe feeds one frame's eye aspect ratio into the machine.
//
// Clicks fire even while commands are paused; only directional movement
// is gated by the pause state. That asymmetry is carried over from the
// original control scheme deliberately — see DESIGN.md.
func (b *BlinkMachine) Observe(ear float64, now time.Time) BlinkResult {
	var res BlinkResult

	if ear < b.blinkThreshold && now.Sub(b.lastClick) > b.blinkCooldown {
		res.Click = true
		b.lastClick = now
	}

	if ear < b.longBlinkThreshold {
		switch {
		case b.closeStart.IsZero():
			b.closeStart = now
		case now.Sub(b.closeStart) >= b.longBlinkDuration && now.Sub(b.lastToggle) > b.pauseCooldown:
			b.paused = !b.paused
			b.lastToggle = now
			b.closeStart = time.Time{}
			res.Toggle = true
		}
	} else {
		// Eyes reopened before the hold completed; the attempt is
		// abandoned and counts for nothing.
		b.closeStart = time.Time{}
	}

	return res
}

// Paused reports whether directional commands are currently suppressed.
func (b *BlinkMachine) Paused() bool {
	return b.paused
}

// Progress returns how far a long-blink hold has come, 0-1, and whether
// a hold is in progress at all. Used by the debug overlay.
func (b *BlinkMachine) Progress(now time.Time) (float64, bool) {
	if b.closeStart.IsZero() {
		return 0, false
	}
	p := float64(now.Sub(b.closeStart)) / float64(b.longBlinkDuration)
	if p > 1 {
		p = 1
	}
	return p, true
}
