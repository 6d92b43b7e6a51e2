package gaze

import "time"

// Config holds all tunable parameters for the gaze pipeline
type Config struct {
	// Smoothing
	SmoothingDepth int // Median window size in frames

	// Stabilizer
	MinStableFrames int           // Consecutive frames a label must hold before emission
	Cooldown        time.Duration // Minimum gap between directional commands

	// Classifier
	Tolerance map[Pose]float64 // Acceptance radius as a fraction of base distance

	// Movement
	MovePixels   int  // Cursor step per directional command
	UseArrowKeys bool // Press arrow keys instead of moving the cursor

	// Blink
	BlinkThreshold float64       // EAR below this counts as a blink
	BlinkCooldown  time.Duration // Minimum gap between click events

	// Long blink (pause/resume)
	LongBlinkThreshold float64       // EAR below this keeps the close timer running
	LongBlinkDuration  time.Duration // Hold time required to toggle pause
	PauseCooldown      time.Duration // Minimum gap between pause toggles
}

// DefaultConfig returns the recommended configuration, tuned for
// responsiveness on a typical webcam
func DefaultConfig() Config {
	return Config{
		// Smoothing - small window for low lag
		SmoothingDepth: 3,

		// Stabilizer - fast reaction
		MinStableFrames: 2,
		Cooldown:        700 * time.Millisecond,

		// Classifier - wide tolerance admits more hits at the cost of
		// occasional false positives
		Tolerance: map[Pose]float64{
			PoseLeft:  0.65,
			PoseRight: 0.65,
		},

		// Movement
		MovePixels:   100,
		UseArrowKeys: false,

		// Blink
		BlinkThreshold: 0.19,
		BlinkCooldown:  600 * time.Millisecond,

		// Long blink
		LongBlinkThreshold: 0.19,
		LongBlinkDuration:  time.Second,
		PauseCooldown:      2 * time.Second,
	}
}

// ResponsiveConfig returns a configuration for faster reaction at the
// cost of more jitter
func ResponsiveConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingDepth = 2
	cfg.MinStableFrames = 1
	cfg.Cooldown = 500 * time.Millisecond
	cfg.Tolerance[PoseLeft] = 0.75
	cfg.Tolerance[PoseRight] = 0.75
	return cfg
}

// RelaxedConfig returns a configuration for slower, steadier control
func RelaxedConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingDepth = 5
	cfg.MinStableFrames = 4
	cfg.Cooldown = time.Second
	cfg.Tolerance[PoseLeft] = 0.55
	cfg.Tolerance[PoseRight] = 0.55
	return cfg
}
