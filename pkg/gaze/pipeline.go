package gaze

import (
	"time"

	"gazectl/internal/log"
	"gazectl/pkg/emitter"
)

// Frame is a snapshot of pipeline state after one processed frame,
// consumed by the debug overlay. Purely observational.
type Frame struct {
	Label             Label
	Run               int
	Median            FeatureVector
	EAR               float64
	Paused            bool
	LongBlinkProgress float64 // 0-1, meaningful when LongBlinkActive
	LongBlinkActive   bool
	Clicked           bool
	Emitted           bool
}

// Pipeline wires the per-frame decision chain together: smoothing,
// classification, blink tracking, stabilization and command emission.
// All state is single-writer; Step and HoldFrame are called from the
// frame loop only.
type Pipeline struct {
	cfg        Config
	profile    *Profile
	window     *Window
	classifier Classifier
	stabilizer *Stabilizer
	blink      *BlinkMachine
	emit       emitter.Emitter

	now  func() time.Time
	last Frame
}

// NewPipeline assembles a pipeline over a calibrated profile.
func NewPipeline(cfg Config, profile *Profile, emit emitter.Emitter) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		profile:    profile,
		window:     NewWindow(cfg.SmoothingDepth),
		classifier: NewNearestCentroid(profile, cfg.Tolerance),
		stabilizer: NewStabilizer(cfg.MinStableFrames, cfg.Cooldown),
		blink:      NewBlinkMachine(cfg),
		emit:       emit,
		now:        time.Now,
		last:       Frame{Label: LabelCentre},
	}
}

// Step processes one frame's features and executes whatever commands
// the gates let through.
func (p *Pipeline) Step(vec FeatureVector, ear float64) Frame {
	now := p.now()

	p.window.Push(vec)
	med := p.window.Median(p.profile.Centre())
	label := p.classifier.Classify(med)

	blink := p.blink.Observe(ear, now)
	if blink.Click {
		log.Debug("blink detected", "ear", ear)
		if err := p.emit.Click(); err != nil {
			log.Warn("click failed", "error", err)
		}
		// A click is privileged over a directional move this frame.
		p.stabilizer.SuppressMove(now)
	}
	if blink.Toggle {
		if p.blink.Paused() {
			log.Info("commands paused", "hold", p.cfg.LongBlinkDuration)
		} else {
			log.Info("commands resumed")
		}
	}

	p.stabilizer.Observe(label)

	emitted := false
	if p.stabilizer.ShouldEmit(now, p.blink.Paused()) {
		p.dispatch(label)
		p.stabilizer.MarkEmitted(now)
		emitted = true
	}

	progress, active := p.blink.Progress(now)
	p.last = Frame{
		Label:             p.stabilizer.Current(),
		Run:               p.stabilizer.Run(),
		Median:            med,
		EAR:               ear,
		Paused:            p.blink.Paused(),
		LongBlinkProgress: progress,
		LongBlinkActive:   active,
		Clicked:           blink.Click,
		Emitted:           emitted,
	}
	return p.last
}

// HoldFrame is called for frames where no face was found: previous
// state is carried unchanged and nothing is emitted.
func (p *Pipeline) HoldFrame() Frame {
	p.last.Clicked = false
	p.last.Emitted = false
	return p.last
}

// Paused reports whether directional commands are currently suppressed.
func (p *Pipeline) Paused() bool {
	return p.blink.Paused()
}

// dispatch executes one directional command in the configured mode:
// a relative cursor nudge or an arrow-key press, never both.
func (p *Pipeline) dispatch(label Label) {
	log.Info("command", "direction", label, "run", p.stabilizer.Run())

	var err error
	if p.cfg.UseArrowKeys {
		err = p.emit.PressKey(emitter.Direction(label))
	} else {
		dx := 0
		switch label {
		case LabelLeft:
			dx = -p.cfg.MovePixels
		case LabelRight:
			dx = p.cfg.MovePixels
		}
		err = p.emit.MoveRelative(dx, 0)
	}
	if err != nil {
		log.Warn("command failed", "direction", label, "error", err)
	}
}
