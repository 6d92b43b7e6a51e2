// Package app wires the camera, landmark source, gaze pipeline and
// command emitter into the interactive control loop.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"gocv.io/x/gocv"

	"gazectl/internal/config"
	"gazectl/internal/log"
	"gazectl/pkg/emitter"
	"gazectl/pkg/gaze"
	"gazectl/pkg/landmarks"
)

// readBackoff is the pause after a transient camera failure before the
// loop retries.
const readBackoff = 100 * time.Millisecond

// quitKeys are the WaitKey codes that end the session ('q' and ESC).
var quitKeys = map[int]bool{'q': true, 27: true}

// App owns the full session: calibration phase followed by the control
// loop. Everything runs single-threaded and frame-driven.
type App struct {
	opts   config.Options
	cam    *gocv.VideoCapture
	source landmarks.Source
	emit   *emitter.RobotGo
	debug  *gocv.Window
}

// Run executes a full session and blocks until the user quits or a
// fatal error occurs. Camera and calibration failures are fatal;
// per-frame failures are logged and skipped.
func Run(opts config.Options) error {
	cam, err := gocv.OpenVideoCapture(opts.CameraIndex)
	if err != nil {
		return fmt.Errorf("cannot open camera %d: %w", opts.CameraIndex, err)
	}
	defer cam.Close()
	cam.Set(gocv.VideoCaptureFrameWidth, float64(opts.CameraWidth))
	cam.Set(gocv.VideoCaptureFrameHeight, float64(opts.CameraHeight))

	source, err := landmarks.NewMeshSource(landmarks.Config{
		FaceModelPath:    opts.FaceModelPath,
		MeshModelPath:    opts.MeshModelPath,
		ConfidenceThresh: 0.5,
		MeshInputSize:    192,
	})
	if err != nil {
		return fmt.Errorf("landmark source: %w", err)
	}
	defer source.Close()

	a := &App{
		opts:   opts,
		cam:    cam,
		source: source,
		emit:   emitter.NewRobotGo(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profile, err := a.calibrate(ctx)
	if err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	log.Info("calibration complete",
		"centre_x", profile.Centre().X,
		"base_left", profile.BaseDist[gaze.PoseLeft],
		"base_right", profile.BaseDist[gaze.PoseRight])

	a.emit.CenterCursor()

	if opts.DebugWindow {
		a.debug = gocv.NewWindow("gazectl")
		defer a.debug.Close()
	}

	pipeline := gaze.NewPipeline(pipelineConfig(opts), profile, a.emit)
	return a.loop(ctx, pipeline)
}

// loop is the main frame loop: read, extract, step, render, cap rate.
func (a *App) loop(ctx context.Context, pipeline *gaze.Pipeline) error {
	img := gocv.NewMat()
	defer img.Close()

	var budget time.Duration
	if a.opts.FPSLimit > 0 {
		budget = time.Second / time.Duration(a.opts.FPSLimit)
	}

	prev := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Info("session ended by signal")
			return nil
		default:
		}

		if ok := a.cam.Read(&img); !ok || img.Empty() {
			log.Warn("camera frame read failed")
			time.Sleep(readBackoff)
			continue
		}

		var frame gaze.Frame
		set, found := a.source.Process(img)
		if found {
			vec, ear := gaze.Features(set)
			frame = pipeline.Step(vec, ear)
		} else {
			frame = pipeline.HoldFrame()
		}

		now := time.Now()
		if a.debug != nil {
			fps := 1.0 / (now.Sub(prev).Seconds() + 1e-6)
			drawOverlay(&img, set, found, frame, fps)
			a.debug.IMShow(img)
			if quitKeys[a.debug.WaitKey(1)] {
				log.Info("session ended by user")
				return nil
			}
		}

		// Sleep the remainder of the frame budget. If processing ran
		// over there is nothing to sleep; the loop runs best-effort.
		if budget > 0 {
			if remaining := budget - time.Since(prev); remaining > 0 {
				time.Sleep(remaining)
			}
		}
		prev = time.Now()
	}
}

// pipelineConfig maps the startup options onto the pipeline tunables.
func pipelineConfig(opts config.Options) gaze.Config {
	cfg := gaze.DefaultConfig()
	cfg.SmoothingDepth = opts.SmoothingDepth
	cfg.MinStableFrames = opts.MinStableFrames
	cfg.Cooldown = opts.CooldownMS.D()
	cfg.Tolerance = map[gaze.Pose]float64{
		gaze.PoseLeft:  opts.ToleranceLeft,
		gaze.PoseRight: opts.ToleranceRight,
	}
	cfg.MovePixels = opts.MovePixels
	cfg.UseArrowKeys = opts.UseArrowKeys
	cfg.BlinkThreshold = opts.BlinkThreshold
	cfg.BlinkCooldown = opts.BlinkCooldown.D()
	cfg.LongBlinkThreshold = opts.LongBlinkThreshold
	cfg.LongBlinkDuration = opts.LongBlinkDuration.D()
	cfg.PauseCooldown = opts.PauseCooldown.D()
	return cfg
}
