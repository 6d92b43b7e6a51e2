package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/schollz/progressbar/v3"
	"gocv.io/x/gocv"

	"gazectl/internal/log"
	"gazectl/pkg/gaze"
)

// dotRadius is the fixation dot size in pixels.
const dotRadius = 45

// errAborted means the user quit during the calibration phase.
var errAborted = errors.New("aborted by user")

// calibrate runs the blocking one-time calibration phase: for each pose
// in fixed order a fullscreen fixation dot is shown while feature
// samples are collected, then the pose centroid is the sample mean.
// A pose that collects zero valid samples aborts the whole run — that
// signals no face or bad lighting, not something to paper over.
func (a *App) calibrate(ctx context.Context) (*gaze.Profile, error) {
	screenW, screenH := robotgo.GetScreenSize()

	targets := map[gaze.Pose]image.Point{
		gaze.PoseLeft:   {X: screenW / 5, Y: screenH / 2},
		gaze.PoseRight:  {X: screenW * 4 / 5, Y: screenH / 2},
		gaze.PoseCentre: {X: screenW / 2, Y: screenH / 2},
	}

	win := gocv.NewWindow("Calibrate")
	defer win.Close()
	win.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)

	canvas := gocv.NewMatWithSize(screenH, screenW, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	img := gocv.NewMat()
	defer img.Close()

	window := time.Duration(a.opts.CalibSecPerPose * float64(time.Second))
	centroids := make(map[gaze.Pose]gaze.FeatureVector, len(gaze.Poses))

	log.Info("calibration started", "window_per_pose", window)
	for _, pose := range gaze.Poses {
		bar := progressbar.NewOptions(100,
			progressbar.OptionSetDescription(fmt.Sprintf("🧭 look %s", pose)),
		)

		var col gaze.Collector
		start := time.Now()
		for time.Since(start) < window {
			select {
			case <-ctx.Done():
				return nil, errAborted
			default:
			}

			drawDot(&canvas, targets[pose])
			win.IMShow(canvas)
			if quitKeys[win.WaitKey(1)] {
				return nil, errAborted
			}

			if ok := a.cam.Read(&img); !ok || img.Empty() {
				log.Warn("camera frame read failed during calibration")
				time.Sleep(readBackoff)
				continue
			}

			if set, found := a.source.Process(img); found {
				vec, _ := gaze.Features(set)
				col.Add(vec)
			} else {
				log.Debug("no face during calibration frame", "pose", pose)
			}

			bar.Set(int(time.Since(start) * 100 / window))
		}
		bar.Finish()

		centroid, err := col.Centroid()
		if err != nil {
			return nil, fmt.Errorf("pose %s: %w (check lighting and camera view)", pose, err)
		}
		centroids[pose] = centroid
		log.Info("pose captured", "pose", pose, "samples", col.Count(),
			"x", centroid.X, "y", centroid.Y)
	}

	return gaze.BuildProfile(centroids)
}

// drawDot paints the fixation target on a black canvas.
func drawDot(canvas *gocv.Mat, pt image.Point) {
	canvas.SetTo(gocv.NewScalar(0, 0, 0, 0))
	gocv.Circle(canvas, pt, dotRadius, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
}
