// Package config holds the static startup configuration for gazectl.
// Options are read once at startup from defaults, an optional TOML
// file, environment variables and command-line flags, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Options is the full set of named tunables. Everything the pipeline
// and the frame loop need is decided here, before the first frame.
type Options struct {
	// Camera
	CameraIndex  int `toml:"camera_index"`
	CameraWidth  int `toml:"camera_width"`
	CameraHeight int `toml:"camera_height"`

	// Frame loop
	FPSLimit int `toml:"fps_limit"` // 0 disables the cap

	// Calibration
	CalibSecPerPose float64 `toml:"calib_sec_per_pose"`

	// Smoothing and stabilization
	SmoothingDepth  int      `toml:"smoothing_depth"`
	MinStableFrames int      `toml:"min_stable_frames"`
	CooldownMS      duration `toml:"cooldown"`

	// Movement
	MovePixels   int  `toml:"move_pixels"`
	UseArrowKeys bool `toml:"use_arrow_keys"`

	// Classifier tolerances
	ToleranceLeft  float64 `toml:"tolerance_left"`
	ToleranceRight float64 `toml:"tolerance_right"`

	// Blink
	BlinkThreshold float64  `toml:"blink_threshold"`
	BlinkCooldown  duration `toml:"blink_cooldown"`

	// Long blink
	LongBlinkThreshold float64  `toml:"long_blink_threshold"`
	LongBlinkDuration  duration `toml:"long_blink_duration"`
	PauseCooldown      duration `toml:"pause_cooldown"`

	// Models
	FaceModelPath string `toml:"face_model_path"`
	MeshModelPath string `toml:"mesh_model_path"`

	// Debug
	DebugWindow bool   `toml:"debug_window"`
	LogLevel    string `toml:"log_level"`
}

// duration wraps time.Duration so TOML values like "700ms" parse.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// D returns the wrapped time.Duration.
func (d duration) D() time.Duration {
	return time.Duration(d)
}

// Default returns the recommended configuration, tuned for a typical
// 640x480 webcam.
func Default() Options {
	return Options{
		CameraIndex:  0,
		CameraWidth:  640,
		CameraHeight: 480,

		FPSLimit: 30,

		CalibSecPerPose: 4.0,

		SmoothingDepth:  3,
		MinStableFrames: 2,
		CooldownMS:      duration(700 * time.Millisecond),

		MovePixels:   100,
		UseArrowKeys: false,

		ToleranceLeft:  0.65,
		ToleranceRight: 0.65,

		BlinkThreshold: 0.19,
		BlinkCooldown:  duration(600 * time.Millisecond),

		LongBlinkThreshold: 0.19,
		LongBlinkDuration:  duration(time.Second),
		PauseCooldown:      duration(2 * time.Second),

		FaceModelPath: "models/face_detection_yunet.onnx",
		MeshModelPath: "models/face_mesh.onnx",

		DebugWindow: true,
		LogLevel:    "info",
	}
}

// Load reads options from a TOML file on top of defaults, then applies
// environment overrides. An empty path returns defaults.
func Load(path string) (Options, error) {
	opts := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &opts); err != nil {
			return opts, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	opts.applyEnvOverrides()
	return opts, nil
}

// applyEnvOverrides lets GAZECTL_CAMERA select the camera without
// touching the config file, handy on multi-camera machines.
func (o *Options) applyEnvOverrides() {
	if v := os.Getenv("GAZECTL_CAMERA"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil {
			o.CameraIndex = idx
		}
	}
}

// Validate checks if the option values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (o *Options) Validate() []string {
	var errors []string

	if o.CameraIndex < 0 {
		errors = append(errors, "camera_index must be >= 0")
	}
	if o.CameraWidth < 160 || o.CameraHeight < 120 {
		errors = append(errors, "camera resolution must be at least 160x120")
	}
	if o.FPSLimit < 0 || o.FPSLimit > 120 {
		errors = append(errors, "fps_limit must be between 0 and 120")
	}
	if o.CalibSecPerPose <= 0 {
		errors = append(errors, "calib_sec_per_pose must be positive")
	}
	if o.SmoothingDepth < 1 {
		errors = append(errors, "smoothing_depth must be at least 1")
	}
	if o.MinStableFrames < 1 {
		errors = append(errors, "min_stable_frames must be at least 1")
	}
	if o.MovePixels < 1 {
		errors = append(errors, "move_pixels must be at least 1")
	}
	if o.ToleranceLeft <= 0 || o.ToleranceRight <= 0 {
		errors = append(errors, "tolerances must be positive")
	}
	if o.BlinkThreshold <= 0 || o.BlinkThreshold >= 1 {
		errors = append(errors, "blink_threshold must be between 0 and 1")
	}
	if o.LongBlinkThreshold <= 0 || o.LongBlinkThreshold >= 1 {
		errors = append(errors, "long_blink_threshold must be between 0 and 1")
	}
	if o.LongBlinkDuration.D() <= 0 {
		errors = append(errors, "long_blink_duration must be positive")
	}

	return errors
}
