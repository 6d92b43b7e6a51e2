package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	opts := Default()
	assert.Empty(t, opts.Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv("GAZECTL_CAMERA", "")

	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
}

func TestLoadTOMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gazectl.toml")
	data := `
camera_index = 2
fps_limit = 15
smoothing_depth = 5
min_stable_frames = 4
cooldown = "900ms"
use_arrow_keys = true
tolerance_left = 0.5
long_blink_duration = "1.5s"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.CameraIndex)
	assert.Equal(t, 15, opts.FPSLimit)
	assert.Equal(t, 5, opts.SmoothingDepth)
	assert.Equal(t, 4, opts.MinStableFrames)
	assert.Equal(t, 900*time.Millisecond, opts.CooldownMS.D())
	assert.True(t, opts.UseArrowKeys)
	assert.Equal(t, 0.5, opts.ToleranceLeft)
	assert.Equal(t, 1500*time.Millisecond, opts.LongBlinkDuration.D())

	// Untouched fields keep their defaults.
	assert.Equal(t, 0.65, opts.ToleranceRight)
	assert.Equal(t, 0.19, opts.BlinkThreshold)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEnvOverridesCameraIndex(t *testing.T) {
	t.Setenv("GAZECTL_CAMERA", "3")

	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, opts.CameraIndex)
}

func TestValidateCatchesBadValues(t *testing.T) {
	opts := Default()
	opts.CameraIndex = -1
	opts.SmoothingDepth = 0
	opts.BlinkThreshold = 1.5
	opts.FPSLimit = 500

	errs := opts.Validate()
	assert.Len(t, errs, 4)
}
