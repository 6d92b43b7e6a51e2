// gazectl - gaze-driven cursor control
//
// Calibrates against three fixation targets, then converts eye
// movement into cursor pans, blinks into clicks and long blinks into
// pause/resume.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gazectl/internal/app"
	"gazectl/internal/config"
	"gazectl/internal/log"
)

// Version is the application version.
const Version = "0.1.0"

var (
	configPath string
	flagOpts   = config.Default()
)

var rootCmd = &cobra.Command{
	Use:     "gazectl",
	Short:   "Hands-free cursor control from eye tracking",
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, &opts)

		if errs := opts.Validate(); len(errs) > 0 {
			return fmt.Errorf("invalid configuration: %v", errs)
		}

		log.Init(opts.LogLevel)
		log.Info("gazectl starting",
			"camera", opts.CameraIndex,
			"fps_limit", opts.FPSLimit,
			"arrow_keys", opts.UseArrowKeys)

		return app.Run(opts)
	},
	SilenceUsage: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "Path to TOML config file")
	f.IntVar(&flagOpts.CameraIndex, "camera", flagOpts.CameraIndex, "Camera device index")
	f.IntVar(&flagOpts.FPSLimit, "fps", flagOpts.FPSLimit, "Frame rate cap (0 disables)")
	f.IntVar(&flagOpts.MovePixels, "move-pixels", flagOpts.MovePixels, "Cursor step per command")
	f.BoolVar(&flagOpts.UseArrowKeys, "arrow-keys", flagOpts.UseArrowKeys, "Press arrow keys instead of moving the cursor")
	f.BoolVar(&flagOpts.DebugWindow, "debug-window", flagOpts.DebugWindow, "Show the annotated debug window")
	f.StringVar(&flagOpts.LogLevel, "log-level", flagOpts.LogLevel, "Log level: debug, info, warn, error")
}

// applyFlagOverrides copies explicitly-set flag values over the file
// configuration, so flags always win.
func applyFlagOverrides(cmd *cobra.Command, opts *config.Options) {
	if cmd.Flags().Changed("camera") {
		opts.CameraIndex = flagOpts.CameraIndex
	}
	if cmd.Flags().Changed("fps") {
		opts.FPSLimit = flagOpts.FPSLimit
	}
	if cmd.Flags().Changed("move-pixels") {
		opts.MovePixels = flagOpts.MovePixels
	}
	if cmd.Flags().Changed("arrow-keys") {
		opts.UseArrowKeys = flagOpts.UseArrowKeys
	}
	if cmd.Flags().Changed("debug-window") {
		opts.DebugWindow = flagOpts.DebugWindow
	}
	if cmd.Flags().Changed("log-level") {
		opts.LogLevel = flagOpts.LogLevel
	}
}

func main() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
