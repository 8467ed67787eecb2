package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirstar13/go-octree-raytracer/internal/config"
	"github.com/mirstar13/go-octree-raytracer/internal/logger"
)

var (
	cfgFile string
	verbose bool
)

// RootCmd is the base "raytrace" command, grounded on
// arx-os-arxos/cmd/commands/root.go's RootCmd + persistent flags shape.
var RootCmd = &cobra.Command{
	Use:   "raytrace",
	Short: "Octree-accelerated CPU ray tracer",
	Long: `raytrace builds an adaptive octree over a scene's triangles and ray
traces it, either to a static image file or to a live preview window.`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	RootCmd.AddCommand(renderCmd, previewCmd)
}

// loadConfig reads the --config file (or defaults) and initializes the
// package logger from its Logging section, overridden by --verbose.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, nil
}
