package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirstar13/go-octree-raytracer/internal/export"
	"github.com/mirstar13/go-octree-raytracer/internal/logger"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Ray trace the configured scene to an image file",
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	pixels := sc.Render(cfg.Render.Width, cfg.Render.Height)
	logger.Info("render complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height))

	switch cfg.Output.Format {
	case "csv":
		err = export.WriteCSV(cfg.Output.Path, pixels, cfg.Render.Width, cfg.Render.Height)
	default:
		err = export.WriteBMP(cfg.Output.Path, pixels, cfg.Render.Width, cfg.Render.Height)
	}
	if err != nil {
		return fmt.Errorf("exporting render: %w", err)
	}

	logger.Info("wrote output", zap.String("path", cfg.Output.Path))
	return nil
}
