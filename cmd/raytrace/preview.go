package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirstar13/go-octree-raytracer/internal/preview"
)

var useTerminal bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Live-view the configured scene in a window or the terminal",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&useTerminal, "terminal", false, "use the ANSI terminal backend instead of a GLFW window")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}

	if useTerminal {
		term := preview.NewTerminal(sc, cfg.Render.Width, cfg.Render.Height)
		return term.Run()
	}

	win, err := preview.NewWindow(sc, cfg.Render.Width, cfg.Render.Height)
	if err != nil {
		return fmt.Errorf("opening preview window: %w", err)
	}
	defer win.Close()
	win.Run()
	return nil
}
