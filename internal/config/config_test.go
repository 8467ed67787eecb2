package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 640 || cfg.Render.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Octree.MaxDepth != 8 {
		t.Errorf("expected max depth 8, got %d", cfg.Octree.MaxDepth)
	}
	if cfg.Octree.InitialSize != 2 {
		t.Errorf("expected initial size 2, got %v", cfg.Octree.InitialSize)
	}
	if cfg.Output.Format != "bmp" {
		t.Errorf("expected format bmp, got %s", cfg.Output.Format)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Width != Default().Render.Width {
		t.Error("expected defaults when config file is absent")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "render:\n  width: 1920\n  height: 1080\noctree:\n  max_depth: 10\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Width != 1920 || cfg.Render.Height != 1080 {
		t.Errorf("expected overlay to apply, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Octree.MaxDepth != 10 {
		t.Errorf("expected max depth override 10, got %d", cfg.Octree.MaxDepth)
	}
	// Untouched fields keep their defaults.
	if cfg.Output.Format != "bmp" {
		t.Errorf("expected untouched field to keep default, got %s", cfg.Output.Format)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := Default()
	want.Render.Width = 800

	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Render.Width != 800 {
		t.Errorf("expected round-tripped width 800, got %d", got.Render.Width)
	}
}
