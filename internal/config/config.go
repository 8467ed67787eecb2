// Package config handles renderer configuration loading, grounded on
// avatar29A-midgard-ro/internal/config: a YAML-tagged struct with a
// Default() and a file-overlay Load().
package config

// Config holds every setting a render or preview run needs.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Octree  OctreeConfig  `yaml:"octree"`
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds output image dimensions and camera placement.
type RenderConfig struct {
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	FOVDegrees   float64    `yaml:"fov_degrees"`
	CameraPos    [3]float64 `yaml:"camera_position"`
	CameraTarget [3]float64 `yaml:"camera_target"`
}

// OctreeConfig holds the spatial index's growth parameters (spec.md §3).
type OctreeConfig struct {
	MaxDepth     int        `yaml:"max_depth"`
	InitialSize  float64    `yaml:"initial_size"`
	MaxNeighbors int        `yaml:"max_neighbors"`
	RootPosition [3]float64 `yaml:"root_position"`
}

// SceneConfig names the geometry and light to load.
type SceneConfig struct {
	MeshPaths     []string   `yaml:"mesh_paths"`
	LightPosition [3]float64 `yaml:"light_position"`
	LightColor    [3]uint8   `yaml:"light_color"`
	LightIntensity float64   `yaml:"light_intensity"`
}

// OutputConfig names where and in what format a render is written.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // "bmp" or "csv"
}

// LoggingConfig holds logging settings, passed straight to logger.Init.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible values for a small preview
// render: an octree seeded at the origin with edge 2, the same
// initial_size spec.md §8's S1-S4 scenarios use.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:        640,
			Height:       480,
			FOVDegrees:   60,
			CameraPos:    [3]float64{0, 0, -5},
			CameraTarget: [3]float64{0, 0, 0},
		},
		Octree: OctreeConfig{
			MaxDepth:     8,
			InitialSize:  2,
			MaxNeighbors: 4,
			RootPosition: [3]float64{0, 0, 0},
		},
		Scene: SceneConfig{
			LightPosition:  [3]float64{5, 5, -5},
			LightColor:     [3]uint8{255, 255, 255},
			LightIntensity: 1,
		},
		Output: OutputConfig{
			Path:   "render.bmp",
			Format: "bmp",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
