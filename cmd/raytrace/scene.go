package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mirstar13/go-octree-raytracer/internal/config"
	"github.com/mirstar13/go-octree-raytracer/internal/logger"
	"github.com/mirstar13/go-octree-raytracer/internal/raytrace"
	"github.com/mirstar13/go-octree-raytracer/internal/scene"
)

// buildScene wires a Scene (camera + light + octree) from cfg and loads
// every configured mesh into it.
func buildScene(cfg *config.Config) (*scene.Scene, error) {
	camPos := vec3Of(cfg.Render.CameraPos)
	camTarget := vec3Of(cfg.Render.CameraTarget)

	cam := scene.NewCameraAt(camPos)
	cam.LookAt(camTarget)
	cam.SetFOV(cfg.Render.FOVDegrees * (3.141592653589793 / 180))

	light := scene.NewLightSource(vec3Of(cfg.Scene.LightPosition), cfg.Scene.LightIntensity)
	light.Color = scene.NewColor(cfg.Scene.LightColor[0], cfg.Scene.LightColor[1], cfg.Scene.LightColor[2])

	sc, err := scene.NewScene(cam, light,
		cfg.Octree.MaxDepth, cfg.Octree.InitialSize, cfg.Octree.MaxNeighbors,
		vec3Of(cfg.Octree.RootPosition))
	if err != nil {
		return nil, fmt.Errorf("building scene octree: %w", err)
	}

	for _, path := range cfg.Scene.MeshPaths {
		mesh, err := scene.LoadOBJ(path)
		if err != nil {
			return nil, fmt.Errorf("loading mesh %s: %w", path, err)
		}
		if err := sc.AddMesh(mesh); err != nil {
			return nil, fmt.Errorf("inserting mesh %s into octree: %w", path, err)
		}
		logger.Info("loaded mesh", zap.String("path", path), zap.Int("triangles", len(mesh.Triangles())))
	}

	return sc, nil
}

func vec3Of(v [3]float64) raytrace.Vec3 {
	return raytrace.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
