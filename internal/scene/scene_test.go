package scene

import (
	"testing"

	"github.com/mirstar13/go-octree-raytracer/internal/raytrace"
)

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestSceneRenderHitsCenteredTriangle(t *testing.T) {
	cam := NewCameraAt(raytrace.Vec3{Z: -10})
	cam.LookAt(raytrace.Vec3{})
	light := NewLightSource(raytrace.Vec3{X: 5, Y: 5, Z: -5}, 1.0)

	s, err := NewScene(cam, light, 8, 20, 4, raytrace.Vec3{})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	tri, err := raytrace.NewTriangle(raytrace.Vec3{}, raytrace.Vec3{-5, -5, 0}, raytrace.Vec3{5, -5, 0}, raytrace.Vec3{0, 5, 0}, false)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	if err := s.AddTriangle(tri, Material{DiffuseColor: Color{R: 255, G: 0, B: 0}}); err != nil {
		t.Fatalf("AddTriangle: %v", err)
	}

	pixels := s.Render(64, 64)
	if len(pixels) != 64*64*3 {
		t.Fatalf("pixel buffer length = %d, want %d", len(pixels), 64*64*3)
	}

	center := (32*64 + 32) * 3
	if pixels[center] == 0 && pixels[center+1] == 0 && pixels[center+2] == 0 {
		t.Errorf("expected the center pixel to be lit by the triangle, got black")
	}
}

func TestSceneRenderBackgroundStaysBlack(t *testing.T) {
	cam := NewCameraAt(raytrace.Vec3{Z: -10})
	light := NewLightSource(raytrace.Vec3{X: 5, Y: 5, Z: -5}, 1.0)
	s, err := NewScene(cam, light, 8, 20, 4, raytrace.Vec3{})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	// No geometry inserted: every pixel should stay at its zero value.
	pixels := s.Render(8, 8)
	for i, b := range pixels {
		if b != 0 {
			t.Fatalf("pixel byte %d = %d, want 0 (empty scene)", i, b)
		}
	}
}

func TestSceneShadeIsNonNegativeAndClampedByLight(t *testing.T) {
	cam := NewCameraAt(raytrace.Vec3{})
	light := NewLightSource(raytrace.Vec3{X: 0, Y: 0, Z: -1}, 2.0)
	s, err := NewScene(cam, light, 4, 10, 4, raytrace.Vec3{})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	// Normal facing directly away from the light: shade must clamp to 0.
	away := s.shade(raytrace.Vec3{Z: 1}, raytrace.Vec3{})
	if away != 0 {
		t.Errorf("shade facing away from light = %v, want 0", away)
	}

	// Normal facing directly at the light: shade should equal intensity.
	toward := s.shade(raytrace.Vec3{Z: -1}, raytrace.Vec3{})
	if !almostEqual(toward, 2.0, 1e-9) {
		t.Errorf("shade facing the light = %v, want 2.0", toward)
	}
}

func TestSceneAddMeshInsertsAllTriangles(t *testing.T) {
	cam := NewCameraAt(raytrace.Vec3{})
	light := NewLightSource(raytrace.Vec3{}, 1.0)
	s, err := NewScene(cam, light, 8, 50, 8, raytrace.Vec3{})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	mesh := NewMesh()
	mesh.Vertices = []raytrace.Vec3{{X: -1}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}
	mesh.Indices = []int{0, 1, 2, 1, 3, 2}
	mesh.Material = Material{DiffuseColor: Color{R: 10, G: 20, B: 30}}

	if err := s.AddMesh(mesh); err != nil {
		t.Fatalf("AddMesh: %v", err)
	}

	ray := raytrace.NewRay(raytrace.Vec3{X: 0.2, Y: 0.2, Z: -5}, raytrace.Vec3{Z: 1})
	hit, found := s.Raycast(ray)
	if !found {
		t.Fatalf("expected the mesh's triangles to be hit")
	}
	mat := s.materialOf(hit.Primitive)
	if mat.DiffuseColor != mesh.Material.DiffuseColor {
		t.Errorf("hit triangle's material = %+v, want %+v", mat.DiffuseColor, mesh.Material.DiffuseColor)
	}

	ray = raytrace.NewRay(raytrace.Vec3{X: 0.8, Y: 0.8, Z: -5}, raytrace.Vec3{Z: 1})
	if _, found := s.Raycast(ray); !found {
		t.Errorf("expected the mesh's second triangle to be hit")
	}
}
