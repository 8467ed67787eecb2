package scene

import (
	"runtime"
	"sync"

	"github.com/mirstar13/go-octree-raytracer/internal/raytrace"
)

// Scene owns exactly one octree of triangles, one camera and one light,
// mirroring original_source/include/scene.hpp's Scene (camera + light +
// octree of Triangle*).
type Scene struct {
	Camera *Camera
	Light  *LightSource

	octree    *raytrace.Octree[*raytrace.Triangle]
	materials map[*raytrace.Triangle]Material
}

// NewScene builds a Scene whose octree starts with the given growth
// parameters (see raytrace.NewOctree).
func NewScene(camera *Camera, light *LightSource, maxDepth int, initialSize float64, maxNeighbors int, rootPosition raytrace.Vec3) (*Scene, error) {
	tree, err := raytrace.NewOctree[*raytrace.Triangle](maxDepth, initialSize, maxNeighbors, rootPosition)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Camera:    camera,
		Light:     light,
		octree:    tree,
		materials: make(map[*raytrace.Triangle]Material),
	}, nil
}

// AddTriangle inserts a single triangle into the scene's octree with
// the given material. Triangle itself carries no material: it is a pure
// geometric primitive in internal/raytrace, so the Scene facade is what
// associates shading data with geometry.
func (s *Scene) AddTriangle(tri *raytrace.Triangle, mat Material) error {
	if err := s.octree.Insert(tri); err != nil {
		return err
	}
	s.materials[tri] = mat
	return nil
}

// AddMesh expands mesh into triangles and inserts each one with the
// mesh's material.
func (s *Scene) AddMesh(mesh *Mesh) error {
	for _, tri := range mesh.Triangles() {
		if err := s.AddTriangle(tri, mesh.Material); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) materialOf(tri *raytrace.Triangle) Material {
	if mat, ok := s.materials[tri]; ok {
		return mat
	}
	return DefaultMaterial
}

// shade computes the single Lambertian term spec.md §6 requires:
// max(0, N . normalize(lightPos - hitPoint)) * intensity.
func (s *Scene) shade(normal, hitPoint raytrace.Vec3) float64 {
	toLight := s.Light.Position.Sub(hitPoint).Normalize()
	d := normal.Dot(toLight)
	if d < 0 {
		d = 0
	}
	return d * s.Light.Intensity
}

// maxTraceDistance bounds how far a primary ray is traced.
const maxTraceDistance = 1e6

// Render ray traces one primary ray per pixel of a width x height image
// and returns a tightly packed RGB byte buffer (row-major, 3 bytes per
// pixel). Rows are distributed across a worker pool, matching the
// teacher's renderer_parallel.go tile-queue pattern, redirected from
// rasterization to octree traversal: every worker only calls Trace,
// which is read-only, so this is safe as long as no insert runs
// concurrently with Render, per the CORE's concurrency contract.
func (s *Scene) Render(width, height int) []byte {
	pixels := make([]byte, width*height*3)

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > height {
		numWorkers = height
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	rows := make(chan int, height)
	for row := 0; row < height; row++ {
		rows <- row
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				s.renderRow(row, width, height, pixels)
			}
		}()
	}
	wg.Wait()

	return pixels
}

func (s *Scene) renderRow(row, width, height int, pixels []byte) {
	for col := 0; col < width; col++ {
		ray := s.Camera.GenerateRay(row, col, width, height)
		offset := (row*width + col) * 3

		hit, found := s.octree.Trace(ray, maxTraceDistance)
		if !found {
			continue
		}

		hitPoint := ray.At(hit.T)
		mat := s.materialOf(hit.Primitive)
		intensity := s.shade(hit.Primitive.Normal(), hitPoint)
		shaded := mat.DiffuseColor.Scale(intensity)

		pixels[offset] = shaded.R
		pixels[offset+1] = shaded.G
		pixels[offset+2] = shaded.B
	}
}

// Raycast traces a single arbitrary ray against the scene, for preview
// backends that need to probe under the cursor or test visibility
// rather than render a full frame.
func (s *Scene) Raycast(ray raytrace.Ray) (raytrace.Hit[*raytrace.Triangle], bool) {
	return s.octree.Trace(ray, maxTraceDistance)
}
