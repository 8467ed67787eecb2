package scene

import "github.com/mirstar13/go-octree-raytracer/internal/raytrace"

// Mesh is an indexed triangle list: three consecutive entries in
// Indices name one face's vertices in Vertices. Position offsets every
// vertex into world space. This restores the indexed-mesh shape
// original_source/include/mesh.hpp models and the distilled spec
// dropped in favor of naming only the bare Triangle primitive.
type Mesh struct {
	Vertices []raytrace.Vec3
	Indices  []int
	Position raytrace.Vec3
	Material Material
}

// NewMesh builds an empty mesh at the origin with the default material.
func NewMesh() *Mesh {
	return &Mesh{Position: raytrace.Vec3{}, Material: DefaultMaterial}
}

// Triangles expands the indexed faces into core Triangle primitives
// ready for insertion into an Octree[*raytrace.Triangle]. A face with
// fewer than 3 indices, or an out-of-range index, is skipped.
func (m *Mesh) Triangles() []*raytrace.Triangle {
	var tris []*raytrace.Triangle
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if a < 0 || a >= len(m.Vertices) || b < 0 || b >= len(m.Vertices) || c < 0 || c >= len(m.Vertices) {
			continue
		}
		p0 := m.Vertices[a].Add(m.Position)
		p1 := m.Vertices[b].Add(m.Position)
		p2 := m.Vertices[c].Add(m.Position)
		tri, err := raytrace.NewTriangleFromPoints(p0, p1, p2, false)
		if err != nil {
			// Degenerate face (collinear/zero-area); skip it rather than
			// failing the whole mesh load.
			continue
		}
		tris = append(tris, tri)
	}
	return tris
}
