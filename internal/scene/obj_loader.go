package scene

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mirstar13/go-octree-raytracer/internal/raytrace"
)

// LoadOBJ loads a Wavefront OBJ file's vertex positions and faces into a
// Mesh. Normals, UVs and material libraries are ignored: this ray
// tracer shades with a single computed face normal and a flat diffuse
// material, so none of that data has anywhere to go. Grounded on the
// teacher's obj_loader.go v/f parsing, trimmed of texture/material
// handling.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	mesh := NewMesh()
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, fmt.Errorf("line %d: invalid vertex definition", lineNum)
			}
			x, err1 := strconv.ParseFloat(parts[1], 64)
			y, err2 := strconv.ParseFloat(parts[2], 64)
			z, err3 := strconv.ParseFloat(parts[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("line %d: invalid vertex coordinates", lineNum)
			}
			mesh.Vertices = append(mesh.Vertices, raytrace.Vec3{X: x, Y: y, Z: z})

		case "f":
			if len(parts) < 4 {
				return nil, fmt.Errorf("line %d: face must have at least 3 vertices", lineNum)
			}
			faceIndices := make([]int, 0, len(parts)-1)
			for i := 1; i < len(parts); i++ {
				idx, err := parseFaceVertexIndex(parts[i])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				faceIndices = append(faceIndices, idx)
			}
			// Fan-triangulate faces with more than 3 vertices.
			for i := 1; i+1 < len(faceIndices); i++ {
				mesh.Indices = append(mesh.Indices, faceIndices[0], faceIndices[i], faceIndices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return mesh, nil
}

// parseFaceVertexIndex parses one OBJ face vertex token ("v",
// "v/vt", "v/vt/vn" or "v//vn") and returns the 0-based vertex index.
func parseFaceVertexIndex(token string) (int, error) {
	vStr := strings.SplitN(token, "/", 2)[0]
	v, err := strconv.Atoi(vStr)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", token)
	}
	if v == 0 {
		return 0, fmt.Errorf("face index cannot be zero")
	}
	return v - 1, nil
}
