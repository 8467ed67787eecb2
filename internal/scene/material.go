package scene

// Material is a single flat diffuse color. The teacher's
// material_system.go defines a much larger IMaterial surface
// (roughness, metalness, normal/texture maps) for its PBR rasterizer;
// none of that applies here, since shading is a single Lambert term
// with no BRDFs, so only the diffuse color it also carried is kept.
type Material struct {
	DiffuseColor Color
}

// DefaultMaterial is a mid-gray diffuse material used when a mesh does
// not specify one.
var DefaultMaterial = Material{DiffuseColor: Color{R: 200, G: 200, B: 200}}
