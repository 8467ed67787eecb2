package scene

import "github.com/mirstar13/go-octree-raytracer/internal/raytrace"

// LightSource is a single point light: a position, a color and an
// intensity multiplier, matching original_source/include/light.hpp.
// There is deliberately no attenuation, shadow testing or multi-light
// accumulation: spec.md's non-goals exclude shadows and anything beyond
// a single Lambertian term.
type LightSource struct {
	Position  raytrace.Vec3
	Color     Color
	Intensity float64
}

// NewLightSource builds a white light of the given intensity at pos.
func NewLightSource(pos raytrace.Vec3, intensity float64) *LightSource {
	return &LightSource{Position: pos, Color: Color{R: 255, G: 255, B: 255}, Intensity: intensity}
}
