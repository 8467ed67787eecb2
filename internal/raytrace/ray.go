package raytrace

// Ray is a half-line in R3. Dir is kept normalized; InvDir caches the
// component-wise reciprocal of Dir so box.Intersect never divides, and
// is allowed to hold +/-Inf when a component of Dir is zero.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	InvDir Vec3
}

// NewRay builds a Ray from an origin and a (not necessarily normalized)
// direction.
func NewRay(origin, dir Vec3) Ray {
	r := Ray{Origin: origin}
	r.SetDirection(dir)
	return r
}

// SetDirection normalizes dir and recomputes the cached inverse
// direction. Components of dir that are zero produce +/-Inf in InvDir,
// which is the behavior box.Intersect relies on.
func (r *Ray) SetDirection(dir Vec3) {
	r.Dir = dir.Normalize()
	r.InvDir = Vec3{1 / r.Dir.X, 1 / r.Dir.Y, 1 / r.Dir.Z}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
