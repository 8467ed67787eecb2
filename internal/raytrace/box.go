package raytrace

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from two corners, ordering them so Min <= Max
// on every axis regardless of the order the caller passes them in.
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// Contains reports whether p lies within the box, inclusive of the
// boundary.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Center returns the box's midpoint.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Intersect implements the slab method with a cached inverse ray
// direction. It never inspects the sign of a direction component:
// dividing by a signed zero produces the correctly-signed infinity. A
// slab distance of 0 * +/-Inf is NaN; that happens when the ray runs
// parallel to an axis with its origin exactly on that axis's boundary,
// and such an axis places no bound on t (the ray lies on the face, which
// Contains treats as inside). math.Min/math.Max propagate NaN, so those
// axes are skipped explicitly.
//
// It returns the distance to the nearest intersection clamped to
// [0, +Inf) and whether the ray intersects the box at all at t >= 0.
func (b AABB) Intersect(ray Ray) (t float64, ok bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		invDir := ray.InvDir.Component(axis)
		d1 := (b.Min.Component(axis) - origin) * invDir
		d2 := (b.Max.Component(axis) - origin) * invDir
		if math.IsNaN(d1) || math.IsNaN(d2) {
			continue
		}
		tMin = math.Max(tMin, math.Min(d1, d2))
		tMax = math.Min(tMax, math.Max(d1, d2))
	}

	t = math.Max(tMin, 0)
	t = math.Min(tMax, t)
	return t, tMax >= tMin && tMax >= 0
}
