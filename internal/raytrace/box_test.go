package raytrace

import (
	"math"
	"testing"
)

func TestAABBIntersectHitsCenterAlignedRay(t *testing.T) {
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	ray := NewRay(Vec3{-5, 0, 0}, Vec3{1, 0, 0})

	tHit, ok := box.Intersect(ray)
	if !ok {
		t.Fatalf("expected hit")
	}
	if !almostEqual(tHit, 4, 1e-9) {
		t.Errorf("t = %v, want 4", tHit)
	}
}

func TestAABBIntersectMiss(t *testing.T) {
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	ray := NewRay(Vec3{-5, 5, 0}, Vec3{1, 0, 0})

	if _, ok := box.Intersect(ray); ok {
		t.Errorf("expected a miss")
	}
}

func TestAABBIntersectOriginInsideBox(t *testing.T) {
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	ray := NewRay(Vec3{0, 0, 0}, Vec3{1, 0, 0})

	tHit, ok := box.Intersect(ray)
	if !ok {
		t.Fatalf("expected hit")
	}
	if tHit != 0 {
		t.Errorf("t = %v, want 0 (origin inside box clamps to 0)", tHit)
	}
}

func TestAABBIntersectBehindRay(t *testing.T) {
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	ray := NewRay(Vec3{5, 0, 0}, Vec3{1, 0, 0})

	if _, ok := box.Intersect(ray); ok {
		t.Errorf("box entirely behind the ray origin should not intersect")
	}
}

func TestAABBIntersectAxisAlignedDirection(t *testing.T) {
	// Direction component exactly zero drives InvDir to +/-Inf; the
	// slab reduction must still behave, not produce NaN/garbage.
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	ray := NewRay(Vec3{0, 0, -5}, Vec3{0, 0, 1})

	tHit, ok := box.Intersect(ray)
	if !ok {
		t.Fatalf("expected hit")
	}
	if !almostEqual(tHit, 4, 1e-9) {
		t.Errorf("t = %v, want 4", tHit)
	}
}

func TestAABBIntersectRayParallelToSlabOutsideRange(t *testing.T) {
	// Direction has a zero X component and the origin's X lies outside
	// the box's X extent: the ray can never enter on that axis.
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	ray := NewRay(Vec3{5, 0, -5}, Vec3{0, 0, 1})

	if _, ok := box.Intersect(ray); ok {
		t.Errorf("ray parallel to and outside the X slab should miss")
	}
}

func TestAABBContains(t *testing.T) {
	box := NewAABB(Vec3{0, 0, 0}, Vec3{2, 2, 2})
	if !box.Contains(Vec3{1, 1, 1}) {
		t.Errorf("expected box to contain its own center")
	}
	if !box.Contains(Vec3{0, 0, 0}) {
		t.Errorf("boundary points are contained")
	}
	if box.Contains(Vec3{3, 1, 1}) {
		t.Errorf("expected point outside box to not be contained")
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := NewAABB(Vec3{-1, -1, -1}, Vec3{0.5, 0.5, 0.5})
	u := a.Union(b)
	if u.Min != (Vec3{-1, -1, -1}) || u.Max != (Vec3{1, 1, 1}) {
		t.Errorf("Union = %+v, want min {-1 -1 -1} max {1 1 1}", u)
	}
}

func TestAABBIntersectRayGrazingEdgeDoesNotPanic(t *testing.T) {
	// Direction has two zero components (InvDir holds two Infs); the
	// ray runs exactly along an edge of the box. This must resolve to a
	// finite, non-NaN result rather than panicking or propagating NaN.
	box := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	ray := NewRay(Vec3{1, -1, -5}, Vec3{0, 0, 1})
	tHit, ok := box.Intersect(ray)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.IsNaN(tHit) {
		t.Errorf("t should never be NaN, got %v", tHit)
	}
}
