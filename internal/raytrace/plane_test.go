package raytrace

import "testing"

func TestNewPlaneRejectsZeroNormal(t *testing.T) {
	_, err := NewPlane(Vec3{0, 0, 0}, Vec3{0, 0, 0})
	if err == nil {
		t.Fatalf("expected an error for a zero normal")
	}
	var rtErr *Error
	if ok := errorsAs(err, &rtErr); !ok || rtErr.Kind != InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestPlaneIntersectPerpendicularRay(t *testing.T) {
	p, err := NewPlane(Vec3{0, 0, 1}, Vec3{0, 0, 5})
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	ray := NewRay(Vec3{0, 0, 0}, Vec3{0, 0, 1})

	tHit, ok := p.Intersect(ray)
	if !ok {
		t.Fatalf("expected hit")
	}
	if !almostEqual(tHit, 5, 1e-9) {
		t.Errorf("t = %v, want 5", tHit)
	}
}

func TestPlaneIntersectParallelRayMisses(t *testing.T) {
	p, err := NewPlane(Vec3{0, 0, 1}, Vec3{0, 0, 5})
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	ray := NewRay(Vec3{0, 0, 0}, Vec3{1, 0, 0})

	if _, ok := p.Intersect(ray); ok {
		t.Errorf("ray parallel to the plane should never hit")
	}
}

func TestPlaneIntersectBehindOriginMisses(t *testing.T) {
	p, err := NewPlane(Vec3{0, 0, 1}, Vec3{0, 0, 5})
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	ray := NewRay(Vec3{0, 0, 10}, Vec3{0, 0, 1})

	if _, ok := p.Intersect(ray); ok {
		t.Errorf("plane behind the ray origin should not intersect")
	}
}

// errorsAs is a tiny local wrapper so tests don't need to import errors
// just for this one assertion style used throughout this file.
func errorsAs(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
