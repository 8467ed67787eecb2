package raytrace

import "math"

// collinearEpsilon bounds the cross-product magnitude used to reject
// degenerate (collinear) vertices at construction time.
const collinearEpsilon = 1e-7

// determinantEpsilon bounds the Moller-Trumbore determinant below which
// the ray is treated as parallel to the triangle's plane.
const determinantEpsilon = 1e-6

// Triangle is a flat triangle primitive. p0/p1/p2 are stored in a local
// frame; pos translates that frame into world space. Global vertices,
// the face normal and the bounding box are cached and recomputed by
// every pose mutator so Intersect and the octree's Position() call never
// redo that work per query.
type Triangle struct {
	pos            Vec3
	p0, p1, p2     Vec3
	invert         bool
	globalP0       Vec3
	globalP1       Vec3
	globalP2       Vec3
	normal         Vec3
	bbox           AABB
}

// NewTriangle builds a Triangle from an explicit world position and
// three locally-offset vertices. invert flips the winding used to
// compute the face normal. It returns InvalidArgument if the three
// points are collinear (zero-area triangle).
func NewTriangle(position, p0, p1, p2 Vec3, invert bool) (*Triangle, error) {
	t := &Triangle{pos: position, p0: p0, p1: p1, p2: p2, invert: invert}
	if err := t.recompute(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTriangleFromPoints builds a Triangle from three world-space points,
// inferring the position as their centroid (barycenter), matching the
// original renderer's second constructor overload.
func NewTriangleFromPoints(a, b, c Vec3, invert bool) (*Triangle, error) {
	center := a.Add(b).Add(c).Scale(1.0 / 3.0)
	return NewTriangle(center, a.Sub(center), b.Sub(center), c.Sub(center), invert)
}

func (t *Triangle) recompute() error {
	t.globalP0 = t.pos.Add(t.p0)
	t.globalP1 = t.pos.Add(t.p1)
	t.globalP2 = t.pos.Add(t.p2)

	n := t.globalP0.Sub(t.globalP1).Cross(t.globalP2.Sub(t.globalP1))
	if n.Length() < collinearEpsilon {
		return newError(InvalidArgument, "triangle vertices are collinear")
	}
	n = n.Normalize()
	if t.invert {
		n = n.Scale(-1)
	}
	t.normal = n

	min := t.globalP0.Min(t.globalP1).Min(t.globalP2)
	max := t.globalP0.Max(t.globalP1).Max(t.globalP2)
	t.bbox = AABB{Min: min, Max: max}
	return nil
}

// Position returns the triangle's world-space reference point, the
// single point the octree uses to place it in exactly one octant.
func (t *Triangle) Position() Vec3 { return t.pos }

// Point returns one of the triangle's three global vertices (i in 0..2).
func (t *Triangle) Point(i int) Vec3 {
	switch i {
	case 0:
		return t.globalP0
	case 1:
		return t.globalP1
	default:
		return t.globalP2
	}
}

// Normal returns the cached global face normal.
func (t *Triangle) Normal() Vec3 { return t.normal }

// BoundingBox returns the cached global AABB.
func (t *Triangle) BoundingBox() AABB { return t.bbox }

// SetPosition moves the triangle's local frame to a new world position.
func (t *Triangle) SetPosition(p Vec3) { t.pos = p; _ = t.recompute() }

// Translate offsets the triangle's world position by delta.
func (t *Triangle) Translate(delta Vec3) { t.pos = t.pos.Add(delta); _ = t.recompute() }

// Rotate rotates the triangle's local vertices about axis by angle
// radians (Rodrigues' rotation formula), about the triangle's own
// position, then refreshes the cached globals.
func (t *Triangle) Rotate(axis Vec3, angle float64) {
	axis = axis.Normalize()
	t.p0 = rotateAroundAxis(t.p0, axis, angle)
	t.p1 = rotateAroundAxis(t.p1, axis, angle)
	t.p2 = rotateAroundAxis(t.p2, axis, angle)
	_ = t.recompute()
}

func rotateAroundAxis(v, axis Vec3, angle float64) Vec3 {
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)
	return v.Scale(cosA).
		Add(axis.Cross(v).Scale(sinA)).
		Add(axis.Scale(axis.Dot(v) * (1 - cosA)))
}

// Intersect implements Moller-Trumbore ray/triangle intersection, gated
// by a cheap AABB rejection test so rays that miss the triangle's box
// never reach the full determinant computation. It returns the
// barycentric coordinates (u, v) of the hit and the ray parameter t.
func (t *Triangle) Intersect(ray Ray) (u, v, tHit float64, ok bool) {
	if _, boxHit := t.bbox.Intersect(ray); !boxHit {
		return 0, 0, 0, false
	}

	e1 := t.globalP1.Sub(t.globalP0)
	e2 := t.globalP2.Sub(t.globalP0)
	pVec := ray.Dir.Cross(e2)
	det := e1.Dot(pVec)
	if math.Abs(det) < determinantEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tVec := ray.Origin.Sub(t.globalP0)
	u = tVec.Dot(pVec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qVec := tVec.Cross(e1)
	v = ray.Dir.Dot(qVec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	tHit = e2.Dot(qVec) * invDet
	if tHit < 0 {
		return 0, 0, 0, false
	}
	return u, v, tHit, true
}
