// Package scene implements the collaborators spec.md calls "thin
// orchestration" around the octree core: camera ray generation, a
// light source, materials and meshes, and the Scene facade that ties
// them to an Octree[*Triangle] and renders a frame buffer.
package scene

import (
	"math"

	"github.com/mirstar13/go-octree-raytracer/internal/raytrace"
)

// Transform holds a position and Euler rotation (pitch=X, yaw=Y, roll=Z,
// radians). It has no parent chaining: the teacher's Transform supports
// scene-graph parenting for the rasterizer's hierarchy of meshes, a
// concern this ray tracer's flat triangle-list scene does not need.
type Transform struct {
	Position raytrace.Vec3
	Rotation raytrace.Vec3
}

// NewTransformAt builds a Transform at the given position with zero
// rotation.
func NewTransformAt(pos raytrace.Vec3) *Transform {
	return &Transform{Position: pos}
}

// Translate offsets the position by delta.
func (t *Transform) Translate(delta raytrace.Vec3) {
	t.Position = t.Position.Add(delta)
}

// TransformDirection rotates dir from local space into world space
// (roll, then pitch, then yaw), ignoring position.
func (t *Transform) TransformDirection(dir raytrace.Vec3) raytrace.Vec3 {
	x, y, z := dir.X, dir.Y, dir.Z

	cosRoll, sinRoll := math.Cos(t.Rotation.Z), math.Sin(t.Rotation.Z)
	x, y = x*cosRoll-y*sinRoll, x*sinRoll+y*cosRoll

	cosPitch, sinPitch := math.Cos(t.Rotation.X), math.Sin(t.Rotation.X)
	y, z = y*cosPitch-z*sinPitch, y*sinPitch+z*cosPitch

	cosYaw, sinYaw := math.Cos(t.Rotation.Y), math.Sin(t.Rotation.Y)
	x, z = x*cosYaw-z*sinYaw, x*sinYaw+z*cosYaw

	return raytrace.Vec3{X: x, Y: y, Z: z}
}

// TransformPoint transforms p from local space into world space.
func (t *Transform) TransformPoint(p raytrace.Vec3) raytrace.Vec3 {
	return t.TransformDirection(p).Add(t.Position)
}

// GetForwardVector returns the world-space forward direction (local +Z).
func (t *Transform) GetForwardVector() raytrace.Vec3 {
	return t.TransformDirection(raytrace.Vec3{Z: 1})
}

// GetRightVector returns the world-space right direction (local +X).
func (t *Transform) GetRightVector() raytrace.Vec3 {
	return t.TransformDirection(raytrace.Vec3{X: 1})
}

// GetUpVector returns the world-space up direction (local +Y).
func (t *Transform) GetUpVector() raytrace.Vec3 {
	return t.TransformDirection(raytrace.Vec3{Y: 1})
}

// LookAt points the transform's forward vector at target.
func (t *Transform) LookAt(target raytrace.Vec3) {
	d := target.Sub(t.Position)
	t.Rotation.Y = math.Atan2(-d.X, d.Z)
	distXZ := math.Sqrt(d.X*d.X + d.Z*d.Z)
	t.Rotation.X = -math.Atan2(d.Y, distXZ)
}

// RotateYaw rotates around the world Y axis.
func (t *Transform) RotateYaw(angle float64) { t.Rotation.Y += angle }

// RotatePitch rotates around the local X axis.
func (t *Transform) RotatePitch(angle float64) { t.Rotation.X += angle }

// RotateRoll rotates around the local Z axis.
func (t *Transform) RotateRoll(angle float64) { t.Rotation.Z += angle }
