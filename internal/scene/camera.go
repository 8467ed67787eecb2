package scene

import (
	"math"

	"github.com/mirstar13/go-octree-raytracer/internal/raytrace"
)

// Camera generates one primary ray per output pixel. Unlike the
// teacher's rasterizer camera (screen-space projection of world points),
// a ray tracer's camera runs in the opposite direction: screen pixel to
// world ray.
type Camera struct {
	Transform *Transform
	FOVY      float64 // vertical field of view, radians
}

// NewCamera builds a camera at the origin with a default field of view.
func NewCamera() *Camera {
	return NewCameraAt(raytrace.Vec3{})
}

// NewCameraAt builds a camera at the given position.
func NewCameraAt(pos raytrace.Vec3) *Camera {
	return &Camera{
		Transform: NewTransformAt(pos),
		FOVY:      math.Pi / 3, // 60 degrees
	}
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target raytrace.Vec3) { c.Transform.LookAt(target) }

// SetFOV sets the vertical field of view in radians.
func (c *Camera) SetFOV(fovY float64) { c.FOVY = fovY }

func (c *Camera) MoveForward(d float64) {
	c.Transform.Translate(c.Transform.GetForwardVector().Scale(d))
}

func (c *Camera) MoveRight(d float64) {
	c.Transform.Translate(c.Transform.GetRightVector().Scale(d))
}

func (c *Camera) MoveUp(d float64) {
	c.Transform.Translate(raytrace.Vec3{Y: d})
}

func (c *Camera) RotateYaw(angle float64)   { c.Transform.RotateYaw(angle) }
func (c *Camera) RotatePitch(angle float64) { c.Transform.RotatePitch(angle) }
func (c *Camera) RotateRoll(angle float64)  { c.Transform.RotateRoll(angle) }

// GenerateRay builds the primary ray for pixel (row, col) of a
// width x height image, row-major with row 0 at the top.
func (c *Camera) GenerateRay(row, col, width, height int) raytrace.Ray {
	aspect := float64(width) / float64(height)
	tanFOV := math.Tan(c.FOVY / 2)

	// Map pixel center to normalized device coordinates in [-1, 1].
	ndcX := (2*((float64(col)+0.5)/float64(width)) - 1) * aspect * tanFOV
	ndcY := (1 - 2*((float64(row)+0.5)/float64(height))) * tanFOV

	localDir := raytrace.Vec3{X: ndcX, Y: ndcY, Z: 1}
	worldDir := c.Transform.TransformDirection(localDir)
	return raytrace.NewRay(c.Transform.Position, worldDir)
}
