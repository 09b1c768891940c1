// Package camera provides the editor's fly camera and the layer that
// drives it from input.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	Right   = mgl32.Vec3{1, 0, 0}
	Up      = mgl32.Vec3{0, 1, 0}
	Forward = mgl32.Vec3{0, 0, -1}
)

// Camera is a perspective camera placed by a rigid transform. FOV is the
// horizontal field of view in degrees; the vertical one follows Aspect.
type Camera struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat

	FOV    float32
	Near   float32
	Far    float32
	Aspect float32
}

// NewCamera returns a camera 5 units out on +Z, tilted down 15 degrees and
// swung 30 degrees around the world Y axis.
func NewCamera() *Camera {
	c := &Camera{
		Orientation: mgl32.QuatIdent(),
		FOV:         35,
		Near:        0.01,
		Far:         1000,
		Aspect:      1,
	}
	c.Position = mgl32.Vec3{0, 0, 5}
	c.rotateWorld(mgl32.QuatRotate(mgl32.DegToRad(-15), Right))
	c.rotateWorld(mgl32.QuatRotate(mgl32.DegToRad(30), Up))
	return c
}

// rotateWorld rotates the camera and its position about the world origin.
func (c *Camera) rotateWorld(q mgl32.Quat) {
	c.Position = q.Rotate(c.Position)
	c.Orientation = q.Mul(c.Orientation).Normalize()
}

// TranslateLocal moves the camera by v expressed in camera space.
func (c *Camera) TranslateLocal(v mgl32.Vec3) {
	c.Position = c.Position.Add(c.Orientation.Rotate(v))
}

// RotateWorldY rotates the camera by angle radians about the world Y axis
// passing through pivot.
func (c *Camera) RotateWorldY(angle float32, pivot mgl32.Vec3) {
	q := mgl32.QuatRotate(angle, Up)
	c.Position = pivot.Add(q.Rotate(c.Position.Sub(pivot)))
	c.Orientation = q.Mul(c.Orientation).Normalize()
}

// RotateLocalX pitches the camera by angle radians about its own X axis.
func (c *Camera) RotateLocalX(angle float32) {
	c.Orientation = c.Orientation.Mul(mgl32.QuatRotate(angle, Right)).Normalize()
}

func (c *Camera) Transformation() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).Mul4(c.Orientation.Mat4())
}

func (c *Camera) View() mgl32.Mat4 {
	return c.Orientation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.verticalFOV(), c.Aspect, c.Near, c.Far)
}

func (c *Camera) verticalFOV() float32 {
	half := math.Tan(float64(mgl32.DegToRad(c.FOV)) / 2)
	return float32(2 * math.Atan(half/float64(c.Aspect)))
}

// SetAspect ignores degenerate sizes such as a minimized window.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}
