// Package camera is a free flying camera driven a little every frame.
//
// Object Space -> World Space -> Eye Space -> Clip Space
//
// The scene graph takes objects to world space. View() takes world space
// to eye space, where the viewer sits at the origin looking down -z with
// +y up. Projection() takes eye space to clip space.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = math.Pi / 2

// Camera holds the viewer pose and lens.
type Camera struct {
	Position mgl32.Vec3
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians, positive turns right

	Fov    float32 // vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32
}

// New returns a camera at the origin looking down -z.
func New(fov, aspect, near, far float32) *Camera {
	return &Camera{Fov: fov, Aspect: aspect, Near: near, Far: far}
}

// Forward is the horizontal direction the camera faces.
func (c *Camera) Forward() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.Yaw))
	return mgl32.Vec3{float32(s), 0, float32(-co)}
}

// Right is the horizontal direction to the right of Forward.
func (c *Camera) Right() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.Yaw))
	return mgl32.Vec3{float32(co), 0, float32(s)}
}

// Move shifts the camera along its right, world up and forward axes.
func (c *Camera) Move(right, up, forward float32) {
	c.Position = c.Position.
		Add(c.Right().Mul(right)).
		Add(mgl32.Vec3{0, up, 0}).
		Add(c.Forward().Mul(forward))
}

// Turn adds to pitch and yaw. Pitch stops at straight up and straight down.
func (c *Camera) Turn(pitch, yaw float32) {
	c.Pitch = mgl32.Clamp(c.Pitch+pitch, -maxPitch, maxPitch)
	c.Yaw += yaw
}

// View returns Rx(pitch) * Ry(yaw) * T(-position).
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(c.Pitch).
		Mul4(mgl32.HomogRotate3DY(c.Yaw)).
		Mul4(mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection() * View().
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
