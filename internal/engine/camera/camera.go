// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// EulerCamera is a free camera placed at Pos and turned by Yaw about Y,
// then by Pitch about its local X axis. Angles are in radians.
type EulerCamera struct {
	Pos   math.Vec3
	Yaw   float32
	Pitch float32

	MoveSpeed float32 // units per second
	TurnSpeed float32 // radians per pixel of mouse motion
}

// NewEulerCamera creates a camera at pos looking down -Z.
func NewEulerCamera(pos math.Vec3) *EulerCamera {
	return &EulerCamera{
		Pos:       pos,
		MoveSpeed: 2,
		TurnSpeed: 0.003,
	}
}

// Position returns the camera position in world space.
func (c *EulerCamera) Position() math.Vec3 {
	return c.Pos
}

// View returns the world-to-camera matrix Rx(-pitch) * Ry(-yaw) * T(-pos).
func (c *EulerCamera) View() math.Mat4 {
	return math.RotateX(-c.Pitch).
		Mul(math.RotateY(-c.Yaw)).
		Mul(math.Translate(-c.Pos.X, -c.Pos.Y, -c.Pos.Z))
}

// Forward returns the unit direction the camera looks along.
func (c *EulerCamera) Forward() math.Vec3 {
	return math.RotateY(c.Yaw).Mul(math.RotateX(c.Pitch)).TransformDirection(math.Vec3{Z: -1})
}

// Right returns the unit direction to the camera's right on the XZ plane.
func (c *EulerCamera) Right() math.Vec3 {
	return math.RotateY(c.Yaw).TransformDirection(math.Vec3{X: 1})
}

// Move translates the camera along its forward and right axes.
func (c *EulerCamera) Move(forward, right, dt float32) {
	step := c.MoveSpeed * dt
	c.Pos = c.Pos.Add(c.Forward().Scale(forward * step)).Add(c.Right().Scale(right * step))
}

// Turn applies a mouse delta. Pitch is clamped short of straight up/down.
func (c *EulerCamera) Turn(dx, dy float32) {
	const limit = math32.Pi/2 - 0.01
	c.Yaw -= dx * c.TurnSpeed
	c.Pitch -= dy * c.TurnSpeed
	c.Pitch = max(-limit, min(limit, c.Pitch))
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera framing a head of unit radius.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        4,
		MinDistance:     1.5,
		MaxDistance:     20,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sx, cx := math32.Sincos(c.RotationX)
	sy, cy := math32.Sincos(c.RotationY)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cx * sy,
		Y: c.Distance * sx,
		Z: c.Distance * cx * cy,
	})
}

// View returns the view matrix for this camera.
func (c *OrbitCamera) View() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// HandleDrag updates rotation from a mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = max(c.MinPitch, min(c.MaxPitch, c.RotationX))
}

// HandleZoom updates distance from a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = max(c.MinDistance, min(c.MaxDistance, c.Distance))
}
