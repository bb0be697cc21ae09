package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

func TestEulerCameraViewMovesEyeToOrigin(t *testing.T) {
	c := NewEulerCamera(math.Vec3{X: 1, Y: 2, Z: 3})
	c.Yaw = 0.7
	c.Pitch = -0.3

	assertVec(t, math.Vec3{}, c.View().TransformPoint(c.Pos))

	// a point straight ahead ends up on -Z in view space
	ahead := c.Pos.Add(c.Forward().Scale(5))
	assertVec(t, math.Vec3{Z: -5}, c.View().TransformPoint(ahead))
}

func TestEulerCameraForward(t *testing.T) {
	c := NewEulerCamera(math.Vec3{})
	assertVec(t, math.Vec3{Z: -1}, c.Forward())

	c.Yaw = math32.Pi / 2
	assertVec(t, math.Vec3{X: -1}, c.Forward())
	assertVec(t, math.Vec3{Z: -1}, c.Right())
}

func TestEulerCameraMoveAndTurn(t *testing.T) {
	c := NewEulerCamera(math.Vec3{Z: 5})
	c.Move(1, 0, 0.5)
	assertVec(t, math.Vec3{Z: 4}, c.Pos)

	c.Turn(0, -1e6)
	assert.Less(t, c.Pitch, math32.Pi/2)
	assert.Greater(t, c.Pitch, float32(1.5))
}

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10

	assertVec(t, math.Vec3{Z: 10}, c.Position())
	assertVec(t, math.Vec3{}, c.View().TransformPoint(c.Position()))
}

func TestOrbitCameraClamps(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.RotationX)

	c.HandleZoom(100)
	assert.Equal(t, c.MinDistance, c.Distance)

	c.HandleZoom(-1e6)
	assert.Equal(t, c.MaxDistance, c.Distance)
}
