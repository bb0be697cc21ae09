package demo

import (
	"fmt"

	"github.com/Faultbox/spinning-wgmi/internal/config"
	"github.com/Faultbox/spinning-wgmi/internal/engine/camera"
	"github.com/Faultbox/spinning-wgmi/internal/engine/render"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// freeStep is how far one wheel notch moves the free camera.
const freeStep = 0.25

// Rig routes mouse input to the camera selected in the config and
// remembers its starting placement.
type Rig struct {
	Mode  string
	Orbit *camera.OrbitCamera
	Free  *camera.EulerCamera

	homeOrbit camera.OrbitCamera
	homeFree  camera.EulerCamera
}

// NewRig creates both cameras framing a head at the origin and selects
// mode.
func NewRig(mode string) (*Rig, error) {
	if mode != config.CameraOrbit && mode != config.CameraFree {
		return nil, fmt.Errorf("unknown camera %q", mode)
	}
	r := &Rig{
		Mode:  mode,
		Orbit: camera.NewOrbitCamera(),
		Free:  camera.NewEulerCamera(math.Vec3{Z: 4}),
	}
	r.homeOrbit = *r.Orbit
	r.homeFree = *r.Free
	return r, nil
}

// Camera returns the active camera.
func (r *Rig) Camera() render.Camera {
	if r.Mode == config.CameraFree {
		return r.Free
	}
	return r.Orbit
}

// Drag orbits the orbit camera or turns the free camera.
func (r *Rig) Drag(dx, dy float32) {
	if r.Mode == config.CameraFree {
		r.Free.Turn(dx, dy)
		return
	}
	r.Orbit.HandleDrag(dx, dy)
}

// Wheel zooms the orbit camera or moves the free camera along its view.
func (r *Rig) Wheel(delta float32) {
	if r.Mode == config.CameraFree {
		r.Free.Move(delta, 0, freeStep/r.Free.MoveSpeed)
		return
	}
	r.Orbit.HandleZoom(delta)
}

// Reset puts both cameras back where NewRig placed them.
func (r *Rig) Reset() {
	*r.Orbit = r.homeOrbit
	*r.Free = r.homeFree
}
