// Package lighting holds the light parameter sets pushed to the main shader
// once per frame: one directional sun and one spot light.
package lighting

import "github.com/Faultbox/spinning-wgmi/pkg/math"

// DefaultSunPosition is where the default sun shines from.
var DefaultSunPosition = math.Vec3{X: -25, Y: 20, Z: -25}

// Sun is a directional light.
type Sun struct {
	Direction math.Vec3 // unit vector the light travels along
	Diffuse   math.Vec3
	Ambient   math.Vec3
	Specular  math.Vec3
}

// SunFrom returns a white sun shining from position towards the origin.
func SunFrom(position math.Vec3) Sun {
	return Sun{
		Direction: position.Neg().Normalize(),
		Diffuse:   math.Vec3{X: 1, Y: 1, Z: 1},
		Ambient:   math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Specular:  math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// DefaultSun returns the sun used when nothing is configured.
func DefaultSun() Sun {
	return SunFrom(DefaultSunPosition)
}
