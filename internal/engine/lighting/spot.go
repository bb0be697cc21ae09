package lighting

import "github.com/Faultbox/spinning-wgmi/pkg/math"

// DefaultSpotPosition sits above and in front of the head.
var DefaultSpotPosition = math.Vec3{Y: 5, Z: 5}

// Spot is a positional light.
type Spot struct {
	Position math.Vec3
	Diffuse  math.Vec3
	Ambient  math.Vec3
	Specular math.Vec3
}

// SpotAt returns a half-intensity grey light at position.
func SpotAt(position math.Vec3) Spot {
	half := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	return Spot{
		Position: position,
		Diffuse:  half,
		Ambient:  half,
		Specular: half,
	}
}

// DefaultSpot returns the spot light used when nothing is configured.
func DefaultSpot() Spot {
	return SpotAt(DefaultSpotPosition)
}
