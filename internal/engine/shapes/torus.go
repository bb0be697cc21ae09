package shapes

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// TorusStacks returns the number of sweep steps Torus uses around the
// vertical axis. It grows with radius/thickness so each swept quad stays
// roughly as long as the tube is thick.
func TorusStacks(radius, thickness float32, tessellation int) int {
	return int(math32.Ceil(radius/thickness)) * tessellation
}

// Torus sweeps a tube profile of tessellation+1 points (a circle of radius
// thickness centred at (radius, 0, 0) in the XY plane) around the Y axis in
// TorusStacks steps, producing stacks+1 profile rings.
func Torus(radius, thickness float32, tessellation int) *mesh.Template {
	t := &mesh.Template{}
	stacks := TorusStacks(radius, thickness, tessellation)

	profile := make([]math.Vec3, 0, tessellation+1)
	angInc := 2 * math32.Pi / float32(tessellation)
	for i := 0; i <= tessellation; i++ {
		s, c := math32.Sincos(angInc * float32(i))
		profile = append(profile, math.Vec3{X: radius + thickness*c, Y: thickness * s})
	}

	center := math.Vec3{X: radius}
	stackInc := 2 * math32.Pi / float32(stacks)
	for i := 0; i <= stacks; i++ {
		rot := math.RotateY(-stackInc * float32(i))
		stackCenter := rot.TransformPoint(center)
		for j, q := range profile {
			p := rot.TransformPoint(q)
			t.Positions = append(t.Positions, p)
			t.TexCoords = append(t.TexCoords, math.Vec2{
				X: 4*float32(i)/float32(tessellation) - 0.5,
				Y: 12*float32(j)/float32(stacks) - 0.5,
			})
			t.Normals = append(t.Normals, p.Sub(stackCenter).Normalize())
			t.Colors = append(t.Colors, p.Normalize())
		}
	}

	row := uint32(len(profile))
	for i := uint32(1); i <= uint32(stacks); i++ {
		t.Indices = appendStrip(t.Indices, row*i, row*(i-1), len(profile)-1)
	}
	return t
}
