package shapes

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// ZeroCharacter returns the flat annulus of the "0" glyph lying in the plane
// z, between radius-thickness and radius. Normals point along the plane
// normal away from the origin; flip reverses both normals and winding to
// build the opposite face.
func ZeroCharacter(radius, z, thickness float32, tessellation int, flip bool) *mesh.Template {
	t := &mesh.Template{}
	angInc := 2 * math32.Pi / float32(tessellation)
	normal := math.Vec3{Z: z}.Normalize().Scale(flipSign(flip))

	for _, dr := range [2]float32{0, -thickness} {
		r := radius + dr
		for i := 0; i <= tessellation; i++ {
			s, c := math32.Sincos(float32(i) * angInc)
			t.Positions = append(t.Positions, math.Vec3{X: r * c, Y: r * s, Z: z})
			t.Normals = append(t.Normals, normal)
		}
	}

	prev, curr := uint32(0), uint32(tessellation+1)
	if flip {
		prev, curr = curr, prev
	}
	t.Indices = appendStrip(t.Indices, curr, prev, tessellation)
	t.Colors = append([]math.Vec3(nil), t.Positions...)
	return t
}

// Ring returns the cylindrical band of the given radius spanning
// z in [-thickness/2, thickness/2]. Normals point radially outward, or
// inward when flip is set.
func Ring(radius, thickness float32, tessellation int, flip bool) *mesh.Template {
	t := &mesh.Template{}
	angInc := 2 * math32.Pi / float32(tessellation)
	sign := flipSign(flip)

	for _, dz := range [2]float32{thickness / 2, -thickness / 2} {
		center := math.Vec3{Z: dz}
		for i := 0; i <= tessellation; i++ {
			s, c := math32.Sincos(float32(i) * angInc)
			p := math.Vec3{X: radius * c, Y: radius * s, Z: dz}
			t.Positions = append(t.Positions, p)
			t.Normals = append(t.Normals, p.Sub(center).Normalize().Scale(sign))
		}
	}

	prev, curr := uint32(0), uint32(tessellation+1)
	if flip {
		prev, curr = curr, prev
	}
	t.Indices = appendStrip(t.Indices, prev, curr, tessellation)
	return t
}

// RectCircle returns a closed ring with a square cross-section: a zero
// character on each face plus an outward band at radius and an inward band
// at radius-thickness.
func RectCircle(radius, thickness float32, tessellation int) *mesh.Template {
	return mesh.Stitch(
		ZeroCharacter(radius, thickness/2, thickness, tessellation, false),
		ZeroCharacter(radius, -thickness/2, thickness, tessellation, true),
		Ring(radius, thickness, tessellation, false),
		Ring(radius-thickness, thickness, tessellation, true),
	)
}
