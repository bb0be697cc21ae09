package shapes

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// latitudeBands sweeps slices/2+1 latitude bands of a sphere, starting at
// the south pole. Each band is four loops of tessellation+1 vertices:
// lower-outer, lower-inner, upper-outer, upper-inner. The bands span
// angleThickness radians of latitude and radius*angleThickness of depth;
// latitudes are squeezed by 0.9 to keep the end bands off the poles.
func latitudeBands(radius, angleThickness float32, slices, tessellation int, normal func(p math.Vec3, upper, inner bool) math.Vec3) *mesh.Template {
	t := &mesh.Template{}
	sliceInc := 2 * math32.Pi / float32(slices)
	angInc := 2 * math32.Pi / float32(tessellation)
	start := 3 * slices / 4
	depth := radius * angleThickness

	for i := start; i <= start+slices/2; i++ {
		for _, da := range [2]float32{-angleThickness / 2, angleThickness / 2} {
			alpha := (sliceInc*float32(i) + da - 2*math32.Pi) * 0.9
			y := radius * math32.Sin(alpha)
			for _, dr := range [2]float32{0, -depth} {
				sliceRadius := radius*math32.Cos(alpha) + dr
				for j := 0; j <= tessellation; j++ {
					s, c := math32.Sincos(angInc * float32(j))
					p := math.Vec3{X: sliceRadius * s, Y: y, Z: sliceRadius * c}
					t.Positions = append(t.Positions, p)
					t.Normals = append(t.Normals, normal(p, da > 0, dr < 0))
				}
			}
		}
	}
	return t
}

// bandLoops returns the first vertex of each loop of band group i
// (counted in loops, a multiple of four).
func bandLoops(i, tessellation int) (lowerOuter, lowerInner, upperOuter, upperInner uint32) {
	row := uint32(tessellation + 1)
	base := uint32(i)
	return row * base, row * (base + 1), row * (base + 2), row * (base + 3)
}

// SphereRings returns the outer and inner walls of the latitude bands.
func SphereRings(radius, angleThickness float32, slices, tessellation int) *mesh.Template {
	t := latitudeBands(radius, angleThickness, slices, tessellation,
		func(p math.Vec3, _, inner bool) math.Vec3 {
			n := p.Normalize()
			if inner {
				return n.Neg()
			}
			return n
		})

	for i := 0; i <= slices*2; i += 4 {
		br, bl, tr, tl := bandLoops(i, tessellation)
		t.Indices = appendStrip(t.Indices, bl, tl, tessellation)
		t.Indices = appendStrip(t.Indices, tr, br, tessellation)
	}
	return t
}

// SphereZeros returns the flat upper and lower caps of the latitude bands.
func SphereZeros(radius, angleThickness float32, slices, tessellation int) *mesh.Template {
	t := latitudeBands(radius, angleThickness, slices, tessellation,
		func(_ math.Vec3, upper, _ bool) math.Vec3 {
			if upper {
				return math.Vec3{Y: 1}
			}
			return math.Vec3{Y: -1}
		})

	for i := 0; i <= slices*2; i += 4 {
		br, bl, tr, tl := bandLoops(i, tessellation)
		t.Indices = appendStrip(t.Indices, br, bl, tessellation)
		t.Indices = appendStrip(t.Indices, tl, tr, tessellation)
	}
	return t
}

// SphereSkeleton combines the latitude bands with slices/2 meridian rings
// (rect circles rotated about Y in steps of 2*pi/slices) into a single
// wireframe-like sphere. Colors are normalize(p + radius).
func SphereSkeleton(radius, angleThickness float32, slices, tessellation int) *mesh.Template {
	parts := []*mesh.Template{
		SphereZeros(radius, angleThickness, slices, tessellation),
		SphereRings(radius, angleThickness, slices, tessellation),
	}

	meridian := RectCircle(radius, radius*angleThickness, tessellation)
	for i := 0; i < slices/2; i++ {
		m := meridian.Clone()
		m.Transform(math.RotateY(float32(i) * 2 * math32.Pi / float32(slices)))
		parts = append(parts, m)
	}

	t := mesh.Stitch(parts...)
	t.Colors = make([]math.Vec3, len(t.Positions))
	for i, p := range t.Positions {
		t.Colors[i] = p.AddScalar(radius).Normalize()
	}
	return t
}
