// Package shapes generates the parametric meshes the demo is built from:
// spheres and the face patch carved out of one, tori, flat rings and the
// "zero character" glyph, the composite sphere skeleton, and a few basic
// solids. Every generator is a pure function of its parameters.
package shapes

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// DefaultTessellation is the vertex-loop count used when a caller has no
// preference.
const DefaultTessellation = 64

// sphereGrid sweeps the latitude/longitude grid shared by Sphere and
// WGMIFace. Rows start at latitude index 3*tess/4 (the south pole) and walk
// tess/2 rows north; each row holds tess+1 vertices so the seam repeats.
func sphereGrid(radius float32, tessellation int, mirrorU bool) *mesh.Template {
	t := &mesh.Template{}
	angInc := 2 * math32.Pi / float32(tessellation)
	stacks := tessellation / 2
	start := 3 * tessellation / 4

	for i := start; i <= start+stacks; i++ {
		alpha := angInc * float32(i)
		y := radius * math32.Sin(alpha)
		sliceRadius := radius * math32.Cos(alpha)
		for j := 0; j <= tessellation; j++ {
			beta := angInc * float32(j)
			p := math.Vec3{
				X: sliceRadius * math32.Sin(beta),
				Y: y,
				Z: sliceRadius * math32.Cos(beta),
			}
			u := float32(j) / float32(tessellation)
			if mirrorU {
				u = 1 - u
			}
			t.Positions = append(t.Positions, p)
			t.TexCoords = append(t.TexCoords, math.Vec2{X: u, Y: float32(i-start) * 2 / float32(tessellation)})
			t.Normals = append(t.Normals, p.Normalize())
			t.Colors = append(t.Colors, p.AddScalar(radius).Normalize())
		}
	}
	return t
}

// Sphere returns a full UV sphere of the given radius.
func Sphere(radius float32, tessellation int) *mesh.Template {
	t := sphereGrid(radius, tessellation, false)
	row := uint32(tessellation + 1)
	for i := uint32(1); i <= uint32(tessellation/2); i++ {
		prev := row * (i - 1)
		curr := row * i
		for j := uint32(0); j < uint32(tessellation); j++ {
			t.Indices = append(t.Indices,
				curr+j, prev+j, prev+j+1,
				prev+j+1, curr+j+1, curr+j,
			)
		}
	}
	return t
}

// WGMIFace returns the small facial patch of a sphere. The vertex grid is
// the full sphere's, with U mirrored, but only the sub-rectangle of slices
// [3/8, 5/8) of the circumference and stacks [stacks/2+1, stacks-tess/8+1)
// is indexed. Vertices outside the patch are never referenced.
func WGMIFace(radius float32, tessellation int) *mesh.Template {
	t := sphereGrid(radius, tessellation, true)

	stacks := tessellation / 2
	slice := tessellation / 8
	startSlice, endSlice := 3*slice, 5*slice
	startStack, endStack := stacks/2+1, stacks-slice+1

	row := uint32(tessellation + 1)
	for i := startStack; i < endStack; i++ {
		prev := row * uint32(i-1)
		curr := row * uint32(i)
		for j := uint32(startSlice); j < uint32(endSlice); j++ {
			t.Indices = append(t.Indices,
				prev+j, curr+j, curr+j+1,
				curr+j+1, prev+j+1, prev+j,
			)
		}
	}
	return t
}
