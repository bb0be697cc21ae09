package shapes

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// Cube returns an 8-vertex, 12-triangle cube centred on the origin.
// It has no normals; run ExpandIndices and ComputeFaceNormals for flat
// shading.
func Cube(width float32) *mesh.Template {
	hw := width / 2
	return &mesh.Template{
		Positions: []math.Vec3{
			// front
			{X: -hw, Y: hw, Z: hw},
			{X: -hw, Y: -hw, Z: hw},
			{X: hw, Y: -hw, Z: hw},
			{X: hw, Y: hw, Z: hw},
			// back
			{X: -hw, Y: hw, Z: -hw},
			{X: -hw, Y: -hw, Z: -hw},
			{X: hw, Y: -hw, Z: -hw},
			{X: hw, Y: hw, Z: -hw},
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // front
			4, 7, 6, 6, 5, 4, // back
			4, 0, 3, 3, 7, 4, // top
			5, 6, 2, 2, 1, 5, // bottom
			0, 4, 5, 5, 1, 0, // left
			3, 2, 6, 6, 7, 3, // right
		},
	}
}

// Plane returns a (width+1) x (height+1) grid of unit cells in the z=0
// plane, centred on the origin.
func Plane(width, height int) *mesh.Template {
	t := &mesh.Template{}
	hw := float32(width) / 2
	hh := float32(height) / 2
	for i := 0; i <= width; i++ {
		for j := 0; j <= height; j++ {
			t.Positions = append(t.Positions, math.Vec3{X: -hw + float32(i), Y: -hh + float32(j)})
			t.TexCoords = append(t.TexCoords, math.Vec2{X: float32(i) / float32(width), Y: float32(j) / float32(height)})
		}
	}

	col := uint32(height + 1)
	for i := uint32(0); i < uint32(width); i++ {
		t.Indices = appendStrip(t.Indices, i*col, (i+1)*col, height)
	}
	return t
}

// diskLoop appends a loop of tessellation+1 points of the given radius at
// depth z, with texture coordinates mapping the unit disk onto [0,1]^2.
func diskLoop(t *mesh.Template, radius, z float32, tessellation int) {
	angInc := 2 * math32.Pi / float32(tessellation)
	for i := 0; i <= tessellation; i++ {
		s, c := math32.Sincos(float32(i) * angInc)
		t.Positions = append(t.Positions, math.Vec3{X: radius * c, Y: radius * s, Z: z})
		t.TexCoords = append(t.TexCoords, math.Vec2{X: c/2 + 0.5, Y: s/2 + 0.5})
	}
}

// Circle returns a fan-triangulated disk: tessellation+1 rim vertices and
// a centre vertex last, every triangle starting at the centre.
func Circle(radius float32, tessellation int) *mesh.Template {
	t := &mesh.Template{}
	diskLoop(t, radius, 0, tessellation)
	t.Positions = append(t.Positions, math.Vec3{})
	t.TexCoords = append(t.TexCoords, math.Vec2{X: 0.5, Y: 0.5})

	center := uint32(len(t.Positions) - 1)
	for i := uint32(0); i < uint32(tessellation); i++ {
		t.Indices = append(t.Indices, center, i, i+1)
	}
	return t
}

// Cylinder returns the uncapped side wall of a cylinder along Z.
func Cylinder(radius, length float32, tessellation int) *mesh.Template {
	t := &mesh.Template{}
	diskLoop(t, radius, -length/2, tessellation)
	diskLoop(t, radius, length/2, tessellation)
	t.Indices = appendStrip(t.Indices, uint32(tessellation+1), 0, tessellation)
	return t
}
