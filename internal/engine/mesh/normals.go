package mesh

import (
	"fmt"

	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// faceNormal returns the unit normal of triangle (a, b, c) in winding order.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// ComputeVertexNormals replaces the normals of an indexed template with
// smooth per-vertex normals: each triangle adds its unit face normal to its
// three vertices and the sums are normalized. Vertices no triangle uses end
// up with a zero normal.
func ComputeVertexNormals(t *Template) error {
	if !t.Indexed() {
		return fmt.Errorf("compute vertex normals: %w", ErrNotIndexed)
	}

	normals := make([]math.Vec3, len(t.Positions))
	pos := t.Positions
	for i := 0; i+2 < len(t.Indices); i += 3 {
		i1, i2, i3 := t.Indices[i], t.Indices[i+1], t.Indices[i+2]
		n := faceNormal(pos[i1], pos[i2], pos[i3])
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
		normals[i3] = normals[i3].Add(n)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	t.Normals = normals
	return nil
}

// ComputeFaceNormals gives every vertex of a flat triangle list the normal
// of the triangle it belongs to. Positions past the last full triangle get
// (1, 0, 0).
func ComputeFaceNormals(t *Template) error {
	if t.Indexed() {
		return fmt.Errorf("compute face normals: %w", ErrIndexed)
	}

	normals := make([]math.Vec3, len(t.Positions))
	for i := range normals {
		normals[i] = math.Vec3{X: 1}
	}
	pos := t.Positions
	for i := 0; i+2 < len(pos); i += 3 {
		n := faceNormal(pos[i], pos[i+1], pos[i+2])
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	t.Normals = normals
	return nil
}

// ExpandIndices returns a new, non-indexed template holding one vertex per
// index of t. Attribute arrays that are empty in t stay empty.
func ExpandIndices(t *Template) (*Template, error) {
	if !t.Indexed() {
		return nil, fmt.Errorf("expand indices: %w", ErrNotIndexed)
	}

	out := &Template{
		Positions: make([]math.Vec3, 0, len(t.Indices)),
	}
	if len(t.Normals) > 0 {
		out.Normals = make([]math.Vec3, 0, len(t.Indices))
	}
	if len(t.TexCoords) > 0 {
		out.TexCoords = make([]math.Vec2, 0, len(t.Indices))
	}
	if len(t.Colors) > 0 {
		out.Colors = make([]math.Vec3, 0, len(t.Indices))
	}

	for _, i := range t.Indices {
		out.Positions = append(out.Positions, t.Positions[i])
		if out.Normals != nil {
			out.Normals = append(out.Normals, t.Normals[i])
		}
		if out.TexCoords != nil {
			out.TexCoords = append(out.TexCoords, t.TexCoords[i])
		}
		if out.Colors != nil {
			out.Colors = append(out.Colors, t.Colors[i])
		}
	}
	return out, nil
}
