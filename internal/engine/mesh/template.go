// Package mesh holds the CPU-side mesh template produced by the geometry
// generators, plus the utilities that derive normals and expand indices
// before a template is uploaded to the GPU.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

var (
	// ErrNotIndexed is returned by operations that need an index buffer.
	ErrNotIndexed = errors.New("mesh template has no indices")
	// ErrIndexed is returned by operations that need a flat vertex stream.
	ErrIndexed = errors.New("mesh template has indices")
	// ErrInvalidTemplate is returned by Validate.
	ErrInvalidTemplate = errors.New("invalid mesh template")
)

// Template is a bundle of per-vertex attribute arrays plus an optional
// index buffer. Every non-empty attribute array has one entry per position.
// An empty Indices slice means the positions form a triangle list in order.
type Template struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Colors    []math.Vec3
	Indices   []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Indexed reports whether the template carries an index buffer.
func (t *Template) Indexed() bool {
	return len(t.Indices) > 0
}

// VertexCount returns the number of positions.
func (t *Template) VertexCount() int {
	return len(t.Positions)
}

// TriangleCount returns the number of triangles drawn from the template.
func (t *Template) TriangleCount() int {
	if t.Indexed() {
		return len(t.Indices) / 3
	}
	return len(t.Positions) / 3
}

// Validate checks the attribute-length and index-bounds invariants.
func (t *Template) Validate() error {
	n := len(t.Positions)
	if len(t.Normals) != 0 && len(t.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d positions", ErrInvalidTemplate, len(t.Normals), n)
	}
	if len(t.TexCoords) != 0 && len(t.TexCoords) != n {
		return fmt.Errorf("%w: %d tex coords for %d positions", ErrInvalidTemplate, len(t.TexCoords), n)
	}
	if len(t.Colors) != 0 && len(t.Colors) != n {
		return fmt.Errorf("%w: %d colors for %d positions", ErrInvalidTemplate, len(t.Colors), n)
	}
	for i, idx := range t.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d positions)", ErrInvalidTemplate, idx, i, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounds of all positions,
// including vertices no index refers to.
func (t *Template) Bounds() Bounds {
	if len(t.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: t.Positions[0], Max: t.Positions[0]}
	for _, p := range t.Positions[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Min.Z = min(b.Min.Z, p.Z)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
		b.Max.Z = max(b.Max.Z, p.Z)
	}
	return b
}

// Clone returns a deep copy.
func (t *Template) Clone() *Template {
	return &Template{
		Positions: cloneSlice(t.Positions),
		Normals:   cloneSlice(t.Normals),
		TexCoords: cloneSlice(t.TexCoords),
		Colors:    cloneSlice(t.Colors),
		Indices:   cloneSlice(t.Indices),
	}
}

// Transform applies m to every position. Normals go through the same
// matrix with w=1 and are renormalized, which is exact for rotations
// about the origin (the only transform the composite generators use).
func (t *Template) Transform(m math.Mat4) {
	for i, p := range t.Positions {
		t.Positions[i] = m.TransformPoint(p)
	}
	for i, n := range t.Normals {
		t.Normals[i] = m.TransformPoint(n).Normalize()
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
