// Package render walks the scene tree and issues draw calls through an
// explicit graphics Context, so traversal can run against a recording fake
// as well as against OpenGL.
package render

import (
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// Program names a linked shader program. Zero unbinds.
type Program uint32

// TextureTarget selects the binding point for BindTexture.
type TextureTarget int

const (
	Texture2D TextureTarget = iota
	TextureCubeMap
)

// PolygonMode is the rasterisation mode for front and back faces.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
)

// Winding is the vertex order of front faces.
type Winding int

const (
	WindingCCW Winding = iota
	WindingCW
)

// Context is the graphics state the renderer drives. Implementations are
// not safe for concurrent use.
type Context interface {
	UseProgram(p Program)
	// SetUniform sets a uniform on the current program. It fails when the
	// program has no active uniform with that name.
	SetUniform(name string, u Uniform) error
	// BindTexture binds h to the texture unit. A zero handle unbinds.
	BindTexture(unit int, target TextureTarget, h scene.TextureHandle)
	SetClipDistance(enabled bool)
	SetPolygonOffsetFill(enabled bool)
	PolygonOffset(factor, units float32)
	SetPolygonMode(mode PolygonMode)
	SetDepthMask(enabled bool)
	SetFrontFace(w Winding)
	Clear(r, g, b, a float32)
	Draw(m scene.MeshHandle)
	// Now returns seconds since the context was created.
	Now() float32
}

// Camera supplies the view for a frame.
type Camera interface {
	Position() math.Vec3
	View() math.Mat4
}
