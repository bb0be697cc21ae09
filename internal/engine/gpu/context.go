// Package gpu implements the renderer's graphics context, mesh upload and
// texture loading on OpenGL 4.1 core. Every call must happen on the thread
// that owns the GL context.
package gpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spinning-wgmi/internal/engine/render"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/internal/logger"
)

// ErrUniformNotFound is returned by SetUniform for names the current
// program does not use. GLSL compilers drop unused uniforms, so callers
// may choose to ignore it.
var ErrUniformNotFound = errors.New("uniform not found")

// Context is the OpenGL implementation of render.Context.
type Context struct {
	program   uint32
	locations map[uint32]map[string]int32
	start     time.Time
	log       *zap.Logger
}

var _ render.Context = (*Context)(nil)

// Init loads the GL function pointers and sets the default state.
// It must be called after the window's GL context is current.
func Init() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	c := &Context{
		locations: make(map[uint32]map[string]int32),
		start:     time.Now(),
		log:       logger.Named("gpu"),
	}
	c.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	return c, nil
}

// Viewport sets the drawable area.
func (c *Context) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (c *Context) UseProgram(p render.Program) {
	c.program = uint32(p)
	gl.UseProgram(c.program)
}

func (c *Context) location(name string) int32 {
	locs, ok := c.locations[c.program]
	if !ok {
		locs = make(map[string]int32)
		c.locations[c.program] = locs
	}
	loc, ok := locs[name]
	if !ok {
		loc = gl.GetUniformLocation(c.program, gl.Str(name+"\x00"))
		locs[name] = loc
	}
	return loc
}

func (c *Context) SetUniform(name string, u render.Uniform) error {
	loc := c.location(name)
	if loc < 0 {
		return fmt.Errorf("%w: %q in program %d", ErrUniformNotFound, name, c.program)
	}
	switch u.Kind {
	case render.UniformFloat:
		gl.Uniform1f(loc, u.Float)
	case render.UniformInt:
		gl.Uniform1i(loc, u.Int)
	case render.UniformVec3:
		gl.Uniform3f(loc, u.Vec3.X, u.Vec3.Y, u.Vec3.Z)
	case render.UniformVec4:
		gl.Uniform4f(loc, u.Vec4[0], u.Vec4[1], u.Vec4[2], u.Vec4[3])
	case render.UniformMat4:
		gl.UniformMatrix4fv(loc, 1, false, u.Mat4.Ptr())
	default:
		return fmt.Errorf("uniform %q: unsupported kind %s", name, u.Kind)
	}
	return nil
}

func glTarget(t render.TextureTarget) uint32 {
	if t == render.TextureCubeMap {
		return gl.TEXTURE_CUBE_MAP
	}
	return gl.TEXTURE_2D
}

func (c *Context) BindTexture(unit int, target render.TextureTarget, h scene.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(glTarget(target), uint32(h))
}

func (c *Context) SetClipDistance(enabled bool) {
	setCap(gl.CLIP_DISTANCE0, enabled)
}

func (c *Context) SetPolygonOffsetFill(enabled bool) {
	setCap(gl.POLYGON_OFFSET_FILL, enabled)
}

func (c *Context) PolygonOffset(factor, units float32) {
	gl.PolygonOffset(factor, units)
}

func (c *Context) SetPolygonMode(mode render.PolygonMode) {
	if mode == render.PolygonLine {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (c *Context) SetDepthMask(enabled bool) {
	gl.DepthMask(enabled)
}

func (c *Context) SetFrontFace(w render.Winding) {
	if w == render.WindingCW {
		gl.FrontFace(gl.CW)
		return
	}
	gl.FrontFace(gl.CCW)
}

func (c *Context) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (c *Context) Draw(m scene.MeshHandle) {
	gm, ok := m.(*Mesh)
	if !ok {
		c.log.Warn("draw skipped: mesh was not uploaded by this context", zap.Uint32("id", m.ID()))
		return
	}
	gm.draw()
}

func (c *Context) Now() float32 {
	return float32(time.Since(c.start).Seconds())
}

// ReadPixels reads the current framebuffer as tightly packed RGBA rows,
// bottom row first.
func (c *Context) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func setCap(cap uint32, enabled bool) {
	if enabled {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}
