package render

import (
	"fmt"

	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// UniformKind tags the payload of a Uniform.
type UniformKind int

const (
	UniformFloat UniformKind = iota
	UniformInt
	UniformVec3
	UniformVec4
	UniformMat4
)

func (k UniformKind) String() string {
	switch k {
	case UniformFloat:
		return "float"
	case UniformInt:
		return "int"
	case UniformVec3:
		return "vec3"
	case UniformVec4:
		return "vec4"
	case UniformMat4:
		return "mat4"
	default:
		return fmt.Sprintf("UniformKind(%d)", int(k))
	}
}

// Uniform is a shader uniform value. Only the field selected by Kind is
// meaningful.
type Uniform struct {
	Kind  UniformKind
	Float float32
	Int   int32
	Vec3  math.Vec3
	Vec4  math.Vec4
	Mat4  math.Mat4
}

// Float returns a float uniform.
func Float(f float32) Uniform { return Uniform{Kind: UniformFloat, Float: f} }

// Int returns an int uniform. Sampler units are ints.
func Int(i int32) Uniform { return Uniform{Kind: UniformInt, Int: i} }

// Bool returns an int uniform holding 0 or 1.
func Bool(b bool) Uniform {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Vec3v returns a vec3 uniform.
func Vec3v(v math.Vec3) Uniform { return Uniform{Kind: UniformVec3, Vec3: v} }

// Vec4v returns a vec4 uniform.
func Vec4v(v math.Vec4) Uniform { return Uniform{Kind: UniformVec4, Vec4: v} }

// Mat4v returns a mat4 uniform.
func Mat4v(m math.Mat4) Uniform { return Uniform{Kind: UniformMat4, Mat4: m} }

func (u Uniform) String() string {
	switch u.Kind {
	case UniformFloat:
		return fmt.Sprintf("float(%g)", u.Float)
	case UniformInt:
		return fmt.Sprintf("int(%d)", u.Int)
	case UniformVec3:
		return fmt.Sprintf("vec3(%g, %g, %g)", u.Vec3.X, u.Vec3.Y, u.Vec3.Z)
	case UniformVec4:
		return fmt.Sprintf("vec4(%g, %g, %g, %g)", u.Vec4[0], u.Vec4[1], u.Vec4[2], u.Vec4[3])
	default:
		return u.Kind.String()
	}
}

// uniformWriter pushes uniforms until the first failure and keeps that error.
type uniformWriter struct {
	ctx Context
	err error
}

func (w *uniformWriter) set(name string, u Uniform) {
	if w.err != nil {
		return
	}
	if err := w.ctx.SetUniform(name, u); err != nil {
		w.err = fmt.Errorf("set uniform %s: %w", name, err)
	}
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
