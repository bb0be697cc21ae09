package shapes

import (
	"fmt"
	"sort"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
)

// Params carries the union of generator parameters. Generate replaces zero
// fields with the generator's defaults; to keep an explicit zero, start from
// Builder.Defaults and call Build directly.
type Params struct {
	Radius         float32
	Thickness      float32
	Z              float32
	Length         float32
	AngleThickness float32
	Width          float32
	Height         int
	Slices         int
	Tessellation   int
	Flip           bool
}

// Builder produces a template from params that already have defaults applied.
type Builder struct {
	Name        string
	Description string
	Defaults    Params
	Build       func(p Params) *mesh.Template
}

var registry = map[string]Builder{}

func register(b Builder) {
	registry[b.Name] = b
}

func init() {
	register(Builder{
		Name: "sphere", Description: "UV sphere",
		Defaults: Params{Radius: 1, Tessellation: DefaultTessellation},
		Build:    func(p Params) *mesh.Template { return Sphere(p.Radius, p.Tessellation) },
	})
	register(Builder{
		Name: "face", Description: "face patch carved from a sphere",
		Defaults: Params{Radius: 1, Tessellation: DefaultTessellation},
		Build:    func(p Params) *mesh.Template { return WGMIFace(p.Radius, p.Tessellation) },
	})
	register(Builder{
		Name: "zero", Description: "flat annulus of the zero glyph",
		Defaults: Params{Radius: 1, Z: 0.05, Thickness: 0.1, Tessellation: DefaultTessellation},
		Build: func(p Params) *mesh.Template {
			return ZeroCharacter(p.Radius, p.Z, p.Thickness, p.Tessellation, p.Flip)
		},
	})
	register(Builder{
		Name: "ring", Description: "cylindrical band",
		Defaults: Params{Radius: 1, Thickness: 0.1, Tessellation: DefaultTessellation},
		Build: func(p Params) *mesh.Template {
			return Ring(p.Radius, p.Thickness, p.Tessellation, p.Flip)
		},
	})
	register(Builder{
		Name: "rect-circle", Description: "ring with a square cross-section",
		Defaults: Params{Radius: 1, Thickness: 0.1, Tessellation: DefaultTessellation},
		Build:    func(p Params) *mesh.Template { return RectCircle(p.Radius, p.Thickness, p.Tessellation) },
	})
	register(Builder{
		Name: "sphere-rings", Description: "latitude band walls",
		Defaults: Params{Radius: 1, AngleThickness: 0.1, Slices: 8, Tessellation: DefaultTessellation},
		Build: func(p Params) *mesh.Template {
			return SphereRings(p.Radius, p.AngleThickness, p.Slices, p.Tessellation)
		},
	})
	register(Builder{
		Name: "sphere-zeros", Description: "latitude band caps",
		Defaults: Params{Radius: 1, AngleThickness: 0.1, Slices: 8, Tessellation: DefaultTessellation},
		Build: func(p Params) *mesh.Template {
			return SphereZeros(p.Radius, p.AngleThickness, p.Slices, p.Tessellation)
		},
	})
	register(Builder{
		Name: "sphere-skeleton", Description: "latitude bands plus meridian rings",
		Defaults: Params{Radius: 1, AngleThickness: 0.1, Slices: 8, Tessellation: DefaultTessellation},
		Build: func(p Params) *mesh.Template {
			return SphereSkeleton(p.Radius, p.AngleThickness, p.Slices, p.Tessellation)
		},
	})
	register(Builder{
		Name: "torus", Description: "torus swept about Y",
		Defaults: Params{Radius: 1, Thickness: 0.05, Tessellation: DefaultTessellation},
		Build:    func(p Params) *mesh.Template { return Torus(p.Radius, p.Thickness, p.Tessellation) },
	})
	register(Builder{
		Name: "cube", Description: "8-vertex cube",
		Defaults: Params{Width: 1},
		Build:    func(p Params) *mesh.Template { return Cube(p.Width) },
	})
	register(Builder{
		Name: "plane", Description: "unit-cell grid in z=0",
		Defaults: Params{Width: 10, Height: 10},
		Build:    func(p Params) *mesh.Template { return Plane(int(p.Width), p.Height) },
	})
	register(Builder{
		Name: "circle", Description: "fan-triangulated disk",
		Defaults: Params{Radius: 1, Tessellation: 32},
		Build:    func(p Params) *mesh.Template { return Circle(p.Radius, p.Tessellation) },
	})
	register(Builder{
		Name: "cylinder", Description: "uncapped cylinder along Z",
		Defaults: Params{Radius: 1, Length: 2, Tessellation: 32},
		Build: func(p Params) *mesh.Template {
			return Cylinder(p.Radius, p.Length, p.Tessellation)
		},
	})
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, bool) {
	b, ok := registry[name]
	return b, ok
}

// WithDefaults fills every zero field of p from the builder's defaults.
func (b Builder) WithDefaults(p Params) Params {
	d := b.Defaults
	if p.Radius == 0 {
		p.Radius = d.Radius
	}
	if p.Thickness == 0 {
		p.Thickness = d.Thickness
	}
	if p.Z == 0 {
		p.Z = d.Z
	}
	if p.Length == 0 {
		p.Length = d.Length
	}
	if p.AngleThickness == 0 {
		p.AngleThickness = d.AngleThickness
	}
	if p.Width == 0 {
		p.Width = d.Width
	}
	if p.Height == 0 {
		p.Height = d.Height
	}
	if p.Slices == 0 {
		p.Slices = d.Slices
	}
	if p.Tessellation == 0 {
		p.Tessellation = d.Tessellation
	}
	return p
}

// Generate builds the named shape, applying defaults to p.
func Generate(name string, p Params) (*mesh.Template, error) {
	b, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", name)
	}
	return b.Build(b.WithDefaults(p)), nil
}
