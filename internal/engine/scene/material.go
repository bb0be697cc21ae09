package scene

import "github.com/Faultbox/spinning-wgmi/pkg/math"

// Material holds Phong parameters and the optional texture maps bound
// while a mesh is drawn. A zero TextureHandle leaves its map unbound.
type Material struct {
	Ambient  math.Vec4
	Diffuse  math.Vec4
	Specular math.Vec3
	PhongExp float32

	DiffuseMap    TextureHandle
	SpecularMap   TextureHandle
	CubeMap       TextureHandle
	NormalMap     TextureHandle
	HeightMap     TextureHandle
	AmbientMap    TextureHandle
	RoughnessMap  TextureHandle
	ReflectionMap TextureHandle

	// Blend weights used instead of 1 when the cube or reflection map is set.
	CubeMapFactor       float32
	ReflectionMapFactor float32
}

// DefaultMaterial returns a white material with no maps.
func DefaultMaterial() Material {
	return Material{
		Ambient:  math.Vec4{1, 1, 1, 1},
		Diffuse:  math.Vec4{1, 1, 1, 1},
		Specular: math.Vec3{X: 1, Y: 1, Z: 1},
		PhongExp: 32,
	}
}
