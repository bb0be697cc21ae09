package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/internal/engine/shapes"
	"github.com/Faultbox/spinning-wgmi/internal/logger"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// Node names set by the builders.
const (
	NameHead     = "head"
	NameVerts    = "verts"
	NameHoriz    = "horiz"
	NameSkeleton = "skeleton"
	NameFace     = "face"
	NameSkybox   = "skybox"
)

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

func upload(f MeshFactory, what string, t *mesh.Template) (MeshHandle, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	h, err := f.Upload(t)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", what, err)
	}
	logger.Named("scene").Debug("mesh uploaded",
		zap.String("mesh", what),
		zap.Int("vertices", t.VertexCount()),
		zap.Int("triangles", t.TriangleCount()))
	return h, nil
}

// uploader releases the meshes it uploaded when a later upload fails, so a
// failed build leaves nothing behind on the GPU.
type uploader struct {
	f    MeshFactory
	done []MeshHandle
}

func (u *uploader) upload(what string, t *mesh.Template) (MeshHandle, error) {
	h, err := upload(u.f, what, t)
	if err != nil {
		u.rollback()
		return nil, err
	}
	u.done = append(u.done, h)
	return h, nil
}

func (u *uploader) rollback() {
	for _, h := range u.done {
		if err := u.f.Release(h); err != nil {
			logger.Named("scene").Warn("mesh release failed", zap.Uint32("id", h.ID()), zap.Error(err))
		}
	}
	u.done = nil
}

// BuildWGMIHead builds the torus-ring head:
//
//	head
//	├── verts: three horizontal rings stacked along Y at latitudes 315°, 0° and 45°
//	└── horiz: four copies of one torus rotated 0°, 45°, 90° and 135° about Z,
//	           stood upright by a 90° turn about X
//
// The horizontal rings share a single uploaded torus.
func BuildWGMIHead(f MeshFactory, radius, thickness float32, tessellation int) (Node, error) {
	u := &uploader{f: f}
	h, err := u.upload("torus", shapes.Torus(radius, thickness, tessellation))
	if err != nil {
		return Node{}, err
	}
	torus := NewNode("torus")
	torus.Kind = KindStaticMesh
	torus.Model.Add(h, DefaultMaterial())

	horiz := NewNode(NameHoriz)
	for i := 0; i < 4; i++ {
		ring := torus.Clone()
		ring.Name = fmt.Sprintf("ring-h%d", i)
		ring.Rotation.Z = radians(45) * float32(i)
		horiz.AddChild(ring)
	}
	horiz.Rotation.X = radians(90)

	verts := NewNode(NameVerts)
	start := radians(315)
	for i := 0; i < 3; i++ {
		s, c := math32.Sincos(start + float32(i)*radians(45))
		name := fmt.Sprintf("ring-v%d", i)
		h, err := u.upload(name, shapes.Torus(radius*c, thickness, tessellation))
		if err != nil {
			return Node{}, err
		}
		ring := NewNode(name)
		ring.Kind = KindStaticMesh
		ring.Model.Add(h, DefaultMaterial())
		ring.Translation.Y = radius * s
		verts.AddChild(ring)
	}

	head := NewNode(NameHead)
	head.AddChild(verts)
	head.AddChild(horiz)
	return head, nil
}

// BuildSkeletonHead builds a head from a sphere skeleton with the face
// patch carved from a sphere of the same radius. Both use rainbow shading.
func BuildSkeletonHead(f MeshFactory, radius, angleThickness float32, slices, tessellation int) (Node, error) {
	u := &uploader{f: f}
	sh, err := u.upload(NameSkeleton, shapes.SphereSkeleton(radius, angleThickness, slices, tessellation))
	if err != nil {
		return Node{}, err
	}
	fh, err := u.upload(NameFace, shapes.WGMIFace(radius, tessellation))
	if err != nil {
		return Node{}, err
	}

	skeleton := NewNode(NameSkeleton)
	skeleton.Kind = KindStaticMesh
	skeleton.RainbowColors = true
	skeleton.Model.Add(sh, DefaultMaterial())

	face := NewNode(NameFace)
	face.Kind = KindStaticMesh
	face.RainbowColors = true
	face.PolygonOffset = math.Vec2{X: -1, Y: -1}
	face.Model.Add(fh, DefaultMaterial())

	head := NewNode(NameHead)
	head.AddChild(skeleton)
	head.AddChild(face)
	return head, nil
}

// BuildSkybox returns a node holding a 2-unit cube textured by cubemap.
func BuildSkybox(f MeshFactory, cubemap TextureHandle) (Node, error) {
	h, err := upload(f, NameSkybox, shapes.Cube(2))
	if err != nil {
		return Node{}, err
	}
	mat := DefaultMaterial()
	mat.CubeMap = cubemap
	mat.CubeMapFactor = 1

	sky := NewNode(NameSkybox)
	sky.Model.Add(h, mat)
	return sky, nil
}
