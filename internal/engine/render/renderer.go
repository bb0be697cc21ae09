package render

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/spinning-wgmi/internal/engine/lighting"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/internal/logger"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// ErrModelMismatch is returned when a node has a different number of meshes
// and materials.
var ErrModelMismatch = errors.New("model meshes and materials differ in length")

// ClipPolicy decides how long a node's clip distance stays enabled.
type ClipPolicy int

const (
	// ClipLeaky leaves the clip distance enabled for the rest of the frame
	// once any node turns it on, so later siblings are clipped too.
	ClipLeaky ClipPolicy = iota
	// ClipScoped restores the previous clip state after the node's subtree.
	ClipScoped
)

func (p ClipPolicy) String() string {
	switch p {
	case ClipLeaky:
		return "leaky"
	case ClipScoped:
		return "scoped"
	default:
		return fmt.Sprintf("ClipPolicy(%d)", int(p))
	}
}

// ParseClipPolicy parses "leaky" or "scoped".
func ParseClipPolicy(s string) (ClipPolicy, error) {
	switch strings.ToLower(s) {
	case "leaky", "":
		return ClipLeaky, nil
	case "scoped":
		return ClipScoped, nil
	default:
		return 0, fmt.Errorf("unknown clip policy %q", s)
	}
}

// Texture units of the material maps.
const (
	UnitDiffuse = iota
	UnitSpecular
	UnitCube
	UnitNormal
	UnitHeight
	UnitAmbient
	UnitRoughness
	UnitReflection
)

// samplers maps sampler uniforms to their texture unit.
var samplers = []struct {
	name string
	unit int32
}{
	{"uDiffuseMap", UnitDiffuse},
	{"uSpecularMap", UnitSpecular},
	{"uCubeMap", UnitCube},
	{"uNormalMap", UnitNormal},
	{"uHeightMap", UnitHeight},
	{"uAmbientMap", UnitAmbient},
	{"uRoughnessMap", UnitRoughness},
	{"uReflectionMap", UnitReflection},
}

// Stats counts the work of one Render call.
type Stats struct {
	Nodes  int // nodes visited, hidden ones included
	Hidden int // nodes skipped with their subtree
	Draws  int // meshes drawn
}

// Renderer draws a scene tree with a Phong program and a skybox program.
type Renderer struct {
	Projection    math.Mat4
	Program       Program
	SkyboxProgram Program

	Sun  lighting.Sun
	Spot lighting.Spot

	// ClipPlane is pushed as uClipPlane for gl_ClipDistance[0].
	ClipPlane  math.Vec4
	ClipPolicy ClipPolicy

	// Wireframe draws every polygon as lines.
	Wireframe  bool
	ClearColor math.Vec4

	clipOn bool
	stats  Stats
	log    *zap.Logger
}

// New creates a renderer with the default lights and clip plane.
func New(projection math.Mat4, program, skybox Program) *Renderer {
	return &Renderer{
		Projection:    projection,
		Program:       program,
		SkyboxProgram: skybox,
		Sun:           lighting.DefaultSun(),
		Spot:          lighting.DefaultSpot(),
		ClipPlane:     math.Vec4{0, 1, 0, -1},
		ClearColor:    math.Vec4{0, 0, 0, 1},
		log:           logger.Named("render"),
	}
}

// LastFrame returns the counters of the most recent Render call.
func (r *Renderer) LastFrame() Stats {
	return r.stats
}

func (r *Renderer) fillMode() PolygonMode {
	if r.Wireframe {
		return PolygonLine
	}
	return PolygonFill
}

// Render clears the frame, pushes the per-frame uniforms and draws root.
// Polygon offset fill is enabled for the duration of the call.
func (r *Renderer) Render(ctx Context, cam Camera, root *scene.Node) error {
	r.stats = Stats{}
	ctx.Clear(r.ClearColor[0], r.ClearColor[1], r.ClearColor[2], r.ClearColor[3])
	ctx.SetPolygonOffsetFill(true)
	defer ctx.SetPolygonOffsetFill(false)
	ctx.SetPolygonMode(r.fillMode())
	if r.ClipPolicy == ClipScoped {
		ctx.SetClipDistance(false)
		r.clipOn = false
	}

	ctx.UseProgram(r.Program)
	w := uniformWriter{ctx: ctx}
	w.set("uCameraPos", Vec3v(cam.Position()))

	w.set("uSun.direction", Vec3v(r.Sun.Direction))
	w.set("uSun.diffuse", Vec3v(r.Sun.Diffuse))
	w.set("uSun.ambient", Vec3v(r.Sun.Ambient))
	w.set("uSun.specular", Vec3v(r.Sun.Specular))

	w.set("uSpot.position", Vec3v(r.Spot.Position))
	w.set("uSpot.diffuse", Vec3v(r.Spot.Diffuse))
	w.set("uSpot.ambient", Vec3v(r.Spot.Ambient))
	w.set("uSpot.specular", Vec3v(r.Spot.Specular))

	for _, s := range samplers {
		w.set(s.name, Int(s.unit))
	}
	w.set("uNow", Float(ctx.Now()))
	w.set("uClipPlane", Vec4v(r.ClipPlane))
	w.set("uViewProj", Mat4v(r.Projection.Mul(cam.View())))
	if w.err != nil {
		return fmt.Errorf("render: %w", w.err)
	}

	if err := r.Draw(ctx, root, math.Identity(), math.Vec2{}); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Draw draws n and its subtree. parent is the accumulated model matrix and
// offset the accumulated polygon offset of n's ancestors.
//
// The node's model, rainbow and colour uniforms are pushed before the
// visibility check, so a hidden node still leaves them set. A hidden node
// hides its whole subtree.
func (r *Renderer) Draw(ctx Context, n *scene.Node, parent math.Mat4, offset math.Vec2) error {
	r.stats.Nodes++
	model := parent.Mul(n.LocalTransform())

	w := uniformWriter{ctx: ctx}
	w.set("uModel", Mat4v(model))
	w.set("uRainbow", Float(boolFloat(n.RainbowColors)))
	w.set("uColorRotation", Mat4v(n.ColorTransform()))
	w.set("uColorOffset", Float(n.ColorOffset))
	if w.err != nil {
		return fmt.Errorf("node %q: %w", n.Name, w.err)
	}

	if !n.Visible {
		r.stats.Hidden++
		return nil
	}

	clipWas := r.clipOn
	if n.Clipping {
		ctx.SetClipDistance(true)
		r.clipOn = true
	}

	offset = offset.Add(n.PolygonOffset)
	ctx.PolygonOffset(offset.X, offset.Y)

	if err := r.drawModel(ctx, n); err != nil {
		return fmt.Errorf("node %q: %w", n.Name, err)
	}

	for i := range n.Children {
		if err := r.Draw(ctx, &n.Children[i], model, offset); err != nil {
			return err
		}
	}

	if r.ClipPolicy == ClipScoped && n.Clipping && !clipWas {
		ctx.SetClipDistance(false)
		r.clipOn = false
	}
	return nil
}

func (r *Renderer) drawModel(ctx Context, n *scene.Node) error {
	meshes, mats := n.Model.Meshes, n.Model.Materials
	if len(meshes) != len(mats) {
		return fmt.Errorf("%w: %d meshes, %d materials", ErrModelMismatch, len(meshes), len(mats))
	}
	if len(meshes) == 0 {
		return nil
	}

	if n.ShowLineMesh {
		ctx.SetPolygonMode(PolygonLine)
	}
	for i, m := range meshes {
		mat := &mats[i]
		w := uniformWriter{ctx: ctx}
		w.set("uDiffuseMapFactor", Float(present(mat.DiffuseMap, 1)))
		w.set("uSpecularMapFactor", Float(present(mat.SpecularMap, 1)))
		w.set("uCubeMapFactor", Float(present(mat.CubeMap, mat.CubeMapFactor)))
		w.set("uNormalMapFactor", Float(present(mat.NormalMap, 1)))
		w.set("uAmbientMapFactor", Float(present(mat.AmbientMap, 1)))
		w.set("uRoughnessMapFactor", Float(present(mat.RoughnessMap, 1)))
		w.set("uReflectionMapFactor", Float(present(mat.ReflectionMap, mat.ReflectionMapFactor)))

		w.set("uMat.ambient", Vec4v(mat.Ambient))
		w.set("uMat.diffuse", Vec4v(mat.Diffuse))
		w.set("uMat.specular", Vec3v(mat.Specular))
		w.set("uMat.phongExp", Float(mat.PhongExp))
		w.set("uIsWater", Bool(n.Kind.IsWater()))
		w.set("uIsWaterSurface", Bool(n.Kind == scene.KindWaterSurface))
		if w.err != nil {
			return fmt.Errorf("mesh %d: %w", i, w.err)
		}

		ctx.BindTexture(UnitDiffuse, Texture2D, mat.DiffuseMap)
		ctx.BindTexture(UnitSpecular, Texture2D, mat.SpecularMap)
		ctx.BindTexture(UnitCube, TextureCubeMap, mat.CubeMap)
		ctx.BindTexture(UnitNormal, Texture2D, mat.NormalMap)
		ctx.BindTexture(UnitHeight, Texture2D, mat.HeightMap)
		ctx.BindTexture(UnitAmbient, Texture2D, mat.AmbientMap)
		ctx.BindTexture(UnitRoughness, Texture2D, mat.RoughnessMap)
		ctx.BindTexture(UnitReflection, Texture2D, mat.ReflectionMap)

		ctx.Draw(m)
		r.stats.Draws++
	}
	if n.ShowLineMesh {
		ctx.SetPolygonMode(r.fillMode())
	}
	return nil
}

// present returns factor when the map is bound and 0 otherwise.
func present(h scene.TextureHandle, factor float32) float32 {
	if h == 0 {
		return 0
	}
	return factor
}

// DrawSkybox draws the cube map meshes of sky around the camera. Only the
// rotation of view is used. Front faces are flipped and depth writes are
// off for the duration of the call.
func (r *Renderer) DrawSkybox(ctx Context, sky *scene.Node, view math.Mat4) error {
	ctx.UseProgram(r.SkyboxProgram)
	ctx.SetFrontFace(WindingCW)
	ctx.SetDepthMask(false)
	defer func() {
		ctx.SetFrontFace(WindingCCW)
		ctx.SetDepthMask(true)
		ctx.UseProgram(0)
	}()

	w := uniformWriter{ctx: ctx}
	w.set("uCubeMap", Int(0))
	w.set("uViewProj", Mat4v(r.Projection.Mul(view.Upper3())))
	if w.err != nil {
		return fmt.Errorf("skybox: %w", w.err)
	}

	meshes, mats := sky.Model.Meshes, sky.Model.Materials
	if len(meshes) != len(mats) {
		return fmt.Errorf("skybox: %w", ErrModelMismatch)
	}
	for i, m := range meshes {
		ctx.BindTexture(0, TextureCubeMap, mats[i].CubeMap)
		ctx.Draw(m)
	}
	return nil
}

// LogFrame writes the last frame's counters at debug level.
func (r *Renderer) LogFrame() {
	r.log.Debug("frame",
		zap.Int("nodes", r.stats.Nodes),
		zap.Int("hidden", r.stats.Hidden),
		zap.Int("draws", r.stats.Draws))
}
