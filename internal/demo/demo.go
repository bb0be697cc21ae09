// Package demo assembles the spinning head scene from configuration and
// applies the demo's key actions. It holds no GPU or window state so the
// frame loop's decisions can be tested headless.
package demo

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/spinning-wgmi/internal/config"
	"github.com/Faultbox/spinning-wgmi/internal/engine/animation"
	"github.com/Faultbox/spinning-wgmi/internal/engine/debug"
	"github.com/Faultbox/spinning-wgmi/internal/engine/lighting"
	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/internal/engine/render"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/pkg/math"
)

// RootName names the scene root.
const RootName = "root"

// BuildHead builds the head selected by cfg.Style.
func BuildHead(cfg config.HeadConfig, f scene.MeshFactory) (scene.Node, error) {
	switch cfg.Style {
	case config.StyleTorus:
		return scene.BuildWGMIHead(f, cfg.Radius, cfg.Thickness, cfg.Tessellation)
	case config.StyleSkeleton:
		return scene.BuildSkeletonHead(f, cfg.Radius, cfg.AngleThickness, cfg.Slices, cfg.Tessellation)
	default:
		return scene.Node{}, fmt.Errorf("unknown head style %q", cfg.Style)
	}
}

// headBounds is the box the head geometry occupies before animation.
func headBounds(cfg config.HeadConfig) mesh.Bounds {
	r := cfg.Radius + cfg.Thickness
	if cfg.Style == config.StyleSkeleton {
		r = cfg.Radius
	}
	return mesh.Bounds{
		Min: math.Vec3{X: -r, Y: -r, Z: -r},
		Max: math.Vec3{X: r, Y: r, Z: r},
	}
}

// BuildScene returns the root node holding the head and, when enabled,
// its bounding box.
func BuildScene(cfg *config.Config, f scene.MeshFactory) (scene.Node, error) {
	head, err := BuildHead(cfg.Head, f)
	if err != nil {
		return scene.Node{}, fmt.Errorf("building head: %w", err)
	}

	root := scene.NewNode(RootName)
	root.AddChild(head)

	if cfg.Render.ShowBounds {
		box, err := debug.BoundsNode(f, headBounds(cfg.Head))
		if err != nil {
			return scene.Node{}, fmt.Errorf("building bounds: %w", err)
		}
		root.AddChild(box)
	}
	return root, nil
}

// ApplyDiffuseMap binds h as the diffuse map of every head material and
// returns how many materials changed. The bounds overlay is left alone.
func ApplyDiffuseMap(root *scene.Node, h scene.TextureHandle) int {
	changed := 0
	root.Walk(func(n *scene.Node, _ int) {
		if n.Name == debug.BoundsName {
			return
		}
		for i := range n.Model.Materials {
			n.Model.Materials[i].DiffuseMap = h
			changed++
		}
	})
	return changed
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// NewAnimator returns the head spin plus a colour rotation for every node
// of root that draws meshes.
func NewAnimator(cfg *config.Config, root *scene.Node) (*animation.Animator, error) {
	fn, err := animation.Easing(cfg.Animation.Easing)
	if err != nil {
		return nil, err
	}

	a := &animation.Animator{Paused: cfg.Animation.Paused}
	a.Add(animation.Loop(scene.NameHead, animation.RotationY, 0, 2*math32.Pi, seconds(cfg.Animation.SpinPeriod), fn))

	color := seconds(cfg.Animation.ColorPeriod)
	for _, name := range colorTargets(root) {
		a.Add(
			animation.Loop(name, animation.ColorRotationZ, 0, 2*math32.Pi, color, fn),
			animation.Yoyo(name, animation.ColorOffset, 0, 0.25, color/2, fn),
		)
	}
	return a, nil
}

func colorTargets(root *scene.Node) []string {
	var names []string
	root.Walk(func(n *scene.Node, _ int) {
		if len(n.Model.Meshes) > 0 && n.Name != debug.BoundsName {
			names = append(names, n.Name)
		}
	})
	return names
}

// NewRenderer builds a renderer from cfg for a viewport of the given
// aspect ratio.
func NewRenderer(cfg *config.Config, aspect float32, program, skybox render.Program) (*render.Renderer, error) {
	policy, err := render.ParseClipPolicy(cfg.Render.ClipPolicy)
	if err != nil {
		return nil, err
	}
	r := render.New(Projection(cfg.Render, aspect), program, skybox)
	r.ClipPolicy = policy
	r.Wireframe = cfg.Render.Wireframe
	r.ClearColor = math.Vec4(cfg.Render.ClearColor)
	r.Sun = lighting.SunFrom(vec3(cfg.Lighting.Sun))
	r.Spot = lighting.SpotAt(vec3(cfg.Lighting.Spot))
	return r, nil
}

// Projection returns the perspective matrix for cfg.
func Projection(cfg config.RenderConfig, aspect float32) math.Mat4 {
	return math.Perspective(cfg.FOV*math32.Pi/180, aspect, cfg.Near, cfg.Far)
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
