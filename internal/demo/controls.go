package demo

import (
	"go.uber.org/zap"

	"github.com/Faultbox/spinning-wgmi/internal/engine/animation"
	"github.com/Faultbox/spinning-wgmi/internal/engine/input/keymap"
	"github.com/Faultbox/spinning-wgmi/internal/engine/render"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/internal/logger"
)

// Controls applies key actions to the running demo.
type Controls struct {
	Renderer *render.Renderer
	Root     *scene.Node
	Animator *animation.Animator
	Rig      *Rig

	// Set by Quit and Screenshot; the frame loop clears CaptureRequested.
	QuitRequested    bool
	CaptureRequested bool

	log *zap.Logger
}

// NewControls returns controls acting on the given demo state.
func NewControls(r *render.Renderer, root *scene.Node, a *animation.Animator, rig *Rig) *Controls {
	return &Controls{
		Renderer: r,
		Root:     root,
		Animator: a,
		Rig:      rig,
		log:      logger.Named("controls"),
	}
}

// Handle applies a.
func (c *Controls) Handle(a keymap.Action) {
	switch a {
	case keymap.Quit:
		c.QuitRequested = true
	case keymap.Screenshot:
		c.CaptureRequested = true
	case keymap.ToggleWireframe:
		c.Renderer.Wireframe = !c.Renderer.Wireframe
	case keymap.ToggleRainbow:
		SetRainbow(c.Root, !Rainbow(c.Root))
	case keymap.ToggleClipPolicy:
		if c.Renderer.ClipPolicy == render.ClipLeaky {
			c.Renderer.ClipPolicy = render.ClipScoped
		} else {
			c.Renderer.ClipPolicy = render.ClipLeaky
		}
	case keymap.TogglePause:
		c.Animator.Paused = !c.Animator.Paused
	case keymap.ResetCamera:
		c.Rig.Reset()
	default:
		return
	}
	c.log.Debug("action",
		zap.Stringer("action", a),
		zap.Bool("wireframe", c.Renderer.Wireframe),
		zap.Stringer("clip_policy", c.Renderer.ClipPolicy),
		zap.Bool("paused", c.Animator.Paused))
}

// Rainbow reports whether any mesh node under root uses rainbow shading.
func Rainbow(root *scene.Node) bool {
	on := false
	root.Walk(func(n *scene.Node, _ int) {
		if len(n.Model.Meshes) > 0 && n.RainbowColors {
			on = true
		}
	})
	return on
}

// SetRainbow switches rainbow shading for every mesh node under root.
func SetRainbow(root *scene.Node, on bool) {
	root.Walk(func(n *scene.Node, _ int) {
		if len(n.Model.Meshes) > 0 {
			n.RainbowColors = on
		}
	})
}
