// Package app implements the demo's window, GPU setup and frame loop.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spinning-wgmi/internal/config"
	"github.com/Faultbox/spinning-wgmi/internal/demo"
	"github.com/Faultbox/spinning-wgmi/internal/engine/animation"
	"github.com/Faultbox/spinning-wgmi/internal/engine/debug"
	"github.com/Faultbox/spinning-wgmi/internal/engine/gpu"
	"github.com/Faultbox/spinning-wgmi/internal/engine/gpu/shaders"
	"github.com/Faultbox/spinning-wgmi/internal/engine/input"
	"github.com/Faultbox/spinning-wgmi/internal/engine/input/keymap"
	"github.com/Faultbox/spinning-wgmi/internal/engine/render"
	"github.com/Faultbox/spinning-wgmi/internal/engine/scene"
	"github.com/Faultbox/spinning-wgmi/internal/engine/window"
	"github.com/Faultbox/spinning-wgmi/internal/logger"
)

// App is the running demo.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window *window.Window
	input  *input.Input
	ctx    *gpu.Context
	meshes gpu.MeshFactory

	program       render.Program
	skyboxProgram render.Program
	cubemap       scene.TextureHandle
	diffuse       scene.TextureHandle

	renderer *render.Renderer
	rig      *demo.Rig
	root     scene.Node
	skybox   *scene.Node
	animator *animation.Animator
	controls *demo.Controls
	shots    *debug.ScreenshotCapture
}

// New opens the window and uploads the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.String("style", cfg.Head.Style),
		zap.Int("tessellation", cfg.Head.Tessellation),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := a.setup(); err != nil {
		a.Close()
		return nil, err
	}

	a.log.Info("initialized")
	return a, nil
}

// setup runs after the GL context exists.
func (a *App) setup() error {
	var err error
	if a.ctx, err = gpu.Init(); err != nil {
		return err
	}
	width, height := a.window.Size()
	a.ctx.Viewport(width, height)

	if err := a.loadPrograms(); err != nil {
		return err
	}

	if a.root, err = demo.BuildScene(a.cfg, &a.meshes); err != nil {
		return err
	}
	if a.cfg.Render.Skybox != "" {
		if err := a.loadSkybox(); err != nil {
			return err
		}
	}
	if path := a.cfg.Head.DiffuseMap; path != "" {
		if a.diffuse, err = gpu.LoadTexture2D(path); err != nil {
			return fmt.Errorf("loading diffuse map: %w", err)
		}
		n := demo.ApplyDiffuseMap(&a.root, a.diffuse)
		a.log.Info("diffuse map loaded", zap.String("path", path), zap.Int("materials", n))
	}

	if a.renderer, err = demo.NewRenderer(a.cfg, a.window.Aspect(), a.program, a.skyboxProgram); err != nil {
		return err
	}
	if a.animator, err = demo.NewAnimator(a.cfg, &a.root); err != nil {
		return err
	}

	keys, err := keymap.Parse(a.cfg.Controls)
	if err != nil {
		return err
	}
	a.input = input.New(keys)
	if a.rig, err = demo.NewRig(a.cfg.Render.Camera); err != nil {
		return err
	}
	a.controls = demo.NewControls(a.renderer, &a.root, a.animator, a.rig)
	a.shots = debug.NewScreenshotCapture(a.cfg.Capture.Dir, a.cfg.Capture.Prefix)
	return nil
}

func (a *App) loadPrograms() error {
	var err error
	if dir := a.cfg.Render.ShaderDir; dir != "" {
		a.program, err = gpu.LoadProgram(filepath.Join(dir, "scene.vert"), filepath.Join(dir, "scene.frag"))
		if err != nil {
			return fmt.Errorf("scene program: %w", err)
		}
		a.skyboxProgram, err = gpu.LoadProgram(filepath.Join(dir, "skybox.vert"), filepath.Join(dir, "skybox.frag"))
		if err != nil {
			return fmt.Errorf("skybox program: %w", err)
		}
		a.log.Info("shaders loaded", zap.String("dir", dir))
		return nil
	}

	if a.program, err = gpu.CompileProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader); err != nil {
		return fmt.Errorf("scene program: %w", err)
	}
	if a.skyboxProgram, err = gpu.CompileProgram(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader); err != nil {
		return fmt.Errorf("skybox program: %w", err)
	}
	return nil
}

func (a *App) loadSkybox() error {
	var err error
	a.cubemap, err = gpu.LoadCubemap(a.cfg.Render.Skybox, a.cfg.Render.SkyboxExt)
	if err != nil {
		return fmt.Errorf("loading skybox: %w", err)
	}
	sky, err := scene.BuildSkybox(&a.meshes, a.cubemap)
	if err != nil {
		return err
	}
	a.skybox = &sky
	a.log.Info("skybox loaded", zap.String("dir", a.cfg.Render.Skybox))
	return nil
}

// Run drives the frame loop until the window closes or Quit is pressed.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if a.cfg.Window.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Window.FPSLimit)
	}

	a.log.Info("starting frame loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Input
		if a.input.Update() {
			break
		}
		a.handleInput()
		if a.controls.QuitRequested {
			break
		}

		// 2. Animate
		a.animator.Update(&a.root, float32(dt))

		// 3. Render
		if err := a.renderer.Render(a.ctx, a.rig.Camera(), &a.root); err != nil {
			return err
		}
		if a.skybox != nil {
			if err := a.renderer.DrawSkybox(a.ctx, a.skybox, a.rig.Camera().View()); err != nil {
				return err
			}
		}
		if a.cfg.Render.ShowStats {
			a.renderer.LogFrame()
		}
		if a.controls.CaptureRequested {
			a.controls.CaptureRequested = false
			a.capture()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			if a.cfg.Render.ShowStats {
				stats := a.renderer.LastFrame()
				a.window.SetTitle(fmt.Sprintf("%s - %d fps, %d draws", a.cfg.Window.Title, frameCount, stats.Draws))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if spare := frameBudget - time.Since(now); spare > 0 {
				time.Sleep(spare)
			}
		}
	}

	a.log.Info("frame loop stopped")
	return nil
}

func (a *App) handleInput() {
	for _, e := range a.input.Events() {
		if e.Type == input.EventWindowResize {
			width, height := a.window.Size()
			a.ctx.Viewport(width, height)
			a.renderer.Projection = demo.Projection(a.cfg.Render, a.window.Aspect())
		}
	}
	for _, act := range a.input.Actions() {
		a.controls.Handle(act)
	}
	if dx, dy := a.input.Drag(); dx != 0 || dy != 0 {
		a.rig.Drag(dx, dy)
	}
	if w := a.input.Wheel(); w != 0 {
		a.rig.Wheel(w)
	}
}

func (a *App) capture() {
	var (
		pixels        []byte
		width, height int
		err           error
	)
	if a.cfg.Capture.Width > 0 && a.cfg.Capture.Height > 0 {
		width, height = a.cfg.Capture.Width, a.cfg.Capture.Height
		pixels, err = a.renderOffscreen(width, height)
		if err != nil {
			a.log.Error("screenshot failed", zap.Error(err))
			return
		}
	} else {
		width, height = a.window.Size()
		pixels = a.ctx.ReadPixels(width, height)
	}

	path, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// renderOffscreen draws the current frame again into a framebuffer of the
// given size and reads it back.
func (a *App) renderOffscreen(width, height int) ([]byte, error) {
	fb, err := gpu.NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	defer fb.Destroy()

	restore := fb.BindWithViewport()
	defer restore()

	projection := a.renderer.Projection
	a.renderer.Projection = demo.Projection(a.cfg.Render, fb.Aspect())
	defer func() { a.renderer.Projection = projection }()

	if err := a.renderer.Render(a.ctx, a.rig.Camera(), &a.root); err != nil {
		return nil, err
	}
	if a.skybox != nil {
		if err := a.renderer.DrawSkybox(a.ctx, a.skybox, a.rig.Camera().View()); err != nil {
			return nil, err
		}
	}
	return fb.ReadPixels(), nil
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.ctx != nil {
		a.meshes.Destroy()
		gpu.DestroyTexture(a.cubemap)
		gpu.DestroyTexture(a.diffuse)
		gpu.DeleteProgram(a.program)
		gpu.DeleteProgram(a.skyboxProgram)
	}
	if a.window != nil {
		a.window.Close()
	}
}
