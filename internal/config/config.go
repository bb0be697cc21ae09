// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Faultbox/spinning-wgmi/internal/engine/animation"
	"github.com/Faultbox/spinning-wgmi/internal/engine/input/keymap"
	"github.com/Faultbox/spinning-wgmi/internal/engine/render"
	"github.com/Faultbox/spinning-wgmi/internal/engine/shapes"
)

// Head styles.
const (
	StyleTorus    = "torus"
	StyleSkeleton = "skeleton"
)

// Camera modes.
const (
	CameraOrbit = "orbit"
	CameraFree  = "free"
)

// Config holds all demo settings.
type Config struct {
	Window    WindowConfig      `yaml:"window"`
	Head      HeadConfig        `yaml:"head"`
	Render    RenderConfig      `yaml:"render"`
	Animation AnimationConfig   `yaml:"animation"`
	Lighting  LightingConfig    `yaml:"lighting"`
	Capture   CaptureConfig     `yaml:"capture"`
	Controls  map[string]string `yaml:"controls,omitempty"` // key name -> action
	Logging   LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"`
	FPSLimit   int    `yaml:"fps_limit"`
}

// HeadConfig selects and sizes the head geometry.
type HeadConfig struct {
	Style          string  `yaml:"style"` // torus | skeleton
	Radius         float32 `yaml:"radius"`
	Thickness      float32 `yaml:"thickness"`
	Tessellation   int     `yaml:"tessellation"`
	Slices         int     `yaml:"slices"`
	AngleThickness float32 `yaml:"angle_thickness"` // radians
	DiffuseMap     string  `yaml:"diffuse_map"`     // texture image, empty for none
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	Wireframe  bool       `yaml:"wireframe"`
	Camera     string     `yaml:"camera"`      // orbit | free
	ClipPolicy string     `yaml:"clip_policy"` // leaky | scoped
	ClearColor [4]float32 `yaml:"clear_color,flow"`
	FOV        float32    `yaml:"fov"` // degrees
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	Skybox     string     `yaml:"skybox"` // cube map directory, empty for none
	SkyboxExt  string     `yaml:"skybox_ext"`
	ShaderDir  string     `yaml:"shader_dir"` // overrides the embedded shaders
	ShowBounds bool       `yaml:"show_bounds"`
	ShowStats  bool       `yaml:"show_stats"`
}

// AnimationConfig holds spin and colour timing.
type AnimationConfig struct {
	SpinPeriod  time.Duration `yaml:"spin_period"`
	ColorPeriod time.Duration `yaml:"color_period"`
	Easing      string        `yaml:"easing"`
	Paused      bool          `yaml:"paused"`
}

// LightingConfig places the lights.
type LightingConfig struct {
	Sun  [3]float32 `yaml:"sun,flow"`
	Spot [3]float32 `yaml:"spot,flow"`
}

// CaptureConfig holds screenshot settings. A zero width or height
// captures the window at its current size.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "spinning wgmi",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Head: HeadConfig{
			Style:          StyleTorus,
			Radius:         1,
			Thickness:      0.1,
			Tessellation:   shapes.DefaultTessellation,
			Slices:         8,
			AngleThickness: 0.05,
		},
		Render: RenderConfig{
			Wireframe:  true,
			Camera:     CameraOrbit,
			ClipPolicy: render.ClipLeaky.String(),
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1},
			FOV:        45,
			Near:       0.1,
			Far:        100,
			SkyboxExt:  "png",
		},
		Animation: AnimationConfig{
			SpinPeriod:  8 * time.Second,
			ColorPeriod: 4 * time.Second,
			Easing:      "linear",
		},
		Lighting: LightingConfig{
			Sun:  [3]float32{-25, 20, -25},
			Spot: [3]float32{0, 5, 5},
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "wgmi",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	check := func(bad bool, format string, args ...any) {
		if bad {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width <= 0 || c.Window.Height <= 0, "window: size %dx%d must be positive", c.Window.Width, c.Window.Height)

	h := c.Head
	check(h.Style != StyleTorus && h.Style != StyleSkeleton, "head: unknown style %q", h.Style)
	check(h.Radius <= 0, "head: radius %g must be positive", h.Radius)
	check(h.Thickness <= 0, "head: thickness %g must be positive", h.Thickness)
	check(h.Tessellation < 3, "head: tessellation %d must be at least 3", h.Tessellation)
	if h.Style == StyleSkeleton {
		check(h.Slices < 1, "head: slices %d must be at least 1", h.Slices)
		check(h.AngleThickness <= 0, "head: angle_thickness %g must be positive", h.AngleThickness)
	}

	if _, err := render.ParseClipPolicy(c.Render.ClipPolicy); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}
	check(c.Render.Camera != CameraOrbit && c.Render.Camera != CameraFree, "render: unknown camera %q", c.Render.Camera)
	check(c.Render.FOV <= 0 || c.Render.FOV >= 180, "render: fov %g must be in (0, 180)", c.Render.FOV)
	check(c.Render.Near <= 0 || c.Render.Far <= c.Render.Near, "render: need 0 < near < far, got %g, %g", c.Render.Near, c.Render.Far)

	if _, err := animation.Easing(c.Animation.Easing); err != nil {
		errs = append(errs, fmt.Errorf("animation: %w", err))
	}
	check(c.Animation.SpinPeriod <= 0, "animation: spin_period %s must be positive", c.Animation.SpinPeriod)
	check(c.Animation.ColorPeriod <= 0, "animation: color_period %s must be positive", c.Animation.ColorPeriod)

	check(c.Capture.Width < 0 || c.Capture.Height < 0, "capture: size %dx%d must not be negative", c.Capture.Width, c.Capture.Height)

	if _, err := keymap.Parse(c.Controls); err != nil {
		errs = append(errs, fmt.Errorf("controls: %w", err))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}
