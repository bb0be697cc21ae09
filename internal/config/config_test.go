package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Head.Style != StyleTorus {
		t.Errorf("expected torus head, got %s", cfg.Head.Style)
	}
	if cfg.Head.Radius != 1 || cfg.Head.Thickness != 0.1 {
		t.Errorf("expected radius 1 thickness 0.1, got %g %g", cfg.Head.Radius, cfg.Head.Thickness)
	}
	if cfg.Head.Tessellation != 64 {
		t.Errorf("expected tessellation 64, got %d", cfg.Head.Tessellation)
	}

	if !cfg.Render.Wireframe {
		t.Error("expected wireframe by default")
	}
	if cfg.Render.ClipPolicy != "leaky" {
		t.Errorf("expected leaky clip policy, got %s", cfg.Render.ClipPolicy)
	}
	if cfg.Render.Camera != CameraOrbit {
		t.Errorf("expected orbit camera, got %s", cfg.Render.Camera)
	}
	if cfg.Head.DiffuseMap != "" {
		t.Errorf("expected no diffuse map, got %s", cfg.Head.DiffuseMap)
	}

	if cfg.Animation.SpinPeriod != 8*time.Second {
		t.Errorf("expected spin period 8s, got %v", cfg.Animation.SpinPeriod)
	}
	if cfg.Lighting.Sun != [3]float32{-25, 20, -25} {
		t.Errorf("unexpected sun position %v", cfg.Lighting.Sun)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

head:
  style: skeleton
  radius: 2
  slices: 12

render:
  wireframe: false
  clip_policy: scoped
  clear_color: [0, 0, 0, 1]
  skybox: assets/sky

animation:
  spin_period: 3s
  easing: in-out-sine

lighting:
  spot: [1, 2, 3]

controls:
  P: screenshot

logging:
  level: "debug"
  log_file: "wgmi.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Head.Style != StyleSkeleton || cfg.Head.Radius != 2 || cfg.Head.Slices != 12 {
		t.Errorf("unexpected head config %+v", cfg.Head)
	}
	// Unset keys keep their defaults.
	if cfg.Head.Thickness != 0.1 {
		t.Errorf("expected default thickness, got %g", cfg.Head.Thickness)
	}
	if cfg.Render.Wireframe {
		t.Error("expected wireframe to be false")
	}
	if cfg.Render.ClipPolicy != "scoped" {
		t.Errorf("expected scoped clip policy, got %s", cfg.Render.ClipPolicy)
	}
	if cfg.Render.ClearColor != [4]float32{0, 0, 0, 1} {
		t.Errorf("unexpected clear colour %v", cfg.Render.ClearColor)
	}
	if cfg.Animation.SpinPeriod != 3*time.Second {
		t.Errorf("expected spin period 3s, got %v", cfg.Animation.SpinPeriod)
	}
	if cfg.Animation.ColorPeriod != 4*time.Second {
		t.Errorf("expected default colour period, got %v", cfg.Animation.ColorPeriod)
	}
	if cfg.Lighting.Spot != [3]float32{1, 2, 3} {
		t.Errorf("unexpected spot position %v", cfg.Lighting.Spot)
	}
	if cfg.Controls["P"] != "screenshot" {
		t.Errorf("expected P bound to screenshot, got %v", cfg.Controls)
	}
	if cfg.Logging.LogFile != "wgmi.log" {
		t.Errorf("expected log file 'wgmi.log', got %s", cfg.Logging.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should be valid: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	if err := Parse([]byte("window:\n  colour_depth: 32\n"), cfg); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestParseEmpty(t *testing.T) {
	cfg := Default()
	if err := Parse(nil, cfg); err != nil {
		t.Errorf("empty document should parse: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("empty document changed width to %d", cfg.Window.Width)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tessellation", func(c *Config) { c.Head.Tessellation = 2 }, "tessellation 2"},
		{"radius", func(c *Config) { c.Head.Radius = 0 }, "radius"},
		{"thickness", func(c *Config) { c.Head.Thickness = -1 }, "thickness"},
		{"style", func(c *Config) { c.Head.Style = "cube" }, "unknown style"},
		{"skeleton slices", func(c *Config) { c.Head.Style = StyleSkeleton; c.Head.Slices = 0 }, "slices"},
		{"clip policy", func(c *Config) { c.Render.ClipPolicy = "sometimes" }, "clip policy"},
		{"camera", func(c *Config) { c.Render.Camera = "drone" }, "unknown camera"},
		{"fov", func(c *Config) { c.Render.FOV = 180 }, "fov"},
		{"planes", func(c *Config) { c.Render.Far = c.Render.Near }, "near < far"},
		{"easing", func(c *Config) { c.Animation.Easing = "wobble" }, "easing"},
		{"spin period", func(c *Config) { c.Animation.SpinPeriod = 0 }, "spin_period"},
		{"controls", func(c *Config) { c.Controls = map[string]string{"X": "explode"} }, "controls"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging"},
		{"window", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"capture", func(c *Config) { c.Capture.Width = -1 }, "capture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Head.Radius = 0
	cfg.Animation.Easing = "wobble"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "radius") || !strings.Contains(err.Error(), "wobble") {
		t.Errorf("expected both problems reported, got %q", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Head.Style = StyleSkeleton
	cfg.Animation.ColorPeriod = 1500 * time.Millisecond
	cfg.Controls = map[string]string{"P": "screenshot"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Head.Style != StyleSkeleton {
		t.Errorf("expected skeleton style, got %s", loaded.Head.Style)
	}
	if loaded.Animation.ColorPeriod != 1500*time.Millisecond {
		t.Errorf("expected colour period 1.5s, got %v", loaded.Animation.ColorPeriod)
	}
	if loaded.Render.ClearColor != cfg.Render.ClearColor {
		t.Errorf("clear colour changed: %v", loaded.Render.ClearColor)
	}
	if loaded.Controls["P"] != "screenshot" {
		t.Errorf("controls lost: %v", loaded.Controls)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Render.ShowStats {
					t.Error("expected show_stats to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "head and render flags",
			setup: func() {
				*flagStyle = StyleSkeleton
				*flagTess = 32
				*flagFill = true
				*flagClip = "scoped"
				*flagSkybox = "sky"
			},
			verify: func(cfg *Config) {
				if cfg.Head.Style != StyleSkeleton || cfg.Head.Tessellation != 32 {
					t.Errorf("unexpected head config %+v", cfg.Head)
				}
				if cfg.Render.Wireframe {
					t.Error("expected fill flag to disable wireframe")
				}
				if cfg.Render.ClipPolicy != "scoped" || cfg.Render.Skybox != "sky" {
					t.Errorf("unexpected render config %+v", cfg.Render)
				}
			},
			teardown: func() {
				*flagStyle = ""
				*flagTess = 0
				*flagFill = false
				*flagClip = ""
				*flagSkybox = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("head:\n  tessellation: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected invalid tessellation to fail Load")
	}
}
