package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and frame stats")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagStyle      = flag.String("style", "", "Head style: torus or skeleton")
	flagTess       = flag.Int("tess", 0, "Tessellation of the head geometry")
	flagFill       = flag.Bool("fill", false, "Draw filled polygons instead of wireframe")
	flagClip       = flag.String("clip", "", "Clip policy: leaky or scoped")
	flagSkybox     = flag.String("skybox", "", "Cube map directory for the skybox")
	flagCamera     = flag.String("camera", "", "Camera mode: orbit or free")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Render.ShowStats = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagStyle != "" {
		cfg.Head.Style = *flagStyle
	}
	if *flagTess > 0 {
		cfg.Head.Tessellation = *flagTess
	}
	if *flagFill {
		cfg.Render.Wireframe = false
	}
	if *flagClip != "" {
		cfg.Render.ClipPolicy = *flagClip
	}
	if *flagSkybox != "" {
		cfg.Render.Skybox = *flagSkybox
	}
	if *flagCamera != "" {
		cfg.Render.Camera = *flagCamera
	}
}
