package config

import (
	"errors"
	"flag"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMesh       = flag.String("mesh", "", "Mesh file name inside the meshes directory")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ErrNoMeshDir is returned when no meshes directory was given on the
// command line or in the config file.
var ErrNoMeshDir = errors.New("no meshes directory given")

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// MeshDir resolves the meshes directory: first positional argument wins,
// then scene.mesh_dir from the config.
func MeshDir(cfg *Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Scene.MeshDir != "" {
		return cfg.Scene.MeshDir, nil
	}
	return "", ErrNoMeshDir
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
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
	if *flagMesh != "" {
		cfg.Scene.MeshFile = *flagMesh
	}
}
