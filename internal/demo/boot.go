package demo

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshdemo/internal/config"
	"github.com/Faultbox/meshdemo/internal/engine/transform"
	"github.com/Faultbox/meshdemo/internal/logger"
)

// Boot parses flags, loads configuration and starts logging.
func Boot() (*config.Config, error) {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logger.Sugar.Debugf("config: %+v", *cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			return nil, fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", path))
	}
	return cfg, nil
}

// Start builds a demo and runs it to completion.
func Start(cfg *config.Config, newFrame FrameFactory) error {
	d, err := New(cfg, newFrame)
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Run()
}

// PrintSceneUsage writes the usage string of the mesh demos.
func PrintSceneUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, `Usage: %s [flags] <meshes-dir>

Loads <meshes-dir>/<mesh> (default icosahedron.obj) and draws ten lit
copies on a ground plane.

Keys:
  W/S, Up/Down         move along Z
  A/D, Left/Right      move along X
  Q/E, PageUp/PageDown move along Y
  F12                  save a screenshot
  Escape               quit

Flags:
  --config <file>  --mesh <name>  --width <px>  --height <px>
  --fullscreen     --windowed     --debug   --save-config
`, prog)
}

// RunScene is the whole main of a mesh demo. It returns the exit code.
func RunScene(backend transform.Backend) int {
	cfg, err := Boot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	meshDir, err := config.MeshDir(cfg, config.Args())
	if err != nil {
		PrintSceneUsage(os.Stderr, os.Args[0])
		return 1
	}

	logger.Info("starting mesh scene",
		zap.String("meshes", meshDir),
		zap.String("mesh", cfg.Scene.MeshFile),
		zap.String("math", backend.Name()),
	)

	if err := Start(cfg, NewScene(meshDir, backend)); err != nil {
		logger.Error("scene failed", zap.Error(err))
		return 1
	}
	logger.Info("scene closed normally")
	return 0
}
