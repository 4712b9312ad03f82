package demo

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshdemo/internal/config"
	"github.com/Faultbox/meshdemo/internal/engine/camera"
	"github.com/Faultbox/meshdemo/internal/engine/debug"
	"github.com/Faultbox/meshdemo/internal/engine/input"
	"github.com/Faultbox/meshdemo/internal/engine/mesh"
	"github.com/Faultbox/meshdemo/internal/engine/scene"
	"github.com/Faultbox/meshdemo/internal/engine/transform"
	"github.com/Faultbox/meshdemo/internal/logger"
)

// Scene is the lit mesh demo frame.
type Scene struct {
	scene       *scene.Scene
	camera      *camera.FreeCamera
	screenshots *debug.ScreenshotCapture
	pending     bool
	log         *zap.Logger
}

// SceneConfig converts the file configuration into scene options.
func SceneConfig(cfg *config.Config) scene.Config {
	sc := cfg.Scene
	return scene.Config{
		Instances:   sc.Instances,
		Spacing:     sc.Spacing,
		FOV:         sc.FOV,
		Near:        sc.Near,
		Far:         sc.Far,
		LightDir:    sc.LightDir,
		GroundSize:  sc.GroundSize,
		GroundY:     sc.GroundY,
		GroundColor: sc.GroundColor,
		ClearColor:  sc.ClearColor,
	}
}

// NewScene returns the FrameFactory of the mesh demos. The mesh is read
// from meshDir and matrices are computed by backend.
func NewScene(meshDir string, backend transform.Backend) FrameFactory {
	return func(d *Demo) (Frame, error) {
		cfg := d.Config()
		path := filepath.Join(meshDir, cfg.Scene.MeshFile)

		data, err := mesh.LoadOBJ(path, cfg.Scene.MeshColor)
		if err != nil {
			return nil, fmt.Errorf("loading mesh: %w", err)
		}

		cam := camera.NewFreeCamera(mgl32.Vec3(cfg.Scene.CameraPos), cfg.Scene.CameraStep)
		s, err := scene.New(SceneConfig(cfg), data, cam, backend)
		if err != nil {
			return nil, err
		}
		d.window.SetTitle(fmt.Sprintf("%s [%s]", cfg.Window.Title, backend.Name()))

		return &Scene{
			scene:       s,
			camera:      cam,
			screenshots: debug.NewScreenshotCapture(cfg.Scene.Screenshots, data.Name),
			log:         logger.Named("demo"),
		}, nil
	}
}

// Update implements Frame: bound keys nudge the camera, F12 queues a
// screenshot of the next rendered frame.
func (s *Scene) Update(events []input.Event) {
	for _, ev := range events {
		if ev.Type != input.EventKeyDown {
			continue
		}
		if ev.Key == sdl.SCANCODE_F12 {
			if !ev.Repeat {
				s.pending = true
			}
			continue
		}
		if s.camera.HandleKey(ev.Key) {
			s.log.Debug("camera moved", zap.Float32s("position", s.camera.Position[:]))
		}
	}
}

// Render implements Frame.
func (s *Scene) Render(width, height int) error {
	if height == 0 {
		return nil
	}
	if err := s.scene.Draw(float32(width) / float32(height)); err != nil {
		return err
	}

	if s.pending {
		s.pending = false
		path, err := s.screenshots.Capture(width, height)
		if err != nil {
			s.log.Warn("screenshot failed", zap.Error(err))
		} else {
			s.log.Info("screenshot saved", zap.String("path", path))
		}
	}
	return nil
}

// Close implements Frame.
func (s *Scene) Close() {
	s.scene.Close()
}
