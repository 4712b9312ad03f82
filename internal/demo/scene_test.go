package demo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshdemo/internal/config"
	"github.com/Faultbox/meshdemo/internal/engine/camera"
	"github.com/Faultbox/meshdemo/internal/engine/input"
)

func newTestScene() *Scene {
	return &Scene{
		camera: camera.NewFreeCamera(mgl32.Vec3{0, 1, 8}, 0.2),
		log:    zap.NewNop(),
	}
}

func keyDown(key sdl.Scancode) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: key}
}

func TestSceneConfigFromFile(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Instances = 3
	cfg.Scene.GroundY = -2
	cfg.Scene.ClearColor = [4]float32{0.1, 0.1, 0.2, 1}

	sc := SceneConfig(cfg)
	if sc.Instances != 3 {
		t.Errorf("expected 3 instances, got %d", sc.Instances)
	}
	if sc.GroundY != -2 {
		t.Errorf("expected ground at -2, got %f", sc.GroundY)
	}
	if sc.FOV != 45 || sc.Near != 0.1 || sc.Far != 100 {
		t.Errorf("unexpected frustum %f/%f/%f", sc.FOV, sc.Near, sc.Far)
	}
	if sc.ClearColor != [4]float32{0.1, 0.1, 0.2, 1} {
		t.Errorf("expected clear color from file, got %v", sc.ClearColor)
	}
}

func TestSceneUpdateMovesCamera(t *testing.T) {
	s := newTestScene()

	s.Update([]input.Event{
		keyDown(sdl.SCANCODE_W),
		keyDown(sdl.SCANCODE_D),
		{Type: input.EventKeyUp, Key: sdl.SCANCODE_D},
		keyDown(sdl.SCANCODE_SPACE),
	})

	want := mgl32.Vec3{0.2, 1, 8 - 0.2}
	if !s.camera.Position.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("camera at %v, want %v", s.camera.Position, want)
	}
}

func TestSceneUpdateQueuesScreenshot(t *testing.T) {
	s := newTestScene()

	s.Update([]input.Event{{Type: input.EventKeyDown, Key: sdl.SCANCODE_F12, Repeat: true}})
	if s.pending {
		t.Error("key repeat should not queue a screenshot")
	}

	s.Update([]input.Event{keyDown(sdl.SCANCODE_F12)})
	if !s.pending {
		t.Error("expected screenshot to be queued")
	}
	if s.camera.Position != (mgl32.Vec3{0, 1, 8}) {
		t.Error("F12 should not move the camera")
	}
}
