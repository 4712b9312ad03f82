package camera

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHandleKeyMovesOneStepOnOneAxis(t *testing.T) {
	tests := []struct {
		key   sdl.Scancode
		axis  Axis
		delta float32
	}{
		{sdl.SCANCODE_W, AxisZ, -0.2},
		{sdl.SCANCODE_UP, AxisZ, -0.2},
		{sdl.SCANCODE_S, AxisZ, 0.2},
		{sdl.SCANCODE_DOWN, AxisZ, 0.2},
		{sdl.SCANCODE_A, AxisX, -0.2},
		{sdl.SCANCODE_LEFT, AxisX, -0.2},
		{sdl.SCANCODE_D, AxisX, 0.2},
		{sdl.SCANCODE_RIGHT, AxisX, 0.2},
		{sdl.SCANCODE_Q, AxisY, 0.2},
		{sdl.SCANCODE_PAGEUP, AxisY, 0.2},
		{sdl.SCANCODE_E, AxisY, -0.2},
		{sdl.SCANCODE_PAGEDOWN, AxisY, -0.2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("scancode-%d", tt.key), func(t *testing.T) {
			start := mgl32.Vec3{1, 2, 3}
			cam := NewFreeCamera(start, DefaultStep)

			if !cam.HandleKey(tt.key) {
				t.Fatal("expected key to be bound")
			}

			for axis := AxisX; axis <= AxisZ; axis++ {
				want := start[axis]
				if axis == tt.axis {
					want += tt.delta
				}
				if cam.Position[axis] != want {
					t.Errorf("axis %d: got %f, want %f", axis, cam.Position[axis], want)
				}
			}
		})
	}
}

func TestHandleKeyUnbound(t *testing.T) {
	start := mgl32.Vec3{0, 1, 8}
	cam := NewFreeCamera(start, DefaultStep)

	if cam.HandleKey(sdl.SCANCODE_SPACE) {
		t.Error("space should not be bound")
	}
	if cam.Position != start {
		t.Errorf("unbound key moved camera to %v", cam.Position)
	}
}

func TestMoveZeroSign(t *testing.T) {
	cam := NewFreeCamera(mgl32.Vec3{}, 1)
	cam.Move(AxisY, 0)
	if cam.Position != (mgl32.Vec3{}) {
		t.Errorf("zero sign should not move, got %v", cam.Position)
	}
}

func TestNewFreeCameraDefaults(t *testing.T) {
	cam := NewFreeCamera(mgl32.Vec3{0, 1, 8}, 0)
	if cam.Step != DefaultStep {
		t.Errorf("expected default step, got %f", cam.Step)
	}
	if cam.Target() != (mgl32.Vec3{0, 1, 7}) {
		t.Errorf("expected target one unit down -Z, got %v", cam.Target())
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	cam := NewFreeCamera(mgl32.Vec3{3, 1, 8}, DefaultStep)
	eye := cam.ViewMatrix().Mul4x1(cam.Position.Vec4(1))
	if !near(eye.Vec3(), mgl32.Vec3{}) {
		t.Errorf("camera position should map to view origin, got %v", eye)
	}

	// Target lies straight ahead on -Z in view space.
	ahead := cam.ViewMatrix().Mul4x1(cam.Target().Vec4(1))
	if !near(ahead.Vec3(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("target should map to (0,0,-1), got %v", ahead)
	}
}

// near compares component-wise with an absolute tolerance; mgl32's
// ApproxEqualThreshold is relative and never matches an exact zero.
func near(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			return false
		}
	}
	return true
}
