// Package camera provides the keyboard-driven camera of the mesh scene.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// Axis names a world axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// DefaultStep is how far one key press moves the camera.
const DefaultStep = 0.2

// FreeCamera is a camera that slides along world axes in fixed steps.
// There is no acceleration, smoothing or collision.
type FreeCamera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3
	Step      float32
}

// NewFreeCamera creates a camera at pos looking down -Z.
func NewFreeCamera(pos mgl32.Vec3, step float32) *FreeCamera {
	if step <= 0 {
		step = DefaultStep
	}
	return &FreeCamera{
		Position:  pos,
		Direction: mgl32.Vec3{0, 0, -1},
		Up:        mgl32.Vec3{0, 1, 0},
		Step:      step,
	}
}

// Move translates the camera by one step along axis. sign picks the direction.
func (c *FreeCamera) Move(axis Axis, sign float32) {
	switch {
	case sign > 0:
		c.Position[axis] += c.Step
	case sign < 0:
		c.Position[axis] -= c.Step
	}
}

type binding struct {
	axis Axis
	sign float32
}

var keyBindings = map[sdl.Scancode]binding{
	sdl.SCANCODE_W:        {AxisZ, -1},
	sdl.SCANCODE_UP:       {AxisZ, -1},
	sdl.SCANCODE_S:        {AxisZ, +1},
	sdl.SCANCODE_DOWN:     {AxisZ, +1},
	sdl.SCANCODE_A:        {AxisX, -1},
	sdl.SCANCODE_LEFT:     {AxisX, -1},
	sdl.SCANCODE_D:        {AxisX, +1},
	sdl.SCANCODE_RIGHT:    {AxisX, +1},
	sdl.SCANCODE_Q:        {AxisY, +1},
	sdl.SCANCODE_PAGEUP:   {AxisY, +1},
	sdl.SCANCODE_E:        {AxisY, -1},
	sdl.SCANCODE_PAGEDOWN: {AxisY, -1},
}

// HandleKey moves the camera if key is bound. Returns false for unbound keys.
func (c *FreeCamera) HandleKey(key sdl.Scancode) bool {
	b, ok := keyBindings[key]
	if !ok {
		return false
	}
	c.Move(b.axis, b.sign)
	return true
}

// Target returns the point the camera looks at.
func (c *FreeCamera) Target() mgl32.Vec3 {
	return c.Position.Add(c.Direction)
}

// ViewMatrix returns the single-precision view matrix.
func (c *FreeCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), c.Up)
}
