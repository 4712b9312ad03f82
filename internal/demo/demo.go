// Package demo implements the window loop shared by all demos.
package demo

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshdemo/internal/config"
	"github.com/Faultbox/meshdemo/internal/engine/input"
	"github.com/Faultbox/meshdemo/internal/engine/window"
	"github.com/Faultbox/meshdemo/internal/logger"
)

// Frame is what a demo draws each iteration of the loop.
type Frame interface {
	// Update reacts to this frame's input events.
	Update(events []input.Event)
	// Render draws into the back buffer.
	Render(width, height int) error
	Close()
}

// FrameFactory builds a Frame once the OpenGL context exists.
type FrameFactory func(*Demo) (Frame, error)

// Demo is a window, its input queue and the frame drawn into it.
type Demo struct {
	config *config.Config
	window *window.Window
	input  *input.Input
	frame  Frame
	width  int
	height int
	log    *zap.Logger
}

// New opens the window, initializes OpenGL and builds the frame.
func New(cfg *config.Config, newFrame FrameFactory) (*Demo, error) {
	d := &Demo{
		config: cfg,
		log:    logger.Named("demo"),
	}

	var err error
	d.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	d.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	d.width, d.height = d.window.Size()
	gl.Viewport(0, 0, int32(d.width), int32(d.height))

	d.input = input.New()

	d.frame, err = newFrame(d)
	if err != nil {
		d.window.Close()
		return nil, err
	}
	return d, nil
}

// Config returns the configuration the demo was started with.
func (d *Demo) Config() *config.Config {
	return d.config
}

// Run polls events, renders and presents until the window closes or
// Escape is pressed.
func (d *Demo) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	d.log.Info("starting render loop")

	exit := false
	for !exit {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if d.input.Update() {
			exit = true
		}
		events := d.input.Events()
		exit = d.handle(events) || exit

		d.frame.Update(events)

		if err := d.frame.Render(d.width, d.height); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		d.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			d.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	d.log.Info("render loop finished")
	return nil
}

// handle applies loop-level events and reports whether to exit.
func (d *Demo) handle(events []input.Event) bool {
	exit := false
	for _, ev := range events {
		switch ev.Type {
		case input.EventWindowResize:
			d.width, d.height = d.window.Size()
			gl.Viewport(0, 0, int32(d.width), int32(d.height))
			d.log.Debug("viewport resized", zap.Int("width", d.width), zap.Int("height", d.height))
		case input.EventKeyDown:
			if ev.Key == sdl.SCANCODE_ESCAPE {
				exit = true
			}
		}
	}
	return exit
}

// Close releases the frame and the window.
func (d *Demo) Close() {
	if d.frame != nil {
		d.frame.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}
