// Package input turns SDL2 events into demo events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
}

// Source yields raw events. sdl.PollEvent satisfies it.
type Source func() sdl.Event

// Input collects the events of one frame.
type Input struct {
	poll   Source
	events []Event
}

// New creates an input handler reading from the SDL event queue.
func New() *Input {
	return NewWithSource(sdl.PollEvent)
}

// NewWithSource creates an input handler reading from an arbitrary source.
func NewWithSource(poll Source) *Input {
	return &Input{
		poll:   poll,
		events: make([]Event, 0, 16),
	}
}

// Update drains pending events. Returns true if the window asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for raw := i.poll(); raw != nil; raw = i.poll() {
		ev, ok := Translate(raw)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Translate converts a single SDL event. The second result is false for
// events the demo does not care about.
func Translate(raw sdl.Event) (Event, bool) {
	switch e := raw.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return Event{Type: EventQuit}, true
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
		switch e.Type {
		case sdl.KEYDOWN:
			ev.Type = EventKeyDown
		case sdl.KEYUP:
			ev.Type = EventKeyUp
		default:
			return Event{}, false
		}
		return ev, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
