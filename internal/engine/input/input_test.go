package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func queue(events ...sdl.Event) Source {
	return func() sdl.Event {
		if len(events) == 0 {
			return nil
		}
		e := events[0]
		events = events[1:]
		return e
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		raw  sdl.Event
		want Event
		ok   bool
	}{
		{
			name: "quit",
			raw:  &sdl.QuitEvent{Type: sdl.QUIT},
			want: Event{Type: EventQuit},
			ok:   true,
		},
		{
			name: "window close",
			raw:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE},
			want: Event{Type: EventQuit},
			ok:   true,
		},
		{
			name: "resize",
			raw:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			want: Event{Type: EventWindowResize, Width: 800, Height: 600},
			ok:   true,
		},
		{
			name: "key down",
			raw:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			want: Event{Type: EventKeyDown, Key: sdl.SCANCODE_W},
			ok:   true,
		},
		{
			name: "key repeat",
			raw:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}},
			want: Event{Type: EventKeyDown, Key: sdl.SCANCODE_A, Repeat: true},
			ok:   true,
		},
		{
			name: "key up",
			raw:  &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			want: Event{Type: EventKeyUp, Key: sdl.SCANCODE_ESCAPE},
			ok:   true,
		},
		{
			name: "ignored window event",
			raw:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED},
			ok:   false,
		},
		{
			name: "ignored mouse motion",
			raw:  &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUpdateDrainsQueue(t *testing.T) {
	in := NewWithSource(queue(
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_D}},
		&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION},
		&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_D}},
	))

	if in.Update() {
		t.Error("no quit event was queued")
	}
	if len(in.Events()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(in.Events()))
	}
	if !keyDown(in.Events(), sdl.SCANCODE_D) {
		t.Error("expected D to be pressed")
	}
	if keyDown(in.Events(), sdl.SCANCODE_W) {
		t.Error("W was never pressed")
	}

	// Next frame starts empty.
	in.Update()
	if len(in.Events()) != 0 {
		t.Errorf("expected events to be cleared, got %d", len(in.Events()))
	}
}

func TestUpdateReportsQuit(t *testing.T) {
	in := NewWithSource(queue(
		&sdl.QuitEvent{Type: sdl.QUIT},
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_S}},
	))

	if !in.Update() {
		t.Error("expected quit")
	}
	// Events after the quit are still collected.
	if !keyDown(in.Events(), sdl.SCANCODE_S) {
		t.Error("expected S to be collected after quit")
	}
}

func keyDown(events []Event, key sdl.Scancode) bool {
	for _, e := range events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
