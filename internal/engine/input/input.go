// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Wheel  float32
	Button uint8
}

// Input turns SDL events into per-frame state: events, held keys, the drag
// delta of the left mouse button and the wheel total.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool

	mouseX, mouseY int
	dragging       bool
	dragDX, dragDY float32
	wheel          float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and folds them into the frame state.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.BeginFrame()
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			if e.Type == EventQuit {
				quit = true
			}
			i.Apply(e)
		}
	}
	return quit
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
		if e.Type == sdl.KEYDOWN {
			ev.Type = EventKeyDown
		} else {
			ev.Type = EventKeyUp
		}
		return ev, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)}, true

	case *sdl.MouseButtonEvent:
		ev := Event{MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = EventMouseDown
		} else {
			ev.Type = EventMouseUp
		}
		return ev, true

	case *sdl.MouseWheelEvent:
		return Event{Type: EventMouseWheel, Wheel: e.PreciseY}, true
	}
	return Event{}, false
}

// BeginFrame clears per-frame values. Held keys and drag state persist.
func (i *Input) BeginFrame() {
	i.events = i.events[:0]
	i.dragDX, i.dragDY = 0, 0
	i.wheel = 0
}

// Apply folds one event into the state.
func (i *Input) Apply(e Event) {
	i.events = append(i.events, e)
	switch e.Type {
	case EventKeyDown:
		i.held[e.Key] = true
	case EventKeyUp:
		delete(i.held, e.Key)
	case EventMouseDown:
		i.mouseX, i.mouseY = e.MouseX, e.MouseY
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = true
		}
	case EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = false
		}
	case EventMouseMove:
		if i.dragging {
			i.dragDX += float32(e.MouseX - i.mouseX)
			i.dragDY += float32(e.MouseY - i.mouseY)
		}
		i.mouseX, i.mouseY = e.MouseX, e.MouseY
	case EventMouseWheel:
		i.wheel += e.Wheel
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a key went down this frame, ignoring auto-repeat.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// Drag returns the left-button drag movement this frame in pixels.
func (i *Input) Drag() (dx, dy float32) {
	return i.dragDX, i.dragDY
}

// Wheel returns the scroll total this frame.
func (i *Input) Wheel() float32 {
	return i.wheel
}

// Mouse returns the last known cursor position.
func (i *Input) Mouse() (x, y int) {
	return i.mouseX, i.mouseY
}
