package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHeldKeys(t *testing.T) {
	in := New()
	in.BeginFrame()
	in.Apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_W})
	assert.True(t, in.IsKeyPressed(sdl.SCANCODE_W))
	assert.True(t, in.IsKeyHeld(sdl.SCANCODE_W))

	in.BeginFrame()
	in.Apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_W, Repeat: true})
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_W))
	assert.True(t, in.IsKeyHeld(sdl.SCANCODE_W))

	in.BeginFrame()
	in.Apply(Event{Type: EventKeyUp, Key: sdl.SCANCODE_W})
	assert.False(t, in.IsKeyHeld(sdl.SCANCODE_W))
}

func TestDragAndWheel(t *testing.T) {
	in := New()
	in.BeginFrame()
	in.Apply(Event{Type: EventMouseMove, MouseX: 10, MouseY: 10})
	dx, dy := in.Drag()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	in.Apply(Event{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 10, MouseY: 10})
	in.Apply(Event{Type: EventMouseMove, MouseX: 15, MouseY: 7})
	in.Apply(Event{Type: EventMouseMove, MouseX: 20, MouseY: 4})
	in.Apply(Event{Type: EventMouseWheel, Wheel: 1.5})
	dx, dy = in.Drag()
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(-6), dy)
	assert.Equal(t, float32(1.5), in.Wheel())

	in.BeginFrame()
	dx, _ = in.Drag()
	assert.Zero(t, dx)
	assert.Zero(t, in.Wheel())

	in.Apply(Event{Type: EventMouseUp, Button: sdl.BUTTON_LEFT})
	in.Apply(Event{Type: EventMouseMove, MouseX: 40, MouseY: 40})
	dx, _ = in.Drag()
	assert.Zero(t, dx)
	x, y := in.Mouse()
	assert.Equal(t, 40, x)
	assert.Equal(t, 40, y)
}
