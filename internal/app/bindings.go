package app

import (
	"fmt"
	"sort"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/pcscene/internal/editor"
	"github.com/Faultbox/pcscene/internal/engine/input"
)

// Bindings maps editor actions to SDL scancodes.
type Bindings struct {
	keys    map[editor.Action]sdl.Scancode
	actions []editor.Action // Sorted, for a stable Pressed order
}

// NewBindings resolves action name -> SDL key name pairs, as found in the
// config file. Unknown actions and key names are errors.
func NewBindings(names map[string]string) (Bindings, error) {
	b := Bindings{keys: make(map[editor.Action]sdl.Scancode, len(names))}
	for name, key := range names {
		a, ok := editor.ParseAction(name)
		if !ok {
			return Bindings{}, fmt.Errorf("binding %q: unknown action", name)
		}
		sc := sdl.GetScancodeFromName(key)
		if sc == sdl.SCANCODE_UNKNOWN {
			return Bindings{}, fmt.Errorf("binding %q: unknown key %q", name, key)
		}
		b.keys[a] = sc
		b.actions = append(b.actions, a)
	}
	sort.Slice(b.actions, func(i, j int) bool { return b.actions[i] < b.actions[j] })
	return b, nil
}

// Key returns the scancode bound to a.
func (b Bindings) Key(a editor.Action) (sdl.Scancode, bool) {
	sc, ok := b.keys[a]
	return sc, ok
}

// Frame turns this tick's input into an editor frame.
func (b Bindings) Frame(in *input.Input, dt float32) editor.Frame {
	f := editor.Frame{
		Dt:    dt,
		Held:  make(map[editor.Action]bool),
		Wheel: in.Wheel(),
	}
	f.DragX, f.DragY = in.Drag()

	for _, a := range b.actions {
		sc := b.keys[a]
		if a.Held() {
			if in.IsKeyHeld(sc) {
				f.Held[a] = true
			}
			continue
		}
		if in.IsKeyPressed(sc) {
			f.Pressed = append(f.Pressed, a)
		}
	}
	return f
}
