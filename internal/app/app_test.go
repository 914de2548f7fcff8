package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/pcscene/internal/codec"
	"github.com/Faultbox/pcscene/internal/config"
	"github.com/Faultbox/pcscene/internal/editor"
	"github.com/Faultbox/pcscene/internal/engine/input"
	"github.com/Faultbox/pcscene/internal/engine/picking"
	"github.com/Faultbox/pcscene/internal/mockup"
)

func TestDefaultBindingsResolve(t *testing.T) {
	b, err := NewBindings(config.DefaultBindings())
	require.NoError(t, err)

	sc, ok := b.Key(editor.Save)
	require.True(t, ok)
	assert.Equal(t, sdl.Scancode(sdl.SCANCODE_J), sc)

	sc, ok = b.Key(editor.Quit)
	require.True(t, ok)
	assert.Equal(t, sdl.Scancode(sdl.SCANCODE_ESCAPE), sc)
}

func TestBindingsRejectUnknown(t *testing.T) {
	_, err := NewBindings(map[string]string{"fly": "F"})
	assert.Error(t, err)

	_, err = NewBindings(map[string]string{"save": "NoSuchKey"})
	assert.Error(t, err)
}

func TestFrameFromInput(t *testing.T) {
	b, err := NewBindings(config.DefaultBindings())
	require.NoError(t, err)

	in := input.New()
	in.BeginFrame()
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_D})
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_R})
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_J})
	in.Apply(input.Event{Type: input.EventMouseWheel, Wheel: 2})

	f := b.Frame(in, 0.016)
	assert.InDelta(t, 0.016, f.Dt, 1e-7)
	assert.True(t, f.Held[editor.MoveXPos])
	assert.Equal(t, []editor.Action{editor.Record, editor.Save}, f.Pressed)
	assert.Equal(t, float32(2), f.Wheel)

	// Next frame the keys are only held.
	in.BeginFrame()
	f = b.Frame(in, 0.016)
	assert.True(t, f.Held[editor.MoveXPos])
	assert.Empty(t, f.Pressed)

	// Auto-repeat does not press again.
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_J, Repeat: true})
	assert.Empty(t, b.Frame(in, 0).Pressed)
}

func TestOpenSceneFallsBackToMockup(t *testing.T) {
	cfg := config.Default().Scene
	cfg.Path = filepath.Join(t.TempDir(), "missing.yaml")

	root, clips, err := OpenScene(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"CPU", "Monitor", "Keyboard", "Mouse"}, root.Names())
	assert.Zero(t, clips.Len())

	cfg.Mockup = false
	_, _, err = OpenScene(cfg)
	assert.ErrorIs(t, err, codec.ErrNotFound)
}

func TestOpenSceneLoadsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	pc, err := mockup.BuildPC()
	require.NoError(t, err)
	pc.Remove("Mouse")
	require.NoError(t, codec.SaveScene(path, pc, nil))

	root, _, err := OpenScene(config.SceneConfig{Path: path, Mockup: true})
	require.NoError(t, err)
	assert.Equal(t, 3, root.Len())
}

func TestOpenSceneInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: [\n"), 0644))

	_, _, err := OpenScene(config.SceneConfig{Path: path, Mockup: true})
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Pitch = 30
	cam := NewCamera(cfg.Camera)
	assert.Equal(t, float32(30), cam.Pitch)
	assert.Equal(t, cfg.Camera.Distance, cam.Distance)

	s := EditorSettings(cfg)
	assert.Equal(t, cfg.Editor.MoveSpeed, s.MoveSpeed)
	assert.Equal(t, cfg.Animation.Interval, s.Interval)
	assert.True(t, s.Loop)
}

func TestPickSelection(t *testing.T) {
	root, err := mockup.BuildPC()
	require.NoError(t, err)
	down := mgl32.Vec3{0, -1, 0}

	tests := []struct {
		name    string
		ray     picking.Ray
		current editor.Selection
		want    editor.Selection
		changed bool
	}{
		{"holder hit", picking.Ray{Origin: mgl32.Vec3{-0.7, 5, 0}, Direction: down},
			editor.Selection{Group: "Mouse", HolderID: 1},
			editor.Selection{Group: "CPU", HolderID: 1}, true},
		{"floor narrows to group", picking.Ray{Origin: mgl32.Vec3{5, 5, 5}, Direction: down},
			editor.Selection{Group: "Keyboard", HolderID: 1},
			editor.Selection{Group: "Keyboard"}, true},
		{"floor with group selected", picking.Ray{Origin: mgl32.Vec3{5, 5, 5}, Direction: down},
			editor.Selection{Group: "Keyboard"},
			editor.Selection{Group: "Keyboard"}, false},
		{"sky", picking.Ray{Origin: mgl32.Vec3{5, 5, 5}, Direction: mgl32.Vec3{0, 1, 0}},
			editor.Selection{Group: "Keyboard", HolderID: 1},
			editor.Selection{Group: "Keyboard", HolderID: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := pickSelection(root, tt.ray, tt.current)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}
