package editor

import "sort"

// Action is a bindable editor command.
type Action int

const (
	ActionNone Action = iota

	// Held actions, applied every tick while down.
	MoveXPos
	MoveXNeg
	MoveYPos
	MoveYNeg
	MoveZPos
	MoveZNeg
	CameraLeft
	CameraRight
	CameraForward
	CameraBack

	// Pressed actions, applied once per key press.
	ModeTranslate
	ModeRotate
	ModeScale
	SelectNext
	SelectPrev
	SelectHolder
	ToggleEnabled
	ToggleHidden
	ResetTransform
	Record
	Play
	ToggleLoop
	DuplicateClip
	Save
	Load
	FitCamera
	Screenshot
	Quit
)

var actionNames = map[string]Action{
	"move_x_pos":      MoveXPos,
	"move_x_neg":      MoveXNeg,
	"move_y_pos":      MoveYPos,
	"move_y_neg":      MoveYNeg,
	"move_z_pos":      MoveZPos,
	"move_z_neg":      MoveZNeg,
	"camera_left":     CameraLeft,
	"camera_right":    CameraRight,
	"camera_forward":  CameraForward,
	"camera_back":     CameraBack,
	"mode_translate":  ModeTranslate,
	"mode_rotate":     ModeRotate,
	"mode_scale":      ModeScale,
	"select_next":     SelectNext,
	"select_prev":     SelectPrev,
	"select_holder":   SelectHolder,
	"toggle_enabled":  ToggleEnabled,
	"toggle_hidden":   ToggleHidden,
	"reset_transform": ResetTransform,
	"record":          Record,
	"play":            Play,
	"toggle_loop":     ToggleLoop,
	"duplicate_clip":  DuplicateClip,
	"save":            Save,
	"load":            Load,
	"fit_camera":      FitCamera,
	"screenshot":      Screenshot,
	"quit":            Quit,
}

// ParseAction looks up an action by its binding name.
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// ActionNames returns every binding name, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for n := range actionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String returns the binding name.
func (a Action) String() string {
	for n, v := range actionNames {
		if v == a {
			return n
		}
	}
	return "none"
}

// Held reports whether the action acts continuously while its key is down.
func (a Action) Held() bool {
	return a >= MoveXPos && a <= CameraBack
}

// Mode selects what held move actions change.
type Mode int

const (
	ModeTranslating Mode = iota
	ModeRotating
	ModeScaling
)

func (m Mode) String() string {
	switch m {
	case ModeRotating:
		return "rotate"
	case ModeScaling:
		return "scale"
	}
	return "translate"
}
