// Package editor turns per-tick input into scene edits, recording, playback
// and persistence. All state the host loop used to keep globally lives in
// Context and is passed to every Update.
package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/pcscene/internal/engine/camera"
	"github.com/Faultbox/pcscene/internal/scene"
)

// Selection names a group, or one holder in it when HolderID is non-zero.
type Selection struct {
	Group    string
	HolderID int
}

// Path renders the selection as "group" or "group/id".
func (s Selection) Path() string {
	if s.HolderID == 0 {
		return s.Group
	}
	return s.Group + "/" + strconv.Itoa(s.HolderID)
}

// ParseSelection is the inverse of Path.
func ParseSelection(path string) (Selection, error) {
	group, id, found := strings.Cut(path, "/")
	if !found {
		return Selection{Group: path}, nil
	}
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return Selection{}, fmt.Errorf("invalid holder id in %q", path)
	}
	return Selection{Group: group, HolderID: n}, nil
}

// Resolve returns the selected transform in root, nil when it no longer exists.
func (s Selection) Resolve(root *scene.Root) *scene.Transform {
	if root == nil {
		return nil
	}
	g, ok := root.Group(s.Group)
	if !ok {
		return nil
	}
	if s.HolderID == 0 {
		return g.Transform()
	}
	h, ok := g.Holder(s.HolderID)
	if !ok {
		return nil
	}
	return h.Transform()
}

// Context is the host state every tick works against.
type Context struct {
	Camera    *camera.OrbitCamera
	Selection Selection
	Mode      Mode
	FOV       float32 // Used when fitting the camera to the scene
}

// Frame is one tick of input.
type Frame struct {
	Dt      float32
	Held    map[Action]bool
	Pressed []Action

	DragX, DragY float32
	Wheel        float32
}

func (f Frame) axis(pos, neg Action) float32 {
	var v float32
	if f.Held[pos] {
		v++
	}
	if f.Held[neg] {
		v--
	}
	return v
}
