// Package mockup builds the desktop PC scene used as default content.
package mockup

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/pcscene/internal/primitive"
	"github.com/Faultbox/pcscene/internal/scene"
)

// Palette.
var (
	Black     = mgl32.Vec4{0.08, 0.08, 0.10, 1}
	Gray      = mgl32.Vec4{0.25, 0.26, 0.28, 1}
	LightGray = mgl32.Vec4{0.75, 0.75, 0.78, 1}
	Blue      = mgl32.Vec4{0.23, 0.45, 0.85, 1}
)

// Part is one box of the mockup. Geometry is centred on the holder origin and
// Position goes into the holder transform.
type Part struct {
	Group    string
	Name     string
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Color    mgl32.Vec4
}

// PCParts lists the boxes of the PC in group order.
var PCParts = []Part{
	{"CPU", "tower", mgl32.Vec3{-0.7, 0.4, 0}, mgl32.Vec3{0.35, 0.80, 0.40}, Gray},
	{"Monitor", "base", mgl32.Vec3{0, 0.015, 0}, mgl32.Vec3{0.45, 0.03, 0.25}, Gray},
	{"Monitor", "stand", mgl32.Vec3{0, 0.15, 0}, mgl32.Vec3{0.06, 0.25, 0.06}, Gray},
	{"Monitor", "screen", mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0.90, 0.55, 0.035}, Black},
	{"Monitor", "content", mgl32.Vec3{0, 0.5, 0.018}, mgl32.Vec3{0.86, 0.50, 0.004}, Blue},
	{"Keyboard", "keys", mgl32.Vec3{0, 0.01, 0.30}, mgl32.Vec3{0.40, 0.02, 0.20}, LightGray},
	{"Mouse", "mouse", mgl32.Vec3{0.32, 0.015, 0.30}, mgl32.Vec3{0.10, 0.03, 0.06}, LightGray},
}

// BuildPC assembles the PC scene from PCParts.
func BuildPC() (*scene.Root, error) {
	return Build("pc", PCParts)
}

// Build creates one group per distinct Part.Group, in first-seen order.
func Build(name string, parts []Part) (*scene.Root, error) {
	root := scene.NewRoot(name)
	for _, p := range parts {
		g, ok := root.Group(p.Group)
		if !ok {
			g = scene.NewGroup(p.Group)
			if err := root.Add(g); err != nil {
				return nil, err
			}
		}

		h := scene.NewHolder(p.Name, primitive.Box(mgl32.Vec3{}, p.Size))
		h.Transform().Translation = p.Position
		h.SetColor(p.Color)
		if _, err := g.Add(h); err != nil {
			return nil, err
		}
	}
	return root, nil
}
