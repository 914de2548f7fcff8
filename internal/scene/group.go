package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/logger"
)

// Group owns a transform and an insertion-ordered set of Holders keyed by id.
// Ids start at 1, grow monotonically and are never reused.
type Group struct {
	name      string
	transform Transform
	hidden    bool

	holders map[int]*Holder
	order   []int
	nextID  int

	// Non-owning; only read for world matrix composition.
	parent *Root
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{
		name:      name,
		transform: NewTransform(),
		holders:   make(map[int]*Holder),
		nextID:    1,
	}
}

// Name returns the display name, also the key inside a Root.
func (g *Group) Name() string { return g.name }

// Transform returns the group's own transform for in-place edits.
func (g *Group) Transform() *Transform { return &g.transform }

// Parent returns the owning root, nil when detached.
func (g *Group) Parent() *Root { return g.parent }

// Hidden reports whether Draw skips the whole group.
func (g *Group) Hidden() bool { return g.hidden }

// SetHidden toggles drawing of the group.
func (g *Group) SetHidden(hidden bool) { g.hidden = hidden }

// Add takes ownership of h and returns its new id.
func (g *Group) Add(h *Holder) (int, error) {
	if h.parent != nil {
		return 0, fmt.Errorf("holder %q: %w", h.name, ErrAttached)
	}
	id := g.nextID
	g.attach(id, h)
	return id, nil
}

// Insert takes ownership of h under an explicit id, as when restoring a saved
// document. Later Adds continue after the largest id seen.
func (g *Group) Insert(id int, h *Holder) error {
	if id <= 0 {
		return fmt.Errorf("holder %q: invalid id %d", h.name, id)
	}
	if _, exists := g.holders[id]; exists {
		return fmt.Errorf("group %q holder id %d: %w", g.name, id, ErrDuplicateID)
	}
	if h.parent != nil {
		return fmt.Errorf("holder %q: %w", h.name, ErrAttached)
	}
	g.attach(id, h)
	return nil
}

func (g *Group) attach(id int, h *Holder) {
	h.parent = g
	g.holders[id] = h
	g.order = append(g.order, id)
	if id >= g.nextID {
		g.nextID = id + 1
	}
}

// Holder returns the holder with the given id.
func (g *Group) Holder(id int) (*Holder, bool) {
	h, ok := g.holders[id]
	return h, ok
}

// Remove disposes and drops the holder with the given id.
func (g *Group) Remove(id int) bool {
	h, ok := g.holders[id]
	if !ok {
		return false
	}
	h.Dispose()
	h.parent = nil
	delete(g.holders, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// IDs returns holder ids in insertion order.
func (g *Group) IDs() []int {
	return append([]int(nil), g.order...)
}

// Holders returns holders in insertion order.
func (g *Group) Holders() []*Holder {
	out := make([]*Holder, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.holders[id])
	}
	return out
}

// Len returns the number of holders.
func (g *Group) Len() int { return len(g.order) }

// WorldMatrix returns root world * local.
func (g *Group) WorldMatrix() mgl32.Mat4 {
	local := g.transform.LocalMatrix()
	if g.parent == nil {
		return local
	}
	return g.parent.WorldMatrix().Mul4(local)
}

// WorldBounds returns the union of the holders' world bounds.
func (g *Group) WorldBounds() (min, max mgl32.Vec3, ok bool) {
	for _, h := range g.Holders() {
		hmin, hmax, hok := h.WorldBounds()
		if !hok {
			continue
		}
		if !ok {
			min, max, ok = hmin, hmax, true
			continue
		}
		min, max = expand(min, max, hmin)
		min, max = expand(min, max, hmax)
	}
	return min, max, ok
}

// Draw forwards to every holder.
func (g *Group) Draw(sh Shader, viewProj mgl32.Mat4) {
	g.draw(sh, viewProj, g.uploader())
}

func (g *Group) draw(sh Shader, viewProj mgl32.Mat4, up Uploader) {
	if g.hidden {
		return
	}
	for _, id := range g.order {
		g.holders[id].draw(sh, viewProj, up)
	}
}

func (g *Group) uploader() Uploader {
	if g.parent == nil {
		return nil
	}
	return g.parent.uploader
}

// Dispose releases every holder's GPU buffer and empties the group.
func (g *Group) Dispose() {
	for _, id := range g.order {
		h := g.holders[id]
		h.Dispose()
		h.parent = nil
	}
	logger.Debug("group disposed", zap.String("group", g.name), zap.Int("holders", len(g.order)))
	g.holders = make(map[int]*Holder)
	g.order = nil
}
