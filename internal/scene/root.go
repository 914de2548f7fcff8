package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/logger"
)

var (
	// ErrDuplicateName is returned when a group name is already taken in a Root.
	ErrDuplicateName = errors.New("duplicate group name")
	// ErrDuplicateID is returned when a holder id is already taken in a Group.
	ErrDuplicateID = errors.New("duplicate holder id")
	// ErrAttached is returned when a node already belongs to another parent.
	ErrAttached = errors.New("node already attached")
	// ErrInvalidName is returned for group names that cannot appear in a
	// selection path: empty, or containing "/".
	ErrInvalidName = errors.New("invalid group name")
)

// Root is the top of the scene graph: a transform plus uniquely named Groups.
// Its world matrix is its own local matrix.
type Root struct {
	name      string
	transform Transform

	groups map[string]*Group
	order  []string

	uploader Uploader
}

// NewRoot creates an empty root with no uploader; set one before drawing.
func NewRoot(name string) *Root {
	return &Root{
		name:      name,
		transform: NewTransform(),
		groups:    make(map[string]*Group),
	}
}

// Name returns the display name.
func (r *Root) Name() string { return r.name }

// Transform returns the root transform for in-place edits.
func (r *Root) Transform() *Transform { return &r.transform }

// SetUploader sets the collaborator that builds GPU buffers on first draw.
func (r *Root) SetUploader(u Uploader) { r.uploader = u }

// Add takes ownership of g under its name. A taken name leaves the root unchanged.
func (r *Root) Add(g *Group) error {
	if g.name == "" || strings.Contains(g.name, "/") {
		return fmt.Errorf("group %q: %w", g.name, ErrInvalidName)
	}
	if _, exists := r.groups[g.name]; exists {
		return fmt.Errorf("group %q in %q: %w", g.name, r.name, ErrDuplicateName)
	}
	if g.parent != nil {
		return fmt.Errorf("group %q: %w", g.name, ErrAttached)
	}
	g.parent = r
	r.groups[g.name] = g
	r.order = append(r.order, g.name)
	return nil
}

// Group returns the group with the given name.
func (r *Root) Group(name string) (*Group, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// Remove disposes and drops the named group.
func (r *Root) Remove(name string) bool {
	g, ok := r.groups[name]
	if !ok {
		return false
	}
	g.Dispose()
	g.parent = nil
	delete(r.groups, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns group names in insertion order.
func (r *Root) Names() []string {
	return append([]string(nil), r.order...)
}

// Groups returns groups in insertion order.
func (r *Root) Groups() []*Group {
	out := make([]*Group, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.groups[name])
	}
	return out
}

// Len returns the number of groups.
func (r *Root) Len() int { return len(r.order) }

// WorldMatrix returns the root's local matrix.
func (r *Root) WorldMatrix() mgl32.Mat4 {
	return r.transform.LocalMatrix()
}

// Bounds returns the world-space bounds of every holder in the scene.
func (r *Root) Bounds() (min, max mgl32.Vec3, ok bool) {
	for _, g := range r.Groups() {
		gmin, gmax, gok := g.WorldBounds()
		if !gok {
			continue
		}
		if !ok {
			min, max, ok = gmin, gmax, true
			continue
		}
		min, max = expand(min, max, gmin)
		min, max = expand(min, max, gmax)
	}
	return min, max, ok
}

// Draw binds the shader once and draws every group in insertion order.
func (r *Root) Draw(sh Shader, viewProj mgl32.Mat4) {
	sh.Use()
	for _, name := range r.order {
		r.groups[name].draw(sh, viewProj, r.uploader)
	}
}

// Dispose disposes every group and clears the root.
func (r *Root) Dispose() {
	for _, name := range r.order {
		g := r.groups[name]
		g.Dispose()
		g.parent = nil
	}
	logger.Debug("scene disposed", zap.String("scene", r.name), zap.Int("groups", len(r.order)))
	r.groups = make(map[string]*Group)
	r.order = nil
}
