package anim

import (
	"errors"
)

// Binding ties a clip to the group whose transform it drives.
type Binding struct {
	Clip   *Clip
	Target string
}

// Library holds clips by name in insertion order.
type Library struct {
	bindings map[string]Binding
	order    []string
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{bindings: make(map[string]Binding)}
}

// Put stores clip for target, replacing any clip with the same name.
func (l *Library) Put(clip *Clip, target string) error {
	if clip == nil || clip.Name == "" {
		return errors.New("clip must have a name")
	}
	if _, exists := l.bindings[clip.Name]; !exists {
		l.order = append(l.order, clip.Name)
	}
	l.bindings[clip.Name] = Binding{Clip: clip, Target: target}
	return nil
}

// Get returns the binding for name.
func (l *Library) Get(name string) (Binding, bool) {
	b, ok := l.bindings[name]
	return b, ok
}

// Remove drops the named clip.
func (l *Library) Remove(name string) bool {
	if _, ok := l.bindings[name]; !ok {
		return false
	}
	delete(l.bindings, name)
	for i, n := range l.order {
		if n == name {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns clip names in insertion order.
func (l *Library) Names() []string {
	return append([]string(nil), l.order...)
}

// Bindings returns all bindings in insertion order.
func (l *Library) Bindings() []Binding {
	out := make([]Binding, 0, len(l.order))
	for _, n := range l.order {
		out = append(out, l.bindings[n])
	}
	return out
}

// ForTarget returns the names of clips bound to target.
func (l *Library) ForTarget(target string) []string {
	var out []string
	for _, n := range l.order {
		if l.bindings[n].Target == target {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of clips.
func (l *Library) Len() int { return len(l.order) }
