package picking

import (
	"github.com/Faultbox/pcscene/internal/scene"
)

// Hit is the nearest holder under a ray.
type Hit struct {
	Group    string
	HolderID int
	Distance float32
}

// Pick tests r against every visible holder's world bounds and returns the
// closest hit.
func Pick(root *scene.Root, r Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, g := range root.Groups() {
		if g.Hidden() {
			continue
		}
		for _, id := range g.IDs() {
			h, _ := g.Holder(id)
			if h.Hidden() {
				continue
			}
			lo, hi, ok := h.WorldBounds()
			if !ok {
				continue
			}
			t, hit := r.IntersectAABB(NewAABB(lo, hi))
			if !hit || (found && t >= best.Distance) {
				continue
			}
			best = Hit{Group: g.Name(), HolderID: id, Distance: t}
			found = true
		}
	}
	return best, found
}
