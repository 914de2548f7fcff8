package anim

import (
	"fmt"
	"math"
	"sort"

	"github.com/jinzhu/copier"
)

// Frame is a pose at a point in clip time.
type Frame struct {
	Time float32
	Pose
}

// Clip is a named, time-sorted list of frames.
type Clip struct {
	Name string
	Loop bool

	frames []Frame
}

// NewClip creates a clip from frames in any order.
func NewClip(name string, loop bool, frames ...Frame) *Clip {
	c := &Clip{Name: name, Loop: loop}
	for _, f := range frames {
		c.AddFrame(f)
	}
	return c
}

// AddFrame inserts f keeping frames sorted by time. Frames with equal time
// keep their insertion order.
func (c *Clip) AddFrame(f Frame) {
	i := sort.Search(len(c.frames), func(i int) bool { return c.frames[i].Time > f.Time })
	c.frames = append(c.frames, Frame{})
	copy(c.frames[i+1:], c.frames[i:])
	c.frames[i] = f
}

// Frames returns a copy of the frames.
func (c *Clip) Frames() []Frame {
	return append([]Frame(nil), c.frames...)
}

// Len returns the number of frames.
func (c *Clip) Len() int { return len(c.frames) }

// Duration is the time of the last frame, 0 when empty.
func (c *Clip) Duration() float32 {
	if len(c.frames) == 0 {
		return 0
	}
	return c.frames[len(c.frames)-1].Time
}

// Sample returns the interpolated pose at time t. Before the first frame it
// returns the first pose, after the last frame the last pose. An empty clip
// samples to the identity pose.
func (c *Clip) Sample(t float32) Pose {
	switch len(c.frames) {
	case 0:
		return IdentityPose()
	case 1:
		return c.frames[0].Pose
	}

	prev, next := -1, -1
	for i := range c.frames {
		if c.frames[i].Time > t {
			next = i
			break
		}
		prev = i
	}

	if prev < 0 {
		return c.frames[0].Pose
	}
	if next < 0 {
		return c.frames[len(c.frames)-1].Pose
	}

	p, n := c.frames[prev], c.frames[next]
	factor := (t - p.Time) / (n.Time - p.Time)
	return p.Pose.Lerp(n.Pose, factor)
}

// PoseAt samples at t, wrapping into [0, Duration) for looping clips.
func (c *Clip) PoseAt(t float32) Pose {
	if c.Loop {
		t = wrap(t, c.Duration())
	}
	return c.Sample(t)
}

// Clone returns an independent copy.
func (c *Clip) Clone() (*Clip, error) {
	out := &Clip{Name: c.Name, Loop: c.Loop}
	if err := copier.CopyWithOption(&out.frames, c.frames, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone clip %q: %w", c.Name, err)
	}
	return out, nil
}

func wrap(t, d float32) float32 {
	if d <= 0 {
		return 0
	}
	w := float32(math.Mod(float64(t), float64(d)))
	if w < 0 {
		w += d
	}
	return w
}
