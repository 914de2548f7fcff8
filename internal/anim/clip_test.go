package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	p0 = Pose{Translation: mgl32.Vec3{0, 0, 0}, Rotation: mgl32.Vec3{0, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}}
	p1 = Pose{Translation: mgl32.Vec3{2, 4, 0}, Rotation: mgl32.Vec3{0, 90, 0}, Scale: mgl32.Vec3{2, 2, 2}}
	p2 = Pose{Translation: mgl32.Vec3{2, 4, 6}, Rotation: mgl32.Vec3{0, 90, 350}, Scale: mgl32.Vec3{1, 1, 1}}
)

func threeFrames(loop bool) *Clip {
	// Added out of order on purpose.
	return NewClip("walk", loop,
		Frame{Time: 2, Pose: p2},
		Frame{Time: 0, Pose: p0},
		Frame{Time: 1, Pose: p1},
	)
}

func assertPose(t *testing.T, want, got Pose) {
	t.Helper()
	assert.True(t, want.Translation.ApproxEqual(got.Translation), "translation %v != %v", want.Translation, got.Translation)
	assert.True(t, want.Rotation.ApproxEqual(got.Rotation), "rotation %v != %v", want.Rotation, got.Rotation)
	assert.True(t, want.Scale.ApproxEqual(got.Scale), "scale %v != %v", want.Scale, got.Scale)
}

func TestAddFrameKeepsOrder(t *testing.T) {
	c := threeFrames(false)
	frames := c.Frames()
	require.Len(t, frames, 3)
	for i, want := range []float32{0, 1, 2} {
		assert.Equal(t, want, frames[i].Time)
	}
	assert.Equal(t, float32(2), c.Duration())
	assert.Equal(t, float32(0), NewClip("empty", false).Duration())
}

func TestSample(t *testing.T) {
	c := threeFrames(false)

	assertPose(t, p0.Lerp(p1, 0.5), c.Sample(0.5))
	assertPose(t, Pose{
		Translation: mgl32.Vec3{1, 2, 0},
		Rotation:    mgl32.Vec3{0, 45, 0},
		Scale:       mgl32.Vec3{1.5, 1.5, 1.5},
	}, c.Sample(0.5))
	assertPose(t, p1, c.Sample(1))
	assertPose(t, p2, c.Sample(2.5))
	assertPose(t, p0, c.Sample(-1))
}

func TestSampleEulerIsComponentwise(t *testing.T) {
	c := threeFrames(false)
	// 0 -> 350 on Z goes the long way round.
	got := c.Sample(1.5)
	assert.InDelta(t, 175, got.Rotation.Z(), 1e-4)
}

func TestPoseAtLoopWraps(t *testing.T) {
	assertPose(t, threeFrames(false).Sample(0.5), threeFrames(true).PoseAt(2.5))
	assertPose(t, p2, threeFrames(false).PoseAt(2.5))
}

func TestSampleDegenerateClips(t *testing.T) {
	assertPose(t, IdentityPose(), NewClip("empty", false).Sample(3))

	single := NewClip("still", false, Frame{Time: 4, Pose: p1})
	assertPose(t, p1, single.Sample(0))
	assertPose(t, p1, single.Sample(10))
}

func TestClone(t *testing.T) {
	c := threeFrames(true)
	dup, err := c.Clone()
	require.NoError(t, err)

	dup.AddFrame(Frame{Time: 3, Pose: p0})
	dup.Name = "copy"
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "walk", c.Name)
	assert.True(t, dup.Loop)
	assert.Equal(t, c.Frames(), dup.Frames()[:3])
}
