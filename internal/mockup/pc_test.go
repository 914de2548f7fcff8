package mockup

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPC(t *testing.T) {
	root, err := BuildPC()
	require.NoError(t, err)
	assert.Equal(t, []string{"CPU", "Monitor", "Keyboard", "Mouse"}, root.Names())

	cpu, ok := root.Group("CPU")
	require.True(t, ok)
	tower, ok := cpu.Holder(1)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{-0.7, 0.4, 0}, tower.Transform().Translation)
	assert.Len(t, tower.Vertices(), 24)
	assert.Len(t, tower.Triangles(), 36)
	assert.Len(t, tower.Edges(), 24)
	assert.Equal(t, Gray, tower.Color())

	mon, _ := root.Group("Monitor")
	assert.Equal(t, 4, mon.Len())

	// Everything sits on or above the desk plane.
	min, max, ok := root.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, min.Y(), 1e-5)
	assert.InDelta(t, 0.8, max.Y(), 1e-5)
}

func TestBuildGroupsByFirstSeen(t *testing.T) {
	root, err := Build("two", []Part{
		{Group: "A", Name: "a", Size: mgl32.Vec3{1, 1, 1}},
		{Group: "B", Name: "b", Size: mgl32.Vec3{1, 1, 1}},
		{Group: "A", Name: "c", Size: mgl32.Vec3{1, 1, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, root.Names())
	a, _ := root.Group("A")
	assert.Equal(t, []int{1, 2}, a.IDs())
}
