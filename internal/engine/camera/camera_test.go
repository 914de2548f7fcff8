package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPositionDefault(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch = 0
	c.Center = mgl32.Vec3{}
	assert.True(t, c.Position().ApproxEqual(mgl32.Vec3{0, 0, 2.2}))

	c.Pitch = 90
	c.MaxPitch = 90
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{0, 2.2, 0}, 1e-5))
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	p := mgl32.TransformCoordinate(c.Center, c.ViewMatrix())
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -c.Distance, p.Z(), 1e-5)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(10, 1000)
	assert.Equal(t, float32(85), c.Pitch)
	assert.InDelta(t, -4, c.Yaw, 1e-5)
	c.HandleDrag(0, -5000)
	assert.Equal(t, float32(-85), c.Pitch)
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleZoom(1)
	assert.InDelta(t, 1.98, c.Distance, 1e-5)
	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	assert.Equal(t, c.MinDistance, c.Distance)
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 2, 1}, 45)
	assert.True(t, c.Center.ApproxEqual(mgl32.Vec3{0, 1, 0}))
	assert.Greater(t, c.Distance, float32(1.7))
}
