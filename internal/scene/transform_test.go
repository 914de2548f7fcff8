package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.Enabled)
	assert.True(t, tr.LocalMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestLocalMatrixOrder(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{1, 2, 3}
	tr.Rotation = mgl32.Vec3{0, 90, 0}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	// Scale first, then rotate about Y, then translate.
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.LocalMatrix())
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{1, 2, 1}, 1e-5), "got %v", p)
}

func TestEulerMatrixComposition(t *testing.T) {
	deg := mgl32.Vec3{30, 45, 60}
	want := mgl32.HomogRotate3DX(mgl32.DegToRad(30)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60)))
	assert.True(t, EulerMatrix(deg).ApproxEqual(want))
}

func TestDisabledTransformIsIdentity(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{5, 5, 5}
	tr.Enabled = false
	assert.True(t, tr.LocalMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestReset(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{1, 1, 1}
	tr.Rotation = mgl32.Vec3{10, 20, 30}
	tr.Scale = mgl32.Vec3{3, 3, 3}
	tr.Enabled = false

	tr.Reset()
	assert.Equal(t, mgl32.Vec3{}, tr.Translation)
	assert.Equal(t, mgl32.Vec3{}, tr.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
	assert.False(t, tr.Enabled)
}

func TestTransformBounds(t *testing.T) {
	m := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 1, 1))
	min, max := TransformBounds(m, mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	assert.True(t, min.ApproxEqual(mgl32.Vec3{-1, -1, -1}), "min %v", min)
	assert.True(t, max.ApproxEqual(mgl32.Vec3{3, 1, 1}), "max %v", max)
}
