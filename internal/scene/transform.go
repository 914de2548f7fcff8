// Package scene implements the owning scene graph: a Root holds named Groups,
// each Group holds id-keyed Holders carrying mesh geometry. World matrices are
// recomposed from the parent chain on every call, never cached.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the translation/rotation/scale triple owned by every node.
// Rotation holds Euler angles in degrees applied intrinsically X, then Y, then Z.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
	Enabled     bool
}

// NewTransform returns an enabled identity transform.
func NewTransform() Transform {
	return Transform{
		Scale:   mgl32.Vec3{1, 1, 1},
		Enabled: true,
	}
}

// Reset restores the identity placement without changing Enabled.
func (t *Transform) Reset() {
	t.Translation = mgl32.Vec3{}
	t.Rotation = mgl32.Vec3{}
	t.Scale = mgl32.Vec3{1, 1, 1}
}

// LocalMatrix returns Translate * Euler(X,Y,Z) * Scale, or identity when disabled.
func (t *Transform) LocalMatrix() mgl32.Mat4 {
	if !t.Enabled {
		return mgl32.Ident4()
	}
	tr := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(EulerMatrix(t.Rotation)).Mul4(sc)
}

// EulerMatrix builds Rx * Ry * Rz from angles in degrees.
func EulerMatrix(deg mgl32.Vec3) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(deg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(deg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(deg.Z()))
	return rx.Mul4(ry).Mul4(rz)
}
