// Package anim records and replays transform keyframes. Rotations are
// interpolated per Euler component, never along the shortest 3D path.
package anim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/pcscene/internal/scene"
)

// Pose is a translation/rotation/scale snapshot.
type Pose struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

// IdentityPose returns the pose of a fresh transform.
func IdentityPose() Pose {
	return Pose{Scale: mgl32.Vec3{1, 1, 1}}
}

// PoseOf snapshots t.
func PoseOf(t *scene.Transform) Pose {
	return Pose{
		Translation: t.Translation,
		Rotation:    t.Rotation,
		Scale:       t.Scale,
	}
}

// ApplyTo writes the pose into t. Enabled is left alone.
func (p Pose) ApplyTo(t *scene.Transform) {
	t.Translation = p.Translation
	t.Rotation = p.Rotation
	t.Scale = p.Scale
}

// Lerp interpolates every component linearly by f.
func (p Pose) Lerp(q Pose, f float32) Pose {
	return Pose{
		Translation: lerp(p.Translation, q.Translation, f),
		Rotation:    lerp(p.Rotation, q.Rotation, f),
		Scale:       lerp(p.Scale, q.Scale, f),
	}
}

func lerp(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(f))
}
