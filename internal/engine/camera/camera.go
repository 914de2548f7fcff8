// Package camera provides the orbit camera used by the viewer.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a center point. Angles are in degrees.
type OrbitCamera struct {
	// Center point to orbit around
	Center mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // Vertical angle, positive looks down
	Yaw      float32 // Horizontal angle around +Y

	// Constraints
	MinDistance float32
	MaxDistance float32
	MaxPitch    float32 // Pitch is clamped to [-MaxPitch, MaxPitch]

	// Sensitivity, degrees per pixel for drags
	YawSensitivity   float32
	PitchSensitivity float32
	ZoomSensitivity  float32
	PanSpeed         float32 // Fraction of Distance per second
}

// NewOrbitCamera creates an orbit camera framing a desk-sized scene.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Center:           mgl32.Vec3{0, 0.35, 0},
		Distance:         2.2,
		Pitch:            15,
		Yaw:              0,
		MinDistance:      0.3,
		MaxDistance:      20,
		MaxPitch:         85,
		YawSensitivity:   0.4,
		PitchSensitivity: 0.3,
		ZoomSensitivity:  0.1,
		PanSpeed:         0.5,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	pitch := float64(mgl32.DegToRad(c.Pitch))
	yaw := float64(mgl32.DegToRad(c.Yaw))
	offset := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	return c.Center.Add(offset.Mul(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// HandleDrag updates rotation based on mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.YawSensitivity
	c.Pitch += deltaY * c.PitchSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -c.MaxPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point. Inputs are axis values in [-1, 1]
// already scaled by the frame time.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * c.PanSpeed

	yaw := float64(mgl32.DegToRad(c.Yaw))
	dirX := float32(math.Sin(yaw))
	dirZ := float32(math.Cos(yaw))
	rightX := float32(math.Cos(yaw))
	rightZ := float32(-math.Sin(yaw))

	// Negate forward so it moves "into" the scene
	c.Center[0] += (-dirX*forward + rightX*right) * speed
	c.Center[2] += (-dirZ*forward + rightZ*right) * speed
	c.Center[1] += up * speed
}

// FitToBounds centres on the box and backs off far enough to see all of it
// with the given vertical field of view in degrees.
func (c *OrbitCamera) FitToBounds(min, max mgl32.Vec3, fovDeg float32) {
	c.Center = min.Add(max).Mul(0.5)
	radius := max.Sub(min).Len() / 2
	half := float64(mgl32.DegToRad(fovDeg)) / 2
	d := radius / float32(math.Sin(half))
	c.Distance = mgl32.Clamp(d, c.MinDistance, c.MaxDistance)
}
