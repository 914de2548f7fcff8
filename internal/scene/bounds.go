package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformBounds transforms the eight corners of a box by m and returns the
// enclosing axis-aligned box.
func TransformBounds(m mgl32.Mat4, min, max mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	var outMin, outMax mgl32.Vec3
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{min.X(), min.Y(), min.Z()}
		if i&1 != 0 {
			corner[0] = max.X()
		}
		if i&2 != 0 {
			corner[1] = max.Y()
		}
		if i&4 != 0 {
			corner[2] = max.Z()
		}
		p := mgl32.TransformCoordinate(corner, m)
		if i == 0 {
			outMin, outMax = p, p
			continue
		}
		outMin, outMax = expand(outMin, outMax, p)
	}
	return outMin, outMax
}

func expand(min, max, p mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	for a := 0; a < 3; a++ {
		if p[a] < min[a] {
			min[a] = p[a]
		}
		if p[a] > max[a] {
			max[a] = p[a]
		}
	}
	return min, max
}
