package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared with the flat-colour shader.
const (
	UniformMVP   = "mvp"
	UniformModel = "model"
	UniformColor = "uColor"
)

// Shader is the program a scene draws through.
type Shader interface {
	Use()
	SetMatrix4(name string, m mgl32.Mat4)
	SetVector4(name string, v mgl32.Vec4)
}

// GeometryBuffer is an uploaded mesh owned by exactly one Holder.
type GeometryBuffer interface {
	DrawTriangles()
	DrawLines(width float32)
	Release()
}

// Uploader turns raw geometry into a GeometryBuffer. It is only called from
// Draw, so graphs can be built and decoded without a GPU context.
type Uploader interface {
	Upload(g Geometry) (GeometryBuffer, error)
}

// UploaderFunc adapts a function to the Uploader interface.
type UploaderFunc func(g Geometry) (GeometryBuffer, error)

// Upload calls f(g).
func (f UploaderFunc) Upload(g Geometry) (GeometryBuffer, error) {
	return f(g)
}
