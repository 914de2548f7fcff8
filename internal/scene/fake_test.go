package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// callLog captures shader and buffer calls in order.
type callLog struct {
	calls []string
	mats  map[string]mgl32.Mat4
	vecs  []mgl32.Vec4
}

type fakeShader struct{ log *callLog }

func (s fakeShader) Use() { s.log.calls = append(s.log.calls, "use") }

func (s fakeShader) SetMatrix4(name string, m mgl32.Mat4) {
	s.log.calls = append(s.log.calls, "mat:"+name)
	s.log.mats[name] = m
}

func (s fakeShader) SetVector4(name string, v mgl32.Vec4) {
	s.log.calls = append(s.log.calls, "vec:"+name)
	s.log.vecs = append(s.log.vecs, v)
}

type fakeBuffer struct {
	log      *callLog
	released int
}

func (b *fakeBuffer) DrawTriangles() { b.log.calls = append(b.log.calls, "triangles") }

func (b *fakeBuffer) DrawLines(width float32) {
	b.log.calls = append(b.log.calls, fmt.Sprintf("lines:%g", width))
}

func (b *fakeBuffer) Release() { b.released++ }

type fakeUploader struct {
	log     *callLog
	buffers []*fakeBuffer
	fail    bool
}

func (u *fakeUploader) Upload(g Geometry) (GeometryBuffer, error) {
	if u.fail {
		return nil, errors.New("no context")
	}
	b := &fakeBuffer{log: u.log}
	u.buffers = append(u.buffers, b)
	return b, nil
}

func newFakes() (*callLog, fakeShader, *fakeUploader) {
	log := &callLog{mats: make(map[string]mgl32.Mat4)}
	return log, fakeShader{log: log}, &fakeUploader{log: log}
}

// triangle is one triangle with three edges.
func triangle() Geometry {
	return Geometry{
		Vertices:  []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Triangles: []uint32{0, 1, 2},
		Edges:     []uint32{0, 1, 1, 2, 2, 0},
	}
}
