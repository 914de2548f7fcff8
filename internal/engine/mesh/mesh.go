// Package mesh uploads scene geometry into OpenGL buffers.
package mesh

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/pcscene/internal/scene"
)

// Buffer is one holder's GPU geometry: a shared VBO with a triangle VAO/EBO
// and, when edges exist, a line VAO/EBO.
type Buffer struct {
	vbo uint32

	triVAO, triEBO uint32
	triCount       int32

	lineVAO, lineEBO uint32
	lineCount        int32
}

// Uploader builds Buffers. It must be used on the GL thread.
type Uploader struct{}

// Upload implements scene.Uploader.
func (Uploader) Upload(g scene.Geometry) (scene.GeometryBuffer, error) {
	b, err := Upload(g)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Upload creates GPU buffers for g.
func Upload(g scene.Geometry) (*Buffer, error) {
	if g.Empty() {
		return nil, errors.New("empty geometry")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	b := &Buffer{}
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	b.triVAO, b.triEBO = b.indexed(g.Triangles)
	b.triCount = int32(len(g.Triangles))

	if len(g.Edges) > 0 {
		b.lineVAO, b.lineEBO = b.indexed(g.Edges)
		b.lineCount = int32(len(g.Edges))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b, nil
}

// indexed creates a VAO over the shared VBO with its own element buffer.
func (b *Buffer) indexed(indices []uint32) (vao, ebo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	return vao, ebo
}

// DrawTriangles draws the filled mesh.
func (b *Buffer) DrawTriangles() {
	gl.BindVertexArray(b.triVAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.triCount, gl.UNSIGNED_INT, 0)
}

// DrawLines draws the edge overlay. Core profiles may clamp width to 1.
func (b *Buffer) DrawLines(width float32) {
	if b.lineVAO == 0 {
		return
	}
	gl.LineWidth(width)
	gl.BindVertexArray(b.lineVAO)
	gl.DrawElementsWithOffset(gl.LINES, b.lineCount, gl.UNSIGNED_INT, 0)
}

// Release deletes every GL object the buffer created.
func (b *Buffer) Release() {
	if b.triVAO != 0 {
		gl.DeleteVertexArrays(1, &b.triVAO)
		gl.DeleteBuffers(1, &b.triEBO)
	}
	if b.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &b.lineVAO)
		gl.DeleteBuffers(1, &b.lineEBO)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	*b = Buffer{}
}
