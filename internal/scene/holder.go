package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/logger"
)

// DefaultEdgeWidth is the wireframe line width of a new Holder.
const DefaultEdgeWidth float32 = 1.5

// Holder is a leaf node owning mesh geometry and its own placement.
// Geometry is fixed at construction; appearance stays mutable.
type Holder struct {
	name      string
	transform Transform
	geometry  Geometry

	color     mgl32.Vec4
	edgeColor mgl32.Vec4
	edgeWidth float32
	hidden    bool

	// GPU buffer, built on first draw.
	buffer       GeometryBuffer
	uploadFailed bool

	// Non-owning; only read for world matrix composition.
	parent *Group
}

// NewHolder creates a holder with a private copy of g.
func NewHolder(name string, g Geometry) *Holder {
	return &Holder{
		name:      name,
		transform: NewTransform(),
		geometry:  g.Clone(),
		color:     mgl32.Vec4{1, 1, 1, 1},
		edgeColor: mgl32.Vec4{0, 0, 0, 1},
		edgeWidth: DefaultEdgeWidth,
	}
}

// Name returns the display name.
func (h *Holder) Name() string { return h.name }

// Transform returns the holder's own transform for in-place edits.
func (h *Holder) Transform() *Transform { return &h.transform }

// Parent returns the owning group, nil when detached.
func (h *Holder) Parent() *Group { return h.parent }

// Vertices returns a copy of the flat xyz vertex array.
func (h *Holder) Vertices() []float32 { return clone(h.geometry.Vertices) }

// Triangles returns a copy of the triangle index array.
func (h *Holder) Triangles() []uint32 { return clone(h.geometry.Triangles) }

// Edges returns a copy of the edge index array.
func (h *Holder) Edges() []uint32 { return clone(h.geometry.Edges) }

// Geometry returns a deep copy of the mesh.
func (h *Holder) Geometry() Geometry { return h.geometry.Clone() }

// Color returns the fill colour.
func (h *Holder) Color() mgl32.Vec4 { return h.color }

// SetColor sets the fill colour.
func (h *Holder) SetColor(c mgl32.Vec4) { h.color = c }

// EdgeColor returns the wireframe colour.
func (h *Holder) EdgeColor() mgl32.Vec4 { return h.edgeColor }

// SetEdgeColor sets the wireframe colour.
func (h *Holder) SetEdgeColor(c mgl32.Vec4) { h.edgeColor = c }

// EdgeWidth returns the wireframe line width; 0 disables the overlay.
func (h *Holder) EdgeWidth() float32 { return h.edgeWidth }

// SetEdgeWidth sets the wireframe line width.
func (h *Holder) SetEdgeWidth(w float32) { h.edgeWidth = w }

// Hidden reports whether Draw skips this holder.
func (h *Holder) Hidden() bool { return h.hidden }

// SetHidden toggles drawing.
func (h *Holder) SetHidden(hidden bool) { h.hidden = hidden }

// Uploaded reports whether a GPU buffer currently exists.
func (h *Holder) Uploaded() bool { return h.buffer != nil }

// LocalCenter returns the average vertex position in holder space.
func (h *Holder) LocalCenter() mgl32.Vec3 { return h.geometry.Center() }

// WorldMatrix returns parent world * local.
func (h *Holder) WorldMatrix() mgl32.Mat4 {
	local := h.transform.LocalMatrix()
	if h.parent == nil {
		return local
	}
	return h.parent.WorldMatrix().Mul4(local)
}

// WorldBounds returns the world-space AABB of the holder's vertices.
func (h *Holder) WorldBounds() (min, max mgl32.Vec3, ok bool) {
	lmin, lmax, ok := h.geometry.Bounds()
	if !ok {
		return min, max, false
	}
	min, max = TransformBounds(h.WorldMatrix(), lmin, lmax)
	return min, max, true
}

// Draw draws the holder using the uploader found through its parent chain.
func (h *Holder) Draw(sh Shader, viewProj mgl32.Mat4) {
	var up Uploader
	if h.parent != nil {
		up = h.parent.uploader()
	}
	h.draw(sh, viewProj, up)
}

func (h *Holder) draw(sh Shader, viewProj mgl32.Mat4, up Uploader) {
	if h.hidden {
		return
	}
	if h.buffer == nil && !h.upload(up) {
		return
	}

	world := h.WorldMatrix()
	sh.SetMatrix4(UniformMVP, viewProj.Mul4(world))
	sh.SetMatrix4(UniformModel, world)
	sh.SetVector4(UniformColor, h.color)
	h.buffer.DrawTriangles()

	if len(h.geometry.Edges) > 0 && h.edgeWidth > 0 {
		sh.SetVector4(UniformColor, h.edgeColor)
		h.buffer.DrawLines(h.edgeWidth)
	}
}

// upload builds the GPU buffer on demand. Empty geometry, a missing uploader
// or an earlier failure all skip drawing without error.
func (h *Holder) upload(up Uploader) bool {
	if h.geometry.Empty() || up == nil || h.uploadFailed {
		return false
	}
	buf, err := up.Upload(h.geometry)
	if err != nil {
		h.uploadFailed = true
		logger.Warn("geometry upload failed",
			zap.String("holder", h.name),
			zap.Error(err),
		)
		return false
	}
	h.buffer = buf
	logger.Debug("geometry uploaded",
		zap.String("holder", h.name),
		zap.Int("vertices", h.geometry.VertexCount()),
		zap.Int("triangles", h.geometry.TriangleCount()),
	)
	return true
}

// Dispose releases the holder's own GPU buffer. Safe to call repeatedly.
func (h *Holder) Dispose() {
	if h.buffer != nil {
		h.buffer.Release()
		h.buffer = nil
	}
	h.uploadFailed = false
}
