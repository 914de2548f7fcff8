// Package primitive builds polygon meshes for simple solids. Faces are wound
// counter-clockwise seen from outside, triangulated as fans, and every face
// edge is emitted once.
package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/pcscene/internal/scene"
)

// Builder accumulates a vertex pool and polygon faces indexing into it.
type Builder struct {
	verts []mgl32.Vec3
	faces [][]uint32
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// AddVertex appends v and returns its index.
func (b *Builder) AddVertex(v mgl32.Vec3) uint32 {
	b.verts = append(b.verts, v)
	return uint32(len(b.verts) - 1)
}

// AddFace adds a polygon over existing vertex indices. Fewer than three
// indices are ignored.
func (b *Builder) AddFace(indices ...uint32) {
	if len(indices) < 3 {
		return
	}
	b.faces = append(b.faces, append([]uint32(nil), indices...))
}

// AddTriangle adds a triangle with its own three vertices.
func (b *Builder) AddTriangle(p0, p1, p2 mgl32.Vec3) {
	b.AddFace(b.AddVertex(p0), b.AddVertex(p1), b.AddVertex(p2))
}

// AddQuad adds a quad with its own four vertices.
func (b *Builder) AddQuad(p0, p1, p2, p3 mgl32.Vec3) {
	b.AddFace(b.AddVertex(p0), b.AddVertex(p1), b.AddVertex(p2), b.AddVertex(p3))
}

// AddPolygon adds one face over the given points.
func (b *Builder) AddPolygon(pts []mgl32.Vec3) {
	if len(pts) < 3 {
		return
	}
	idx := make([]uint32, len(pts))
	for i, p := range pts {
		idx[i] = b.AddVertex(p)
	}
	b.AddFace(idx...)
}

// AddRectangle adds the quad origin, origin+u, origin+u+v, origin+v. Zero
// directions default to +X and +Z.
func (b *Builder) AddRectangle(origin mgl32.Vec3, uLen, vLen float32, uDir, vDir mgl32.Vec3) {
	u := direction(uDir, mgl32.Vec3{1, 0, 0}).Mul(uLen)
	v := direction(vDir, mgl32.Vec3{0, 0, 1}).Mul(vLen)
	b.AddQuad(origin, origin.Add(u), origin.Add(u).Add(v), origin.Add(v))
}

// AddRegularPolygon adds a flat n-gon in the plane spanned by uDir and vDir.
func (b *Builder) AddRegularPolygon(center mgl32.Vec3, radius float32, sides int, uDir, vDir mgl32.Vec3) {
	b.AddPolygon(ring(center, radius, sides, uDir, vDir))
}

// AddBox adds an axis-aligned box around center. The eight corners are shared
// by all six faces.
func (b *Builder) AddBox(center, size mgl32.Vec3) {
	h := size.Mul(0.5)
	lo, hi := center.Sub(h), center.Add(h)

	var c [8]uint32
	for i := range c {
		p := lo
		if i&1 != 0 {
			p[0] = hi[0]
		}
		if i&2 != 0 {
			p[1] = hi[1]
		}
		if i&4 != 0 {
			p[2] = hi[2]
		}
		c[i] = b.AddVertex(p)
	}
	// Bit 0 is x, bit 1 is y, bit 2 is z.
	b.AddFace(c[4], c[5], c[7], c[6]) // +Z
	b.AddFace(c[1], c[0], c[2], c[3]) // -Z
	b.AddFace(c[0], c[4], c[6], c[2]) // -X
	b.AddFace(c[5], c[1], c[3], c[7]) // +X
	b.AddFace(c[0], c[1], c[5], c[4]) // -Y
	b.AddFace(c[2], c[6], c[7], c[3]) // +Y
}

// AddPyramid adds a square-based pyramid with its base centred on center.
func (b *Builder) AddPyramid(center mgl32.Vec3, baseX, baseZ, height float32) {
	hx, hz := baseX/2, baseZ/2
	p0 := center.Add(mgl32.Vec3{-hx, 0, -hz})
	p1 := center.Add(mgl32.Vec3{hx, 0, -hz})
	p2 := center.Add(mgl32.Vec3{hx, 0, hz})
	p3 := center.Add(mgl32.Vec3{-hx, 0, hz})
	apex := center.Add(mgl32.Vec3{0, height, 0})

	b.AddQuad(p0, p1, p2, p3)
	b.AddTriangle(p0, p1, apex)
	b.AddTriangle(p1, p2, apex)
	b.AddTriangle(p2, p3, apex)
	b.AddTriangle(p3, p0, apex)
}

// AddExtrudePolygon adds the polygon, a reversed copy offset by height along
// dir (default +Y), and a quad wall per side.
func (b *Builder) AddExtrudePolygon(pts []mgl32.Vec3, height float32, dir mgl32.Vec3) {
	n := len(pts)
	if n < 3 {
		return
	}
	offset := direction(dir, mgl32.Vec3{0, 1, 0}).Mul(height)

	b.AddPolygon(pts)
	back := make([]mgl32.Vec3, n)
	for i, p := range pts {
		back[n-1-i] = p.Add(offset)
	}
	b.AddPolygon(back)

	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		b.AddQuad(p, p.Add(offset), q.Add(offset), q)
	}
}

// AddPrism extrudes a regular polygon along +Y.
func (b *Builder) AddPrism(center mgl32.Vec3, radius float32, sides int, height float32, uDir, vDir mgl32.Vec3) {
	b.AddExtrudePolygon(ring(center, radius, sides, uDir, vDir), height, mgl32.Vec3{})
}

// Transform applies m to every vertex added so far.
func (b *Builder) Transform(m mgl32.Mat4) {
	for i, v := range b.verts {
		b.verts[i] = mgl32.TransformCoordinate(v, m)
	}
}

// Build flattens the pool and faces into geometry. The builder stays usable.
func (b *Builder) Build() scene.Geometry {
	g := scene.Geometry{Vertices: make([]float32, 0, 3*len(b.verts))}
	for _, v := range b.verts {
		g.Vertices = append(g.Vertices, v[0], v[1], v[2])
	}

	for _, f := range b.faces {
		for k := 1; k < len(f)-1; k++ {
			g.Triangles = append(g.Triangles, f[0], f[k], f[k+1])
		}
	}

	seen := make(map[[2]uint32]struct{})
	for _, f := range b.faces {
		for i := range f {
			e := [2]uint32{f[i], f[(i+1)%len(f)]}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			g.Edges = append(g.Edges, e[0], e[1])
		}
	}
	return g
}

// Box returns a single box mesh.
func Box(center, size mgl32.Vec3) scene.Geometry {
	b := New()
	b.AddBox(center, size)
	return b.Build()
}

func ring(center mgl32.Vec3, radius float32, sides int, uDir, vDir mgl32.Vec3) []mgl32.Vec3 {
	if sides < 3 {
		return nil
	}
	u := direction(uDir, mgl32.Vec3{1, 0, 0})
	v := direction(vDir, mgl32.Vec3{0, 0, 1})
	pts := make([]mgl32.Vec3, sides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(sides)
		off := u.Mul(float32(math.Cos(a))).Add(v.Mul(float32(math.Sin(a))))
		pts[i] = center.Add(off.Mul(radius))
	}
	return pts
}

func direction(d, fallback mgl32.Vec3) mgl32.Vec3 {
	if d.Len() == 0 {
		return fallback
	}
	return d.Normalize()
}
