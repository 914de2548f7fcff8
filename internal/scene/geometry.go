package scene

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is a polygon mesh in flat arrays: xyz vertex triples, triangle
// index triples and edge index pairs.
type Geometry struct {
	Vertices  []float32
	Triangles []uint32
	Edges     []uint32
}

// Clone returns a deep copy. Empty arrays come back nil.
func (g Geometry) Clone() Geometry {
	return Geometry{
		Vertices:  clone(g.Vertices),
		Triangles: clone(g.Triangles),
		Edges:     clone(g.Edges),
	}
}

func clone[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// VertexCount returns the number of xyz triples.
func (g Geometry) VertexCount() int { return len(g.Vertices) / 3 }

// TriangleCount returns the number of index triples.
func (g Geometry) TriangleCount() int { return len(g.Triangles) / 3 }

// EdgeCount returns the number of index pairs.
func (g Geometry) EdgeCount() int { return len(g.Edges) / 2 }

// Empty reports whether there is nothing to draw.
func (g Geometry) Empty() bool {
	return len(g.Vertices) == 0 || len(g.Triangles) == 0
}

// Validate checks array shapes and index ranges.
func (g Geometry) Validate() error {
	if len(g.Vertices)%3 != 0 {
		return fmt.Errorf("vertices length %d is not a multiple of 3", len(g.Vertices))
	}
	if len(g.Triangles)%3 != 0 {
		return fmt.Errorf("triangles length %d is not a multiple of 3", len(g.Triangles))
	}
	if len(g.Edges)%2 != 0 {
		return fmt.Errorf("edges length %d is not a multiple of 2", len(g.Edges))
	}
	n := uint32(g.VertexCount())
	for i, idx := range g.Triangles {
		if idx >= n {
			return fmt.Errorf("triangle index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	for i, idx := range g.Edges {
		if idx >= n {
			return fmt.Errorf("edge index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Vertex returns vertex i.
func (g Geometry) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{g.Vertices[3*i], g.Vertices[3*i+1], g.Vertices[3*i+2]}
}

// Bounds returns the local axis-aligned bounds, ok=false when there are no vertices.
func (g Geometry) Bounds() (min, max mgl32.Vec3, ok bool) {
	n := g.VertexCount()
	if n == 0 {
		return min, max, false
	}
	min, max = g.Vertex(0), g.Vertex(0)
	for i := 1; i < n; i++ {
		v := g.Vertex(i)
		for a := 0; a < 3; a++ {
			if v[a] < min[a] {
				min[a] = v[a]
			}
			if v[a] > max[a] {
				max[a] = v[a]
			}
		}
	}
	return min, max, true
}

// Center returns the average vertex position.
func (g Geometry) Center() mgl32.Vec3 {
	n := g.VertexCount()
	var sum mgl32.Vec3
	if n == 0 {
		return sum
	}
	for i := 0; i < n; i++ {
		sum = sum.Add(g.Vertex(i))
	}
	return sum.Mul(1 / float32(n))
}
