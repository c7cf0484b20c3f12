// Package shapes builds CPU-side triangle meshes: the canonical solids raylib has no
// generator for, and the buffers produced by the model importer. Meshes are plain
// float/uint32 slices so they can be inspected in tests without a GPU.
package shapes

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Mesh is an indexed triangle list. Positions and Normals hold xyz per vertex,
// UVs hold uv per vertex (may be empty). Indices reference vertices in groups of three.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices (Positions / 3).
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles (Indices / 3).
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// HasUVs reports whether every vertex carries a texture coordinate.
func (m *Mesh) HasUVs() bool {
	return len(m.UVs) > 0 && len(m.UVs)/2 == m.VertexCount()
}

// Validate checks the buffers agree with each other.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return errors.New("positions not a multiple of 3")
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("normals: have %d floats, want %d", len(m.Normals), len(m.Positions))
	}
	if len(m.UVs) != 0 && len(m.UVs)/2 != m.VertexCount() {
		return fmt.Errorf("uvs: have %d floats, want %d", len(m.UVs), m.VertexCount()*2)
	}
	if len(m.Indices)%3 != 0 {
		return errors.New("indices not a multiple of 3")
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d out of range: %d >= %d", i, idx, n)
		}
	}
	return nil
}

// Interleaved returns position+normal pairs (6 floats per vertex), the layout the
// shader's first two attributes expect when no UVs are used.
func (m *Mesh) Interleaved() []float32 {
	n := m.VertexCount()
	out := make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		out = append(out, m.Positions[i*3:i*3+3]...)
		if len(m.Normals) >= i*3+3 {
			out = append(out, m.Normals[i*3:i*3+3]...)
		} else {
			out = append(out, 0, 0, 0)
		}
	}
	return out
}

// Expand returns a copy with one vertex per index (no shared vertices). Used when the
// vertex count exceeds what a 16-bit index buffer can address.
func (m *Mesh) Expand() *Mesh {
	out := &Mesh{
		Positions: make([]float32, 0, len(m.Indices)*3),
		Normals:   make([]float32, 0, len(m.Indices)*3),
		Indices:   make([]uint32, len(m.Indices)),
	}
	uvs := m.HasUVs()
	if uvs {
		out.UVs = make([]float32, 0, len(m.Indices)*2)
	}
	for i, idx := range m.Indices {
		out.Positions = append(out.Positions, m.Positions[idx*3:idx*3+3]...)
		out.Normals = append(out.Normals, m.Normals[idx*3:idx*3+3]...)
		if uvs {
			out.UVs = append(out.UVs, m.UVs[idx*2:idx*2+2]...)
		}
		out.Indices[i] = uint32(i)
	}
	return out
}

// builder accumulates vertices and triangles for the generators below.
type builder struct {
	m Mesh
}

func (b *builder) vertex(p, n [3]float32, u, v float32) uint32 {
	idx := uint32(b.m.VertexCount())
	b.m.Positions = append(b.m.Positions, p[0], p[1], p[2])
	b.m.Normals = append(b.m.Normals, n[0], n[1], n[2])
	b.m.UVs = append(b.m.UVs, u, v)
	return idx
}

func (b *builder) tri(a, c, d uint32) {
	b.m.Indices = append(b.m.Indices, a, c, d)
}

// flatTri adds a triangle with its own three vertices sharing the face normal.
func (b *builder) flatTri(p0, p1, p2 [3]float32, uv0, uv1, uv2 [2]float32) {
	n := faceNormal(p0, p1, p2)
	i0 := b.vertex(p0, n, uv0[0], uv0[1])
	i1 := b.vertex(p1, n, uv1[0], uv1[1])
	i2 := b.vertex(p2, n, uv2[0], uv2[1])
	b.tri(i0, i1, i2)
}

// flatQuad adds p0..p3 (counter-clockwise seen from outside) as two triangles.
func (b *builder) flatQuad(p0, p1, p2, p3 [3]float32) {
	n := faceNormal(p0, p1, p2)
	i0 := b.vertex(p0, n, 0, 0)
	i1 := b.vertex(p1, n, 1, 0)
	i2 := b.vertex(p2, n, 1, 1)
	i3 := b.vertex(p3, n, 0, 1)
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

func (b *builder) mesh() *Mesh {
	m := b.m
	return &m
}

func faceNormal(a, b, c [3]float32) [3]float32 {
	u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return normalize([3]float32{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	})
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
