package shapes

import "github.com/chewxy/math32"

// DefaultSlices is the ring resolution for round solids.
const DefaultSlices = 36

// Prism returns a triangular prism: a triangle in the XY plane spanning [-0.5, 0.5],
// apex up, extruded along Z over [-0.5, 0.5]. Faces are flat shaded.
func Prism() *Mesh {
	var b builder
	a0 := [3]float32{-0.5, -0.5, 0.5}
	b0 := [3]float32{0.5, -0.5, 0.5}
	c0 := [3]float32{0, 0.5, 0.5}
	a1 := [3]float32{-0.5, -0.5, -0.5}
	b1 := [3]float32{0.5, -0.5, -0.5}
	c1 := [3]float32{0, 0.5, -0.5}

	b.flatTri(a0, b0, c0, [2]float32{0, 0}, [2]float32{1, 0}, [2]float32{0.5, 1})
	b.flatTri(a1, c1, b1, [2]float32{1, 0}, [2]float32{0.5, 1}, [2]float32{0, 0})
	b.flatQuad(a1, b1, b0, a0)
	b.flatQuad(b0, b1, c1, c0)
	b.flatQuad(c0, c1, a1, a0)
	return b.mesh()
}

// Pyramid3 returns a tetrahedron-like pyramid with a triangular base at y=-0.5 and
// its apex at (0, 0.5, 0).
func Pyramid3() *Mesh {
	var b builder
	apex := [3]float32{0, 0.5, 0}
	pa := [3]float32{-0.5, -0.5, 0.5}
	pb := [3]float32{0.5, -0.5, 0.5}
	pc := [3]float32{0, -0.5, -0.5}
	top := [2]float32{0.5, 1}

	b.flatTri(pa, pc, pb, [2]float32{0, 0}, [2]float32{0.5, 1}, [2]float32{1, 0})
	b.flatTri(pa, pb, apex, [2]float32{0, 0}, [2]float32{1, 0}, top)
	b.flatTri(pb, pc, apex, [2]float32{0, 0}, [2]float32{1, 0}, top)
	b.flatTri(pc, pa, apex, [2]float32{0, 0}, [2]float32{1, 0}, top)
	return b.mesh()
}

// Pyramid4 returns a square pyramid: base [-0.5, 0.5] on XZ at y=-0.5, apex at (0, 0.5, 0).
func Pyramid4() *Mesh {
	var b builder
	apex := [3]float32{0, 0.5, 0}
	p0 := [3]float32{-0.5, -0.5, -0.5}
	p1 := [3]float32{0.5, -0.5, -0.5}
	p2 := [3]float32{0.5, -0.5, 0.5}
	p3 := [3]float32{-0.5, -0.5, 0.5}
	top := [2]float32{0.5, 1}

	b.flatQuad(p0, p1, p2, p3)
	b.flatTri(p3, p2, apex, [2]float32{0, 0}, [2]float32{1, 0}, top)
	b.flatTri(p2, p1, apex, [2]float32{0, 0}, [2]float32{1, 0}, top)
	b.flatTri(p1, p0, apex, [2]float32{0, 0}, [2]float32{1, 0}, top)
	b.flatTri(p0, p3, apex, [2]float32{0, 0}, [2]float32{1, 0}, top)
	return b.mesh()
}

// TaperedCylinder returns a frustum with its base (radius 1) on y=0 and its top
// (radius 0.5) on y=1, closed by both caps. slices <= 2 falls back to DefaultSlices.
func TaperedCylinder(slices int) *Mesh {
	return frustum(1, 0.5, 1, slices)
}

func frustum(r0, r1, height float32, slices int) *Mesh {
	if slices <= 2 {
		slices = DefaultSlices
	}
	var b builder
	slope := (r0 - r1) / height

	// side: one ring of vertices per edge, seam duplicated so u runs 0..1
	bottom := make([]uint32, slices+1)
	top := make([]uint32, slices+1)
	for i := 0; i <= slices; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(slices)
		c, s := math32.Cos(theta), math32.Sin(theta)
		n := normalize([3]float32{c, slope, s})
		u := float32(i) / float32(slices)
		bottom[i] = b.vertex([3]float32{r0 * c, 0, r0 * s}, n, u, 0)
		top[i] = b.vertex([3]float32{r1 * c, height, r1 * s}, n, u, 1)
	}
	for i := 0; i < slices; i++ {
		b.tri(bottom[i], top[i], top[i+1])
		b.tri(bottom[i], top[i+1], bottom[i+1])
	}

	addCap := func(y, r float32, n [3]float32, up bool) {
		center := b.vertex([3]float32{0, y, 0}, n, 0.5, 0.5)
		ring := make([]uint32, slices+1)
		for i := 0; i <= slices; i++ {
			theta := 2 * math32.Pi * float32(i) / float32(slices)
			c, s := math32.Cos(theta), math32.Sin(theta)
			ring[i] = b.vertex([3]float32{r * c, y, r * s}, n, 0.5+0.5*c, 0.5+0.5*s)
		}
		for i := 0; i < slices; i++ {
			if up {
				b.tri(center, ring[i+1], ring[i])
			} else {
				b.tri(center, ring[i], ring[i+1])
			}
		}
	}
	addCap(0, r0, [3]float32{0, -1, 0}, false)
	addCap(height, r1, [3]float32{0, 1, 0}, true)
	return b.mesh()
}

// SmoothNormals replaces m.Normals with area-weighted per-vertex normals computed
// from the triangles that share each vertex. Vertices used by no triangle get a zero normal.
func SmoothNormals(m *Mesh) {
	n := m.VertexCount()
	acc := make([]float32, n*3)
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		p0 := [3]float32{m.Positions[i0*3], m.Positions[i0*3+1], m.Positions[i0*3+2]}
		p1 := [3]float32{m.Positions[i1*3], m.Positions[i1*3+1], m.Positions[i1*3+2]}
		p2 := [3]float32{m.Positions[i2*3], m.Positions[i2*3+1], m.Positions[i2*3+2]}
		u := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		v := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		// unnormalized cross product: length is twice the triangle area
		fn := [3]float32{
			u[1]*v[2] - u[2]*v[1],
			u[2]*v[0] - u[0]*v[2],
			u[0]*v[1] - u[1]*v[0],
		}
		for _, idx := range [3]uint32{i0, i1, i2} {
			acc[idx*3] += fn[0]
			acc[idx*3+1] += fn[1]
			acc[idx*3+2] += fn[2]
		}
	}
	for i := 0; i < n; i++ {
		v := normalize([3]float32{acc[i*3], acc[i*3+1], acc[i*3+2]})
		acc[i*3], acc[i*3+1], acc[i*3+2] = v[0], v[1], v[2]
	}
	m.Normals = acc
}
