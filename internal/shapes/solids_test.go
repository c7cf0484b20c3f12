package shapes

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidsAreValidAndOutwardFacing(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
		// interior point used to check normals point away from the solid
		inside [3]float32
	}{
		{"prism", Prism(), [3]float32{0, -0.1, 0}},
		{"pyramid3", Pyramid3(), [3]float32{0, -0.25, 0.1}},
		{"pyramid4", Pyramid4(), [3]float32{0, -0.25, 0}},
		{"tapered cylinder", TaperedCylinder(24), [3]float32{0, 0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh
			require.NoError(t, m.Validate())
			require.True(t, m.HasUVs())
			require.Greater(t, m.TriangleCount(), 3)

			for tri := 0; tri < m.TriangleCount(); tri++ {
				var center [3]float32
				var normal [3]float32
				for k := 0; k < 3; k++ {
					idx := m.Indices[tri*3+k]
					for a := 0; a < 3; a++ {
						center[a] += m.Positions[idx*3+uint32(a)] / 3
						normal[a] += m.Normals[idx*3+uint32(a)] / 3
					}
				}
				out := [3]float32{center[0] - tt.inside[0], center[1] - tt.inside[1], center[2] - tt.inside[2]}
				dot := out[0]*normal[0] + out[1]*normal[1] + out[2]*normal[2]
				assert.Greater(t, dot, float32(0), "triangle %d faces inward", tri)
			}
		})
	}
}

func TestNormalsAreUnitLength(t *testing.T) {
	for _, m := range []*Mesh{Prism(), Pyramid3(), Pyramid4(), TaperedCylinder(0)} {
		for i := 0; i < m.VertexCount(); i++ {
			x, y, z := m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]
			assert.InDelta(t, 1, math32.Sqrt(x*x+y*y+z*z), 1e-5)
		}
	}
}

func TestTaperedCylinderBounds(t *testing.T) {
	m := TaperedCylinder(16)
	for i := 0; i < m.VertexCount(); i++ {
		x, y, z := m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]
		r := math32.Sqrt(x*x + z*z)
		switch y {
		case 0:
			assert.LessOrEqual(t, r, float32(1.0001))
		case 1:
			assert.LessOrEqual(t, r, float32(0.5001))
		default:
			t.Fatalf("vertex %d at unexpected height %v", i, y)
		}
	}
}

func TestSmoothNormals(t *testing.T) {
	// two triangles folded along the x axis share vertices 0 and 1
	m := &Mesh{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 3, 1},
	}
	SmoothNormals(m)
	require.NoError(t, m.Validate())

	assert.InDeltaSlice(t, []float32{0, 0, 1}, m.Normals[6:9], 1e-6)
	assert.InDeltaSlice(t, []float32{0, 1, 0}, m.Normals[9:12], 1e-6)
	s := 1 / math32.Sqrt(2)
	assert.InDeltaSlice(t, []float32{0, s, s}, m.Normals[0:3], 1e-6)
}

func TestExpandAndInterleave(t *testing.T) {
	m := Pyramid4()
	e := m.Expand()
	require.NoError(t, e.Validate())
	assert.Equal(t, len(m.Indices), e.VertexCount())
	assert.Equal(t, m.TriangleCount(), e.TriangleCount())
	assert.True(t, e.HasUVs())

	il := m.Interleaved()
	require.Len(t, il, m.VertexCount()*6)
	assert.Equal(t, m.Positions[0:3], il[0:3])
	assert.Equal(t, m.Normals[0:3], il[3:6])
}

func TestValidateRejectsBadIndex(t *testing.T) {
	m := &Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   make([]float32, 9),
		Indices:   []uint32{0, 1, 3},
	}
	assert.Error(t, m.Validate())
}
