package render

import (
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"credenza/internal/scene"
	"credenza/internal/shapes"
)

// cFloats copies src into raylib-allocated memory so the mesh never points at Go memory.
// UnloadMesh frees it.
func cFloats(src []float32) *float32 {
	if len(src) == 0 {
		return nil
	}
	p := rl.MemAlloc(uint32(len(src) * 4))
	dst := unsafe.Slice((*float32)(p), len(src))
	copy(dst, src)
	return &dst[0]
}

func cIndices(src []uint32) *uint16 {
	if len(src) == 0 {
		return nil
	}
	p := rl.MemAlloc(uint32(len(src) * 2))
	dst := unsafe.Slice((*uint16)(p), len(src))
	for i, idx := range src {
		dst[i] = uint16(idx)
	}
	return &dst[0]
}

// uploadMesh converts m to a raylib mesh and uploads it. raylib indexes with uint16, so
// meshes with more vertices than that are expanded and drawn without indices.
func uploadMesh(m *shapes.Mesh) rl.Mesh {
	indexed := m.VertexCount() <= math.MaxUint16
	if !indexed {
		m = m.Expand()
	}
	uvs := m.UVs
	if !m.HasUVs() {
		uvs = make([]float32, m.VertexCount()*2)
	}
	mesh := rl.Mesh{
		VertexCount:   int32(m.VertexCount()),
		TriangleCount: int32(m.TriangleCount()),
		Vertices:      cFloats(m.Positions),
		Normals:       cFloats(m.Normals),
		Texcoords:     cFloats(uvs),
	}
	if indexed {
		mesh.Indices = cIndices(m.Indices)
	}
	rl.UploadMesh(&mesh, false)
	return mesh
}

const (
	roundSlices = 36
	sphereRings = 36
	torusSides  = 36
	torusRings  = 24
)

// genPrimitive builds the GPU mesh for one canonical shape. Round solids stand on y=0
// with radius 1; the box and sphere are centered on the origin.
func genPrimitive(s scene.Shape) rl.Mesh {
	switch s {
	case scene.Box:
		return rl.GenMeshCube(1, 1, 1)
	case scene.Cone:
		return rl.GenMeshCone(1, 1, roundSlices)
	case scene.Cylinder:
		return rl.GenMeshCylinder(1, 1, roundSlices)
	case scene.Plane:
		return rl.GenMeshPlane(2, 2, 1, 1)
	case scene.Sphere:
		return rl.GenMeshSphere(1, sphereRings, roundSlices)
	case scene.Torus:
		return rl.GenMeshTorus(0.3, 1, torusRings, torusSides)
	case scene.Prism:
		return uploadMesh(shapes.Prism())
	case scene.Pyramid3:
		return uploadMesh(shapes.Pyramid3())
	case scene.Pyramid4:
		return uploadMesh(shapes.Pyramid4())
	default:
		return uploadMesh(shapes.TaperedCylinder(roundSlices))
	}
}
