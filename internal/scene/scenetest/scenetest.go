// Package scenetest provides GPU-free Shader, Device and ModelLoader implementations
// for tests of packages built on the scene.
package scenetest

import (
	"github.com/go-gl/mathgl/mgl32"

	"credenza/internal/scene"
	"credenza/internal/shapes"
)

// Shader keeps the last value written to each uniform.
type Shader struct {
	Values map[string]any
}

func NewShader() *Shader { return &Shader{Values: make(map[string]any)} }

func (s *Shader) SetMat4(name string, m mgl32.Mat4)    { s.Values[name] = m }
func (s *Shader) SetVec2(name string, v mgl32.Vec2)    { s.Values[name] = v }
func (s *Shader) SetVec3(name string, v mgl32.Vec3)    { s.Values[name] = v }
func (s *Shader) SetVec4(name string, v mgl32.Vec4)    { s.Values[name] = v }
func (s *Shader) SetFloat(name string, f float32)      { s.Values[name] = f }
func (s *Shader) SetInt(name string, i int32)          { s.Values[name] = i }
func (s *Shader) SetBool(name string, b bool)          { s.Values[name] = b }
func (s *Shader) SetSampler2D(name string, slot int32) { s.Values[name] = slot }

// Device hands out sequential handles and counts draws.
type Device struct {
	next      uint32
	Primitive int
	Imported  int
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

func (d *Device) UploadTexture(scene.Image) (scene.TextureHandle, error) {
	return scene.TextureHandle(d.handle()), nil
}

func (d *Device) BindTexture(int, scene.TextureHandle) {}

func (d *Device) RegenerateTexture(scene.TextureHandle) scene.TextureHandle {
	return scene.TextureHandle(d.handle())
}

func (d *Device) LoadPrimitives() error { return nil }

func (d *Device) DrawPrimitive(scene.Shape) { d.Primitive++ }

func (d *Device) UploadMesh(*shapes.Mesh) (scene.MeshHandle, error) {
	return scene.MeshHandle(d.handle()), nil
}

func (d *Device) DrawMesh(scene.MeshHandle) { d.Imported++ }

// Loader returns a model of Meshes single-triangle meshes for any path.
type Loader struct {
	Meshes int
	Err    error
	Paths  []string
}

func (l *Loader) Load(path string, _ scene.ImportFlags) (*scene.ModelNode, error) {
	l.Paths = append(l.Paths, path)
	if l.Err != nil {
		return nil, l.Err
	}
	root := &scene.ModelNode{Name: "root"}
	for i := 0; i < l.Meshes; i++ {
		root.Meshes = append(root.Meshes, Triangle())
	}
	return root, nil
}

// Triangle returns a valid one-triangle mesh.
func Triangle() *shapes.Mesh {
	return &shapes.Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		UVs:       []float32{0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
}

// NewManager returns a scene over fresh fakes with the default materials defined.
// Models resolve under "models".
func NewManager(loader *Loader) (*scene.Manager, *Shader, *Device) {
	sh := NewShader()
	dev := &Device{}
	opts := scene.Options{Shader: sh, Device: dev, ModelsDir: "models"}
	if loader != nil {
		opts.Loader = loader
	}
	mgr := scene.New(opts)
	for _, m := range scene.DefaultMaterials() {
		mgr.Materials().Define(m)
	}
	return mgr, sh, dev
}
