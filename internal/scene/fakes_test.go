package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"credenza/internal/shapes"
)

type uniformCall struct {
	name  string
	value any
}

// fakeShader records every uniform write in order.
type fakeShader struct {
	calls  []uniformCall
	values map[string]any
}

func newFakeShader() *fakeShader {
	return &fakeShader{values: make(map[string]any)}
}

func (f *fakeShader) set(name string, v any) {
	f.calls = append(f.calls, uniformCall{name: name, value: v})
	f.values[name] = v
}

func (f *fakeShader) SetMat4(name string, m mgl32.Mat4)    { f.set(name, m) }
func (f *fakeShader) SetVec2(name string, v mgl32.Vec2)    { f.set(name, v) }
func (f *fakeShader) SetVec3(name string, v mgl32.Vec3)    { f.set(name, v) }
func (f *fakeShader) SetVec4(name string, v mgl32.Vec4)    { f.set(name, v) }
func (f *fakeShader) SetFloat(name string, v float32)      { f.set(name, v) }
func (f *fakeShader) SetInt(name string, v int32)          { f.set(name, v) }
func (f *fakeShader) SetBool(name string, v bool)          { f.set(name, v) }
func (f *fakeShader) SetSampler2D(name string, slot int32) { f.set(name, slot) }

// names returns the uniform names written, in order.
func (f *fakeShader) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

func (f *fakeShader) reset() {
	f.calls = nil
	f.values = make(map[string]any)
}

type drawCall struct {
	shape    Shape
	mesh     MeshHandle
	imported bool
}

// fakeDevice hands out sequential handles and records draws.
type fakeDevice struct {
	nextTexture TextureHandle
	nextMesh    MeshHandle
	bound       map[int]TextureHandle
	uploaded    []*shapes.Mesh
	draws       []drawCall
	primitives  int
	regenerated int
	failUpload  bool
	failLoad    bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{bound: make(map[int]TextureHandle)}
}

func (d *fakeDevice) UploadTexture(img Image) (TextureHandle, error) {
	d.nextTexture++
	return d.nextTexture, nil
}

func (d *fakeDevice) BindTexture(unit int, h TextureHandle) { d.bound[unit] = h }

func (d *fakeDevice) RegenerateTexture(h TextureHandle) TextureHandle {
	d.regenerated++
	d.nextTexture++
	return d.nextTexture
}

func (d *fakeDevice) LoadPrimitives() error {
	if d.failLoad {
		return errors.New("no context")
	}
	d.primitives++
	return nil
}

func (d *fakeDevice) DrawPrimitive(s Shape) { d.draws = append(d.draws, drawCall{shape: s}) }

func (d *fakeDevice) UploadMesh(m *shapes.Mesh) (MeshHandle, error) {
	if d.failUpload {
		return 0, errors.New("out of memory")
	}
	d.nextMesh++
	d.uploaded = append(d.uploaded, m)
	return d.nextMesh, nil
}

func (d *fakeDevice) DrawMesh(h MeshHandle) {
	d.draws = append(d.draws, drawCall{mesh: h, imported: true})
}

// fakeLoader returns a fixed graph and records requested paths.
type fakeLoader struct {
	root  *ModelNode
	err   error
	paths []string
	flags []ImportFlags
}

func (l *fakeLoader) Load(path string, flags ImportFlags) (*ModelNode, error) {
	l.paths = append(l.paths, path)
	l.flags = append(l.flags, flags)
	if l.err != nil {
		return nil, l.err
	}
	return l.root, nil
}

func triangle() *shapes.Mesh {
	return &shapes.Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		UVs:       []float32{0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
}

type testScene struct {
	*Manager
	shader *fakeShader
	device *fakeDevice
	loader *fakeLoader
}

func newTestScene(t *testing.T) *testScene {
	t.Helper()
	sh := newFakeShader()
	dev := newFakeDevice()
	ld := &fakeLoader{root: &ModelNode{Meshes: []*shapes.Mesh{triangle()}}}
	m := New(Options{
		Shader:    sh,
		Device:    dev,
		Loader:    ld,
		Logger:    zap.NewNop(),
		ModelsDir: "models",
	})
	return &testScene{Manager: m, shader: sh, device: dev, loader: ld}
}
