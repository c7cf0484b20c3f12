package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credenza/internal/shapes"
)

func TestImportModelWalksDepthFirst(t *testing.T) {
	s := newTestScene(t)
	a, b, c, d := triangle(), triangle(), triangle(), triangle()
	s.loader.root = &ModelNode{
		Name:   "root",
		Meshes: []*shapes.Mesh{a, b},
		Children: []*ModelNode{
			{Name: "left", Children: []*ModelNode{{Name: "leaf", Meshes: []*shapes.Mesh{c}}}},
			{Name: "right", Meshes: []*shapes.Mesh{d}},
		},
	}
	p := DefaultModelParams()
	p.Position = mgl32.Vec3{0, 4, 5}
	p.MaterialTag = "glass"
	p.IsRotating = true

	require.NoError(t, s.ImportModel("suzanne.obj", "Suzanne", p))
	assert.Equal(t, []string{"Suzanne0", "Suzanne1", "Suzanne0", "Suzanne0"}, tags(s.Meshes()))
	assert.Equal(t, []*shapes.Mesh{a, b, c, d}, s.device.uploaded)

	for i, m := range s.Meshes() {
		assert.Equal(t, ImportedDrawable{Mesh: MeshHandle(i + 1)}, m.Drawable)
		assert.Equal(t, p.Position, m.Position)
		assert.Equal(t, "glass", m.MaterialTag)
		assert.True(t, m.IsRotating)
	}
}

func TestImportModelFailuresLeaveSceneUntouched(t *testing.T) {
	bad := triangle()
	bad.Indices = []uint32{0, 1, 7}

	tests := []struct {
		name  string
		setup func(s *testScene)
		is    error
	}{
		{"loader error", func(s *testScene) { s.loader.err = errors.New("parse error") }, nil},
		{"empty graph", func(s *testScene) { s.loader.root = &ModelNode{Children: []*ModelNode{{}}} }, ErrIncompleteModel},
		{"nil graph", func(s *testScene) { s.loader.root = nil }, ErrIncompleteModel},
		{"bad mesh", func(s *testScene) {
			s.loader.root = &ModelNode{Meshes: []*shapes.Mesh{triangle(), bad}}
		}, nil},
		{"upload error", func(s *testScene) { s.device.failUpload = true }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			s.AddBox()
			tt.setup(s)
			err := s.ImportModel("lucy.obj", "Lucy", DefaultModelParams())
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.Equal(t, []string{"box"}, tags(s.Meshes()))
		})
	}
}

func TestImportModelWithoutLoader(t *testing.T) {
	m := New(Options{Shader: newFakeShader(), Device: newFakeDevice()})
	assert.Error(t, m.ImportModel("bunny.obj", "bunny", DefaultModelParams()))
	assert.Zero(t, m.Len())
}

func TestImportKnownModel(t *testing.T) {
	s := newTestScene(t)
	require.NoError(t, s.ImportKnownModel("bunny", DefaultModelParams()))
	require.NoError(t, s.ImportKnownModel("Teapot", DefaultModelParams()))
	assert.Error(t, s.ImportKnownModel("dragon", DefaultModelParams()))

	assert.Equal(t, []string{
		filepath.Join("models", "bunny.obj"),
		filepath.Join("models", "teapot.obj"),
	}, s.loader.paths)
	assert.Equal(t, []string{"Stanford Bunny0", "Teapot0"}, tags(s.Meshes()))
}

func TestModelForTag(t *testing.T) {
	km, ok := ModelForTag("Stanford Bunny Left")
	require.True(t, ok)
	assert.Equal(t, "bunny.obj", km.File)

	_, ok = ModelForTag("stanford bunny")
	assert.False(t, ok)

	km, ok = ModelForTag("Lucy0")
	require.True(t, ok)
	assert.Equal(t, "lucy.obj", km.File)
}

func TestShapeForTag(t *testing.T) {
	tests := []struct {
		tag  string
		want Shape
		ok   bool
	}{
		{"box", Box, true},
		{"tapered cylinder", TaperedCylinder, true},
		{"cylinder", Cylinder, true},
		{"big pyramid3", Pyramid3, true},
		{"torus knot", Torus, true},
		{"boxy cone", Box, true},
		{"Box", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ShapeForTag(tt.tag)
		assert.Equal(t, tt.ok, ok, tt.tag)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.tag)
		}
	}
}

func TestShapeNames(t *testing.T) {
	for _, s := range Shapes {
		got, ok := ParseShape(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
		assert.NotEmpty(t, s.Label())
	}
	assert.Equal(t, "unknown", Shape(42).String())
	_, ok := ParseShape("dodecahedron")
	assert.False(t, ok)
}
