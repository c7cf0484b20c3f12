package editor

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credenza/internal/scene"
	"credenza/internal/scene/scenetest"
)

func newSession(t *testing.T, loader *scenetest.Loader) *Session {
	t.Helper()
	mgr, _, _ := scenetest.NewManager(loader)
	return NewSession(mgr, filepath.Join(t.TempDir(), "scene.json"), nil)
}

func TestAddSelectsNewest(t *testing.T) {
	s := newSession(t, nil)
	s.Add(scene.Box)
	s.Add(scene.Torus)
	assert.Equal(t, 1, s.Index())

	inst, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "torus", inst.Tag)
}

func TestDeleteSelectsPrevious(t *testing.T) {
	s := newSession(t, nil)
	for _, shape := range []scene.Shape{scene.Box, scene.Cone, scene.Sphere} {
		s.Add(shape)
	}
	s.Select(2)
	require.NoError(t, s.Delete())
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, 2, s.Manager().Len())

	s.Select(0)
	require.NoError(t, s.Delete())
	assert.Equal(t, 0, s.Index())

	require.NoError(t, s.Delete())
	assert.ErrorIs(t, s.Delete(), ErrNoSelection)
}

func TestDuplicateSelectsCopy(t *testing.T) {
	s := newSession(t, nil)
	s.Add(scene.Prism)
	require.NoError(t, s.Edit(func(inst *scene.MeshInstance) {
		inst.Position = mgl32.Vec3{1, 2, 3}
	}))
	require.NoError(t, s.Duplicate())
	assert.Equal(t, 1, s.Index())

	inst, _ := s.Selected()
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, inst.Position)
}

func TestCycleMaterial(t *testing.T) {
	s := newSession(t, nil)
	assert.ErrorIs(t, s.CycleMaterial(1), ErrNoSelection)

	s.Add(scene.Box)
	require.NoError(t, s.CycleMaterial(1))
	inst, _ := s.Selected()
	assert.Equal(t, "default", inst.MaterialTag, "an unset material starts at the first")

	require.NoError(t, s.CycleMaterial(1))
	assert.Equal(t, "metal", inst.MaterialTag)
	require.NoError(t, s.CycleMaterial(-2))
	assert.Equal(t, "glass", inst.MaterialTag)
}

func TestImportSelectsFirstMesh(t *testing.T) {
	loader := &scenetest.Loader{Meshes: 2}
	s := newSession(t, loader)
	s.Add(scene.Box)

	require.NoError(t, s.Import("suzanne"))
	assert.Equal(t, 3, s.Manager().Len())
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, []string{filepath.Join("models", "suzanne.obj")}, loader.Paths)

	assert.Error(t, s.Import("dragon"))
}

func TestSaveLoadDefaultPath(t *testing.T) {
	s := newSession(t, nil)
	s.Add(scene.Box)
	s.Add(scene.Cylinder)
	require.NoError(t, s.Save(""))

	s.Manager().Clear()
	require.NoError(t, s.Load(""))
	assert.Equal(t, 2, s.Manager().Len())
	assert.Equal(t, 0, s.Index())

	assert.Error(t, s.Load(filepath.Join(t.TempDir(), "missing.json")))
	assert.Equal(t, 2, s.Manager().Len())
}
