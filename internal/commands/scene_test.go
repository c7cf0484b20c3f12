package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credenza/internal/editor"
	"credenza/internal/scene"
	"credenza/internal/scene/scenetest"
)

type harness struct {
	reg     *Registry
	session *editor.Session
	out     []string
	grid    []bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mgr, _, _ := scenetest.NewManager(&scenetest.Loader{Meshes: 1})
	h := &harness{reg: NewRegistry()}
	h.session = editor.NewSession(mgr, filepath.Join(t.TempDir(), "scene.json"), nil)
	RegisterScene(h.reg, h.session, func(line string) { h.out = append(h.out, line) }, Toggles{
		Grid: func(show bool) { h.grid = append(h.grid, show) },
	})
	return h
}

func (h *harness) run(line string) error {
	args, ok := Parse(line)
	if !ok {
		panic("not a command: " + line)
	}
	return h.reg.Execute(args)
}

func (h *harness) selected(t *testing.T) *scene.MeshInstance {
	t.Helper()
	inst, ok := h.session.Selected()
	require.True(t, ok)
	return inst
}

func TestAddAndSelect(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("cmd add box"))
	require.NoError(t, h.run("cmd add tapered cylinder"))
	assert.Equal(t, "tapered cylinder", h.selected(t).Tag)
	assert.ErrorContains(t, h.run("cmd add cube"), "unknown shape")

	require.NoError(t, h.run("cmd select 0"))
	assert.Equal(t, "box", h.selected(t).Tag)
	assert.Error(t, h.run("cmd select 2"))
	assert.Error(t, h.run("cmd select two"))
	assert.Equal(t, "selected 0: box", h.out[len(h.out)-1])
}

func TestMoveFlagsAndPositional(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("cmd add sphere"))

	require.NoError(t, h.run("cmd move -x 1.5 -z -2"))
	assert.Equal(t, mgl32.Vec3{1.5, 0, -2}, h.selected(t).Position)

	require.NoError(t, h.run("cmd move -y 3"))
	assert.Equal(t, mgl32.Vec3{1.5, 3, -2}, h.selected(t).Position, "unset axes keep their value")

	require.NoError(t, h.run("cmd move -- -1 0 4"))
	assert.Equal(t, mgl32.Vec3{-1, 0, 4}, h.selected(t).Position)

	require.NoError(t, h.run("cmd scale 2 2 2"))
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, h.selected(t).Scale)

	require.NoError(t, h.run("cmd color -a 0.5"))
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 0.5}, h.selected(t).ShaderColor)

	assert.Error(t, h.run("cmd rotate"))
	assert.Error(t, h.run("cmd rotate 1 2"))
}

func TestEditsNeedSelection(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.run("cmd move -x 1"), editor.ErrNoSelection)
	assert.ErrorIs(t, h.run("cmd delete"), editor.ErrNoSelection)
	assert.ErrorIs(t, h.run("cmd spin"), editor.ErrNoSelection)
}

func TestMaterialTextureSpin(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("cmd add box"))

	require.NoError(t, h.run("cmd material picture frame"))
	assert.Equal(t, "picture frame", h.selected(t).MaterialTag)
	assert.ErrorContains(t, h.run("cmd material chrome"), "unknown tag")

	assert.ErrorContains(t, h.run("cmd texture oak"), "unknown tag")
	h.selected(t).TextureTag = "oak"
	require.NoError(t, h.run("cmd texture none"))
	assert.Empty(t, h.selected(t).TextureTag)

	require.NoError(t, h.run("cmd spin"))
	assert.True(t, h.selected(t).IsRotating)
	require.NoError(t, h.run("cmd spin --on"))
	assert.True(t, h.selected(t).IsRotating)
	require.NoError(t, h.run("cmd spin --off"))
	assert.False(t, h.selected(t).IsRotating)
	assert.Error(t, h.run("cmd spin --on --off"))
}

func TestDeleteDupListImport(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("cmd add box"))
	require.NoError(t, h.run("cmd add cone"))
	require.NoError(t, h.run("cmd dup"))
	require.NoError(t, h.run("cmd import teapot"))
	assert.Equal(t, 4, h.session.Manager().Len())
	assert.Equal(t, "Teapot0", h.selected(t).Tag)

	require.NoError(t, h.run("cmd delete 0"))
	assert.Equal(t, 0, h.session.Index())
	assert.Equal(t, "cone", h.selected(t).Tag)

	h.out = nil
	require.NoError(t, h.run("cmd list"))
	require.Len(t, h.out, 3)
	assert.True(t, strings.HasPrefix(h.out[0], "*0: cone"))
	assert.True(t, strings.HasPrefix(h.out[2], " 2: Teapot0"))
}

func TestSaveLoad(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("cmd add torus"))
	require.NoError(t, h.run("cmd save"))
	require.NoError(t, h.run("cmd delete"))
	require.NoError(t, h.run("cmd load"))
	assert.Equal(t, "torus", h.selected(t).Tag)

	path := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, h.run("cmd save "+path))
	assert.Error(t, h.run("cmd load "+filepath.Join(t.TempDir(), "missing.json")))
}

func TestOverlayToggles(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("cmd grid --hide"))
	require.NoError(t, h.run("cmd grid --show"))
	assert.Equal(t, []bool{false, true}, h.grid)
	assert.Error(t, h.run("cmd grid"))
	assert.NoError(t, h.run("cmd fps --show"), "nil toggles are ignored")
}

func TestHelpListsSceneCommands(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("cmd help"))
	assert.Contains(t, h.out, "cmd add <shape>")
	assert.Contains(t, h.out, "cmd grid --show|--hide")
}
