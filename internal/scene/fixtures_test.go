package scene

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)
	require.Len(t, l.Textures, 9)
	assert.Equal(t, TextureFile{Tag: "floor", File: "hardwood.jpg"}, l.Textures[0])

	names := make([]string, len(l.Fixtures))
	parts := 0
	for i, f := range l.Fixtures {
		names[i] = f.Name
		parts += len(f.Parts)
	}
	assert.Equal(t, []string{
		"backdrop", "floor", "picture frame", "vase", "vase base", "candle holders",
		"candles", "wicks", "credenza", "negative space", "drawers", "doors", "knobs",
	}, names)
	assert.Equal(t, 36, parts)

	backdrop := l.Fixtures[0]
	assert.Equal(t, "wall", backdrop.Material)
	assert.Equal(t, &mgl32.Vec2{6, 5}, backdrop.UVScale)
	p := backdrop.Parts[0]
	assert.Equal(t, Plane, p.Shape)
	assert.Equal(t, mgl32.Vec3{20, 1, 7}, p.Scale)
	assert.Equal(t, mgl32.Vec3{90, 0, 0}, p.Rotation)
	assert.Equal(t, &mgl32.Vec4{0.6, 0.6, 0.6, 1}, p.Color)

	vase := l.Fixtures[3].Parts[0]
	assert.Equal(t, TaperedCylinder, vase.Shape)

	negative := l.Fixtures[9]
	assert.Empty(t, negative.Material)
	assert.Nil(t, negative.UVScale)
	assert.Equal(t, mgl32.Vec3{3.6, 0.6, 3}, negative.Parts[0].Scale)
}

func TestParseLayoutErrors(t *testing.T) {
	tests := map[string]string{
		"unknown shape": "fixtures:\n  - name: x\n    parts:\n      - {shape: blob}\n",
		"short scale":   "fixtures:\n  - name: x\n    parts:\n      - {shape: box, scale: [1, 2]}\n",
		"bad uv":        "fixtures:\n  - name: x\n    uvScale: [1]\n",
		"bad color":     "fixtures:\n  - name: x\n    parts:\n      - {shape: box, color: [1, 1, 1]}\n",
		"not yaml":      "fixtures: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLayout([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestPrepare(t *testing.T) {
	s := newTestScene(t)
	s.texturesDir = "textures"
	var paths []string
	s.textures.decode = func(path string) (Image, error) {
		paths = append(paths, path)
		return Image{Width: 1, Height: 1, Channels: 3, Pix: make([]byte, 3)}, nil
	}

	require.NoError(t, s.Prepare(nil))
	assert.Equal(t, 9, s.Textures().Len())
	assert.Equal(t, filepath.Join("textures", "hardwood.jpg"), paths[0])
	assert.Len(t, s.device.bound, 9)
	assert.Equal(t, 1, s.device.primitives)
	assert.Equal(t, 7, s.Materials().Len())
	assert.Equal(t, true, s.shader.values[UniformUseLighting])
	assert.Len(t, s.Fixtures(), 13)

	slot, ok := s.Textures().Slot("stainless")
	require.True(t, ok)
	assert.Equal(t, 8, slot)
}

func TestPrepareFailsWithoutPrimitives(t *testing.T) {
	s := newTestScene(t)
	s.device.failLoad = true
	s.textures.decode = fixedImage(3)
	assert.Error(t, s.Prepare(&Layout{}))
}

func TestRenderScene(t *testing.T) {
	s := newTestScene(t)
	s.textures.decode = fixedImage(4)
	require.NoError(t, s.Prepare(nil))
	s.AddSphere()
	s.shader.reset()

	s.RenderScene()
	require.Len(t, s.device.draws, 37)
	assert.Equal(t, Plane, s.device.draws[0].shape)
	assert.Equal(t, Cylinder, s.device.draws[35].shape)
	assert.Equal(t, Sphere, s.device.draws[36].shape)
}

func TestRenderFixturesPushesOnlyWhatIsSet(t *testing.T) {
	s := newTestScene(t)
	for _, m := range DefaultMaterials() {
		s.materials.Define(m)
	}
	black := mgl32.Vec4{0, 0, 0, 1}
	s.fixtures = []Fixture{{
		Name:  "shadow",
		Parts: []FixturePart{{Shape: Box, Scale: mgl32.Vec3{1, 1, 1}, Color: &black}},
	}}

	s.RenderFixtures()
	assert.Equal(t, []string{UniformModel, UniformUseTexture, UniformColor}, s.shader.names())
	assert.Equal(t, black, s.shader.values[UniformColor])
	assert.Equal(t, []drawCall{{shape: Box}}, s.device.draws)
}
