package scene

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed layout/credenza.yaml
var credenzaLayout []byte

// TextureFile maps a texture tag to an image file under the textures directory.
type TextureFile struct {
	Tag  string
	File string
}

// FixturePart is one primitive of a fixture.
type FixturePart struct {
	Shape    Shape
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Position mgl32.Vec3
	// Material, Color and Texture are pushed only when set.
	Material string
	Color    *mgl32.Vec4
	Texture  string
}

// Fixture is a named group of parts drawn every frame and never edited.
type Fixture struct {
	Name     string
	Material string
	UVScale  *mgl32.Vec2
	Parts    []FixturePart
}

// Layout is the fixed part of the scene: its textures and its fixtures.
type Layout struct {
	Textures []TextureFile
	Fixtures []Fixture
}

type yamlPart struct {
	Shape    string    `yaml:"shape"`
	Scale    []float32 `yaml:"scale"`
	Rotation []float32 `yaml:"rotation"`
	Position []float32 `yaml:"position"`
	Material string    `yaml:"material"`
	Color    []float32 `yaml:"color"`
	Texture  string    `yaml:"texture"`
}

type yamlFixture struct {
	Name     string     `yaml:"name"`
	Material string     `yaml:"material"`
	UVScale  []float32  `yaml:"uvScale"`
	Parts    []yamlPart `yaml:"parts"`
}

type yamlLayout struct {
	Textures []struct {
		Tag  string `yaml:"tag"`
		File string `yaml:"file"`
	} `yaml:"textures"`
	Fixtures []yamlFixture `yaml:"fixtures"`
}

func vec3(v []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return def, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

// DefaultLayout returns the credenza layout embedded in the binary.
func DefaultLayout() (*Layout, error) {
	return ParseLayout(credenzaLayout)
}

// ParseLayout decodes a YAML layout document.
func ParseLayout(data []byte) (*Layout, error) {
	var raw yamlLayout
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	out := &Layout{}
	for _, t := range raw.Textures {
		out.Textures = append(out.Textures, TextureFile{Tag: t.Tag, File: t.File})
	}
	for _, yf := range raw.Fixtures {
		f := Fixture{Name: yf.Name, Material: yf.Material}
		if yf.UVScale != nil {
			if len(yf.UVScale) != 2 {
				return nil, fmt.Errorf("fixture %q: uvScale: want 2 components, got %d", yf.Name, len(yf.UVScale))
			}
			uv := mgl32.Vec2{yf.UVScale[0], yf.UVScale[1]}
			f.UVScale = &uv
		}
		for i, yp := range yf.Parts {
			p, err := yp.part()
			if err != nil {
				return nil, fmt.Errorf("fixture %q part %d: %w", yf.Name, i, err)
			}
			f.Parts = append(f.Parts, p)
		}
		out.Fixtures = append(out.Fixtures, f)
	}
	return out, nil
}

func (yp yamlPart) part() (FixturePart, error) {
	var p FixturePart
	var ok bool
	var err error
	if p.Shape, ok = ParseShape(yp.Shape); !ok {
		return p, fmt.Errorf("unknown shape %q", yp.Shape)
	}
	if p.Scale, err = vec3(yp.Scale, mgl32.Vec3{1, 1, 1}); err != nil {
		return p, fmt.Errorf("scale: %w", err)
	}
	if p.Rotation, err = vec3(yp.Rotation, mgl32.Vec3{}); err != nil {
		return p, fmt.Errorf("rotation: %w", err)
	}
	if p.Position, err = vec3(yp.Position, mgl32.Vec3{}); err != nil {
		return p, fmt.Errorf("position: %w", err)
	}
	if yp.Color != nil {
		if len(yp.Color) != 4 {
			return p, fmt.Errorf("color: want 4 components, got %d", len(yp.Color))
		}
		c := mgl32.Vec4{yp.Color[0], yp.Color[1], yp.Color[2], yp.Color[3]}
		p.Color = &c
	}
	p.Material = yp.Material
	p.Texture = yp.Texture
	return p, nil
}

// Prepare loads the layout's textures and binds them, defines the materials, pushes
// the lights, builds the primitive buffers and keeps the fixtures for drawing. A nil
// layout uses DefaultLayout. Textures that fail to load are logged and skipped.
func (m *Manager) Prepare(layout *Layout) error {
	if layout == nil {
		var err error
		if layout, err = DefaultLayout(); err != nil {
			return err
		}
	}
	loaded := 0
	for _, t := range layout.Textures {
		if err := m.textures.Load(filepath.Join(m.texturesDir, t.File), t.Tag); err == nil {
			loaded++
		}
	}
	m.textures.BindAll()

	for _, mat := range DefaultMaterials() {
		m.materials.Define(mat)
	}
	m.SetupLights(DefaultLights())

	if err := m.device.LoadPrimitives(); err != nil {
		m.log.Error("could not build primitive meshes", zap.Error(err))
		return fmt.Errorf("prepare scene: %w", err)
	}
	m.fixtures = layout.Fixtures
	m.log.Info("scene prepared",
		zap.Int("textures", loaded), zap.Int("texturesWanted", len(layout.Textures)),
		zap.Int("materials", m.materials.Len()), zap.Int("fixtures", len(m.fixtures)))
	return nil
}

// Fixtures returns the fixtures drawn by RenderFixtures.
func (m *Manager) Fixtures() []Fixture { return m.fixtures }

// RenderFixtures draws every fixture part. Unlike mesh instances, a part pushes only
// the state it sets, so unset material or UV scale carries over from the last part drawn.
func (m *Manager) RenderFixtures() {
	for _, f := range m.fixtures {
		if f.Material != "" {
			m.SetShaderMaterial(f.Material)
		}
		if f.UVScale != nil {
			m.SetTextureUVScale(f.UVScale.X(), f.UVScale.Y())
		}
		for _, p := range f.Parts {
			m.SetTransformations(p.Scale, p.Rotation, p.Position)
			if p.Material != "" {
				m.SetShaderMaterial(p.Material)
			}
			if p.Color != nil {
				m.SetShaderColor(*p.Color)
			}
			if p.Texture != "" {
				m.SetShaderTexture(p.Texture)
			}
			m.device.DrawPrimitive(p.Shape)
		}
	}
}
