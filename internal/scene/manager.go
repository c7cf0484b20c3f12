// Package scene owns everything drawn in the credenza scene: the texture and
// material registries, the static lights, the fixed fixtures and the editable list
// of mesh instances. It pushes per-object state through a Shader and issues draws
// through a Device, so it runs without a GPU in tests.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Options configures a Manager. Shader and Device are required.
type Options struct {
	Shader Shader
	Device Device
	// Loader imports model files. Imports fail when nil.
	Loader ModelLoader
	Logger *zap.Logger
	// ModelsDir holds the known model files.
	ModelsDir string
	// TexturesDir holds the fixture textures.
	TexturesDir string
}

// Manager is the scene. It is not safe for concurrent use; every call is expected
// from the render loop.
type Manager struct {
	shader      Shader
	device      Device
	loader      ModelLoader
	log         *zap.Logger
	modelsDir   string
	texturesDir string

	textures  *TextureRegistry
	materials *MaterialRegistry
	lights    []PointLight
	fixtures  []Fixture
	meshes    []MeshInstance
}

// New returns an empty scene. Call Prepare before the first frame.
func New(opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		shader:      opts.Shader,
		device:      opts.Device,
		loader:      opts.Loader,
		log:         log,
		modelsDir:   opts.ModelsDir,
		texturesDir: opts.TexturesDir,
		textures:    NewTextureRegistry(opts.Device, log.Named("textures")),
		materials:   NewMaterialRegistry(),
	}
}

// Textures returns the texture registry.
func (m *Manager) Textures() *TextureRegistry { return m.textures }

// Materials returns the material registry.
func (m *Manager) Materials() *MaterialRegistry { return m.materials }

// Lights returns the lights pushed by SetupLights.
func (m *Manager) Lights() []PointLight { return m.lights }

// SetTransformations pushes the model matrix for the next draw.
func (m *Manager) SetTransformations(scale, rotation, position mgl32.Vec3) {
	m.shader.SetMat4(UniformModel, ModelMatrix(scale, rotation, position))
}

// SetShaderColor sets a flat color and turns texturing off.
func (m *Manager) SetShaderColor(c mgl32.Vec4) {
	m.shader.SetBool(UniformUseTexture, false)
	m.shader.SetVec4(UniformColor, c)
}

// SetShaderTexture turns texturing on and selects the unit of tag. An unknown tag
// still turns texturing on, with unit -1.
func (m *Manager) SetShaderTexture(tag string) {
	m.shader.SetBool(UniformUseTexture, true)
	slot, ok := m.textures.Slot(tag)
	if !ok {
		slot = -1
	}
	m.shader.SetSampler2D(UniformTexture, int32(slot))
}

// SetTextureUVScale sets how often the texture repeats across a face.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.shader.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// SetShaderMaterial pushes the material tagged tag. It reports false and leaves the
// shader untouched when there is no such material.
func (m *Manager) SetShaderMaterial(tag string) bool {
	mat, ok := m.materials.Lookup(tag)
	if !ok {
		return false
	}
	mat.apply(m.shader)
	return true
}

// SetupLights enables lighting and pushes lights to the shader. It is called once
// by Prepare; calling it again replaces the stored lights.
func (m *Manager) SetupLights(lights []PointLight) {
	m.lights = append([]PointLight(nil), lights...)
	n := pushLights(m.shader, m.lights)
	if n < len(lights) {
		m.log.Warn("lights dropped", zap.Int("given", len(lights)), zap.Int("max", MaxLights))
	}
}

// AddMesh appends inst to the scene. It is the only way instances enter the list.
func (m *Manager) AddMesh(inst MeshInstance) error {
	if inst.Drawable == nil {
		return ErrNilDrawable
	}
	m.meshes = append(m.meshes, inst)
	return nil
}

// AddPrimitive appends a default instance of s and returns its index.
func (m *Manager) AddPrimitive(s Shape) int {
	m.meshes = append(m.meshes, NewPrimitive(s))
	return len(m.meshes) - 1
}

func (m *Manager) AddBox() int             { return m.AddPrimitive(Box) }
func (m *Manager) AddCone() int            { return m.AddPrimitive(Cone) }
func (m *Manager) AddCylinder() int        { return m.AddPrimitive(Cylinder) }
func (m *Manager) AddPlane() int           { return m.AddPrimitive(Plane) }
func (m *Manager) AddPrism() int           { return m.AddPrimitive(Prism) }
func (m *Manager) AddPyramid3() int        { return m.AddPrimitive(Pyramid3) }
func (m *Manager) AddPyramid4() int        { return m.AddPrimitive(Pyramid4) }
func (m *Manager) AddSphere() int          { return m.AddPrimitive(Sphere) }
func (m *Manager) AddTaperedCylinder() int { return m.AddPrimitive(TaperedCylinder) }
func (m *Manager) AddTorus() int           { return m.AddPrimitive(Torus) }

// Remove deletes instance i, shifting later instances down by one. It reports false
// and does nothing when i is out of range.
func (m *Manager) Remove(i int) bool {
	if i < 0 || i >= len(m.meshes) {
		return false
	}
	m.meshes = append(m.meshes[:i], m.meshes[i+1:]...)
	return true
}

// Len returns the number of mesh instances.
func (m *Manager) Len() int { return len(m.meshes) }

// Mesh returns instance i for editing in place. The pointer is invalidated by any
// call that adds or removes instances.
func (m *Manager) Mesh(i int) (*MeshInstance, bool) {
	if i < 0 || i >= len(m.meshes) {
		return nil, false
	}
	return &m.meshes[i], true
}

// Meshes returns a copy of the instance list.
func (m *Manager) Meshes() []MeshInstance {
	return append([]MeshInstance(nil), m.meshes...)
}

// Duplicate appends a copy of instance i. It reports false when i is out of range.
func (m *Manager) Duplicate(i int) bool {
	src, ok := m.Mesh(i)
	if !ok {
		return false
	}
	m.meshes = append(m.meshes, *src)
	return true
}

// Clear removes every instance.
func (m *Manager) Clear() {
	m.meshes = m.meshes[:0]
}

// RenderMeshes advances spinning instances and draws every instance in list order.
func (m *Manager) RenderMeshes() {
	for i := range m.meshes {
		inst := &m.meshes[i]
		inst.Advance()

		m.SetTransformations(inst.Scale, inst.Rotation, inst.Position)
		m.SetShaderMaterial(inst.MaterialTag)
		m.SetTextureUVScale(inst.UVScale.X(), inst.UVScale.Y())
		m.SetShaderColor(inst.ShaderColor)
		if _, ok := m.textures.Slot(inst.TextureTag); ok {
			m.SetShaderTexture(inst.TextureTag)
		}
		m.draw(inst.Drawable)
	}
}

// RenderScene draws the fixtures and then the mesh instances.
func (m *Manager) RenderScene() {
	m.RenderFixtures()
	m.RenderMeshes()
}

func (m *Manager) draw(d Drawable) {
	switch d := d.(type) {
	case PrimitiveDrawable:
		m.device.DrawPrimitive(d.Shape)
	case ImportedDrawable:
		m.device.DrawMesh(d.Mesh)
	}
}
