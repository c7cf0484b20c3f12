package scene

import "github.com/go-gl/mathgl/mgl32"

// Uniform names for the active material.
const (
	uniformAmbientColor    = "material.ambientColor"
	uniformAmbientStrength = "material.ambientStrength"
	uniformDiffuseColor    = "material.diffuseColor"
	uniformSpecularColor   = "material.specularColor"
	uniformShininess       = "material.shininess"
)

// Material is a named set of phong lighting coefficients.
type Material struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    mgl32.Vec3 `yaml:"ambientColor"`
	AmbientStrength float32    `yaml:"ambientStrength"`
	DiffuseColor    mgl32.Vec3 `yaml:"diffuseColor"`
	SpecularColor   mgl32.Vec3 `yaml:"specularColor"`
	Shininess       float32    `yaml:"shininess"`
}

func gray(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }

// DefaultMaterials returns the palette used by the credenza scene.
func DefaultMaterials() []Material {
	return []Material{
		{Tag: "default", AmbientColor: gray(0.3), AmbientStrength: 0.4, DiffuseColor: gray(0.5), SpecularColor: gray(0.2), Shininess: 16},
		{Tag: "metal", AmbientColor: gray(0.2), AmbientStrength: 0.3, DiffuseColor: gray(0.2), SpecularColor: gray(0.5), Shininess: 22},
		{Tag: "wood", AmbientColor: gray(0.1), AmbientStrength: 0.2, DiffuseColor: gray(0.3), SpecularColor: gray(0.3), Shininess: 22},
		{Tag: "picture frame", AmbientColor: gray(0.1), AmbientStrength: 0.5, DiffuseColor: gray(0.3), SpecularColor: mgl32.Vec3{0.1, 0.1, 0.01}, Shininess: 80},
		{Tag: "woodNoShine", AmbientColor: gray(0.1), AmbientStrength: 0.2, DiffuseColor: gray(0.3), SpecularColor: gray(0.3), Shininess: 0.3},
		{Tag: "wall", AmbientColor: gray(0.2), AmbientStrength: 0.2, DiffuseColor: gray(0.5), SpecularColor: gray(0.01), Shininess: 3},
		{Tag: "glass", AmbientColor: gray(0.4), AmbientStrength: 0.3, DiffuseColor: gray(0.3), SpecularColor: mgl32.Vec3{0.1, 0.1, 0.01}, Shininess: 12},
	}
}

// MaterialRegistry holds materials in definition order. Tags may repeat; lookups return the first.
type MaterialRegistry struct {
	materials []Material
	first     map[string]int
}

// NewMaterialRegistry returns an empty registry.
func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{first: make(map[string]int)}
}

// Define appends m.
func (r *MaterialRegistry) Define(m Material) {
	if _, ok := r.first[m.Tag]; !ok {
		r.first[m.Tag] = len(r.materials)
	}
	r.materials = append(r.materials, m)
}

// Lookup returns the first material registered under tag.
func (r *MaterialRegistry) Lookup(tag string) (Material, bool) {
	i, ok := r.first[tag]
	if !ok {
		return Material{}, false
	}
	return r.materials[i], true
}

// Len returns the number of defined materials.
func (r *MaterialRegistry) Len() int { return len(r.materials) }

// Tags returns every material tag in definition order.
func (r *MaterialRegistry) Tags() []string {
	out := make([]string, len(r.materials))
	for i, m := range r.materials {
		out[i] = m.Tag
	}
	return out
}

func (m Material) apply(s Shader) {
	s.SetVec3(uniformAmbientColor, m.AmbientColor)
	s.SetFloat(uniformAmbientStrength, m.AmbientStrength)
	s.SetVec3(uniformDiffuseColor, m.DiffuseColor)
	s.SetVec3(uniformSpecularColor, m.SpecularColor)
	s.SetFloat(uniformShininess, m.Shininess)
}
