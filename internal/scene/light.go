package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of light slots the lighting shader declares.
const MaxLights = 4

// PointLight is a static light pushed to the shader once at preparation.
type PointLight struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// DefaultLights returns the three lights of the credenza scene: one far out on each
// side and a key light in front. Fields left zero are never lit.
func DefaultLights() []PointLight {
	return []PointLight{
		{
			Position:          mgl32.Vec3{-50, 30, 0},
			AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.01},
			FocalStrength:     10,
			SpecularIntensity: 0.1,
		},
		{
			Position:          mgl32.Vec3{0, 8, 15},
			AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.01},
			DiffuseColor:      gray(0.5),
			SpecularColor:     gray(0.2),
			FocalStrength:     5,
			SpecularIntensity: 0.1,
		},
		{
			Position:          mgl32.Vec3{50, 30, 0},
			DiffuseColor:      gray(0.5),
			FocalStrength:     10,
			SpecularIntensity: 0.1,
		},
	}
}

func lightUniform(i int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", i, field)
}

// pushLights enables lighting, writes each light into its shader slot and sets the
// count the shader loops over. Lights past MaxLights are dropped.
func pushLights(s Shader, lights []PointLight) int {
	s.SetBool(UniformUseLighting, true)
	n := 0
	for i, l := range lights {
		if i >= MaxLights {
			break
		}
		s.SetVec3(lightUniform(i, "position"), l.Position)
		s.SetVec3(lightUniform(i, "ambientColor"), l.AmbientColor)
		s.SetVec3(lightUniform(i, "diffuseColor"), l.DiffuseColor)
		s.SetVec3(lightUniform(i, "specularColor"), l.SpecularColor)
		s.SetFloat(lightUniform(i, "focalStrength"), l.FocalStrength)
		s.SetFloat(lightUniform(i, "specularIntensity"), l.SpecularIntensity)
		n++
	}
	s.SetInt(UniformLightCount, int32(n))
	return n
}
