package scene

import "github.com/go-gl/mathgl/mgl32"

// Drawable is what a mesh instance draws: a canonical primitive or an imported mesh.
type Drawable interface {
	drawable()
}

// PrimitiveDrawable draws one of the preloaded canonical shapes.
type PrimitiveDrawable struct {
	Shape Shape
}

// ImportedDrawable draws a mesh uploaded by the model importer.
type ImportedDrawable struct {
	Mesh MeshHandle
}

func (PrimitiveDrawable) drawable() {}
func (ImportedDrawable) drawable()  {}

// MeshInstance is one drawable entry of the scene list.
type MeshInstance struct {
	Tag         string
	Position    mgl32.Vec3
	Rotation    mgl32.Vec3 // degrees
	Scale       mgl32.Vec3
	MaterialTag string
	TextureTag  string
	UVScale     mgl32.Vec2
	ShaderColor mgl32.Vec4
	// Drawable is nil only for records loaded from a file whose tag names no known
	// shape or model. Such instances are kept but never drawn.
	Drawable   Drawable
	IsRotating bool
}

// NewPrimitive returns an instance of s at the origin with unit scale and UVs and an
// opaque white color, tagged with the shape's tag.
func NewPrimitive(s Shape) MeshInstance {
	return MeshInstance{
		Tag:         s.String(),
		Scale:       mgl32.Vec3{1, 1, 1},
		UVScale:     mgl32.Vec2{1, 1},
		ShaderColor: mgl32.Vec4{1, 1, 1, 1},
		Drawable:    PrimitiveDrawable{Shape: s},
	}
}

// ModelMatrix returns the instance's model transform.
func (m *MeshInstance) ModelMatrix() mgl32.Mat4 {
	return ModelMatrix(m.Scale, m.Rotation, m.Position)
}

// Advance applies one frame of spin when the instance is rotating.
func (m *MeshInstance) Advance() {
	if m.IsRotating {
		m.Rotation[1] = wrapDegrees(m.Rotation[1] + RotationStep)
	}
}
