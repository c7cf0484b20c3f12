package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"credenza/internal/shapes"
)

// Uniform names shared by the scene and the lighting shader.
const (
	UniformModel        = "model"
	UniformColor        = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"
	UniformViewPosition = "viewPosition"
	UniformLightCount   = "lightCount"
)

// Shader accepts named uniform values for the active program. Unknown names are ignored
// by implementations, mirroring GL's behavior for a location of -1.
type Shader interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
	SetSampler2D(name string, slot int32)
}

// TextureHandle identifies a texture uploaded to the GPU.
type TextureHandle uint32

// MeshHandle identifies an imported mesh uploaded to the GPU. Zero is never a valid handle.
type MeshHandle uint32

// Image is decoded pixel data, rows tightly packed, top row first after any flip.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// Device is the GPU side of the scene: texture and buffer upload plus draw calls.
type Device interface {
	// UploadTexture creates a 2D texture with repeat wrapping, linear filtering and mipmaps.
	UploadTexture(img Image) (TextureHandle, error)
	// BindTexture binds h to texture unit unit.
	BindTexture(unit int, h TextureHandle)
	// RegenerateTexture releases h and returns a fresh, empty handle in its place.
	RegenerateTexture(h TextureHandle) TextureHandle

	// LoadPrimitives builds the buffers for every canonical shape. Called once.
	LoadPrimitives() error
	DrawPrimitive(s Shape)

	UploadMesh(m *shapes.Mesh) (MeshHandle, error)
	DrawMesh(h MeshHandle)
}
