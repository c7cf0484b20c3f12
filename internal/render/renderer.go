// Package render is the raylib side of the scene: it compiles the lighting shader,
// keeps uniform locations, uploads textures and meshes and issues draw calls.
// Everything here needs an open window.
package render

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"credenza/internal/scene"
	"credenza/internal/shapes"
)

// Renderer implements scene.Shader and scene.Device on top of raylib. The model matrix
// and texture selection are held until the next draw, since raylib applies them per DrawMesh.
type Renderer struct {
	log      *zap.Logger
	shader   rl.Shader
	material rl.Material
	blank    rl.Texture2D
	locs     map[string]int32

	model      rl.Matrix
	useTexture bool
	sampler    int32
	units      [scene.MaxTextures]scene.TextureHandle
	textures   map[scene.TextureHandle]rl.Texture2D

	primitives map[scene.Shape]rl.Mesh
	meshes     map[scene.MeshHandle]rl.Mesh
	nextMesh   scene.MeshHandle
}

// New compiles the lighting shader. Call after the window is open.
func New(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	shader := rl.LoadShaderFromMemory(sceneVS, sceneFS)
	if !rl.IsShaderValid(shader) {
		return nil, errors.New("lighting shader failed to compile")
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = shader
	var blank rl.Texture2D
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
		blank = albedo.Texture
	}
	return &Renderer{
		log:        log,
		shader:     shader,
		material:   mtl,
		blank:      blank,
		locs:       make(map[string]int32),
		model:      rl.MatrixIdentity(),
		sampler:    -1,
		textures:   make(map[scene.TextureHandle]rl.Texture2D),
		primitives: make(map[scene.Shape]rl.Mesh),
		meshes:     make(map[scene.MeshHandle]rl.Mesh),
	}, nil
}

// loc returns the cached location of a uniform, -1 when the shader does not use it.
func (r *Renderer) loc(name string) int32 {
	if l, ok := r.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(r.shader, name)
	r.locs[name] = l
	return l
}

// textureFilter samples linearly for both minification and magnification.
const textureFilter = rl.FilterBilinear

func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// SetMat4 holds the model matrix for the next draw; other matrices go straight to the shader.
func (r *Renderer) SetMat4(name string, m mgl32.Mat4) {
	if name == scene.UniformModel {
		r.model = toMatrix(m)
		return
	}
	if l := r.loc(name); l >= 0 {
		rl.SetShaderValueMatrix(r.shader, l, toMatrix(m))
	}
}

func (r *Renderer) setFloats(name string, v []float32, kind rl.ShaderUniformDataType) {
	if l := r.loc(name); l >= 0 {
		rl.SetShaderValue(r.shader, l, v, kind)
	}
}

func (r *Renderer) SetVec2(name string, v mgl32.Vec2) {
	r.setFloats(name, v[:], rl.ShaderUniformVec2)
}

func (r *Renderer) SetVec3(name string, v mgl32.Vec3) {
	r.setFloats(name, v[:], rl.ShaderUniformVec3)
}

func (r *Renderer) SetVec4(name string, v mgl32.Vec4) {
	r.setFloats(name, v[:], rl.ShaderUniformVec4)
}

func (r *Renderer) SetFloat(name string, f float32) {
	r.setFloats(name, []float32{f}, rl.ShaderUniformFloat)
}

// SetInt passes the integer's bits through raylib's float slice API.
func (r *Renderer) SetInt(name string, i int32) {
	r.setFloats(name, []float32{math.Float32frombits(uint32(i))}, rl.ShaderUniformInt)
}

func (r *Renderer) SetBool(name string, b bool) {
	if name == scene.UniformUseTexture {
		r.useTexture = b
	}
	var i int32
	if b {
		i = 1
	}
	r.SetInt(name, i)
}

// SetSampler2D selects the texture unit drawn from. raylib binds the material's
// albedo map itself, so the unit is resolved to a texture at draw time.
func (r *Renderer) SetSampler2D(name string, slot int32) {
	if name == scene.UniformTexture {
		r.sampler = slot
	}
}

// UploadTexture creates a repeating, mipmapped, linearly filtered texture.
func (r *Renderer) UploadTexture(img scene.Image) (scene.TextureHandle, error) {
	var format rl.PixelFormat
	switch img.Channels {
	case 3:
		format = rl.UncompressedR8g8b8
	case 4:
		format = rl.UncompressedR8g8b8a8
	default:
		return 0, fmt.Errorf("%d channels: %w", img.Channels, scene.ErrUnsupportedChannels)
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want || want == 0 {
		return 0, fmt.Errorf("pixel buffer: have %d bytes, want %d", len(img.Pix), want)
	}
	// copy into C memory so raylib never holds a Go pointer
	p := rl.MemAlloc(uint32(len(img.Pix)))
	defer rl.MemFree(p)
	pix := unsafe.Slice((*byte)(p), len(img.Pix))
	copy(pix, img.Pix)

	tex := rl.LoadTextureFromImage(rl.NewImage(pix, int32(img.Width), int32(img.Height), 1, format))
	if !rl.IsTextureValid(tex) {
		return 0, errors.New("texture upload failed")
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, textureFilter)
	rl.SetTextureWrap(tex, rl.WrapRepeat)

	h := scene.TextureHandle(tex.ID)
	r.textures[h] = tex
	return h, nil
}

// BindTexture assigns h to a unit.
func (r *Renderer) BindTexture(unit int, h scene.TextureHandle) {
	if unit < 0 || unit >= len(r.units) {
		return
	}
	r.units[unit] = h
}

// RegenerateTexture unloads h. raylib has no empty textures, so the zero handle comes back.
func (r *Renderer) RegenerateTexture(h scene.TextureHandle) scene.TextureHandle {
	if tex, ok := r.textures[h]; ok {
		rl.UnloadTexture(tex)
		delete(r.textures, h)
	}
	for i := range r.units {
		if r.units[i] == h {
			r.units[i] = 0
		}
	}
	return 0
}

// LoadPrimitives builds every canonical shape once.
func (r *Renderer) LoadPrimitives() error {
	for _, s := range scene.Shapes {
		if _, ok := r.primitives[s]; ok {
			continue
		}
		mesh := genPrimitive(s)
		if mesh.VaoID == 0 {
			return fmt.Errorf("primitive %s: upload failed", s)
		}
		r.primitives[s] = mesh
	}
	r.log.Debug("primitives loaded", zap.Int("count", len(r.primitives)))
	return nil
}

// DrawPrimitive draws a canonical shape with the pending model matrix.
func (r *Renderer) DrawPrimitive(s scene.Shape) {
	if mesh, ok := r.primitives[s]; ok {
		r.drawMesh(mesh)
	}
}

// UploadMesh uploads an imported mesh.
func (r *Renderer) UploadMesh(m *shapes.Mesh) (scene.MeshHandle, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	mesh := uploadMesh(m)
	if mesh.VaoID == 0 {
		rl.UnloadMesh(&mesh)
		return 0, errors.New("mesh upload failed")
	}
	r.nextMesh++
	r.meshes[r.nextMesh] = mesh
	return r.nextMesh, nil
}

// DrawMesh draws an imported mesh with the pending model matrix.
func (r *Renderer) DrawMesh(h scene.MeshHandle) {
	if mesh, ok := r.meshes[h]; ok {
		r.drawMesh(mesh)
	}
}

func (r *Renderer) drawMesh(mesh rl.Mesh) {
	if albedo := r.material.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Texture = r.blank
		if r.useTexture && r.sampler >= 0 && int(r.sampler) < len(r.units) {
			if tex, ok := r.textures[r.units[r.sampler]]; ok {
				albedo.Texture = tex
			}
		}
	}
	rl.DrawMesh(mesh, r.material, r.model)
}

// Close releases every GPU resource the renderer created.
func (r *Renderer) Close() {
	for s, mesh := range r.primitives {
		rl.UnloadMesh(&mesh)
		delete(r.primitives, s)
	}
	for h, mesh := range r.meshes {
		rl.UnloadMesh(&mesh)
		delete(r.meshes, h)
	}
	for h, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, h)
	}
	rl.UnloadShader(r.shader)
}

var (
	_ scene.Shader = (*Renderer)(nil)
	_ scene.Device = (*Renderer)(nil)
)
