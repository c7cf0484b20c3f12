package scene

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"credenza/internal/shapes"
)

// ImportFlags selects post-processing applied by a ModelLoader.
type ImportFlags uint

const (
	// Triangulate splits polygons into triangles.
	Triangulate ImportFlags = 1 << iota
	// FlipUVs mirrors texture coordinates vertically.
	FlipUVs
	// GenSmoothNormals fills in per-vertex normals when the file has none.
	GenSmoothNormals
)

// DefaultImportFlags are applied to every import.
const DefaultImportFlags = Triangulate | FlipUVs | GenSmoothNormals

// Has reports whether every bit of f is set.
func (fl ImportFlags) Has(f ImportFlags) bool { return fl&f == f }

// ModelNode is one node of an imported model graph.
type ModelNode struct {
	Name     string
	Meshes   []*shapes.Mesh
	Children []*ModelNode
}

// ModelLoader parses a model file into a node graph.
type ModelLoader interface {
	Load(path string, flags ImportFlags) (*ModelNode, error)
}

// ModelParams are shared by every mesh instance created by one import.
type ModelParams struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
	MaterialTag string
	TextureTag  string
	UVScale     mgl32.Vec2
	ShaderColor mgl32.Vec4
	IsRotating  bool
}

// DefaultModelParams places a model at the origin with unit scale and a white color.
func DefaultModelParams() ModelParams {
	return ModelParams{
		Scale:       mgl32.Vec3{1, 1, 1},
		UVScale:     mgl32.Vec2{1, 1},
		ShaderColor: mgl32.Vec4{1, 1, 1, 1},
	}
}

// KnownModel is a model file the scene can rebuild from a saved tag.
type KnownModel struct {
	Name string
	File string
}

// KnownModels are matched against saved tags in this order.
var KnownModels = []KnownModel{
	{Name: "Stanford Bunny", File: "bunny.obj"},
	{Name: "Lucy", File: "lucy.obj"},
	{Name: "Suzanne", File: "suzanne.obj"},
	{Name: "Teapot", File: "teapot.obj"},
}

// ModelForTag returns the first known model whose name appears in tag.
func ModelForTag(tag string) (KnownModel, bool) {
	for _, km := range KnownModels {
		if strings.Contains(tag, km.Name) {
			return km, true
		}
	}
	return KnownModel{}, false
}

type importedMesh struct {
	tag  string
	mesh *shapes.Mesh
}

// collectMeshes walks n depth first, a node's own meshes before its children's.
// Each mesh is tagged with tag plus its index within its node.
func collectMeshes(n *ModelNode, tag string, out []importedMesh) []importedMesh {
	if n == nil {
		return out
	}
	for i, m := range n.Meshes {
		out = append(out, importedMesh{tag: tag + strconv.Itoa(i), mesh: m})
	}
	for _, c := range n.Children {
		out = collectMeshes(c, tag, out)
	}
	return out
}

// ImportModel loads the model at path and adds one mesh instance per mesh in its graph.
// On any failure the error is logged and returned and the scene is left unchanged.
func (m *Manager) ImportModel(path, tag string, p ModelParams) error {
	if m.loader == nil {
		err := fmt.Errorf("import %s: no model loader", path)
		m.log.Error("model import failed", zap.Error(err))
		return err
	}
	root, err := m.loader.Load(path, DefaultImportFlags)
	if err != nil {
		m.log.Error("model import failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("import %s: %w", path, err)
	}
	meshes := collectMeshes(root, tag, nil)
	if len(meshes) == 0 {
		m.log.Error("model import failed", zap.String("path", path), zap.Error(ErrIncompleteModel))
		return fmt.Errorf("import %s: %w", path, ErrIncompleteModel)
	}
	for _, im := range meshes {
		if err := im.mesh.Validate(); err != nil {
			m.log.Error("model import failed", zap.String("path", path), zap.String("mesh", im.tag), zap.Error(err))
			return fmt.Errorf("import %s: mesh %s: %w", path, im.tag, err)
		}
	}

	added := make([]MeshInstance, 0, len(meshes))
	for _, im := range meshes {
		h, err := m.device.UploadMesh(im.mesh)
		if err != nil {
			m.log.Error("mesh upload failed", zap.String("path", path), zap.String("mesh", im.tag), zap.Error(err))
			return fmt.Errorf("import %s: upload %s: %w", path, im.tag, err)
		}
		added = append(added, MeshInstance{
			Tag:         im.tag,
			Position:    p.Position,
			Rotation:    p.Rotation,
			Scale:       p.Scale,
			MaterialTag: p.MaterialTag,
			TextureTag:  p.TextureTag,
			UVScale:     p.UVScale,
			ShaderColor: p.ShaderColor,
			Drawable:    ImportedDrawable{Mesh: h},
			IsRotating:  p.IsRotating,
		})
	}
	m.meshes = append(m.meshes, added...)
	m.log.Info("model imported",
		zap.String("path", path), zap.String("tag", tag), zap.Int("meshes", len(added)))
	return nil
}

// ModelPath returns where the file of km is expected.
func (m *Manager) ModelPath(km KnownModel) string {
	return filepath.Join(m.modelsDir, km.File)
}

// ImportKnownModel imports the known model called name (or named after its file, as in
// "bunny"), tagging its meshes with the model's name.
func (m *Manager) ImportKnownModel(name string, p ModelParams) error {
	for _, km := range KnownModels {
		stem := strings.TrimSuffix(km.File, filepath.Ext(km.File))
		if strings.EqualFold(km.Name, name) || strings.EqualFold(stem, name) {
			return m.ImportModel(m.ModelPath(km), km.Name, p)
		}
	}
	return fmt.Errorf("unknown model %q", name)
}
