package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// meshRecord is one saved mesh instance. Fields are copied by name to and from
// MeshInstance and ModelParams, so they must keep the same names and types.
type meshRecord struct {
	Tag         string     `json:"tag"`
	Position    mgl32.Vec3 `json:"position"`
	Rotation    mgl32.Vec3 `json:"rotation"`
	Scale       mgl32.Vec3 `json:"scale"`
	MaterialTag string     `json:"materialTag"`
	TextureTag  string     `json:"textureTag"`
	UVScale     mgl32.Vec2 `json:"uvScale"`
	ShaderColor mgl32.Vec4 `json:"shaderColor"`
	IsRotating  bool       `json:"isRotating"`
}

// rawRecord mirrors meshRecord with every field optional so absent fields can be told
// apart from zero values.
type rawRecord struct {
	Tag         *string   `json:"tag"`
	Position    []float32 `json:"position"`
	Rotation    []float32 `json:"rotation"`
	Scale       []float32 `json:"scale"`
	MaterialTag *string   `json:"materialTag"`
	TextureTag  *string   `json:"textureTag"`
	UVScale     []float32 `json:"uvScale"`
	ShaderColor []float32 `json:"shaderColor"`
	IsRotating  *bool     `json:"isRotating"`
}

func missing(i int, field string) error {
	return fmt.Errorf("record %d: %q: %w", i, field, ErrMissingField)
}

func (r rawRecord) record(i int) (meshRecord, error) {
	var out meshRecord
	switch {
	case r.Tag == nil:
		return out, missing(i, "tag")
	case len(r.Position) < 3:
		return out, missing(i, "position")
	case len(r.Rotation) < 3:
		return out, missing(i, "rotation")
	case len(r.Scale) < 3:
		return out, missing(i, "scale")
	case r.MaterialTag == nil:
		return out, missing(i, "materialTag")
	case r.TextureTag == nil:
		return out, missing(i, "textureTag")
	case len(r.UVScale) < 2:
		return out, missing(i, "uvScale")
	case len(r.ShaderColor) < 4:
		return out, missing(i, "shaderColor")
	case r.IsRotating == nil:
		return out, missing(i, "isRotating")
	}
	out.Tag = *r.Tag
	copy(out.Position[:], r.Position)
	copy(out.Rotation[:], r.Rotation)
	copy(out.Scale[:], r.Scale)
	out.MaterialTag = *r.MaterialTag
	out.TextureTag = *r.TextureTag
	copy(out.UVScale[:], r.UVScale)
	copy(out.ShaderColor[:], r.ShaderColor)
	out.IsRotating = *r.IsRotating
	return out, nil
}

// Serialize writes the mesh instances to path as an indented JSON array, replacing
// any existing file. Drawables are not saved; they are rebuilt from tags on load.
func (m *Manager) Serialize(path string) error {
	recs := make([]meshRecord, len(m.meshes))
	for i := range m.meshes {
		if err := copier.Copy(&recs[i], &m.meshes[i]); err != nil {
			return fmt.Errorf("serialize scene: record %d: %w", i, err)
		}
	}
	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return fmt.Errorf("serialize scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		m.log.Error("could not save scene", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("serialize scene: %w", err)
	}
	m.log.Info("scene saved", zap.String("path", path), zap.Int("meshes", len(recs)))
	return nil
}

// Deserialize replaces the mesh instances with those saved at path. The file is read
// and checked in full first; on any error the current instances are kept.
//
// Each record is rebuilt from its tag: a known model name re-imports that model, a
// primitive tag re-adds that primitive, and anything else is kept without a drawable.
// A model that fails to import is logged and skipped.
func (m *Manager) Deserialize(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		m.log.Error("could not open scene", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("deserialize scene: %w", err)
	}
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		m.log.Error("could not parse scene", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("deserialize scene %s: %w", path, err)
	}
	recs := make([]meshRecord, len(raw))
	for i, r := range raw {
		if recs[i], err = r.record(i); err != nil {
			m.log.Error("invalid scene", zap.String("path", path), zap.Error(err))
			return fmt.Errorf("deserialize scene %s: %w", path, err)
		}
	}

	m.Clear()
	for i := range recs {
		r := &recs[i]
		if km, ok := ModelForTag(r.Tag); ok {
			var p ModelParams
			if err := copier.Copy(&p, r); err != nil {
				m.log.Error("skipping record", zap.Int("record", i), zap.Error(err))
				continue
			}
			_ = m.ImportModel(m.ModelPath(km), r.Tag, p)
			continue
		}
		var inst MeshInstance
		if err := copier.Copy(&inst, r); err != nil {
			m.log.Error("skipping record", zap.Int("record", i), zap.Error(err))
			continue
		}
		if s, ok := ShapeForTag(r.Tag); ok {
			inst.Drawable = PrimitiveDrawable{Shape: s}
		} else {
			m.log.Warn("no drawable for tag", zap.String("tag", r.Tag))
		}
		m.meshes = append(m.meshes, inst)
	}
	m.log.Info("scene loaded", zap.String("path", path), zap.Int("records", len(recs)), zap.Int("meshes", len(m.meshes)))
	return nil
}
