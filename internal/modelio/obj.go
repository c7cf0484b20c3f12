// Package modelio turns model files into scene model graphs. Wavefront OBJ parsing is
// done by g3n's loader; this package triangulates, de-indexes and post-processes
// its output into flat meshes.
package modelio

import (
	"fmt"
	"path/filepath"

	"github.com/g3n/engine/loader/obj"
	"go.uber.org/zap"

	"credenza/internal/scene"
	"credenza/internal/shapes"
)

// OBJLoader loads Wavefront OBJ files. A sibling .mtl file is read if present.
type OBJLoader struct {
	log *zap.Logger
}

// NewOBJLoader returns a loader that logs parser warnings to log.
func NewOBJLoader(log *zap.Logger) *OBJLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &OBJLoader{log: log}
}

// Load parses path and builds one child node per OBJ object.
func (l *OBJLoader) Load(path string, flags scene.ImportFlags) (*scene.ModelNode, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, w := range dec.Warnings {
		l.log.Debug("obj warning", zap.String("path", path), zap.String("warning", w))
	}
	root, err := Build(dec, flags)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	root.Name = filepath.Base(path)
	return root, nil
}

// Build converts decoded OBJ data to a model graph: a root node with one child per
// object that has faces.
func Build(dec *obj.Decoder, flags scene.ImportFlags) (*scene.ModelNode, error) {
	root := &scene.ModelNode{}
	for i := range dec.Objects {
		o := &dec.Objects[i]
		if len(o.Faces) == 0 {
			continue
		}
		m, err := buildMesh(dec, o, flags)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", o.Name, err)
		}
		root.Children = append(root.Children, &scene.ModelNode{
			Name:   o.Name,
			Meshes: []*shapes.Mesh{m},
		})
	}
	return root, nil
}

// corner is one (position, uv, normal) index triple of a face; -1 means absent.
type corner struct {
	v, vt, vn int
}

func lookup(idx []int, i, n int) int {
	if i >= len(idx) {
		return -1
	}
	if j := idx[i]; j >= 0 && j < n {
		return j
	}
	return -1
}

func buildMesh(dec *obj.Decoder, o *obj.Object, flags scene.ImportFlags) (*shapes.Mesh, error) {
	nv := len(dec.Vertices) / 3
	nuv := len(dec.Uvs) / 2
	nn := len(dec.Normals) / 3

	m := &shapes.Mesh{}
	seen := make(map[corner]uint32)
	missingNormals := false

	emit := func(c corner) uint32 {
		if idx, ok := seen[c]; ok {
			return idx
		}
		idx := uint32(m.VertexCount())
		seen[c] = idx
		m.Positions = append(m.Positions, dec.Vertices[c.v*3], dec.Vertices[c.v*3+1], dec.Vertices[c.v*3+2])
		if c.vn >= 0 {
			m.Normals = append(m.Normals, dec.Normals[c.vn*3], dec.Normals[c.vn*3+1], dec.Normals[c.vn*3+2])
		} else {
			m.Normals = append(m.Normals, 0, 0, 0)
			missingNormals = true
		}
		u, v := float32(0), float32(0)
		if c.vt >= 0 {
			u, v = dec.Uvs[c.vt*2], dec.Uvs[c.vt*2+1]
			if flags.Has(scene.FlipUVs) {
				v = 1 - v
			}
		}
		m.UVs = append(m.UVs, u, v)
		return idx
	}

	for fi, f := range o.Faces {
		n := len(f.Vertices)
		if n < 3 {
			continue
		}
		if n > 3 && !flags.Has(scene.Triangulate) {
			return nil, fmt.Errorf("face %d has %d vertices", fi, n)
		}
		corners := make([]uint32, n)
		for i := 0; i < n; i++ {
			c := corner{
				v:  lookup(f.Vertices, i, nv),
				vt: lookup(f.Uvs, i, nuv),
				vn: lookup(f.Normals, i, nn),
			}
			if c.v < 0 {
				return nil, fmt.Errorf("face %d: vertex index out of range", fi)
			}
			corners[i] = emit(c)
		}
		// fan around the first corner
		for k := 1; k+1 < n; k++ {
			m.Indices = append(m.Indices, corners[0], corners[k], corners[k+1])
		}
	}
	if missingNormals && flags.Has(scene.GenSmoothNormals) {
		shapes.SmoothNormals(m)
	}
	return m, nil
}
