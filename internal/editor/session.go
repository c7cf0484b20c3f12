// Package editor holds the editing state shared by the scene panel and the command
// terminal: which instance is selected and the scene edits applied to it.
package editor

import (
	"errors"

	"go.uber.org/zap"

	"credenza/internal/scene"
)

// ErrNoSelection is returned by edits that need a selected instance in an empty scene.
var ErrNoSelection = errors.New("no mesh selected")

// Session applies edits to a scene and keeps the selection valid across them.
type Session struct {
	mgr       *scene.Manager
	log       *zap.Logger
	sel       Selection
	sceneFile string
}

// NewSession edits mgr. sceneFile is where Save and Load go when given no path.
func NewSession(mgr *scene.Manager, sceneFile string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{mgr: mgr, log: log, sceneFile: sceneFile}
}

// Manager returns the edited scene.
func (s *Session) Manager() *scene.Manager { return s.mgr }

// SceneFile returns the default save path.
func (s *Session) SceneFile() string { return s.sceneFile }

// Index returns the selected index, clamped to the current scene.
func (s *Session) Index() int {
	s.sel.Clamp(s.mgr.Len())
	return s.sel.Index()
}

// Select selects instance i, clamped to the scene.
func (s *Session) Select(i int) {
	s.sel.Set(i, s.mgr.Len())
}

// Selected returns the selected instance for editing in place.
func (s *Session) Selected() (*scene.MeshInstance, bool) {
	return s.mgr.Mesh(s.Index())
}

// Add appends a primitive and selects it.
func (s *Session) Add(shape scene.Shape) {
	s.mgr.AddPrimitive(shape)
	s.sel.Added(s.mgr.Len())
}

// Import imports a known model and selects its first mesh.
func (s *Session) Import(name string) error {
	first := s.mgr.Len()
	if err := s.mgr.ImportKnownModel(name, scene.DefaultModelParams()); err != nil {
		return err
	}
	s.sel.Set(first, s.mgr.Len())
	return nil
}

// Delete removes the selected instance and selects the one before it.
func (s *Session) Delete() error {
	i := s.Index()
	if !s.mgr.Remove(i) {
		return ErrNoSelection
	}
	s.sel.Deleted(s.mgr.Len())
	s.log.Debug("mesh deleted", zap.Int("index", i), zap.Int("selected", s.sel.Index()))
	return nil
}

// Duplicate copies the selected instance to the end of the list and selects the copy.
func (s *Session) Duplicate() error {
	if !s.mgr.Duplicate(s.Index()) {
		return ErrNoSelection
	}
	s.sel.Added(s.mgr.Len())
	return nil
}

// CycleMaterial moves the selected instance step materials along the registry.
func (s *Session) CycleMaterial(step int) error {
	inst, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}
	inst.MaterialTag = CycleTag(s.mgr.Materials().Tags(), inst.MaterialTag, step)
	return nil
}

// Edit runs fn on the selected instance.
func (s *Session) Edit(fn func(inst *scene.MeshInstance)) error {
	inst, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}
	fn(inst)
	return nil
}

// Save writes the scene to path, or to the session's scene file when path is empty.
func (s *Session) Save(path string) error {
	if path == "" {
		path = s.sceneFile
	}
	return s.mgr.Serialize(path)
}

// Load replaces the scene with the one at path (or the scene file) and selects the first instance.
func (s *Session) Load(path string) error {
	if path == "" {
		path = s.sceneFile
	}
	if err := s.mgr.Deserialize(path); err != nil {
		return err
	}
	s.sel.Set(0, s.mgr.Len())
	return nil
}
