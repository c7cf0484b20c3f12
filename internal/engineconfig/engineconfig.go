// Package engineconfig persists the viewer's preferences (window, overlays, asset
// locations) between runs. Scene contents are saved separately by the scene package.
package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ConfigPath is the preferences file, relative to the process working directory.
const ConfigPath = "config/credenza.json"

// Environment variables that override the file.
const (
	EnvSceneFile   = "CREDENZA_SCENE_FILE"
	EnvModelsDir   = "CREDENZA_MODELS_DIR"
	EnvTexturesDir = "CREDENZA_TEXTURES_DIR"
	EnvFontPath    = "CREDENZA_FONT"
	EnvTargetFPS   = "CREDENZA_FPS"
)

// Prefs holds viewer preferences.
type Prefs struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int    `json:"target_fps"`
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	TexturesDir  string `json:"textures_dir"`
	ModelsDir    string `json:"models_dir"`
	SceneFile    string `json:"scene_file"`
	// FontPath is a TTF/OTF file, or a directory searched for one. Empty uses raylib's font.
	FontPath string `json:"font_path,omitempty"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		WindowWidth:  1000,
		WindowHeight: 800,
		TargetFPS:    60,
		GridVisible:  true,
		TexturesDir:  "textures",
		ModelsDir:    "models",
		SceneFile:    "scene.json",
		FontPath:     "assets/fonts",
	}
}

// Load reads preferences from path. A missing or invalid file yields Default() and no
// error. Fields absent from the file keep their defaults.
func Load(path string) Prefs {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	p.fill()
	return p
}

// fill replaces unusable values with defaults.
func (p *Prefs) fill() {
	d := Default()
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.SceneFile == "" {
		p.SceneFile = d.SceneFile
	}
}

// ApplyEnv overrides fields from the CREDENZA_* variables visible through lookup
// (os.LookupEnv in the application).
func (p *Prefs) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		EnvSceneFile:   &p.SceneFile,
		EnvModelsDir:   &p.ModelsDir,
		EnvTexturesDir: &p.TexturesDir,
		EnvFontPath:    &p.FontPath,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := lookup(EnvTargetFPS); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s=%q: want a positive integer", EnvTargetFPS, v)
		}
		p.TargetFPS = n
	}
	return nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
