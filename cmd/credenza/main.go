// Command credenza opens the credenza scene viewer: a lit, textured credenza with an
// editor panel for adding, importing and arranging meshes around it.
package main

import (
	"errors"
	"io/fs"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"credenza/internal/commands"
	"credenza/internal/debug"
	"credenza/internal/editor"
	"credenza/internal/engineconfig"
	"credenza/internal/env"
	"credenza/internal/fonts"
	"credenza/internal/graphics"
	"credenza/internal/logger"
	"credenza/internal/modelio"
	"credenza/internal/panel"
	"credenza/internal/render"
	"credenza/internal/scene"
	"credenza/internal/terminal"
	"credenza/internal/ui"
	"credenza/internal/view"
)

// app is everything the frame loop touches.
type app struct {
	prefs    engineconfig.Prefs
	stored   engineconfig.Prefs // as read from disk, before environment overrides
	log      *logger.Logger
	renderer *render.Renderer
	scene    *scene.Manager
	session  *editor.Session
	view     *view.View
	panel    *panel.Panel
	term     *terminal.Terminal
	debug    *debug.Debug
	font     rl.Font
}

func main() {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Warn("could not read .env", zap.Error(err))
	}
	stored := engineconfig.Load(engineconfig.ConfigPath)
	prefs := stored
	if err := prefs.ApplyEnv(os.LookupEnv); err != nil {
		log.Warn("ignoring environment override", zap.Error(err))
	}

	a := &app{prefs: prefs, stored: stored, log: log, view: view.New()}
	a.view.SetGridVisible(prefs.GridVisible)

	win := graphics.Window{
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
	}
	err := graphics.Run(win, a.setup, a.update, a.draw)
	if err != nil {
		log.Error("credenza stopped", zap.Error(err))
	} else if err := engineconfig.Save(engineconfig.ConfigPath, a.currentPrefs()); err != nil {
		log.Warn("could not save preferences", zap.Error(err))
	}
	_ = log.Close()
	if err != nil {
		os.Exit(1)
	}
}

// setup builds everything that needs the GL context.
func (a *app) setup() (func(), error) {
	r, err := render.New(a.log.Named("render"))
	if err != nil {
		return nil, err
	}
	a.renderer = r

	a.scene = scene.New(scene.Options{
		Shader:      r,
		Device:      r,
		Loader:      modelio.NewOBJLoader(a.log.Named("modelio")),
		Logger:      a.log.Named("scene"),
		ModelsDir:   a.prefs.ModelsDir,
		TexturesDir: a.prefs.TexturesDir,
	})
	if err := a.scene.Prepare(nil); err != nil {
		r.Close()
		return nil, err
	}

	a.session = editor.NewSession(a.scene, a.prefs.SceneFile, a.log.Named("editor"))
	if _, err := os.Stat(a.prefs.SceneFile); err == nil {
		_ = a.session.Load("")
	} else if !errors.Is(err, fs.ErrNotExist) {
		a.log.Warn("scene file unreadable", zap.String("path", a.prefs.SceneFile), zap.Error(err))
	}

	a.debug = debug.New(func() (int, int) { return a.scene.Len(), a.session.Index() })
	a.debug.SetShowFPS(a.prefs.ShowFPS)
	a.debug.SetShowMemAlloc(a.prefs.ShowMemAlloc)

	reg := commands.NewRegistry()
	commands.RegisterScene(reg, a.session, a.log.Log, commands.Toggles{
		Grid:  a.view.SetGridVisible,
		FPS:   a.debug.SetShowFPS,
		Mem:   a.debug.SetShowMemAlloc,
		Stats: a.debug.SetShowScene,
	})
	a.term = terminal.New(a.log, reg)
	a.panel = panel.New(a.session, ui.EditorTheme(), a.log.Named("panel"))

	if path, err := fonts.Find(a.prefs.FontPath); err == nil {
		a.font = rl.LoadFont(path)
		a.term.SetFont(a.font)
		a.debug.SetFont(a.font)
	}
	a.panel.ApplyTheme(a.font)

	a.log.Info("credenza ready", zap.Int("textures", a.scene.Textures().Len()), zap.Int("meshes", a.scene.Len()))
	return a.teardown, nil
}

func (a *app) teardown() {
	if a.font.Texture.ID != 0 {
		rl.UnloadFont(a.font)
	}
	a.scene.Textures().Destroy()
	a.renderer.Close()
}

func (a *app) update() {
	a.term.Update()
	a.view.Update(a.term.IsOpen(), a.panel.MouseOver())
}

func (a *app) draw() {
	a.view.Draw(a.renderer, a.scene.RenderScene)
	a.panel.Draw()
	a.term.Draw()
	a.debug.Draw()
}

// currentPrefs returns the preferences with overlay state as the user left it.
func (a *app) currentPrefs() engineconfig.Prefs {
	p := a.stored
	p.GridVisible = a.view.GridVisible
	if a.debug != nil {
		p.ShowFPS = a.debug.ShowFPS
		p.ShowMemAlloc = a.debug.ShowMemAlloc
	}
	return p
}
