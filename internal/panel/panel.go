// Package panel draws the "Scene Objects" editor with raygui.
package panel

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"credenza/internal/editor"
	"credenza/internal/scene"
	"credenza/internal/ui"
)

const (
	title       = "Scene Objects"
	headerSize  = 24
	labelWidth  = 64
	valueWidth  = 48
	arrowWidth  = 24
	columnGap   = 4
	sectionGap  = 6
	positionMax = 10
	rotationMax = 180
	scaleMin    = 0.1
	scaleMax    = 5
	uvMin       = 0.1
	uvMax       = 10
)

var axes = [3]string{"X", "Y", "Z"}

// Panel edits a session through raygui widgets on the left of the screen.
type Panel struct {
	session *editor.Session
	theme   ui.Theme
	log     *zap.Logger
	bounds  rl.Rectangle
	y       float32
	status  string
}

// New returns a panel over session. Call ApplyTheme once the window is open.
func New(session *editor.Session, theme ui.Theme, log *zap.Logger) *Panel {
	if log == nil {
		log = zap.NewNop()
	}
	return &Panel{session: session, theme: theme, log: log}
}

func rgba(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

// ApplyTheme pushes the theme into raygui's default style and sets font as the
// panel font when it is loaded.
func (p *Panel) ApplyTheme(font rl.Font) {
	if font.Texture.ID != 0 {
		gui.SetFont(font)
	}
	th := p.theme
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(rgba(th.Background)))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rgba(th.Line)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rgba(th.Base)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rgba(th.BaseFocused)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rgba(th.BasePressed)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rgba(th.Border)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(rgba(th.BorderFocused)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rgba(th.Text)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rgba(th.TextFocused)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rgba(th.TextPressed)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, int64(th.TextSize))
}

// MouseOver reports whether the cursor is over the panel.
func (p *Panel) MouseOver() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), p.bounds)
}

// Status returns the message of the last panel action.
func (p *Panel) Status() string { return p.status }

func (p *Panel) report(action string, err error) {
	if err != nil {
		p.status = fmt.Sprintf("%s: %v", action, err)
		p.log.Warn("panel action failed", zap.String("action", action), zap.Error(err))
		return
	}
	p.status = action
}

// row reserves the next full-width row and returns its bounds.
func (p *Panel) row() rl.Rectangle {
	pad := float32(p.theme.Padding)
	r := rl.NewRectangle(p.bounds.X+pad, p.y, p.bounds.Width-2*pad, float32(p.theme.RowHeight))
	p.y += float32(p.theme.RowHeight) + columnGap
	return r
}

// columns splits a fresh row into n equal cells.
func (p *Panel) columns(n int) []rl.Rectangle {
	r := p.row()
	w := (r.Width - columnGap*float32(n-1)) / float32(n)
	out := make([]rl.Rectangle, n)
	for i := range out {
		out[i] = rl.NewRectangle(r.X+float32(i)*(w+columnGap), r.Y, w, r.Height)
	}
	return out
}

func (p *Panel) gap() { p.y += sectionGap }

func (p *Panel) slider(label string, v, lo, hi float32) float32 {
	r := p.row()
	gui.Label(rl.NewRectangle(r.X, r.Y, labelWidth, r.Height), label)
	bar := rl.NewRectangle(r.X+labelWidth, r.Y, r.Width-labelWidth-valueWidth, r.Height)
	return gui.Slider(bar, "", fmt.Sprintf("%.2f", v), v, lo, hi)
}

// cycler draws "< value >" and returns -1, 0 or 1 for the arrow pressed.
func (p *Panel) cycler(label, value string) int {
	r := p.row()
	gui.Label(rl.NewRectangle(r.X, r.Y, labelWidth, r.Height), label)
	step := 0
	if gui.Button(rl.NewRectangle(r.X+labelWidth, r.Y, arrowWidth, r.Height), "<") {
		step = -1
	}
	mid := r.X + labelWidth + arrowWidth + columnGap
	gui.Label(rl.NewRectangle(mid, r.Y, r.Width-labelWidth-2*(arrowWidth+columnGap), r.Height), value)
	if gui.Button(rl.NewRectangle(r.X+r.Width-arrowWidth, r.Y, arrowWidth, r.Height), ">") {
		step = 1
	}
	return step
}

// signedDegrees maps [0, 360) onto the slider's [-180, 180].
func signedDegrees(d float32) float32 {
	d = math32.Mod(d, 360)
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d
}

// Draw lays out and handles the panel for this frame. Call inside BeginDrawing, after the 3D pass.
func (p *Panel) Draw() {
	pad := float32(p.theme.Padding)
	h := float32(rl.GetScreenHeight()) - 2*pad
	p.bounds = rl.NewRectangle(pad, pad, float32(p.theme.PanelWidth), h)
	gui.Panel(p.bounds, title)
	p.y = p.bounds.Y + headerSize + pad

	p.drawAddButtons()
	p.gap()
	p.drawImportButtons()
	p.gap()
	if p.session.Manager().Len() > 0 {
		p.drawSelection()
		p.gap()
	}
	p.drawFileButtons()
	if p.status != "" {
		gui.Label(p.row(), p.status)
	}
}

func (p *Panel) drawAddButtons() {
	var cells []rl.Rectangle
	for i, s := range scene.Shapes {
		if i%2 == 0 {
			cells = p.columns(2)
		}
		if gui.Button(cells[i%2], "Add "+s.Label()) {
			p.session.Add(s)
			p.report("added "+s.String(), nil)
		}
	}
}

func (p *Panel) drawImportButtons() {
	var cells []rl.Rectangle
	for i, km := range scene.KnownModels {
		if i%2 == 0 {
			cells = p.columns(2)
		}
		if gui.Button(cells[i%2], "Import "+km.Name) {
			p.report("imported "+km.Name, p.session.Import(km.Name))
		}
	}
}

func (p *Panel) drawSelection() {
	n := p.session.Manager().Len()
	idx := p.session.Index()
	r := p.row()
	gui.Label(rl.NewRectangle(r.X, r.Y, labelWidth, r.Height), "Mesh")
	bar := rl.NewRectangle(r.X+labelWidth, r.Y, r.Width-labelWidth-valueWidth, r.Height)
	v := gui.Slider(bar, "", fmt.Sprintf("%d/%d", idx, n-1), float32(idx), 0, float32(max(n-1, 0)))
	p.session.Select(int(math32.Round(v)))

	inst, ok := p.session.Selected()
	if !ok {
		return
	}
	gui.Label(p.row(), "Tag: "+inst.Tag)

	for a := range axes {
		inst.Position[a] = p.slider("Pos "+axes[a], inst.Position[a], -positionMax, positionMax)
	}
	for a := range axes {
		inst.Rotation[a] = p.slider("Rot "+axes[a], signedDegrees(inst.Rotation[a]), -rotationMax, rotationMax)
	}
	for a := range axes {
		inst.Scale[a] = p.slider("Scale "+axes[a], inst.Scale[a], scaleMin, scaleMax)
	}

	mat := inst.MaterialTag
	if mat == "" {
		mat = "(none)"
	}
	if step := p.cycler("Material", mat); step != 0 {
		p.report("material", p.session.CycleMaterial(step))
	}
	tex := inst.TextureTag
	if tex == "" {
		tex = "(none)"
	}
	if step := p.cycler("Texture", tex); step != 0 {
		tags := append([]string{""}, p.session.Manager().Textures().Tags()...)
		inst.TextureTag = editor.CycleTag(tags, inst.TextureTag, step)
	}

	inst.UVScale[0] = p.slider("UV U", inst.UVScale[0], uvMin, uvMax)
	inst.UVScale[1] = p.slider("UV V", inst.UVScale[1], uvMin, uvMax)
	for c, name := range [4]string{"R", "G", "B", "A"} {
		inst.ShaderColor[c] = p.slider(name, inst.ShaderColor[c], 0, 1)
	}
	inst.IsRotating = gui.CheckBox(p.row(), "Rotate", inst.IsRotating)

	cells := p.columns(2)
	if gui.Button(cells[0], "Duplicate") {
		p.report("duplicated", p.session.Duplicate())
	}
	if gui.Button(cells[1], "Delete") {
		p.report("deleted", p.session.Delete())
	}
}

func (p *Panel) drawFileButtons() {
	cells := p.columns(2)
	if gui.Button(cells[0], "Save") {
		p.report("saved "+p.session.SceneFile(), p.session.Save(""))
	}
	if gui.Button(cells[1], "Load") {
		p.report("loaded "+p.session.SceneFile(), p.session.Load(""))
	}
}
