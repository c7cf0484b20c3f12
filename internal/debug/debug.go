// Package debug draws the runtime overlays in the top-right corner: frame rate, heap
// size and scene statistics. All overlays are off by default.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Text is only refreshed every updateInterval frames to limit allocations.
	updateInterval = 30
)

// SceneStats reports what the scene overlay shows.
type SceneStats func() (meshes, selected int)

// Debug holds the overlay switches and cached overlay text.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowScene    bool
	stats        SceneStats
	font         rl.Font
	frameCount   uint32
	fpsText      string
	memText      string
	sceneText    string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden. stats may be nil.
func New(stats SceneStats) *Debug {
	return &Debug{stats: stats}
}

// SetShowFPS sets whether the frame rate is drawn.
func (d *Debug) SetShowFPS(show bool) { d.ShowFPS = show }

// SetShowMemAlloc sets whether the heap size is drawn under the frame rate.
func (d *Debug) SetShowMemAlloc(show bool) { d.ShowMemAlloc = show }

// SetShowScene sets whether the mesh count and selection are drawn.
func (d *Debug) SetShowScene(show bool) { d.ShowScene = show }

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) { d.font = font }

func (d *Debug) drawRight(text string, y int32) {
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		pos := rl.NewVector2(float32(rl.GetScreenWidth())-w-padding, float32(y))
		rl.DrawTextEx(d.font, text, pos, fontSize, 1, rl.Green)
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}

// Draw renders the enabled overlays. Call last in the draw loop.
func (d *Debug) Draw() {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	y := int32(padding)

	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.drawRight(d.memText, y)
		y += lineHeight
	}
	if d.ShowScene && d.stats != nil {
		if refresh || d.sceneText == "" {
			n, sel := d.stats()
			d.sceneText = fmt.Sprintf("Meshes: %d  Selected: %d", n, sel)
		}
		d.drawRight(d.sceneText, y)
	}
}
