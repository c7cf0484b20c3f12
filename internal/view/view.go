// Package view owns the camera looking at the credenza and the editor grid under it.
package view

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"credenza/internal/scene"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	orthoFovy       = 12
	perspectiveFovy = 45
)

// View holds the 3D camera. Update runs camera input; Draw wraps the scene draw in
// BeginMode3D/EndMode3D and draws the grid on top of the floor.
type View struct {
	Camera      rl.Camera3D
	GridVisible bool
	drag        drag
}

// drag tracks a right-button camera drag. A drag starts only outside the editor panel
// and keeps going until release, even when the cursor crosses the panel.
type drag struct {
	active bool
}

// step advances the drag by one frame of button state.
func (d *drag) step(pressed, released, overPanel bool) (began, ended bool) {
	if pressed && !overPanel && !d.active {
		d.active, began = true, true
	}
	if released && d.active {
		d.active, ended = false, true
	}
	return began, ended
}

// cancel ends a running drag and reports whether one was running.
func (d *drag) cancel() bool {
	was := d.active
	d.active = false
	return was
}

// New returns a perspective camera in front of the credenza, looking at its middle shelf.
func New() *View {
	v := &View{GridVisible: true}
	v.Camera.Position = rl.NewVector3(0, 5, 12)
	v.Camera.Target = rl.NewVector3(0, 2, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = perspectiveFovy
	v.Camera.Projection = rl.CameraPerspective
	return v
}

// SetGridVisible sets whether the editor grid is drawn.
func (v *View) SetGridVisible(visible bool) {
	v.GridVisible = visible
}

// Perspective reports whether the camera uses a perspective projection.
func (v *View) Perspective() bool {
	return v.Camera.Projection == rl.CameraPerspective
}

// SetPerspective switches between perspective and orthographic projection.
func (v *View) SetPerspective(on bool) {
	if on {
		v.Camera.Projection = rl.CameraPerspective
		v.Camera.Fovy = perspectiveFovy
		return
	}
	v.Camera.Projection = rl.CameraOrthographic
	v.Camera.Fovy = orthoFovy
}

// Update moves the camera while the right mouse button is held, so the left button stays
// free for the editor panel. A press over the panel does not start a drag. P and O pick
// perspective and orthographic projection. Input is ignored while captured is true
// (the terminal is reading it).
func (v *View) Update(captured, overPanel bool) {
	if captured {
		if v.drag.cancel() {
			rl.EnableCursor()
		}
		return
	}
	if rl.IsKeyPressed(rl.KeyP) {
		v.SetPerspective(true)
	}
	if rl.IsKeyPressed(rl.KeyO) {
		v.SetPerspective(false)
	}
	began, ended := v.drag.step(
		rl.IsMouseButtonPressed(rl.MouseButtonRight),
		rl.IsMouseButtonReleased(rl.MouseButtonRight),
		overPanel,
	)
	if began {
		rl.DisableCursor()
	}
	if v.drag.active {
		rl.UpdateCamera(&v.Camera, rl.CameraFree)
	}
	if ended {
		rl.EnableCursor()
	}
}

// Position returns the camera position as the lighting shader expects it.
func (v *View) Position() mgl32.Vec3 {
	p := v.Camera.Position
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Draw pushes the camera position to sh, then runs drawScene inside 3D mode.
func (v *View) Draw(sh scene.Shader, drawScene func()) {
	sh.SetVec3(scene.UniformViewPosition, v.Position())
	rl.BeginMode3D(v.Camera)
	if drawScene != nil {
		drawScene()
	}
	if v.GridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(0, gridExtent, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZ)
}
