// Package graphics owns the raylib window and frame loop.
package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Title is the window title.
const Title = "Credenza OpenGL"

// Window describes the window to open.
type Window struct {
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Setup creates GPU resources once the GL context exists. The returned teardown, if any,
// runs before the window closes.
type Setup func() (teardown func(), err error)

// Run opens the window, calls setup and then runs the frame loop: update (input), clear
// to black, draw. A setup error closes the window and is returned. ESC is left to the
// terminal; close via the window button.
func Run(w Window, setup Setup, update, draw func()) error {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(w.Width), int32(w.Height), Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.TargetFPS))

	if setup != nil {
		teardown, err := setup()
		if err != nil {
			return err
		}
		if teardown != nil {
			defer teardown()
		}
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	return nil
}
