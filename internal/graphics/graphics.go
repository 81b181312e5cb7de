package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// clearColor is the mid-gray background.
var clearColor = rl.NewColor(128, 128, 128, 255)

// Window describes the window Run opens.
type Window struct {
	Width  int
	Height int
	Title  string
	FPS    int
}

// Run opens the window and runs the main loop. Each frame it calls update (input, animation),
// then clears the screen and calls draw. setup, if not nil, runs once after the window and GL
// context exist; teardown, if not nil, runs before the window closes.
// ESC is left to the console; close via the window button.
func Run(w Window, setup, update, draw, teardown func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.FPS))

	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(clearColor)
		draw()
		rl.EndDrawing()
	}
}
