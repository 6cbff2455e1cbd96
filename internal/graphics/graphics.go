package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

// Run opens the window and drives the frame loop. Each frame it calls
// update with the frame's elapsed seconds, then clears the screen and calls
// draw. All component mutation happens inside update on this one thread.
func Run(title string, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via window button; keys belong to the viewer
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 12, 16, 255))
		draw()
		rl.EndDrawing()
	}
}
