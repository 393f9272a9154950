package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// maxTicksPerFrame bounds catch-up work after a stall so a slow frame cannot snowball.
const maxTicksPerFrame = 5

// Window describes the window to open.
type Window struct {
	Width, Height int
	Title         string
	TargetFPS     int
}

// Clock turns variable frame times into a whole number of fixed ticks.
type Clock struct {
	Tick  float32
	accum float32
}

// Advance adds frameTime and returns how many ticks to run now.
func (c *Clock) Advance(frameTime float32) int {
	c.accum += frameTime
	n := int(c.accum / c.Tick)
	if n > maxTicksPerFrame {
		n = maxTicksPerFrame
		c.accum = 0
		return n
	}
	c.accum -= float32(n) * c.Tick
	return n
}

// Run opens the window and runs the main loop. Each frame it calls input, then step once per
// fixed tick owed by the clock, then clears the screen and calls draw.
// ESC belongs to the console, so the window only closes from its close button.
func Run(win Window, tick float32, input func(), step func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.TargetFPS))

	clock := Clock{Tick: tick}
	for !rl.WindowShouldClose() {
		input()
		for n := clock.Advance(rl.GetFrameTime()); n > 0; n-- {
			step(tick)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
