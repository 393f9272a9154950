package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is what the overlay reports about the simulation each frame.
type Stats struct {
	Bodies   int
	Contacts int
	Gravity  rl.Vector2
	Speed    float32
	Angle    float32
	Time     float32 // simulated seconds
}

// Debug draws the FPS counter (top-right) and the simulation stats block (top-left).
type Debug struct {
	ShowFPS   bool
	ShowStats bool

	frameCount  uint32
	lastFpsText string
}

// New returns a Debug overlay with the given panels enabled.
func New(showFPS, showStats bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowStats: showStats}
}

// StatsLines formats s for display, one entry per line.
func StatsLines(s Stats) []string {
	return []string{
		fmt.Sprintf("Bodies: %d", s.Bodies),
		fmt.Sprintf("Contacts: %d", s.Contacts),
		fmt.Sprintf("G: (%.0f, %.0f)", s.Gravity.X, s.Gravity.Y),
		fmt.Sprintf("Speed: %.0f  Angle: %.0f", s.Speed, s.Angle),
		fmt.Sprintf("T: %6.2f", s.Time),
	}
}

// Draw renders the enabled panels. Call after the scene so the text sits on top.
func (d *Debug) Draw(s Stats) {
	d.frameCount++
	if d.ShowFPS {
		if d.lastFpsText == "" || d.frameCount%updateInterval == 0 {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(d.lastFpsText, fontSize)
		rl.DrawText(d.lastFpsText, int32(rl.GetScreenWidth())-w-padding, padding, fontSize, rl.Green)
	}
	if d.ShowStats {
		for i, line := range StatsLines(s) {
			rl.DrawText(line, padding, int32(padding+i*lineHeight), fontSize, rl.LightGray)
		}
	}
}
