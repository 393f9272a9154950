package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-sandbox/internal/physics"
)

const (
	// halfSpaceExtent is how far the boundary line is drawn either side of the anchor.
	halfSpaceExtent = 4000
	normalTickLen   = 24
	lineThickness   = 3
)

var (
	contactColor   = rl.NewColor(255, 60, 60, 255)
	surfaceColor   = rl.NewColor(200, 200, 200, 255)
	launchColor    = rl.Red
	backgroundText = rl.NewColor(120, 120, 120, 255)
)

// Bodies draws a snapshot: circles in their own colour (or the contact colour while touching)
// and half-spaces as a long boundary line with a short tick along the normal.
func Bodies(bodies []physics.Body) {
	for i := range bodies {
		b := &bodies[i]
		switch b.Shape().Kind {
		case physics.ShapeCircle:
			col := b.Color
			if b.Contact {
				col = contactColor
			}
			rl.DrawCircleV(b.Position, b.Radius(), col)
		case physics.ShapeHalfSpace:
			a, z := BoundaryLine(b)
			rl.DrawLineEx(a, z, lineThickness, surfaceColor)
			tip := rl.Vector2Add(b.Position, rl.Vector2Scale(b.Normal(), normalTickLen))
			rl.DrawLineEx(b.Position, tip, lineThickness, surfaceColor)
		}
	}
}

// BoundaryLine returns two far-apart points on a half-space's boundary, perpendicular to its normal.
func BoundaryLine(b *physics.Body) (rl.Vector2, rl.Vector2) {
	n := b.Normal()
	tangent := rl.NewVector2(-n.Y, n.X)
	off := rl.Vector2Scale(tangent, halfSpaceExtent)
	return rl.Vector2Subtract(b.Position, off), rl.Vector2Add(b.Position, off)
}

// LaunchPreview draws the launch velocity as a line starting at origin.
func LaunchPreview(origin, velocity rl.Vector2) {
	rl.DrawLineEx(origin, rl.Vector2Add(origin, velocity), lineThickness, launchColor)
}

// Hint draws a help line at the bottom-left of the window.
func Hint(text string) {
	rl.DrawText(text, 10, int32(rl.GetScreenHeight()-30), 20, backgroundText)
}
