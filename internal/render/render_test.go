package render

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-sandbox/internal/physics"
)

func TestBoundaryLine_PerpendicularToNormal(t *testing.T) {
	for _, deg := range []float32{0, 30, 90, -45, 180} {
		h := physics.NewHalfSpace(rl.NewVector2(100, 200), deg)
		a, z := BoundaryLine(h)
		dir := rl.Vector2Subtract(z, a)
		if dot := rl.Vector2DotProduct(dir, h.Normal()); math32.Abs(dot) > 1e-2 {
			t.Errorf("rotation %v: boundary·normal = %v, want 0", deg, dot)
		}
		mid := rl.Vector2Scale(rl.Vector2Add(a, z), 0.5)
		if rl.Vector2Distance(mid, h.Position) > 1e-2 {
			t.Errorf("rotation %v: midpoint %v, want anchor %v", deg, mid, h.Position)
		}
	}
}
