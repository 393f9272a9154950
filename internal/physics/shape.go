package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ShapeKind tags which geometry a Body carries.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeHalfSpace
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeHalfSpace:
		return "halfspace"
	default:
		return "unknown"
	}
}

// Shape holds the geometry for one ShapeKind. Only the fields of the active kind are meaningful:
// radius for circles, rotation and normal for half-spaces.
type Shape struct {
	Kind ShapeKind

	radius   float32
	rotation float32
	normal   rl.Vector2
}
