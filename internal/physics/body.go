package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Default values for a freshly constructed body.
const (
	DefaultMass     = 1
	DefaultFriction = 0.1
)

// ErrInvalidMass is returned by SetMass for zero, negative or non-finite masses.
var ErrInvalidMass = errors.New("mass must be a finite value greater than zero")

// Body is one simulated object: a circle or a half-space.
// Static bodies are skipped by gravity and integration but still take part in collisions.
// NetForce only holds forces accumulated during the current World.Step.
type Body struct {
	Name     string
	Static   bool
	Position rl.Vector2 // circle centre, or a point on a half-space boundary
	Velocity rl.Vector2
	Mass     float32
	NetForce rl.Vector2
	Friction float32 // [0,1]; a contact uses the product of both bodies' values

	// Contact is true when the body touched anything during the last collision pass.
	Contact bool
	// Color is picked by whoever spawned the body. Physics never reads it.
	Color rl.Color

	shape Shape
}

func newBody(position rl.Vector2, shape Shape) *Body {
	return &Body{
		Position: position,
		Velocity: rl.Vector2Zero(),
		Mass:     DefaultMass,
		NetForce: rl.Vector2Zero(),
		Friction: DefaultFriction,
		Color:    rl.White,
		shape:    shape,
	}
}

// NewCircle returns a dynamic circle body centred at position.
// A non-positive radius is replaced by 1.
func NewCircle(position rl.Vector2, radius float32) *Body {
	if radius <= 0 || !finite(radius) {
		radius = 1
	}
	return newBody(position, Shape{Kind: ShapeCircle, radius: radius})
}

// NewHalfSpace returns a static half-space whose boundary passes through anchor.
// rotation is in degrees; 0 gives a floor with its normal pointing up the screen (0,-1).
func NewHalfSpace(anchor rl.Vector2, rotation float32) *Body {
	b := newBody(anchor, Shape{Kind: ShapeHalfSpace})
	b.Static = true
	b.SetRotation(rotation)
	return b
}

// Shape returns the body's shape variant.
func (b *Body) Shape() Shape {
	return b.shape
}

// IsCircle reports whether the body is a circle.
func (b *Body) IsCircle() bool { return b.shape.Kind == ShapeCircle }

// IsHalfSpace reports whether the body is a half-space.
func (b *Body) IsHalfSpace() bool { return b.shape.Kind == ShapeHalfSpace }

// Radius returns the circle radius, or 0 for a half-space.
func (b *Body) Radius() float32 {
	return b.shape.radius
}

// Normal returns the unit normal of a half-space, or the zero vector for a circle.
func (b *Body) Normal() rl.Vector2 {
	return b.shape.normal
}

// Rotation returns the half-space rotation in degrees as last passed to SetRotation.
func (b *Body) Rotation() float32 {
	return b.shape.rotation
}

// SetRotation sets the half-space rotation in degrees and recomputes its normal.
// It is the only way the normal changes. Circles ignore it.
func (b *Body) SetRotation(degrees float32) {
	if b.shape.Kind != ShapeHalfSpace || !finite(degrees) {
		return
	}
	b.shape.rotation = degrees
	b.shape.normal = rl.Vector2Normalize(rl.Vector2Rotate(rl.NewVector2(0, -1), degrees*rl.Deg2rad))
}

// SetRadius changes a circle's radius. Half-spaces and non-positive radii are ignored.
func (b *Body) SetRadius(radius float32) {
	if b.shape.Kind != ShapeCircle || radius <= 0 || !finite(radius) {
		return
	}
	b.shape.radius = radius
}

// SetMass validates and sets the body's mass.
func (b *Body) SetMass(mass float32) error {
	if mass <= 0 || !finite(mass) {
		return fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}
	b.Mass = mass
	return nil
}

// SetFriction sets the friction coefficient, clamped to [0,1].
func (b *Body) SetFriction(u float32) {
	if !finite(u) {
		return
	}
	b.Friction = min(max(u, 0), 1)
}

// AddForce accumulates f into the body's net force for the current tick.
func (b *Body) AddForce(f rl.Vector2) {
	b.NetForce = rl.Vector2Add(b.NetForce, f)
}

// ResetForce zeroes the net force.
func (b *Body) ResetForce() {
	b.NetForce = rl.Vector2Zero()
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
