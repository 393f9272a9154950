package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// separationEpsilon is the centre distance below which two circles are treated as coincident.
const separationEpsilon = 1e-6

// fallbackNormal separates coincident circles. Points down the screen.
var fallbackNormal = rl.Vector2{X: 0, Y: 1}

// Collide resolves one pair. The tag pair picks the algorithm; a circle is always passed first
// to the circle/half-space routine whatever the order of a and b. Half-space pairs never collide.
// gravity is needed by the half-space routine to derive the contact force.
func Collide(a, b *Body, gravity rl.Vector2) bool {
	switch {
	case a.IsCircle() && b.IsCircle():
		return CollideCircles(a, b)
	case a.IsCircle() && b.IsHalfSpace():
		return CollideCircleHalfSpace(a, b, gravity)
	case a.IsHalfSpace() && b.IsCircle():
		return CollideCircleHalfSpace(b, a, gravity)
	default:
		return false
	}
}

// CollideCircles pushes two overlapping circles apart along the line between their centres.
// The correction is split evenly regardless of mass; a static circle is immovable and leaves the
// whole correction to the other one. No velocity or force is applied.
// Returns false without touching either body when they do not overlap.
func CollideCircles(a, b *Body) bool {
	d := rl.Vector2Subtract(b.Position, a.Position)
	dist := rl.Vector2Length(d)
	penetration := a.Radius() + b.Radius() - dist
	if penetration <= 0 {
		return false
	}

	normal := fallbackNormal
	if dist >= separationEpsilon {
		normal = rl.Vector2Scale(d, 1/dist)
	}
	mtv := rl.Vector2Scale(normal, penetration)
	switch {
	case a.Static && b.Static:
	case a.Static:
		b.Position = rl.Vector2Add(b.Position, mtv)
	case b.Static:
		a.Position = rl.Vector2Subtract(a.Position, mtv)
	default:
		half := rl.Vector2Scale(mtv, 0.5)
		a.Position = rl.Vector2Subtract(a.Position, half)
		b.Position = rl.Vector2Add(b.Position, half)
	}
	return true
}

// CollideCircleHalfSpace moves an overlapping circle out along the half-space normal and adds
// the support and friction forces for this tick to circle.NetForce. The half-space never moves.
//
// The support force cancels only the perpendicular part of gravity, so it is exact only while
// gravity is the sole force pressing the circle into the surface.
func CollideCircleHalfSpace(circle, plane *Body, gravity rl.Vector2) bool {
	n := plane.Normal()
	toCircle := rl.Vector2Subtract(circle.Position, plane.Position)
	penetration := circle.Radius() - rl.Vector2DotProduct(toCircle, n)
	if penetration <= 0 {
		return false
	}
	if circle.Static {
		return true
	}
	circle.Position = rl.Vector2Add(circle.Position, rl.Vector2Scale(n, penetration))

	fg := rl.Vector2Scale(gravity, circle.Mass)
	fgPerp := rl.Vector2Scale(n, rl.Vector2DotProduct(fg, n))
	fNormal := rl.Vector2Negate(fgPerp)
	circle.AddForce(fNormal)
	circle.AddForce(FrictionForce(fg, fgPerp, circle.Friction*plane.Friction))
	return true
}

// FrictionForce returns the friction opposing the tangential part of driving (driving minus perp).
// Its magnitude is u times the length of perp, the normal force. A zero tangential part yields zero.
func FrictionForce(driving, perp rl.Vector2, u float32) rl.Vector2 {
	tangent := rl.Vector2Subtract(driving, perp)
	length := rl.Vector2Length(tangent)
	if length == 0 || u == 0 {
		return rl.Vector2Zero()
	}
	magnitude := u * rl.Vector2Length(perp)
	return rl.Vector2Scale(tangent, -magnitude/length)
}
