package physics

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config holds the parameters the front end may rewrite between ticks.
// Bounds with zero width or height disables culling.
type Config struct {
	Gravity rl.Vector2
	Bounds  rl.Rectangle
}

// DefaultConfig is gravity (0, 100) px/s² pointing down the screen, with culling disabled.
func DefaultConfig() Config {
	return Config{Gravity: rl.NewVector2(0, 100)}
}

// StepStats describes the last call to Step.
type StepStats struct {
	Culled   []string // names of bodies removed for leaving Bounds
	Contacts int      // pairs that touched
}

// World owns a list of bodies in insertion order and advances them one fixed tick at a time.
type World struct {
	Config Config

	bodies []*Body
	nextID int
	last   StepStats
}

// NewWorld returns an empty world using cfg.
func NewWorld(cfg Config) *World {
	return &World{Config: cfg}
}

// Add appends b, names it after the insertion counter and returns it.
func (w *World) Add(b *Body) *Body {
	b.Name = fmt.Sprintf("Body %d", w.nextID)
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Remove deletes b, keeping the order of the other bodies. Reports whether b was present.
func (w *World) Remove(b *Body) bool {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = slices.Delete(w.bodies, i, i+1)
			return true
		}
	}
	return false
}

// Clear removes every dynamic body, or every body when keepStatic is false.
func (w *World) Clear(keepStatic bool) {
	if !keepStatic {
		w.bodies = nil
		return
	}
	w.retain(func(b *Body) bool { return b.Static })
}

// Bodies returns the live body list. The slice must not be modified by the caller.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// HalfSpaces returns the half-space bodies in insertion order.
func (w *World) HalfSpaces() []*Body {
	var out []*Body
	for _, b := range w.bodies {
		if b.IsHalfSpace() {
			out = append(out, b)
		}
	}
	return out
}

// LastStep returns statistics from the most recent Step. The caller owns the returned Culled slice.
func (w *World) LastStep() StepStats {
	return StepStats{Culled: slices.Clone(w.last.Culled), Contacts: w.last.Contacts}
}

// Step advances the world by dt seconds: cull, reset forces, gravity, one collision pass, integrate.
// Contacts are resolved once in pair order, so a body touching two things can be biased by order.
func (w *World) Step(dt float32) {
	w.last = StepStats{}
	w.cull()
	w.resetNetForces()
	w.addGravityForce()
	w.checkCollisions()
	w.applyKinematics(dt)
}

// cull drops dynamic bodies outside Config.Bounds. Runs before anything reads the body count.
func (w *World) cull() {
	r := w.Config.Bounds
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	w.retain(func(b *Body) bool {
		if b.Static || inside(r, b.Position) {
			return true
		}
		w.last.Culled = append(w.last.Culled, b.Name)
		return false
	})
}

func inside(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// retain keeps bodies for which keep returns true, preserving their order.
func (w *World) retain(keep func(*Body) bool) {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if keep(b) {
			kept = append(kept, b)
		}
	}
	clear(w.bodies[len(kept):])
	w.bodies = kept
}

func (w *World) resetNetForces() {
	for _, b := range w.bodies {
		b.ResetForce()
	}
}

func (w *World) addGravityForce() {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.AddForce(rl.Vector2Scale(w.Config.Gravity, b.Mass))
	}
}

func (w *World) checkCollisions() {
	for _, b := range w.bodies {
		b.Contact = false
	}
	for i := 0; i < len(w.bodies); i++ {
		bi := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			bj := w.bodies[j]
			if Collide(bi, bj, w.Config.Gravity) {
				bi.Contact = true
				bj.Contact = true
				w.last.Contacts++
			}
		}
	}
}

// applyKinematics moves by the old velocity first, then updates velocity from this tick's force.
func (w *World) applyKinematics(dt float32) {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Position = rl.Vector2Add(b.Position, rl.Vector2Scale(b.Velocity, dt))
		acceleration := rl.Vector2Scale(b.NetForce, 1/b.Mass)
		b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(acceleration, dt))
	}
}

// Snapshot returns a copy of every body for a renderer to read after the tick.
func (w *World) Snapshot() []Body {
	out := make([]Body, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = *b
	}
	return out
}
