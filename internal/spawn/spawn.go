package spawn

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-sandbox/internal/physics"
)

// Spawned circles get an integer radius in [MinRadius, MaxRadius).
const (
	MinRadius = 5
	MaxRadius = 31
)

// Launcher turns a speed and an angle into new circles.
// Angle is in degrees, counter-clockwise on screen (screen y grows downward, so the y velocity is negated).
type Launcher struct {
	Speed  float32
	Angle  float32
	Origin rl.Vector2

	rng *rand.Rand
}

// New returns a launcher drawing radius and colour from rng.
// A nil rng uses a randomly seeded source.
func New(speed, angle float32, origin rl.Vector2, rng *rand.Rand) *Launcher {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Launcher{Speed: speed, Angle: angle, Origin: origin, rng: rng}
}

// Velocity returns the launch velocity for the current speed and angle.
func (l *Launcher) Velocity() rl.Vector2 {
	rad := l.Angle * rl.Deg2rad
	return rl.NewVector2(math32.Cos(rad)*l.Speed, -math32.Sin(rad)*l.Speed)
}

// Spawn returns a new dynamic circle at pos moving at the launch velocity.
// The caller adds it to a world.
func (l *Launcher) Spawn(pos rl.Vector2) *physics.Body {
	radius := float32(MinRadius + l.rng.IntN(MaxRadius-MinRadius))
	b := physics.NewCircle(pos, radius)
	b.Velocity = l.Velocity()
	b.Color = l.randomColor()
	return b
}

// SpawnAtOrigin spawns at the launcher's origin.
func (l *Launcher) SpawnAtOrigin() *physics.Body {
	return l.Spawn(l.Origin)
}

func (l *Launcher) randomColor() rl.Color {
	return rl.NewColor(uint8(l.rng.IntN(256)), uint8(l.rng.IntN(256)), uint8(l.rng.IntN(256)), 255)
}
