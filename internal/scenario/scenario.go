package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"physics-sandbox/internal/physics"
)

// DefaultPath is the scenario file, relative to the process working directory.
const DefaultPath = "config/scenario.yaml"

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("invalid scenario")

// Vec is a 2D vector written as [x, y] in YAML.
type Vec [2]float32

// V converts to a raylib vector.
func (v Vec) V() rl.Vector2 { return rl.NewVector2(v[0], v[1]) }

// LauncherDef configures the spawner: speed in px/s, angle in degrees, origin in px.
type LauncherDef struct {
	Speed  float32 `yaml:"speed"`
	Angle  float32 `yaml:"angle"`
	Origin Vec     `yaml:"origin"`
}

// SurfaceDef is one half-space: a point on its boundary, a rotation in degrees and a friction coefficient.
type SurfaceDef struct {
	Position Vec      `yaml:"position"`
	Rotation float32  `yaml:"rotation,omitempty"`
	Friction *float32 `yaml:"friction,omitempty"`
}

// BodyDef is a circle present when the scenario starts. Zero mass and nil friction take the body defaults.
type BodyDef struct {
	Position Vec      `yaml:"position"`
	Velocity Vec      `yaml:"velocity,omitempty"`
	Radius   float32  `yaml:"radius"`
	Mass     float32  `yaml:"mass,omitempty"`
	Friction *float32 `yaml:"friction,omitempty"`
	Static   bool     `yaml:"static,omitempty"`
}

// Scenario is the initial state of a simulation. Bounds is the viewport [width, height];
// dynamic bodies leaving it are culled.
type Scenario struct {
	Gravity  Vec          `yaml:"gravity"`
	Bounds   Vec          `yaml:"bounds"`
	Launcher LauncherDef  `yaml:"launcher"`
	Surfaces []SurfaceDef `yaml:"surfaces,omitempty"`
	Bodies   []BodyDef    `yaml:"bodies,omitempty"`
}

// Default returns a 1200x800 viewport with gravity (0,100), a floor 100px above the bottom edge
// and a launcher at (200, 600) firing at 100 px/s and 30 degrees.
func Default() *Scenario {
	floorFriction := float32(0.5)
	return &Scenario{
		Gravity: Vec{0, 100},
		Bounds:  Vec{1200, 800},
		Launcher: LauncherDef{
			Speed:  100,
			Angle:  30,
			Origin: Vec{200, 600},
		},
		Surfaces: []SurfaceDef{
			{Position: Vec{600, 700}, Rotation: 0, Friction: &floorFriction},
		},
	}
}

// Load reads a scenario from path. A missing file is not an error and yields Default().
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario. Unknown keys are rejected and an empty document
// yields Default().
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes s to path as YAML, creating the directory if needed.
func (s *Scenario) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values physics cannot accept.
func (s *Scenario) Validate() error {
	if s.Bounds[0] < 0 || s.Bounds[1] < 0 {
		return fmt.Errorf("%w: negative bounds %v", ErrInvalid, s.Bounds)
	}
	for i, b := range s.Bodies {
		if b.Radius <= 0 {
			return fmt.Errorf("%w: body %d radius %v must be > 0", ErrInvalid, i, b.Radius)
		}
		if b.Mass < 0 {
			return fmt.Errorf("%w: body %d mass %v must not be negative", ErrInvalid, i, b.Mass)
		}
	}
	return nil
}

// Build creates a world holding the scenario's surfaces followed by its bodies.
func (s *Scenario) Build() (*physics.World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w := physics.NewWorld(physics.Config{
		Gravity: s.Gravity.V(),
		Bounds:  rl.NewRectangle(0, 0, s.Bounds[0], s.Bounds[1]),
	})
	for _, sd := range s.Surfaces {
		h := physics.NewHalfSpace(sd.Position.V(), sd.Rotation)
		if sd.Friction != nil {
			h.SetFriction(*sd.Friction)
		}
		w.Add(h)
	}
	for i, bd := range s.Bodies {
		b := physics.NewCircle(bd.Position.V(), bd.Radius)
		b.Velocity = bd.Velocity.V()
		b.Static = bd.Static
		if bd.Mass != 0 {
			if err := b.SetMass(bd.Mass); err != nil {
				return nil, fmt.Errorf("body %d: %w", i, err)
			}
		}
		if bd.Friction != nil {
			b.SetFriction(*bd.Friction)
		}
		w.Add(b)
	}
	return w, nil
}

// Capture copies the live tunables of w back into s: gravity and every half-space.
// Bodies are left as they were loaded.
func (s *Scenario) Capture(w *physics.World, launcher LauncherDef) {
	s.Gravity = Vec{w.Config.Gravity.X, w.Config.Gravity.Y}
	s.Launcher = launcher
	s.Surfaces = s.Surfaces[:0]
	for _, h := range w.HalfSpaces() {
		friction := h.Friction
		s.Surfaces = append(s.Surfaces, SurfaceDef{
			Position: Vec{h.Position.X, h.Position.Y},
			Rotation: h.Rotation(),
			Friction: &friction,
		})
	}
}
