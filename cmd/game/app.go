package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-sandbox/internal/commands"
	"physics-sandbox/internal/debug"
	"physics-sandbox/internal/engineconfig"
	"physics-sandbox/internal/logger"
	"physics-sandbox/internal/physics"
	"physics-sandbox/internal/render"
	"physics-sandbox/internal/scenario"
	"physics-sandbox/internal/spawn"
	"physics-sandbox/internal/terminal"
)

// Step sizes for the keyboard controls, per frame the key is held.
const (
	speedStep    = 5
	angleStep    = 1
	gravityStep  = 5
	rotationStep = 1
)

const hint = "SPACE/click spawn  arrows speed/angle  G/H gravity  TAB surface  Q/E rotate  ESC console"

// app owns the simulation and everything that feeds it between ticks.
type app struct {
	log      *logger.Logger
	prefs    engineconfig.EnginePrefs
	scn      *scenario.Scenario
	world    *physics.World
	launcher *spawn.Launcher
	reg      *commands.Registry
	term     *terminal.Terminal
	overlay  *debug.Debug

	selected  int // index into world.HalfSpaces() edited by Q/E
	simTime   float32
	prefsFile string
}

func newApp(log *logger.Logger, prefs engineconfig.EnginePrefs, scn *scenario.Scenario) (*app, error) {
	world, err := scn.Build()
	if err != nil {
		return nil, fmt.Errorf("build scenario: %w", err)
	}
	// Bodies are culled once they leave the visible window, whatever size the scenario was written for.
	if prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		view := rl.NewRectangle(0, 0, float32(prefs.WindowWidth), float32(prefs.WindowHeight))
		if view != world.Config.Bounds {
			log.Logf("scenario bounds %.0fx%.0f replaced by window %dx%d", world.Config.Bounds.Width, world.Config.Bounds.Height, prefs.WindowWidth, prefs.WindowHeight)
		}
		world.Config.Bounds = view
	}
	a := &app{
		log:      log,
		prefs:    prefs,
		scn:      scn,
		world:    world,
		launcher: spawn.New(scn.Launcher.Speed, scn.Launcher.Angle, scn.Launcher.Origin.V(), nil),
		reg:      commands.NewRegistry(),
		overlay:  debug.New(prefs.ShowFPS, prefs.ShowStats),

		prefsFile: engineconfig.EngineConfigPath,
	}
	a.registerCommands()
	a.term = terminal.New(log, a.reg)
	log.Logf("loaded scenario: %d bodies, gravity (%.0f, %.0f)", world.Len(), world.Config.Gravity.X, world.Config.Gravity.Y)
	return a, nil
}

// spawn adds a launcher circle at pos and logs it.
func (a *app) spawn(pos rl.Vector2) *physics.Body {
	b := a.world.Add(a.launcher.Spawn(pos))
	a.log.Logf("spawned %s r=%.0f at (%.0f, %.0f)", b.Name, b.Radius(), pos.X, pos.Y)
	return b
}

// surface returns the half-space at index i of world.HalfSpaces().
func (a *app) surface(i int) (*physics.Body, error) {
	hs := a.world.HalfSpaces()
	if i < 0 || i >= len(hs) {
		return nil, fmt.Errorf("surface %d does not exist (%d surfaces)", i, len(hs))
	}
	return hs[i], nil
}

func (a *app) input() {
	a.term.Update()
	if a.term.IsOpen() {
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.spawn(a.launcher.Origin)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.spawn(rl.GetMousePosition())
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.launcher.Speed += speedStep
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.launcher.Speed -= speedStep
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		a.launcher.Angle += angleStep
	}
	if rl.IsKeyDown(rl.KeyRight) {
		a.launcher.Angle -= angleStep
	}
	if rl.IsKeyDown(rl.KeyG) {
		a.world.Config.Gravity.Y -= gravityStep
	}
	if rl.IsKeyDown(rl.KeyH) {
		a.world.Config.Gravity.Y += gravityStep
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		if n := len(a.world.HalfSpaces()); n > 0 {
			a.selected = (a.selected + 1) % n
		}
	}
	if s, err := a.surface(a.selected); err == nil {
		if rl.IsKeyDown(rl.KeyQ) {
			s.SetRotation(s.Rotation() - rotationStep)
		}
		if rl.IsKeyDown(rl.KeyE) {
			s.SetRotation(s.Rotation() + rotationStep)
		}
	}
}

// step runs one fixed tick and logs the bodies that left the viewport.
func (a *app) step(dt float32) {
	a.world.Step(dt)
	a.simTime += dt
	for _, name := range a.world.LastStep().Culled {
		a.log.Logf("culled %s", name)
	}
}

func (a *app) stats() debug.Stats {
	return debug.Stats{
		Bodies:   a.world.Len(),
		Contacts: a.world.LastStep().Contacts,
		Gravity:  a.world.Config.Gravity,
		Speed:    a.launcher.Speed,
		Angle:    a.launcher.Angle,
		Time:     a.simTime,
	}
}

func (a *app) draw() {
	render.Bodies(a.world.Snapshot())
	render.LaunchPreview(a.launcher.Origin, a.launcher.Velocity())
	render.Hint(hint)
	a.overlay.Draw(a.stats())
	a.term.Draw()
}

// launcherDef reports the live launcher settings in scenario form.
func (a *app) launcherDef() scenario.LauncherDef {
	o := a.launcher.Origin
	return scenario.LauncherDef{Speed: a.launcher.Speed, Angle: a.launcher.Angle, Origin: scenario.Vec{o.X, o.Y}}
}
