package main

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"physics-sandbox/internal/engineconfig"
)

// unset marks a float flag that was not given on the command line.
var unset = math.NaN()

// floatFlag defines a float flag whose absence can be detected after Parse.
func floatFlag(fs *flag.FlagSet, name, usage string) *float64 {
	return fs.Float64(name, unset, usage)
}

// take calls set with the flag value if it was given on this line.
func take(v *float64, set func(float32)) {
	if !math.IsNaN(*v) {
		set(float32(*v))
	}
}

func (a *app) registerCommands() {
	a.registerGravity()
	a.registerSurface()
	a.registerLaunch()
	a.registerSpawn()
	a.registerClear()

	a.reg.Register("fps", "fps", nil, func([]string) error {
		a.overlay.ShowFPS = !a.overlay.ShowFPS
		a.prefs.ShowFPS = a.overlay.ShowFPS
		a.log.Logf("fps overlay: %v", a.overlay.ShowFPS)
		return nil
	})
	a.reg.Register("stats", "stats", nil, func([]string) error {
		a.overlay.ShowStats = !a.overlay.ShowStats
		a.prefs.ShowStats = a.overlay.ShowStats
		a.log.Logf("stats overlay: %v", a.overlay.ShowStats)
		return nil
	})
	a.reg.Register("save", "save", nil, func([]string) error {
		if err := engineconfig.SaveTo(a.prefsFile, a.prefs); err != nil {
			return fmt.Errorf("save prefs: %w", err)
		}
		a.scn.Capture(a.world, a.launcherDef())
		if err := a.scn.Save(a.prefs.ScenarioPath); err != nil {
			return fmt.Errorf("save scenario: %w", err)
		}
		a.log.Logf("saved %s and %s", a.prefsFile, a.prefs.ScenarioPath)
		return nil
	})
	a.reg.Register("bodies", "bodies", nil, func([]string) error {
		if a.world.Len() == 0 {
			a.log.Log("no bodies")
			return nil
		}
		for _, line := range strings.Split(a.describe(), "\n") {
			a.log.Log(line)
		}
		return nil
	})
	a.reg.Register("help", "help", nil, func([]string) error {
		for _, name := range a.reg.Names() {
			a.log.Log("  " + a.reg.Usage(name))
		}
		return nil
	})
}

func (a *app) registerGravity() {
	fs := flag.NewFlagSet("gravity", flag.ContinueOnError)
	x := floatFlag(fs, "x", "horizontal gravity px/s²")
	y := floatFlag(fs, "y", "vertical gravity px/s², positive is down")
	a.reg.Register("gravity", "gravity [-x px/s²] [-y px/s²]", fs, func([]string) error {
		g := &a.world.Config.Gravity
		take(x, func(v float32) { g.X = v })
		take(y, func(v float32) { g.Y = v })
		a.log.Logf("gravity (%.1f, %.1f)", g.X, g.Y)
		return nil
	})
}

func (a *app) registerSurface() {
	fs := flag.NewFlagSet("surface", flag.ContinueOnError)
	index := fs.Int("i", -1, "surface index, default the selected one")
	x := floatFlag(fs, "x", "anchor x")
	y := floatFlag(fs, "y", "anchor y")
	rot := floatFlag(fs, "rot", "rotation in degrees")
	friction := floatFlag(fs, "friction", "friction coefficient 0..1")
	a.reg.Register("surface", "surface [-i index] [-x px] [-y px] [-rot deg] [-friction u]", fs, func([]string) error {
		i := *index
		if i < 0 {
			i = a.selected
		}
		s, err := a.surface(i)
		if err != nil {
			return err
		}
		a.selected = i
		take(x, func(v float32) { s.Position.X = v })
		take(y, func(v float32) { s.Position.Y = v })
		take(rot, s.SetRotation)
		take(friction, s.SetFriction)
		a.log.Logf("surface %d at (%.0f, %.0f) rot %.1f friction %.2f", i, s.Position.X, s.Position.Y, s.Rotation(), s.Friction)
		return nil
	})
}

func (a *app) registerLaunch() {
	fs := flag.NewFlagSet("launch", flag.ContinueOnError)
	speed := floatFlag(fs, "speed", "launch speed px/s")
	angle := floatFlag(fs, "angle", "launch angle in degrees")
	x := floatFlag(fs, "x", "origin x")
	y := floatFlag(fs, "y", "origin y")
	a.reg.Register("launch", "launch [-speed px/s] [-angle deg] [-x px] [-y px]", fs, func([]string) error {
		l := a.launcher
		take(speed, func(v float32) { l.Speed = v })
		take(angle, func(v float32) { l.Angle = v })
		take(x, func(v float32) { l.Origin.X = v })
		take(y, func(v float32) { l.Origin.Y = v })
		a.log.Logf("launcher speed %.0f angle %.0f origin (%.0f, %.0f)", l.Speed, l.Angle, l.Origin.X, l.Origin.Y)
		return nil
	})
}

func (a *app) registerSpawn() {
	fs := flag.NewFlagSet("spawn", flag.ContinueOnError)
	n := fs.Int("n", 1, "number of circles")
	x := floatFlag(fs, "x", "position x, default the launcher origin")
	y := floatFlag(fs, "y", "position y, default the launcher origin")
	a.reg.Register("spawn", "spawn [-n count] [-x px] [-y px]", fs, func([]string) error {
		count := *n
		pos := a.launcher.Origin
		take(x, func(v float32) { pos.X = v })
		take(y, func(v float32) { pos.Y = v })
		if count < 1 {
			return fmt.Errorf("spawn: -n must be at least 1, got %d", count)
		}
		for i := 0; i < count; i++ {
			a.spawn(pos)
		}
		return nil
	})
}

func (a *app) registerClear() {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	all := fs.Bool("all", false, "also remove surfaces")
	a.reg.Register("clear", "clear [-all]", fs, func([]string) error {
		a.world.Clear(!*all)
		a.selected = 0
		a.log.Logf("cleared, %d bodies left", a.world.Len())
		return nil
	})
}

// describe lists every body, one per line.
func (a *app) describe() string {
	var sb strings.Builder
	for _, b := range a.world.Bodies() {
		fmt.Fprintf(&sb, "%s %s at (%.0f, %.0f)", b.Name, b.Shape().Kind, b.Position.X, b.Position.Y)
		if b.IsCircle() {
			fmt.Fprintf(&sb, " v=(%.0f, %.0f)", b.Velocity.X, b.Velocity.Y)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
