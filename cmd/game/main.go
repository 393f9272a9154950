package main

import (
	"physics-sandbox/internal/engineconfig"
	"physics-sandbox/internal/graphics"
	"physics-sandbox/internal/logger"
	"physics-sandbox/internal/scenario"
)

func main() {
	log := logger.New(logger.LogFilePath)
	if err := engineconfig.LoadDotEnv(".env"); err != nil {
		log.Logf("read .env: %v", err)
	}
	prefs, err := engineconfig.Load()
	if err != nil {
		log.Logf("%v; using default prefs", err)
	}

	scn, err := scenario.Load(prefs.ScenarioPath)
	if err != nil {
		log.Logf("%v; using the default scenario", err)
		scn = scenario.Default()
	}
	a, err := newApp(log, prefs, scn)
	if err != nil {
		log.Logf("%v; using the default scenario", err)
		if a, err = newApp(log, prefs, scenario.Default()); err != nil {
			panic(err)
		}
	}

	win := graphics.Window{
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		Title:     "physics sandbox",
		TargetFPS: prefs.TickRate,
	}
	graphics.Run(win, prefs.TickDuration(), a.input, a.step, a.draw)
}
