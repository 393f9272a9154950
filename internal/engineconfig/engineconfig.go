package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// Tick rates outside this range are clamped by TickDuration.
const (
	MinTickRate = 10
	MaxTickRate = 240
)

// EnginePrefs holds engine-only preferences: overlays, window size, physics tick rate and the scenario to load.
// Simulation state is never stored here.
type EnginePrefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowStats    bool   `json:"show_stats"`
	TickRate     int    `json:"tick_rate"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	ScenarioPath string `json:"scenario_path,omitempty"`
}

// Default returns 50 ticks per second in a 1200x800 window with the stats overlay on.
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:      false,
		ShowStats:    true,
		TickRate:     50,
		WindowWidth:  1200,
		WindowHeight: 800,
		ScenarioPath: "config/scenario.yaml",
	}
}

// TickDuration is the fixed physics timestep in seconds.
func (p EnginePrefs) TickDuration() float32 {
	rate := min(max(p.TickRate, MinTickRate), MaxTickRate)
	return 1 / float32(rate)
}

// Load reads engine preferences from config/engine.json.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom reads engine preferences from path. A missing file yields Default() and no error.
// An unreadable or invalid file yields Default() together with the error, so callers can report it
// and carry on. No file is created. Environment overrides apply in every case.
func LoadFrom(path string) (EnginePrefs, error) {
	p, err := readPrefs(path)
	applyEnv(&p)
	return p, err
}

func readPrefs(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs %s: %w", path, err)
	}
	loaded := Default()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Default(), fmt.Errorf("decode prefs %s: %w", path, err)
	}
	return loaded, nil
}

// Save writes engine preferences to config/engine.json.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo writes engine preferences to path, creating the directory if needed.
func SaveTo(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
