package engineconfig

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override the prefs file.
const (
	EnvScenario = "PHYSICS_SCENARIO"
	EnvTickRate = "PHYSICS_TICK_RATE"
)

// LoadDotEnv reads KEY=VALUE lines from path (e.g. ".env") into the process environment.
// Variables already set are kept. Blank lines and # comments are skipped; a missing file is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// applyEnv overrides p from the environment. Unparsable values are ignored.
func applyEnv(p *EnginePrefs) {
	if v := os.Getenv(EnvScenario); v != "" {
		p.ScenarioPath = v
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		if rate, err := strconv.Atoi(v); err == nil && rate > 0 {
			p.TickRate = rate
		}
	}
}
