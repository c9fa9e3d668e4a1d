package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScenarioFile is the file name searched for in the config directories.
const ScenarioFile = "scenario.yaml"

// Load loads a scenario.
// Search order: customPath -> ~/.naval/configs/scenario.yaml -> ./configs/scenario.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Files found in
// the search directories are skipped when they fail to parse.
func Load(customPath string) (Scenario, error) {
	var sc Scenario

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return sc, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		sc, err = Parse(data)
		if err != nil {
			return sc, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return sc, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ScenarioFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, err := Parse(data); err == nil {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ScenarioFile)); err == nil {
		if parsed, err := Parse(data); err == nil {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	parsed, err := Parse(defaultScenarioYAML)
	if err != nil {
		return DefaultScenario(), nil // Fallback to hardcoded if embed fails
	}
	return parsed, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if sc.CrossMode == "" {
		sc.CrossMode = CrossNatural
	}
	if err := sc.Validate(); err != nil {
		return sc, err
	}
	return sc, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".naval", "configs", filename)
}
