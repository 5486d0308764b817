package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFarm loads the farm configuration. The first source that yields a
// valid config wins: an explicit path, then ~/.farmstand/configs/farm.yaml,
// then ./configs/farm.yaml, then the embedded default.
func LoadFarm(customPath string) (FarmConfig, error) {
	var cfg FarmConfig

	// An explicit path is the only source whose errors are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("farm.yaml"),
		filepath.Join("configs", "farm.yaml"),
	}
	for _, path := range candidates {
		if cfg, ok := readFarmFile(path); ok {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultFarmYAML, &cfg); err != nil {
		// The embedded YAML ships with the binary; if it is somehow
		// broken, the hardcoded defaults still work.
		return DefaultFarmConfig(), nil
	}
	return cfg, nil
}

// readFarmFile loads one candidate config file. Missing or invalid files
// are skipped; they are optional overrides.
func readFarmFile(path string) (FarmConfig, bool) {
	var cfg FarmConfig
	if path == "" {
		return cfg, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath resolves a file under ~/.farmstand/configs. Empty when
// the home directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".farmstand", "configs", filename)
}

// ApplyFarmPreset adjusts the config for a difficulty preset.
func ApplyFarmPreset(cfg *FarmConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// The pacing curve scales day by day; these set the day-one baseline
	switch preset {
	case DifficultyEasy:
		cfg.Orders.PatienceTicks += cfg.Orders.PatienceTicks / 4
		cfg.Rules.StartingMoney += 50
	case DifficultyHard:
		cfg.Orders.PatienceTicks -= cfg.Orders.PatienceTicks / 4
	}
}
