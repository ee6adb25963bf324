package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSimon loads the Simon configuration.
// Search order: customPath -> ~/.simon/configs/simon.yaml -> ./configs/simon.yaml -> embedded default
func LoadSimon(customPath string) (SimonConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultSimonConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("simon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultSimonConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "simon.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultSimonConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSimonYAML, &cfg); err != nil {
		return DefaultSimonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadSimonWithPreset loads the configuration like LoadSimon and then applies
// the named difficulty preset. An empty name applies no preset, so the
// file's difficulty and timing values stay as written.
func LoadSimonWithPreset(customPath, presetName string) (SimonConfig, error) {
	cfg, err := LoadSimon(customPath)
	if err != nil {
		return cfg, err
	}
	if presetName == "" {
		return cfg, nil
	}

	preset, err := ParsePreset(presetName)
	if err != nil {
		return cfg, err
	}
	ApplySimonPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SimonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simon", "configs", filename)
}

// ApplySimonPreset modifies the config based on a difficulty preset.
func ApplySimonPreset(cfg *SimonConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.FlashMs = 350
		cfg.Difficulty.EveryNRounds = 4
	case DifficultyHard:
		cfg.Timing.FlashMs = 180
		cfg.Difficulty.EveryNRounds = 2
		cfg.Difficulty.MinSpeedMs = 40
		cfg.Hint.Enabled = false
	}
}
