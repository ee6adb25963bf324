package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the default Simon configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Timing: TimingConfig{
			FlashMs:         250,
			GapDivisor:      3,
			FeedbackPauseMs: 800,
			PressFlashMs:    120,
		},
		Hint: HintConfig{
			Enabled:    true,
			DurationMs: 2000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			EveryNRounds: 3,
			SpeedStepMs:  20,
			MinSpeedMs:   60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSimonYAML
}
