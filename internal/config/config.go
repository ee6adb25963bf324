// Package config provides YAML-based game configuration loading and
// difficulty management for the Simon game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SimonConfig contains all configuration for the Simon game.
type SimonConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Hint       HintConfig       `yaml:"hint"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines playback timing. All values are milliseconds.
type TimingConfig struct {
	FlashMs         int `yaml:"flash_ms"`          // Initial flash duration of a signal
	GapDivisor      int `yaml:"gap_divisor"`       // Gap between flashes is flash / divisor
	FeedbackPauseMs int `yaml:"feedback_pause_ms"` // Pause after a completed round
	PressFlashMs    int `yaml:"press_flash_ms"`    // How long a tapped pad stays lit
}

// HintConfig defines the newest-signal hint.
type HintConfig struct {
	Enabled    bool `yaml:"enabled"`
	DurationMs int  `yaml:"duration_ms"`
}

// DifficultyConfig defines the stepped speed-up.
type DifficultyConfig struct {
	Enabled      bool `yaml:"enabled"`
	EveryNRounds int  `yaml:"every_n_rounds"` // Speed up after every Nth completed round
	SpeedStepMs  int  `yaml:"speed_step_ms"`  // Flash reduction per speed-up
	MinSpeedMs   int  `yaml:"min_speed_ms"`   // Flash duration floor
}

// Flash returns the initial flash duration.
func (c SimonConfig) Flash() time.Duration {
	return ms(c.Timing.FlashMs)
}

// FeedbackPause returns the pause between a completed round and the next playback.
func (c SimonConfig) FeedbackPause() time.Duration {
	return ms(c.Timing.FeedbackPauseMs)
}

// PressFlash returns how long a pad is lit after the player taps it.
func (c SimonConfig) PressFlash() time.Duration {
	return ms(c.Timing.PressFlashMs)
}

// HintDuration returns how long the hint is visible. Zero when hints are disabled.
func (c SimonConfig) HintDuration() time.Duration {
	if !c.Hint.Enabled {
		return 0
	}
	return ms(c.Hint.DurationMs)
}

// Gap returns the pause between two flashes at the given speed.
func (c SimonConfig) Gap(speed time.Duration) time.Duration {
	div := c.Timing.GapDivisor
	if div < 1 {
		div = 1
	}
	return speed / time.Duration(div)
}

// Validate checks that the configuration can drive a game.
func (c SimonConfig) Validate() error {
	var errs []error
	if c.Timing.FlashMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.flash_ms must be positive, got %d", c.Timing.FlashMs))
	}
	if c.Timing.GapDivisor < 1 {
		errs = append(errs, fmt.Errorf("timing.gap_divisor must be at least 1, got %d", c.Timing.GapDivisor))
	}
	if c.Timing.FeedbackPauseMs < 0 {
		errs = append(errs, fmt.Errorf("timing.feedback_pause_ms must not be negative, got %d", c.Timing.FeedbackPauseMs))
	}
	if c.Timing.PressFlashMs < 0 {
		errs = append(errs, fmt.Errorf("timing.press_flash_ms must not be negative, got %d", c.Timing.PressFlashMs))
	}
	if c.Hint.Enabled && c.Hint.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("hint.duration_ms must be positive when hints are enabled, got %d", c.Hint.DurationMs))
	}
	if c.Difficulty.Enabled {
		if c.Difficulty.EveryNRounds < 1 {
			errs = append(errs, fmt.Errorf("difficulty.every_n_rounds must be at least 1, got %d", c.Difficulty.EveryNRounds))
		}
		if c.Difficulty.SpeedStepMs < 0 {
			errs = append(errs, fmt.Errorf("difficulty.speed_step_ms must not be negative, got %d", c.Difficulty.SpeedStepMs))
		}
		if c.Difficulty.MinSpeedMs <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.min_speed_ms must be positive, got %d", c.Difficulty.MinSpeedMs))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid simon config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
