package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SimonConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &cfg))
	assert.Equal(t, DefaultSimonConfig(), cfg)
}

func TestDefaultDurations(t *testing.T) {
	cfg := DefaultSimonConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 250*time.Millisecond, cfg.Flash())
	assert.Equal(t, 800*time.Millisecond, cfg.FeedbackPause())
	assert.Equal(t, 120*time.Millisecond, cfg.PressFlash())
	assert.Equal(t, 2*time.Second, cfg.HintDuration())
	assert.Equal(t, 250*time.Millisecond/3, cfg.Gap(cfg.Flash()))
}

func TestHintDurationDisabled(t *testing.T) {
	cfg := DefaultSimonConfig()
	cfg.Hint.Enabled = false
	assert.Zero(t, cfg.HintDuration())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimonConfig)
		ok     bool
	}{
		{"defaults", func(*SimonConfig) {}, true},
		{"zero flash", func(c *SimonConfig) { c.Timing.FlashMs = 0 }, false},
		{"zero gap divisor", func(c *SimonConfig) { c.Timing.GapDivisor = 0 }, false},
		{"negative pause", func(c *SimonConfig) { c.Timing.FeedbackPauseMs = -1 }, false},
		{"hint without duration", func(c *SimonConfig) { c.Hint.DurationMs = 0 }, false},
		{"disabled hint without duration", func(c *SimonConfig) {
			c.Hint.Enabled = false
			c.Hint.DurationMs = 0
		}, true},
		{"zero modulus", func(c *SimonConfig) { c.Difficulty.EveryNRounds = 0 }, false},
		{"zero floor", func(c *SimonConfig) { c.Difficulty.MinSpeedMs = 0 }, false},
		{"disabled difficulty ignores modulus", func(c *SimonConfig) {
			c.Difficulty.Enabled = false
			c.Difficulty.EveryNRounds = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSimonConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadSimonCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simon.yaml")
	data := []byte("timing:\n  flash_ms: 400\ndifficulty:\n  every_n_rounds: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadSimon(path)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Timing.FlashMs)
	assert.Equal(t, 5, cfg.Difficulty.EveryNRounds)
	// Untouched keys keep their defaults.
	assert.Equal(t, 3, cfg.Timing.GapDivisor)
	assert.Equal(t, 60, cfg.Difficulty.MinSpeedMs)
}

func TestLoadSimonWithPresetKeepsFileDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simon.yaml")
	data := []byte("timing:\n  flash_ms: 300\ndifficulty:\n  enabled: false\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	// No --difficulty: the file wins.
	cfg, err := LoadSimonWithPreset(path, "")
	require.NoError(t, err)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 300, cfg.Timing.FlashMs)

	// An explicit preset overrides the file.
	cfg, err = LoadSimonWithPreset(path, "hard")
	require.NoError(t, err)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 180, cfg.Timing.FlashMs)

	cfg, err = LoadSimonWithPreset(path, "fixed")
	require.NoError(t, err)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 300, cfg.Timing.FlashMs)

	_, err = LoadSimonWithPreset(path, "nightmare")
	assert.Error(t, err)
}

func TestLoadSimonMissingFile(t *testing.T) {
	_, err := LoadSimon(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSimonInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  flash_ms: -5\n"), 0o600))

	_, err := LoadSimon(path)
	assert.Error(t, err)
}

func TestLoadSimonFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadSimon("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSimonConfig(), cfg)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSimonConfig()
	cfg.Timing.FlashMs = 333

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flash_ms: 333")
}

func TestParsePreset(t *testing.T) {
	for _, in := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(in)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(in), p)
	}

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplySimonPreset(t *testing.T) {
	cfg := DefaultSimonConfig()
	ApplySimonPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.True(t, IsFixedPreset(DifficultyFixed))

	cfg = DefaultSimonConfig()
	ApplySimonPreset(&cfg, DifficultyEasy)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Greater(t, cfg.Timing.FlashMs, DefaultSimonConfig().Timing.FlashMs)

	cfg = DefaultSimonConfig()
	ApplySimonPreset(&cfg, DifficultyHard)
	assert.Less(t, cfg.Timing.FlashMs, DefaultSimonConfig().Timing.FlashMs)
	assert.False(t, cfg.Hint.Enabled)
	assert.NoError(t, cfg.Validate())

	cfg = DefaultSimonConfig()
	ApplySimonPreset(&cfg, DifficultyNormal)
	assert.Equal(t, DefaultSimonConfig(), cfg)
}
