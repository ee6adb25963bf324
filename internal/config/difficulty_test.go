package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldSpeedUp(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, EveryNRounds: 3, SpeedStepMs: 20, MinSpeedMs: 60})

	var hits []int
	for round := 0; round <= 9; round++ {
		if d.ShouldSpeedUp(round) {
			hits = append(hits, round)
		}
	}
	assert.Equal(t, []int{3, 6, 9}, hits)

	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.False(t, d.ShouldSpeedUp(3))
}

func TestNextSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, EveryNRounds: 1, SpeedStepMs: 20, MinSpeedMs: 60})

	tests := []struct {
		name    string
		current time.Duration
		want    time.Duration
	}{
		{"regular step", 250 * time.Millisecond, 230 * time.Millisecond},
		{"clamped to floor", 70 * time.Millisecond, 60 * time.Millisecond},
		{"at floor", 60 * time.Millisecond, 60 * time.Millisecond},
		{"below floor never rises", 40 * time.Millisecond, 40 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.NextSpeed(tt.current, 1))
		})
	}
}

func TestNextSpeedOffRound(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, EveryNRounds: 4, SpeedStepMs: 20, MinSpeedMs: 60})
	assert.Equal(t, 250*time.Millisecond, d.NextSpeed(250*time.Millisecond, 3))
	assert.Equal(t, 230*time.Millisecond, d.NextSpeed(250*time.Millisecond, 4))
	assert.Equal(t, 60*time.Millisecond, d.Floor())
}
