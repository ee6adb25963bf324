package config

import "time"

// DifficultyManager calculates the flash duration as rounds are completed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.EveryNRounds > 0
}

// ShouldSpeedUp reports whether completing the given round triggers a speed-up.
func (d *DifficultyManager) ShouldSpeedUp(completedRound int) bool {
	return d.IsEnabled() && completedRound > 0 && completedRound%d.cfg.EveryNRounds == 0
}

// Floor returns the minimum flash duration.
func (d *DifficultyManager) Floor() time.Duration {
	return ms(d.cfg.MinSpeedMs)
}

// NextSpeed returns the flash duration after completedRound.
// The result never exceeds current and never drops below the floor
// (a current value already under the floor is kept as is).
func (d *DifficultyManager) NextSpeed(current time.Duration, completedRound int) time.Duration {
	if !d.ShouldSpeedUp(completedRound) {
		return current
	}
	floor := d.Floor()
	if current <= floor {
		return current
	}
	return max(floor, current-ms(d.cfg.SpeedStepMs))
}
