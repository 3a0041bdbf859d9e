package config

import "math"

// DifficultyManager derives the barrier ramp from the difficulty settings.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables the barrier ramp.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the barrier ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Multiplier returns the ramp multiplier, clamped to [0, 4].
func (d *DifficultyManager) Multiplier() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return clampF(d.cfg.RampMultiplier, 0.0, 4.0)
}

// BarrierAcceleration returns how much barrier speed grows per second
// for the given base rate.
func (d *DifficultyManager) BarrierAcceleration(baseRate float64) float64 {
	return baseRate * d.Multiplier()
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
