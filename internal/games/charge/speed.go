package charge

import (
	"math"

	"github.com/vovakirdan/charge/internal/config"
)

// Speed tables. All functions are pure so the curve can be tested on its own.

// levelSpeed returns the coefficient of level i (0-based). Levels past the
// table reuse its last entry.
func levelSpeed(table []float64, i int) float64 {
	if len(table) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// SpeedForCharge converts charge into scroll speed in px/s. Each full bar
// adds less speed than the previous one.
func SpeedForCharge(charge float64, rules config.ChargeRules) float64 {
	if charge < 0 {
		charge = 0
	}
	bar := rules.BarCapacity
	level := int(charge/bar) + 1
	toNext := bar - math.Mod(charge, bar)

	speed := 0.0
	for i := 0; i < level; i++ {
		speed += levelSpeed(rules.LevelSpeeds, i) * bar
	}
	speed -= levelSpeed(rules.LevelSpeeds, level-1) * toNext
	return speed * rules.SpeedCoefficient
}

// LevelForBarrierSpeed returns the 1-based difficulty level: how many
// charge bars the barrier speed is worth.
func LevelForBarrierSpeed(barrierSpeed float64, rules config.ChargeRules) int {
	eq := barrierSpeed / rules.SpeedCoefficient
	level := 0
	for eq > 0 {
		eq -= rules.BarCapacity * levelSpeed(rules.LevelSpeeds, level)
		level++
	}
	return level
}

// CooldownFor returns the cooldown for a 1-based level from a table,
// clamping the index to the table bounds.
func CooldownFor(table []float64, level int) float64 {
	if len(table) == 0 {
		return 0
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// LevelChargePercent returns how full the bar of the given level is, in
// [0, 1].
func LevelChargePercent(charge float64, level int, bar float64) float64 {
	max := bar * float64(level)
	switch {
	case max-charge >= bar:
		return 0
	case max-charge <= 0:
		return 1
	default:
		return math.Mod(charge, bar) / bar
	}
}

// BatteryRollRange returns the battery share of the content roll. It
// shrinks as the player outruns the barriers.
func BatteryRollRange(playerSpeed, barrierSpeed float64, gen config.GenerationConfig) int {
	multiplier := 1.0
	if barrierSpeed > 0 {
		multiplier = (playerSpeed - barrierSpeed) / barrierSpeed
	}
	return gen.BatteryRange - int(math.RoundToEven(float64(gen.BatteryVariation)*multiplier))
}
