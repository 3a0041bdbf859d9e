package charge

import (
	"math"
	"testing"

	"github.com/vovakirdan/charge/internal/config"
)

func TestSpeedForCharge(t *testing.T) {
	rules := config.DefaultChargeConfig().Charge

	tests := []struct {
		name     string
		charge   float64
		expected float64
	}{
		{"empty", 0, 0},
		{"negative clamps to empty", -10, 0},
		{"start charge", 50, 500},
		{"one full bar", 75, 750},
		{"two full bars", 150, 1237.5},
		{"mid second bar", 112.5, 993.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SpeedForCharge(tc.charge, rules)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("SpeedForCharge(%v) = %v, expected %v", tc.charge, result, tc.expected)
			}
		})
	}
}

func TestSpeedForChargeMonotonic(t *testing.T) {
	rules := config.DefaultChargeConfig().Charge

	prev := SpeedForCharge(0, rules)
	for c := 0.5; c <= 600; c += 0.5 {
		s := SpeedForCharge(c, rules)
		if s < prev {
			t.Fatalf("SpeedForCharge(%v) = %v, below previous %v", c, s, prev)
		}
		prev = s
	}
}

func TestSpeedForChargeContinuousAtBarEdges(t *testing.T) {
	rules := config.DefaultChargeConfig().Charge
	const eps = 1e-6

	for bars := 1; bars <= 6; bars++ {
		edge := float64(bars) * rules.BarCapacity
		below := SpeedForCharge(edge-eps, rules)
		above := SpeedForCharge(edge+eps, rules)
		if math.Abs(above-below) > 1e-3 {
			t.Errorf("speed jumps at %v: %v -> %v", edge, below, above)
		}
	}
}

func TestLevelForBarrierSpeed(t *testing.T) {
	rules := config.DefaultChargeConfig().Charge

	tests := []struct {
		speed    float64
		expected int
	}{
		{0, 0},
		{300, 1},
		{750, 1},
		{751, 2},
		{1237.5, 2},
		{1238, 3},
	}

	for _, tc := range tests {
		result := LevelForBarrierSpeed(tc.speed, rules)
		if result != tc.expected {
			t.Errorf("LevelForBarrierSpeed(%v) = %d, expected %d", tc.speed, result, tc.expected)
		}
	}
}

func TestCooldownForClampsLevel(t *testing.T) {
	table := []float64{5, 4.5, 4, 3.5, 3, 2.5}

	tests := []struct {
		level    int
		expected float64
	}{
		{0, 5},
		{1, 5},
		{3, 4},
		{6, 2.5},
		{42, 2.5},
	}

	for _, tc := range tests {
		result := CooldownFor(table, tc.level)
		if result != tc.expected {
			t.Errorf("CooldownFor(level %d) = %v, expected %v", tc.level, result, tc.expected)
		}
	}

	if result := CooldownFor(nil, 3); result != 0 {
		t.Errorf("CooldownFor(nil) = %v, expected 0", result)
	}
}

func TestLevelChargePercent(t *testing.T) {
	tests := []struct {
		name     string
		charge   float64
		level    int
		expected float64
	}{
		{"partial first bar", 50, 1, 50.0 / 75},
		{"above level", 100, 1, 1},
		{"below level", 10, 2, 0},
		{"partial second bar", 100, 2, 25.0 / 75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := LevelChargePercent(tc.charge, tc.level, 75)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("LevelChargePercent() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestBatteryRollRange(t *testing.T) {
	gen := config.DefaultChargeConfig().Generation

	tests := []struct {
		name          string
		player        float64
		barrier       float64
		expectedRange int
	}{
		{"even pace", 300, 300, 125},
		{"twice the barrier", 600, 300, 84},
		{"half the barrier", 150, 300, 145},
		{"no barrier speed", 500, 0, 84},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := BatteryRollRange(tc.player, tc.barrier, gen)
			if result != tc.expectedRange {
				t.Errorf("BatteryRollRange() = %d, expected %d", result, tc.expectedRange)
			}
		})
	}
}
