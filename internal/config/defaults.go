package config

import (
	_ "embed"
)

//go:embed defaults/charge.yaml
var defaultChargeYAML []byte

// DefaultChargeConfig returns the built-in Charge configuration. It matches
// the embedded defaults/charge.yaml and is used when that file cannot be
// parsed.
func DefaultChargeConfig() ChargeConfig {
	return ChargeConfig{
		Window: WindowConfig{
			Width:  1920,
			Height: 1080,
		},
		Player: PlayerConfig{
			Width:       84,
			Height:      128,
			StartLift:   110,
			MaxJumps:    2,
			StartSpeed:  300,
			StartCharge: 50,
		},
		Physics: PhysicsConfig{
			Gravity:          72,
			MaxVerticalSpeed: 90,
			JumpVelocity:     -28.8,
		},
		Charge: ChargeRules{
			DecayRate:        2,
			BatteryReplenish: 5,
			BarCapacity:      75,
			SpeedCoefficient: 10,
			LevelSpeeds:      []float64{1.0, 0.65, 0.45, 0.30},
		},
		Abilities: AbilityConfig{
			DischargeFraction:   0.3,
			DischargeMaxCost:    50,
			DischargeCooldowns:  []float64{20, 17, 14, 11, 10, 10},
			BlastGrowthRate:     500,
			BlastMaxRadius:      1440,
			ShootCost:           10,
			ShootCooldowns:      []float64{5, 4.5, 4, 3.5, 3, 2.5},
			ProjectileWidth:     15,
			ProjectileHeight:    8,
			ProjectileSpeed:     20,
			OverchargeCooldowns: []float64{20, 17, 14, 11, 10, 10},
			OverchargeMax:       50,
			OverchargeRiseRate:  150,
			OverchargeFallRate:  10,
			OverchargeTrickle:   30,
		},
		Barriers: BarrierConfig{
			Width:           100,
			FrontStartX:     2620,
			BackStartX:      -300,
			Y:               -50,
			Height:          1180,
			StartSpeed:      300,
			SpeedUpRate:     6,
			FallDeathBuffer: 10,
		},
		Collision: CollisionConfig{
			PlayerInsetX: 30,
			PlayerInsetY: 27,
			WallInsetX:   10,
			WallInsetY:   54,
			EnemyInsetX:  10,
		},
		Score: ScoreConfig{
			Coefficient:    4.5,
			HighScoreCount: 10,
		},
		Generation: GenerationConfig{
			TierHeights:             []int{189, 513, 837},
			SegmentWidth:            72,
			PlatformHeight:          72,
			MaxPlatforms:            30,
			MinSegments:             2,
			MaxSegments:             10,
			MinGaps:                 []int{150, 150, 90},
			MaxGaps:                 []int{600, 600, 200},
			SpawnChance:             0.05,
			OrbRerollDistance:       960,
			RollMax:                 1000,
			BatteryRange:            125,
			BatteryVariation:        41,
			WallRange:               12,
			EnemyRange:              8,
			MaxBatteriesPerPlatform: 4,
			MaxWallsPerPlatform:     1,
			MaxEnemiesPerPlatform:   2,
			MaxEnemies:              3,
			BatterySize:             90,
			WallWidth:               108,
			WallHeight:              144,
			EnemyWidth:              80,
			EnemyHeight:             72,
			EnemyPatrolSpeed:        2,
		},
		Effects: EffectsConfig{
			OverchargeParticleChance: 0.4,
			ParticleFadeTime:         0.5,
			BackgroundParallax:       0.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			RampMultiplier: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChargeYAML
}
