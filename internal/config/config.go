// Package config provides YAML-based game configuration loading and
// difficulty presets for Charge.
package config

// ChargeConfig contains every tunable constant of the simulation.
// World units are pixels of a fixed virtual window; time is in seconds.
type ChargeConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Charge     ChargeRules      `yaml:"charge"`
	Abilities  AbilityConfig    `yaml:"abilities"`
	Barriers   BarrierConfig    `yaml:"barriers"`
	Collision  CollisionConfig  `yaml:"collision"`
	Score      ScoreConfig      `yaml:"score"`
	Generation GenerationConfig `yaml:"generation"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WindowConfig defines the virtual world window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player body and starting speed.
type PlayerConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	StartLift   int     `yaml:"start_lift"` // Spawn height above the middle tier
	MaxJumps    int     `yaml:"max_jumps"`
	StartSpeed  float64 `yaml:"start_speed"`
	StartCharge float64 `yaml:"start_charge"`
}

// PhysicsConfig defines vertical movement. Speeds are pixels per tick.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // Added to vertical speed per second
	MaxVerticalSpeed float64 `yaml:"max_vertical_speed"` // Clamp in both directions
	JumpVelocity     float64 `yaml:"jump_velocity"`      // Negative is up
}

// ChargeRules defines how charge decays, refills and maps to speed.
type ChargeRules struct {
	DecayRate        float64   `yaml:"decay_rate"`
	BatteryReplenish float64   `yaml:"battery_replenish"`
	BarCapacity      float64   `yaml:"bar_capacity"`
	SpeedCoefficient float64   `yaml:"speed_coefficient"`
	LevelSpeeds      []float64 `yaml:"level_speeds"`
}

// AbilityConfig defines costs, cooldown tables and spawned entities.
type AbilityConfig struct {
	DischargeFraction   float64   `yaml:"discharge_fraction"`
	DischargeMaxCost    float64   `yaml:"discharge_max_cost"`
	DischargeCooldowns  []float64 `yaml:"discharge_cooldowns"`
	BlastGrowthRate     float64   `yaml:"blast_growth_rate"`
	BlastMaxRadius      float64   `yaml:"blast_max_radius"`
	ShootCost           float64   `yaml:"shoot_cost"`
	ShootCooldowns      []float64 `yaml:"shoot_cooldowns"`
	ProjectileWidth     int       `yaml:"projectile_width"`
	ProjectileHeight    int       `yaml:"projectile_height"`
	ProjectileSpeed     int       `yaml:"projectile_speed"` // Pixels per tick
	OverchargeCooldowns []float64 `yaml:"overcharge_cooldowns"`
	OverchargeMax       float64   `yaml:"overcharge_max"`
	OverchargeRiseRate  float64   `yaml:"overcharge_rise_rate"`
	OverchargeFallRate  float64   `yaml:"overcharge_fall_rate"`
	OverchargeTrickle   float64   `yaml:"overcharge_trickle"` // Permanent charge per second while rising
}

// BarrierConfig defines the two kill barriers.
type BarrierConfig struct {
	Width           int     `yaml:"width"`
	FrontStartX     int     `yaml:"front_start_x"`
	BackStartX      int     `yaml:"back_start_x"`
	Y               int     `yaml:"y"`
	Height          int     `yaml:"height"`
	StartSpeed      float64 `yaml:"start_speed"`
	SpeedUpRate     float64 `yaml:"speed_up_rate"`
	FallDeathBuffer int     `yaml:"fall_death_buffer"`
}

// CollisionConfig defines the inset tolerances of buffered overlap tests.
type CollisionConfig struct {
	PlayerInsetX int `yaml:"player_inset_x"`
	PlayerInsetY int `yaml:"player_inset_y"`
	WallInsetX   int `yaml:"wall_inset_x"`
	WallInsetY   int `yaml:"wall_inset_y"`
	EnemyInsetX  int `yaml:"enemy_inset_x"`
}

// ScoreConfig defines score accrual and the high score table size.
type ScoreConfig struct {
	Coefficient    float64 `yaml:"coefficient"` // Points per second
	HighScoreCount int     `yaml:"high_score_count"`
}

// GenerationConfig defines procedural level generation.
type GenerationConfig struct {
	TierHeights             []int   `yaml:"tier_heights"`
	SegmentWidth            int     `yaml:"segment_width"`
	PlatformHeight          int     `yaml:"platform_height"`
	MaxPlatforms            int     `yaml:"max_platforms"`
	MinSegments             int     `yaml:"min_segments"`
	MaxSegments             int     `yaml:"max_segments"` // Exclusive
	MinGaps                 []int   `yaml:"min_gaps"`
	MaxGaps                 []int   `yaml:"max_gaps"`
	SpawnChance             float64 `yaml:"spawn_chance"`
	OrbRerollDistance       int     `yaml:"orb_reroll_distance"`
	RollMax                 int     `yaml:"roll_max"`
	BatteryRange            int     `yaml:"battery_range"`
	BatteryVariation        int     `yaml:"battery_variation"`
	WallRange               int     `yaml:"wall_range"`
	EnemyRange              int     `yaml:"enemy_range"`
	MaxBatteriesPerPlatform int     `yaml:"max_batteries_per_platform"`
	MaxWallsPerPlatform     int     `yaml:"max_walls_per_platform"`
	MaxEnemiesPerPlatform   int     `yaml:"max_enemies_per_platform"`
	MaxEnemies              int     `yaml:"max_enemies"`
	BatterySize             int     `yaml:"battery_size"`
	WallWidth               int     `yaml:"wall_width"`
	WallHeight              int     `yaml:"wall_height"`
	EnemyWidth              int     `yaml:"enemy_width"`
	EnemyHeight             int     `yaml:"enemy_height"`
	EnemyPatrolSpeed        int     `yaml:"enemy_patrol_speed"` // Pixels per tick
}

// EffectsConfig defines cosmetic effects.
type EffectsConfig struct {
	OverchargeParticleChance float64 `yaml:"overcharge_particle_chance"`
	ParticleFadeTime         float64 `yaml:"particle_fade_time"`
	BackgroundParallax       float64 `yaml:"background_parallax"`
}

// DifficultyConfig scales the barrier ramp.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	RampMultiplier float64 `yaml:"ramp_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// RampForPreset returns the barrier ramp multiplier for a preset.
func RampForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.35
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables the barrier ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// PlayerStartX returns the fixed horizontal player position.
func (c ChargeConfig) PlayerStartX() int {
	return c.Window.Width / 3
}

// TierCount returns the number of platform lanes.
func (c ChargeConfig) TierCount() int {
	return len(c.Generation.TierHeights)
}
