package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive the
// simulation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadCharge loads the Charge configuration.
// Search order: customPath -> ~/.charge/configs/charge.yaml -> ./configs/charge.yaml -> embedded default
func LoadCharge(customPath string) (ChargeConfig, error) {
	// Fields missing from a file keep their default values.
	cfg := DefaultChargeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("charge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := parseValid(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "charge.yaml")); err == nil {
		if loaded, ok := parseValid(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := parseValid(defaultChargeYAML); ok {
		return loaded, nil
	}
	return DefaultChargeConfig(), nil // Fallback to hardcoded if embed fails
}

func parseValid(data []byte) (ChargeConfig, bool) {
	cfg := DefaultChargeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, cfg.Validate() == nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".charge", "configs", filename)
}

// ApplyChargePreset modifies the config based on a difficulty preset.
func ApplyChargePreset(cfg *ChargeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.RampMultiplier = RampForPreset(preset)
}

// Validate checks the structural requirements of the configuration.
func (c ChargeConfig) Validate() error {
	g := c.Generation
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	case len(g.TierHeights) == 0:
		return fmt.Errorf("%w: at least one tier is required", ErrInvalidConfig)
	case len(g.MinGaps) != len(g.TierHeights) || len(g.MaxGaps) != len(g.TierHeights):
		return fmt.Errorf("%w: gap tables must have one entry per tier", ErrInvalidConfig)
	case g.SegmentWidth <= 0:
		return fmt.Errorf("%w: segment width must be positive", ErrInvalidConfig)
	case g.MinSegments < 2 || g.MaxSegments <= g.MinSegments:
		return fmt.Errorf("%w: segment range must start at 2 and be non-empty", ErrInvalidConfig)
	case g.RollMax <= 0:
		return fmt.Errorf("%w: roll max must be positive", ErrInvalidConfig)
	case c.Charge.BarCapacity <= 0:
		return fmt.Errorf("%w: bar capacity must be positive", ErrInvalidConfig)
	case len(c.Charge.LevelSpeeds) == 0:
		return fmt.Errorf("%w: level speed table is empty", ErrInvalidConfig)
	case len(c.Abilities.DischargeCooldowns) == 0 ||
		len(c.Abilities.ShootCooldowns) == 0 ||
		len(c.Abilities.OverchargeCooldowns) == 0:
		return fmt.Errorf("%w: cooldown tables must not be empty", ErrInvalidConfig)
	case c.Score.HighScoreCount <= 0:
		return fmt.Errorf("%w: high score count must be positive", ErrInvalidConfig)
	}
	for _, s := range c.Charge.LevelSpeeds {
		if s <= 0 {
			return fmt.Errorf("%w: level speeds must be positive", ErrInvalidConfig)
		}
	}
	return nil
}
