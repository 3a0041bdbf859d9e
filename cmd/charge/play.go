package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/charge/internal/games/charge"
	"github.com/vovakirdan/charge/internal/platform/tui"
	"github.com/vovakirdan/charge/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start playing without the title menu.

Controls:
  Space/W/Up     - Jump (again in the air to double jump)
  X              - Cut a jump short
  A/Left         - Discharge blast
  S/Down         - Shoot
  D/Right        - Overcharge
  P              - Pause
  R              - Restart (after game over)
  B/Esc          - Leave (after game over or while paused)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Barriers speed up at 0.75x
  normal - Barriers speed up at the configured rate
  hard   - Barriers speed up at 1.35x
  fixed  - Barriers never speed up

Examples:
  charge play
  charge play charge_tutorial
  charge play --difficulty hard
  charge play --seed 42 --mute
  charge play --config ./my-charge.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := charge.ModeRun
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'charge list' to see available modes", mode)
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("create mode: %w", err)
	}

	logger := newLogger(true)
	svc, closeServices := openServices(logger)
	defer closeServices()

	logger.Info("starting run", "mode", mode, "seed", flagSeed, "difficulty", flagDifficulty)
	if err := tui.Run(game, svc, runtimeConfig()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
