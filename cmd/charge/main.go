// charge is an endless runner for the terminal: your charge is your speed,
// and two barriers close in from both sides.
//
// Usage:
//
//	charge                   - Start the title menu
//	charge list              - List available modes
//	charge play [mode]       - Play a mode directly (default: charge)
//	charge menu              - Start the title menu
//	charge serve             - Start SSH server for remote play
//	charge scores            - Show high scores and run history
//	charge settings          - Show or change saved settings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set run history path (default: ~/.charge/scores.db)
//	--highscores <path>   - Set high-score table path (default: ~/.charge/highscores.txt)
//	--config <path>       - Use a custom gameplay config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/charge/internal/config"
	"github.com/vovakirdan/charge/internal/games/charge"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "charge",
	Short: "Charge - an endless runner in your terminal",
	Long: `Charge is an endless runner. Your charge is your speed: collect
batteries to keep ahead of the barrier behind you, but don't outrun the
one in front. Spend charge on a discharge blast, shots and overcharge.

Available commands:
  list      - Show all modes
  play      - Play a mode directly
  menu      - Title menu (default)
  serve     - Start SSH server for remote play
  scores    - View high scores and run history
  settings  - Show or change saved settings

Examples:
  charge
  charge play
  charge play charge_tutorial
  charge play --difficulty hard --seed 42
  charge serve --ssh :2222
  charge scores`,
	PersistentPreRunE: applyGameFlags,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.charge/scores.db", "Path to run history database")
	pf.StringVar(&flagScoresPath, "highscores", "~/.charge/highscores.txt", "Path to high-score table")
	pf.StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// applyGameFlags validates the gameplay flags and hands them to the game
// package before any mode is created. A broken config fails here rather
// than mid-run.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadCharge(flagConfig); err != nil {
			return err
		}
	}

	charge.SetConfigPath(flagConfig)
	charge.SetDifficultyPreset(flagDifficulty)
	return nil
}
