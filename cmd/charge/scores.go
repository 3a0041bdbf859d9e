package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/charge/internal/games/charge"
	"github.com/vovakirdan/charge/internal/platform/tui"
	"github.com/vovakirdan/charge/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top 10 high scores and statistics of past runs.

Examples:
  charge scores
  charge scores -i       # browse in the interactive scoreboard
  charge scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagInteractive {
		logger := newLogger(true)
		svc, closeServices := openServices(logger)
		defer closeServices()

		cfg := runtimeConfig()
		return tui.RunScoreboard(svc, charge.ModeRun, cfg.ScreenW, cfg.ScreenH)
	}

	highScores, err := storage.OpenHighScores(flagScoresPath)
	if err != nil {
		return fmt.Errorf("open high scores: %w", err)
	}

	fmt.Println("High Scores - Charge")
	fmt.Println()
	fmt.Printf("  %-4s  %s\n", "Rank", "Score")
	fmt.Printf("  %-4s  %s\n", "----", "-----")
	for i := range storage.NumScores {
		fmt.Printf("  %-4d  %d\n", i+1, highScores.Rank(i))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats(charge.ModeRun)
	if err != nil {
		return fmt.Errorf("read run history: %w", err)
	}

	fmt.Println()
	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'charge play' to set the first high score!")
		return nil
	}

	fmt.Printf("Runs:        %d\n", stats.Runs)
	fmt.Printf("Best:        %d\n", stats.HighScore)
	fmt.Printf("Average:     %.0f\n", stats.AvgScore)
	fmt.Printf("Best level:  %d\n", stats.BestLevel)
	fmt.Printf("Play time:   %s\n", stats.PlayTime.Round(time.Second))
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	// Only hint at the scoreboard on a real terminal.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println()
		fmt.Println("Run 'charge scores -i' for the full history.")
	}
	return nil
}
