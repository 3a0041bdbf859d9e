package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/storage"
)

var (
	flagVolume        float64
	flagResetTutorial bool
	flagClearScores   bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Print the saved settings, optionally changing them first.

Examples:
  charge settings
  charge settings --volume 0.8
  charge settings --reset-tutorial
  charge settings --clear-scores`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Master volume in [0, 1]")
	settingsCmd.Flags().BoolVar(&flagResetTutorial, "reset-tutorial", false, "Route the next Play through the tutorial again")
	settingsCmd.Flags().BoolVar(&flagClearScores, "clear-scores", false, "Zero the high-score table")
}

func runSettings(cmd *cobra.Command, _ []string) error {
	store, err := storage.OpenSettings(appName)
	if err != nil {
		return err
	}
	prefs, err := store.Load()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("volume") {
		prefs.Volume = core.ClampF(flagVolume, 0, 1)
		changed = true
	}
	if flagResetTutorial {
		prefs.TutorialSeen = false
		changed = true
	}
	if changed {
		if err := store.Save(prefs); err != nil {
			return err
		}
	}

	if flagClearScores {
		highScores, err := storage.OpenHighScores(flagScoresPath)
		if err != nil {
			return err
		}
		if err := highScores.Clear(); err != nil {
			return err
		}
		fmt.Println("High scores cleared.")
	}

	fmt.Printf("Master volume: %.0f%%\n", prefs.Volume*100)
	fmt.Printf("Tutorial seen: %t\n", prefs.TutorialSeen)
	return nil
}
