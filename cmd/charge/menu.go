package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/charge/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start Charge at the title menu.

Play routes through the tutorial on a fresh install. Options sets the
master volume and clears the high scores; settings are saved when you
leave the screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change a value
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  charge menu
  charge menu --fps 30
  charge menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger(true)
	svc, closeServices := openServices(logger)
	defer closeServices()

	if err := tui.RunApp(svc, runtimeConfig()); err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	return nil
}
