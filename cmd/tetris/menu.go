package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After quitting a game, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q/Esc        - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	tcfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		mode, err := registry.Create(result.ModeID)
		if err != nil {
			return fmt.Errorf("create mode: %w", err)
		}

		logger.Info("starting", "mode", result.ModeID)
		if err := tui.Run(mode, cfg, tcfg, logger); err != nil {
			return fmt.Errorf("run %s: %w", result.ModeID, err)
		}
	}
}
