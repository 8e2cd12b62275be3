package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right, h/l  - Move
  Down, j          - Soft drop
  Up, k            - Hard drop
  Z / X            - Rotate left / right
  Space, C         - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

In the auto mode only pause, restart and quit are active.

Difficulty options:
  easy   - Slow gravity, starts at the lowest level
  normal - Starts at 30% of the speed range
  hard   - Fast gravity, starts at 70% of the speed range
  fixed  - No progression

Examples:
  tetris play normal
  tetris play auto --seed 42
  tetris play normal --difficulty hard
  tetris play normal --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := args[0]

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'tetris list' to see available modes)", modeID)
	}

	tcfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	mode, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("create mode: %w", err)
	}

	logger.Info("starting", "mode", modeID, "difficulty", flagDifficulty)
	if err := tui.Run(mode, runtimeConfig(), tcfg, logger); err != nil {
		return fmt.Errorf("run %s: %w", modeID, err)
	}
	return nil
}

// runtimeConfig builds the platform config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig reads tetris.yaml and applies the --difficulty preset.
func loadConfig() (config.TetrisConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.TetrisConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	tcfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return tcfg, err
	}
	if flagDifficulty != "" {
		config.ApplyTetrisPreset(&tcfg, preset)
	}
	return tcfg, nil
}
