package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/ai"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			IntervalMs:    1000,
			MinIntervalMs: 100,
		},
		Autopilot: AutopilotConfig{
			ThinkMs:  100,
			CommitMs: 100,
			UseHold:  true,
			Weights:  ai.DefaultWeights(),
		},
		Display: DisplayConfig{
			NextCount: 3,
			Ghost:     true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}
