// Package config provides YAML configuration loading and difficulty
// management for the game.
package config

import "github.com/vovakirdan/tui-tetris/internal/ai"

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gravity    GravityConfig    `yaml:"gravity"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GravityConfig defines how fast pieces fall on their own.
type GravityConfig struct {
	IntervalMs    int `yaml:"interval_ms"`     // Delay between gravity steps at level 0
	MinIntervalMs int `yaml:"min_interval_ms"` // Floor for the delay at high levels
}

// AutopilotConfig defines the pacing and evaluation of the autonomous mode.
type AutopilotConfig struct {
	ThinkMs  int        `yaml:"think_ms"`  // Pause before searching, with the previous frame shown
	CommitMs int        `yaml:"commit_ms"` // Pause between showing the choice and dropping it
	UseHold  bool       `yaml:"use_hold"`
	Weights  ai.Weights `yaml:"weights"`
}

// DisplayConfig defines what the board shows besides the well.
type DisplayConfig struct {
	NextCount int  `yaml:"next_count"` // Upcoming pieces in the NEXT pane
	Ghost     bool `yaml:"ghost"`      // Draw the landing projection
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "lines", or "none"
	MaxAt int    `yaml:"max_at"` // Score or lines at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
