package config

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// levelSteps is how many displayed levels span the 0..1 difficulty range.
const levelSteps = 10

// DifficultyManager turns progress in a game into a difficulty level in
// [0, 1] and the gravity delay that goes with it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		start: core.Clamp(cfg.InitialLevel, 0, 1),
	}
}

// progress reports how far towards progression.max_at the game is.
func (d *DifficultyManager) progress(score, lines int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	var done int
	switch d.cfg.Progression.Type {
	case "score":
		done = score
	case "lines":
		done = lines
	default:
		return 0
	}
	return core.Clamp(float64(done)/float64(max(d.cfg.Progression.MaxAt, 1)), 0, 1)
}

// Level interpolates from the initial level to 1 as the game progresses.
func (d *DifficultyManager) Level(score, lines int) float64 {
	return d.start + d.progress(score, lines)*(1-d.start)
}

// DisplayLevel maps the level onto 1..levelSteps+1 for the HUD.
func (d *DifficultyManager) DisplayLevel(score, lines int) int {
	return 1 + int(d.Level(score, lines)*levelSteps)
}

// Interval returns the gravity delay: base / (1 + level*speed_multiplier),
// never below the minimum.
func (d *DifficultyManager) Interval(g GravityConfig, score, lines int) time.Duration {
	ms := float64(g.IntervalMs) / (1 + d.Level(score, lines)*d.cfg.Scaling.SpeedMultiplier)
	return time.Duration(max(ms, float64(g.MinIntervalMs)) * float64(time.Millisecond))
}
