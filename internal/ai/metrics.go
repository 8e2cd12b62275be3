// Package ai picks placements for the autopilot. It tries every hold choice,
// rotation and horizontal shift of the falling piece, drops each candidate
// onto a copy of the field and scores the result with a weighted heuristic.
// There is no look-ahead past the current piece.
package ai

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Metrics are the raw field measurements the heuristic is built from.
type Metrics struct {
	LineCount  int // full interior rows, before clearing
	HeightMax  int // rows from the floor to the highest occupied cell
	HeightDiff int // sum of height steps between neighbouring columns
	DeadSpace  int // empty cells below the top of their column
}

// Measure computes the metrics of f.
func Measure(f *tetris.Field) Metrics {
	var m Metrics
	for y := tetris.InteriorTop; y < tetris.FloorRow; y++ {
		if f.RowFull(y) {
			m.LineCount++
		}
	}

	var heights [tetris.Columns]int
	for i := range tetris.Columns {
		x := tetris.InteriorLeft + i
		top := tetris.FloorRow
		for y := tetris.InteriorTop; y < tetris.FloorRow; y++ {
			if f.At(x, y).Occupied() {
				top = y
				break
			}
		}
		heights[i] = tetris.FloorRow - top
		for y := top + 1; y < tetris.FloorRow; y++ {
			if !f.At(x, y).Occupied() {
				m.DeadSpace++
			}
		}
	}

	for i, h := range heights {
		m.HeightMax = max(m.HeightMax, h)
		if i+1 < len(heights) {
			m.HeightDiff += core.Abs(h - heights[i+1])
		}
	}
	return m
}

// Normalization domains.
const (
	lineCountMax  = 4
	heightMaxMax  = tetris.Rows
	heightDiffMax = 200
	deadSpaceMax  = 200
)

// normalize maps v from [lo, hi] onto [0, 1].
func normalize(v, lo, hi int) float64 {
	return core.Clamp(float64(v-lo)/float64(hi-lo), 0, 1)
}
