package ai

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Search bounds. Shifts run from minShift to maxShift inclusive.
const (
	rotations = 4
	minShift  = -4
	maxShift  = 5
)

// Config controls the search.
type Config struct {
	Weights Weights
	UseHold bool // also try every placement after a hold
}

// DefaultConfig returns the full search with default weights.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights(), UseHold: true}
}

// Result describes the chosen placement.
type Result struct {
	// Game has the hold, rotations and shift applied but is neither
	// dropped nor locked.
	Game      *tetris.Game
	Hold      bool
	Rotations int
	DX        int
	Landing   tetris.Position
	Score     float64
	Metrics   Metrics
}

// Stats counts work done by an Engine since it was created.
type Stats struct {
	Searches    int
	Candidates  int
	Evaluations int // candidates whose landing had not been scored yet
}

// Engine runs placement searches. An Engine is not safe for concurrent use.
type Engine struct {
	cfg   Config
	memo  *intmap.Map[uint32, scored]
	stats Stats
}

type scored struct {
	score   float64
	metrics Metrics
}

// NewEngine creates an engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:  cfg,
		memo: intmap.New[uint32, scored](2 * rotations * (maxShift - minShift + 1)),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Stats returns the work counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Search evaluates every candidate placement of g's falling piece and
// returns the best one. Candidates are tried hold-first-off, then by
// rotation count, then by shift, and a later candidate only wins with a
// strictly higher score, so the result is deterministic. g is not modified.
func (e *Engine) Search(g *tetris.Game) Result {
	e.stats.Searches++
	e.memo.Clear()

	holds := []bool{false}
	if e.cfg.UseHold {
		holds = append(holds, true)
	}

	var best Result
	found := false
	for _, hold := range holds {
		for rot := range rotations {
			for dx := minShift; dx <= maxShift; dx++ {
				candidate := g.Clone()
				if hold {
					candidate.Hold()
				}
				for range rot {
					candidate.RotateRight()
				}
				candidate.MoveTo(candidate.Position().Offset(dx, 0))

				landing, s := e.evaluate(candidate)
				if !found || s.score > best.Score {
					best = Result{
						Game:      candidate,
						Hold:      hold,
						Rotations: rot,
						DX:        dx,
						Landing:   landing,
						Score:     s.score,
						Metrics:   s.metrics,
					}
					found = true
				}
			}
		}
	}
	return best
}

// evaluate drops a copy of candidate, fixes it into the field and scores the
// field. Identical landings within one search are scored once.
func (e *Engine) evaluate(candidate *tetris.Game) (tetris.Position, scored) {
	e.stats.Candidates++

	landed := candidate.Clone()
	landed.HardDrop()
	pos := landed.Position()

	key := placementKey(landed.Piece(), pos)
	if s, ok := e.memo.Get(key); ok {
		return pos, s
	}

	e.stats.Evaluations++
	landed.Fix()
	field := landed.Field()
	m := Measure(&field)
	s := scored{score: e.cfg.Weights.Score(m), metrics: m}
	e.memo.Put(key, s)
	return pos, s
}

// placementKey packs a landing into one integer. Coordinates fit in a byte.
func placementKey(p tetris.Piece, pos tetris.Position) uint32 {
	return uint32(p.Kind)<<24 | uint32(p.Rotation)<<16 | uint32(pos.X)<<8 | uint32(pos.Y)
}

// BestPlacement runs a one-off search with the default configuration.
func BestPlacement(g *tetris.Game) *tetris.Game {
	return NewEngine(DefaultConfig()).Search(g).Game
}
