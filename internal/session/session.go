// Package session owns the live game for one player. Input handlers, the
// gravity loop and the autopilot all go through a Session, which serializes
// them with a single mutex. No lock is held across a wait.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
	"github.com/vovakirdan/tui-tetris/internal/timer"
)

// idlePoll is how often the autopilot checks a paused or finished game.
const idlePoll = 50 * time.Millisecond

// Options configure a Session.
type Options struct {
	Config config.TetrisConfig
	Seed   int64
	Logger *log.Logger // nil discards logs

	// OnChange is called after every visible state change, outside the lock.
	OnChange func()
}

// Session is one game plus the state around it: pause, game over, and the
// clocks that drive it.
type Session struct {
	mu     sync.Mutex
	game   *tetris.Game
	seed   int64
	over   bool
	paused bool

	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	engine     *ai.Engine
	timer      *timer.Timer
	logger     *log.Logger
	onChange   func()
}

// New starts a session with a fresh game.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		game:       tetris.NewGame(opts.Seed),
		seed:       opts.Seed,
		cfg:        opts.Config,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		engine: ai.NewEngine(ai.Config{
			Weights: opts.Config.Autopilot.Weights,
			UseHold: opts.Config.Autopilot.UseHold,
		}),
		timer:    timer.New(),
		logger:   logger,
		onChange: opts.OnChange,
	}
	s.logger.Info("game started", "seed", s.seed)
	return s
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Apply performs one input action. Gameplay actions are ignored while the
// game is paused or over; restart only works once the game is over.
func (s *Session) Apply(a core.Action) {
	if a == core.ActionRestart {
		if s.Restart() {
			s.changed()
		}
		return
	}
	if a == core.ActionPause {
		s.TogglePause()
		s.changed()
		return
	}
	if !a.Gameplay() {
		return
	}

	s.mu.Lock()
	if s.over || s.paused {
		s.mu.Unlock()
		return
	}

	g := s.game
	switch a {
	case core.ActionMoveLeft:
		g.Move(-1, 0)
	case core.ActionMoveRight:
		g.Move(1, 0)
	case core.ActionSoftDrop:
		// Soft drop never locks; gravity does that.
		g.StepDown()
		s.timer.Reset()
	case core.ActionHardDrop:
		g.HardDrop()
		s.lockLocked()
	case core.ActionRotateLeft:
		g.RotateLeft()
	case core.ActionRotateRight:
		g.RotateRight()
	case core.ActionHold:
		g.Hold()
	}
	s.mu.Unlock()
	s.changed()
}

// lockLocked locks the falling piece. s.mu must be held.
func (s *Session) lockLocked() {
	lines := s.game.Lines()
	err := s.game.Lock()

	if cleared := s.game.Lines() - lines; cleared > 0 {
		s.logger.Debug("lines cleared", "count", cleared, "score", s.game.Score())
	}
	s.logger.Debug("piece locked", "pieces", s.game.Pieces())

	if errors.Is(err, tetris.ErrGameOver) {
		s.over = true
		s.logger.Info("game over",
			"score", s.game.Score(),
			"lines", s.game.Lines(),
			"pieces", s.game.Pieces(),
		)
	}
}

// Gravity moves the falling piece one row down, locking it if it cannot
// move. It does nothing while paused or over.
func (s *Session) Gravity() {
	s.mu.Lock()
	if s.over || s.paused {
		s.mu.Unlock()
		return
	}
	if !s.game.StepDown() {
		s.lockLocked()
	}
	s.mu.Unlock()
	s.changed()
}

// DropInterval returns the current gravity delay.
func (s *Session) DropInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty.Interval(s.cfg.Gravity, s.game.Score(), s.game.Lines())
}

// RunGravity applies gravity every DropInterval until ctx is done. A soft
// drop restarts the interval.
func (s *Session) RunGravity(ctx context.Context) {
	for ctx.Err() == nil {
		if s.timer.Wait(ctx, s.DropInterval()) {
			s.Gravity()
		}
	}
}

// Plan searches for the best placement and moves the falling piece there
// without dropping it. It reports whether a plan was made.
func (s *Session) Plan() bool {
	s.mu.Lock()
	if s.over || s.paused {
		s.mu.Unlock()
		return false
	}
	res := s.engine.Search(s.game)
	s.game = res.Game
	s.logger.Debug("placement chosen",
		"piece", res.Game.Piece(),
		"hold", res.Hold,
		"dx", res.DX,
		"score", res.Score,
	)
	s.mu.Unlock()
	s.changed()
	return true
}

// Commit hard-drops and locks the falling piece.
func (s *Session) Commit() {
	s.mu.Lock()
	if s.over || s.paused {
		s.mu.Unlock()
		return
	}
	s.game.HardDrop()
	s.lockLocked()
	s.mu.Unlock()
	s.changed()
}

// RunAutopilot plays the game by itself until ctx is done: show the board,
// search, show the choice, then drop it.
func (s *Session) RunAutopilot(ctx context.Context) {
	think := time.Duration(s.cfg.Autopilot.ThinkMs) * time.Millisecond
	commit := time.Duration(s.cfg.Autopilot.CommitMs) * time.Millisecond

	for ctx.Err() == nil {
		s.pause(ctx, think)
		if !s.Plan() {
			// Paused or over: poll until that changes.
			s.pause(ctx, idlePoll)
			continue
		}
		s.pause(ctx, commit)
		s.Commit()
	}
}

// pause sleeps for d, or at least until ctx is done. Resets do not shorten
// the autopilot's pacing.
func (s *Session) pause(ctx context.Context, d time.Duration) {
	deadline := time.Now().Add(d)
	for ctx.Err() == nil {
		left := time.Until(deadline)
		if left <= 0 || s.timer.Wait(ctx, left) {
			return
		}
	}
}

// Snapshot returns a render snapshot and the status line.
func (s *Session) Snapshot() (tetris.Snapshot, core.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot(s.cfg.Display.NextCount), s.stateLocked()
}

// State returns the status line.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() core.GameState {
	score, lines := s.game.Score(), s.game.Lines()
	return core.GameState{
		Score:    score,
		Lines:    lines,
		Pieces:   s.game.Pieces(),
		Level:    s.difficulty.DisplayLevel(score, lines),
		GameOver: s.over,
		Paused:   s.paused,
	}
}

// Restart replaces a finished game with a new one. It reports whether the
// game was over and therefore restarted.
func (s *Session) Restart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.over {
		return false
	}
	s.seed++
	s.game = tetris.NewGame(s.seed)
	s.over = false
	s.paused = false
	s.logger.Info("game restarted", "seed", s.seed)
	return true
}

// TogglePause pauses or resumes a running game.
func (s *Session) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over {
		return
	}
	s.paused = !s.paused
	// Resuming starts a full gravity interval.
	s.timer.Reset()
	s.logger.Debug("pause toggled", "paused", s.paused)
}

// Game returns a copy of the live game.
func (s *Session) Game() *tetris.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// Stats returns the autopilot's search counters.
func (s *Session) Stats() ai.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Stats()
}
