// Package normal is the human-played mode: keys move the piece and gravity
// pulls it down on a resettable clock.
package normal

import (
	"context"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

func init() {
	registry.Register("normal", func() registry.Mode { return Mode{} })
}

// Mode drives a session with gravity only; the player does the rest.
type Mode struct{}

// ID returns the mode identifier.
func (Mode) ID() string { return "normal" }

// Title returns the menu title.
func (Mode) Title() string { return "Marathon" }

// Interactive reports that gameplay keys are accepted.
func (Mode) Interactive() bool { return true }

// Drive runs gravity until ctx is done.
func (Mode) Drive(ctx context.Context, s *session.Session) {
	s.RunGravity(ctx)
}
