// Package auto is the self-playing mode: the placement search picks every
// move, paced so that each choice is visible before it drops.
package auto

import (
	"context"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

func init() {
	registry.Register("auto", func() registry.Mode { return Mode{} })
}

// Mode drives a session with the autopilot.
type Mode struct{}

// ID returns the mode identifier.
func (Mode) ID() string { return "auto" }

// Title returns the menu title.
func (Mode) Title() string { return "Autopilot" }

// Interactive reports that gameplay keys are ignored.
func (Mode) Interactive() bool { return false }

// Drive plays until ctx is done. Gravity is not used.
func (Mode) Drive(ctx context.Context, s *session.Session) {
	s.RunAutopilot(ctx)
}
