package auto

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

func TestRegistered(t *testing.T) {
	m, err := registry.Create("auto")
	require.NoError(t, err)
	assert.False(t, m.Interactive())
	assert.Equal(t, "auto", m.ID())
	assert.Equal(t, "Autopilot", m.Title())
}

func TestDrivePlaysPieces(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Autopilot.ThinkMs = 1
	cfg.Autopilot.CommitMs = 1
	s := session.New(session.Options{Config: cfg, Seed: 9})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		Mode{}.Drive(ctx, s)
	}()

	assert.Eventually(t, func() bool {
		return s.State().Pieces >= 3
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
