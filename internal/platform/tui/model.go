package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for a running game.
type Model struct {
	mode    registry.Mode
	sess    *session.Session
	screen  *core.Screen
	keys    GameKeyMap
	help    help.Model
	config  core.RuntimeConfig
	display config.DisplayConfig
	logger  *log.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	changes chan struct{}

	elapsed  time.Duration
	lastTick time.Time
	status   string
	quitting bool
}

// NewModel creates a model with a fresh session for mode.
func NewModel(mode registry.Mode, cfg core.RuntimeConfig, tcfg config.TetrisConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	cfg.Seed = cfg.ResolveSeed()

	changes := make(chan struct{}, 1)
	sess := session.New(session.Options{
		Config: tcfg,
		Seed:   cfg.Seed,
		Logger: logger.With("mode", mode.ID()),
		OnChange: func() {
			select {
			case changes <- struct{}{}:
			default:
				// A redraw is already pending
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		mode:    mode,
		sess:    sess,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:    DefaultGameKeyMap(),
		help:    h,
		config:  cfg,
		display: tcfg.Display,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		changes: changes,
	}
}

// Init starts the frame clock and the mode's loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate),
		waitForChange(m.changes),
		m.drive(),
	)
}

// drive runs the mode until the model's context is cancelled.
func (m Model) drive() tea.Cmd {
	mode, sess, ctx := m.mode, m.sess, m.ctx
	return func() tea.Msg {
		mode.Drive(ctx, sess)
		return driveDoneMsg{}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case changedMsg:
		return m, waitForChange(m.changes)

	case driveDoneMsg:
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case action.Gameplay() && !m.mode.Interactive():
		return m, nil
	}

	restart := action == core.ActionRestart && m.sess.State().GameOver
	m.sess.Apply(action)
	if restart {
		m.elapsed = 0
	}
	return m, nil
}

// handleTick advances the play clock while the game is running.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	state := m.sess.State()
	if !m.lastTick.IsZero() && !state.Paused && !state.GameOver {
		m.elapsed += now.Sub(m.lastTick)
	}
	m.lastTick = now
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as text and returns a status line.
func (m *Model) saveScreenshot() string {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed: no home directory"
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.mode.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// draw renders the session into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	snap, state := m.sess.Snapshot()
	tetris.Render(m.screen, snap, state, m.display.Ghost)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	status := fmt.Sprintf(" %s  %s", m.mode.Title(), formatElapsed(m.elapsed))
	if m.status != "" {
		status += "  " + m.status
	}

	bindings := m.keys.ShortHelp()
	if !m.mode.Interactive() {
		bindings = []key.Binding{m.keys.Pause, m.keys.Restart, m.keys.Quit}
	}

	return RenderScreen(m.screen) + "\n" +
		statusStyle.Render(status) + "  " + helpStyle.Render(m.help.ShortHelpView(bindings))
}

// formatElapsed renders a play time as m:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Run starts the Bubble Tea program for mode and blocks until the player
// quits.
func Run(mode registry.Mode, cfg core.RuntimeConfig, tcfg config.TetrisConfig, logger *log.Logger) error {
	model := NewModel(mode, cfg, tcfg, logger)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
