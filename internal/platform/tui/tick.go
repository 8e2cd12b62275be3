// Package tui runs the game in the terminal with Bubble Tea: it maps keys to
// session actions, starts the play mode's loop and redraws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent at the frame rate to advance the clock display.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// changedMsg reports that the session state changed outside the event loop.
type changedMsg struct{}

// waitForChange blocks until the session signals a change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

// driveDoneMsg is sent when the play mode's loop returns.
type driveDoneMsg struct{}
