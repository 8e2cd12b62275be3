package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Mode { return stubMode{interactive: true} })
	registry.Register("stub_auto", func() registry.Mode { return stubMode{interactive: false} })
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	if menu.Selected() != "stub_auto" {
		t.Errorf("Selected() = %q, want %q", menu.Selected(), "stub_auto")
	}
	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, cmd := m.Update(runeKey('q'))
	menu := next.(MenuModel)

	if menu.Selected() != "" {
		t.Errorf("Selected() = %q after quit", menu.Selected())
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if menu.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	view := m.View()

	for _, want := range []string{"T E T R I S", "stub", "autopilot"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
