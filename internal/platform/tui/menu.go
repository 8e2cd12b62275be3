package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	modes    []registry.ModeInfo
	table    table.Model
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected string
}

// NewMenuModel creates a menu listing every registered mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	rows := make([]table.Row, 0, len(modes))
	for _, info := range modes {
		control := "player"
		if !info.Interactive {
			control = "autopilot"
		}
		rows = append(rows, table.Row{info.ID, info.Title, control})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Mode", Width: 10},
			{Title: "Title", Width: 12},
			{Title: "Control", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	t.SetStyles(styles)

	return MenuModel{
		modes:  modes,
		table:  t,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		m.table.MoveUp(1)

	case core.ActionDown:
		m.table.MoveDown(1)

	case core.ActionConfirm:
		if row := m.table.SelectedRow(); row != nil {
			m.selected = row[0]
			return m, tea.Quit // Exit menu to start the game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	body := strings.Join([]string{
		titleStyle.Render("T E T R I S"),
		subtitleStyle.Render("Select a mode"),
		m.table.View(),
		m.help.View(m.keys),
	}, "\n\n")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen mode ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ModeID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == "" {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{ModeID: m.Selected(), Config: m.Config()}, nil
}
