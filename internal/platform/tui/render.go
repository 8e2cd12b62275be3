package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// styleFor returns the lipgloss style that paints a run of cells in c.
func styleFor(c core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c == core.ColorDefault {
		return style
	}
	style = style.Foreground(lipgloss.Color(strconv.Itoa(int(c))))
	if c.Emphasized() {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)
	lines := make([]string, s.Height())

	for y := range lines {
		var line, run strings.Builder
		runColor := s.GetCell(0, y).Color

		flush := func() {
			style, ok := styles[runColor]
			if !ok {
				style = styleFor(runColor)
				styles[runColor] = style
			}
			line.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
