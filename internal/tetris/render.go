package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the rendered frame. Every field cell is two characters wide so
// the well looks square in a terminal.
const (
	cellWidth  = 2
	boardW     = Columns*cellWidth + 2
	boardH     = Rows + 2
	paneW      = 4*cellWidth + 4
	paneGap    = 1
	previewH   = 4 // border + two shape rows + border
	layoutW    = paneW + paneGap + boardW + paneGap + paneW
	statsH     = 5
	blockGlyph = "██"
	ghostGlyph = "[]"
)

var kindColors = [KindCount]core.Color{
	I: core.ColorCyan,
	O: core.ColorYellow,
	S: core.ColorGreen,
	Z: core.ColorRed,
	J: core.ColorBlue,
	L: core.ColorOrange,
	T: core.ColorMagenta,
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	if int(k) >= KindCount {
		return core.ColorDefault
	}
	return kindColors[k]
}

// Render draws the board, the HOLD and NEXT previews and the score pane into
// dst, plus a PAUSED or GAME OVER overlay. The caller clears dst.
func Render(dst *core.Screen, snap Snapshot, state core.GameState, ghost bool) {
	if dst.Width() < layoutW || dst.Height() < boardH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", layoutW, boardH))
		return
	}

	left := (dst.Width() - layoutW) / 2
	top := (dst.Height() - boardH) / 2

	board := core.NewRect(left+paneW+paneGap, top, boardW, boardH)
	renderBoard(dst, board, snap.Board(ghost))

	hold := core.NewRect(left, top, paneW, previewH)
	dst.DrawBox(hold)
	dst.DrawText(hold.X+2, hold.Y, " HOLD ")
	if snap.HasHold {
		color := snap.Hold.Kind.Color()
		if snap.HeldThisTurn {
			color = core.ColorGray
		}
		renderPreview(dst, hold.Inset(1), snap.Hold, color)
	}

	nextH := 2 + max(len(snap.Next)*3-1, 2)
	next := core.NewRect(board.Right()+paneGap, top, paneW, nextH)
	dst.DrawBox(next)
	dst.DrawText(next.X+2, next.Y, " NEXT ")
	for i, p := range snap.Next {
		area := core.NewRect(next.X+1, next.Y+1+i*3, paneW-2, 2)
		renderPreview(dst, area, p, p.Kind.Color())
	}

	stats := core.NewRect(left, hold.Bottom()+1, paneW, statsH)
	if stats.Bottom() <= dst.Height() {
		dst.DrawBox(stats)
		dst.DrawText(stats.X+1, stats.Y+1, fmt.Sprintf("SCORE%5d", snap.Score))
		dst.DrawText(stats.X+1, stats.Y+2, fmt.Sprintf("LINES%5d", snap.Lines))
		dst.DrawText(stats.X+1, stats.Y+3, fmt.Sprintf("LEVEL%5d", max(state.Level, 1)))
	}

	switch {
	case state.GameOver:
		renderOverlay(dst, "GAME  OVER", "R: restart  Q: quit")
	case state.Paused:
		renderOverlay(dst, "PAUSED", "P: continue")
	}
}

// renderBoard draws the bordered well interior into r.
func renderBoard(dst *core.Screen, r core.Rect, board Field) {
	dst.DrawBox(r)
	for y := InteriorTop; y < FloorRow; y++ {
		for x := InteriorLeft; x < InteriorRight; x++ {
			sx := r.X + 1 + (x-InteriorLeft)*cellWidth
			sy := r.Y + 1 + (y - InteriorTop)
			drawCell(dst, sx, sy, board[y][x])
		}
	}
}

func drawCell(dst *core.Screen, x, y int, c Cell) {
	switch c {
	case Empty:
		dst.DrawTextColored(x, y, " .", core.ColorGray)
	case Ghost:
		dst.DrawTextColored(x, y, ghostGlyph, core.ColorGray)
	case Wall:
		dst.DrawTextColored(x, y, blockGlyph, core.ColorGray)
	default:
		dst.DrawTextColored(x, y, blockGlyph, Kind(c-CellI).Color())
	}
}

// renderPreview draws the occupied rows of p's shape, top-aligned and
// horizontally centered in area.
func renderPreview(dst *core.Screen, area core.Rect, p Piece, color core.Color) {
	shape := p.Shape()
	first := -1
	for y := range 4 {
		for x := range 4 {
			if shape[y][x].Occupied() && first < 0 {
				first = y
			}
		}
	}
	if first < 0 {
		return
	}

	offset := area.X + (area.W-4*cellWidth)/2
	for row := 0; row < area.H && first+row < 4; row++ {
		for x := range 4 {
			if shape[first+row][x].Occupied() {
				dst.DrawTextColored(offset+x*cellWidth, area.Y+row, blockGlyph, color)
			}
		}
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, line1, box.Y+1, core.ColorBrightWhite)
	drawCentered(dst, line2, box.Y+3, core.ColorWhite)
}

func drawCentered(dst *core.Screen, text string, y int, color core.Color) {
	x := (dst.Width() - len(text)) / 2
	dst.DrawTextColored(x, y, text, color)
}
