package tetris

import "strings"

// Field geometry. The playable interior is Columns x Rows; around it sit a
// sentinel column and a wall column on each side, a ceiling row above, and a
// floor row plus a sentinel row below.
const (
	Columns = 10
	Rows    = 20

	FieldWidth  = Columns + 2 + 2
	FieldHeight = Rows + 1 + 1 + 1

	InteriorLeft  = 2
	InteriorRight = InteriorLeft + Columns // exclusive
	InteriorTop   = 1
	FloorRow      = InteriorTop + Rows // first row below the interior
)

// Position is the top-left corner of a piece's 4x4 box in field coordinates.
// Coordinates are never negative.
type Position struct {
	X, Y int
}

// SpawnPosition is where every new piece appears.
var SpawnPosition = Position{X: 5, Y: 1}

// Offset returns p shifted by (dx, dy). A coordinate that would go negative
// keeps its original value.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: shiftCoord(p.X, dx), Y: shiftCoord(p.Y, dy)}
}

func shiftCoord(v, d int) int {
	if v+d < 0 {
		return v
	}
	return v + d
}

// Field is the well grid. It only ever records locked cells and walls; the
// falling piece lives in Game.
type Field [FieldHeight][FieldWidth]Cell

// NewField returns an empty well with its walls, floor and ceiling in place.
func NewField() Field {
	var f Field
	for y := range FieldHeight {
		for x := range FieldWidth {
			if x < InteriorLeft || x >= InteriorRight || y >= FloorRow {
				f[y][x] = Wall
			}
		}
	}
	// The ceiling is closed over the outer columns and open above the spawn area.
	for x := InteriorLeft; x < InteriorLeft+2; x++ {
		f[0][x] = Wall
		f[0][InteriorRight-1-(x-InteriorLeft)] = Wall
	}
	return f
}

// InBounds reports whether (x, y) addresses a grid cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// At returns the cell at (x, y). Out-of-bounds reads as Wall.
func (f *Field) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Wall
	}
	return f[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (f *Field) Set(x, y int, c Cell) {
	if !InBounds(x, y) {
		return
	}
	f[y][x] = c
}

// IsCollision reports whether shape placed at pos leaves the grid or
// overlaps any non-empty cell.
func (f *Field) IsCollision(pos Position, shape Shape) bool {
	for y := range 4 {
		for x := range 4 {
			fx, fy := pos.X+x, pos.Y+y
			if !InBounds(fx, fy) {
				return true
			}
			if shape[y][x].Occupied() && f[fy][fx].Occupied() {
				return true
			}
		}
	}
	return false
}

// Lock writes the occupied cells of shape into the field at pos. It does not
// check legality.
func (f *Field) Lock(pos Position, shape Shape) {
	for y := range 4 {
		for x := range 4 {
			if shape[y][x].Occupied() {
				f.Set(pos.X+x, pos.Y+y, shape[y][x])
			}
		}
	}
}

// RowFull reports whether every interior cell of row y is occupied.
func (f *Field) RowFull(y int) bool {
	for x := InteriorLeft; x < InteriorRight; x++ {
		if !f.At(x, y).Occupied() {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full interior row, shifting the rows above it
// down, and returns how many rows were removed.
func (f *Field) ClearFullLines() int {
	count := 0
	for y := InteriorTop; y < FloorRow; y++ {
		if !f.RowFull(y) {
			continue
		}
		count++
		for y2 := y; y2 > InteriorTop; y2-- {
			f[y2] = f[y2-1]
		}
		for x := InteriorLeft; x < InteriorRight; x++ {
			f[InteriorTop][x] = Empty
		}
	}
	return count
}

// HardDropPosition returns the lowest legal position straight below pos.
func (f *Field) HardDropPosition(pos Position, shape Shape) Position {
	for {
		next := Position{X: pos.X, Y: pos.Y + 1}
		if f.IsCollision(next, shape) {
			return pos
		}
		pos = next
	}
}

// Occupied counts the occupied interior cells.
func (f *Field) Occupied() int {
	n := 0
	for y := InteriorTop; y < FloorRow; y++ {
		for x := InteriorLeft; x < InteriorRight; x++ {
			if f[y][x].Occupied() {
				n++
			}
		}
	}
	return n
}

// String draws the interior as text, one line per row: '.' for empty,
// '#' for walls and the kind letter for locked cells.
func (f *Field) String() string {
	var sb strings.Builder
	for y := InteriorTop; y < FloorRow; y++ {
		if y > InteriorTop {
			sb.WriteByte('\n')
		}
		for x := InteriorLeft; x < InteriorRight; x++ {
			sb.WriteByte(cellRune(f[y][x]))
		}
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	switch c {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Ghost:
		return '+'
	default:
		return Kind(c - CellI).String()[0]
	}
}
