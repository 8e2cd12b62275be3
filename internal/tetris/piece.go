// Package tetris implements the falling-block game state machine: the well,
// collision, SRS rotation with wall kicks, locking, line clears, hold and the
// 7-bag randomizer. It has no terminal or timing dependencies; drivers call
// into it under their own synchronization.
package tetris

// Cell is the content of a single field square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Ghost // display only, never stored in a live field
	CellI
	CellO
	CellS
	CellZ
	CellJ
	CellL
	CellT
)

// Occupied reports whether the cell blocks movement.
func (c Cell) Occupied() bool {
	return c != Empty
}

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	S
	Z
	J
	L
	T
)

// KindCount is the number of piece kinds, and the size of one bag.
const KindCount = 7

// Kinds lists every piece kind in catalog order.
var Kinds = [KindCount]Kind{I, O, S, Z, J, L, T}

// Cell returns the field marker used when this kind is locked.
func (k Kind) Cell() Cell {
	return CellI + Cell(k)
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) >= KindCount {
		return "?"
	}
	return string("IOSZJLT"[k])
}

// Rotation is one of the four SRS orientation states.
type Rotation uint8

const (
	Rot0 Rotation = iota // spawn state
	RotR                 // one clockwise turn from spawn
	Rot2                 // two turns from spawn
	RotL                 // one counter-clockwise turn from spawn
)

// Next returns the state reached by rotating clockwise.
func (r Rotation) Next() Rotation {
	return (r + 1) % 4
}

// Prev returns the state reached by rotating counter-clockwise.
func (r Rotation) Prev() Rotation {
	return (r + 3) % 4
}

// String returns the SRS name of the state.
func (r Rotation) String() string {
	switch r {
	case Rot0:
		return "0"
	case RotR:
		return "R"
	case Rot2:
		return "2"
	case RotL:
		return "L"
	default:
		return "?"
	}
}

// Piece is an oriented tetromino: its kind plus rotation state.
type Piece struct {
	Kind     Kind
	Rotation Rotation
}

// Shape returns the 4x4 occupancy mask of the piece.
func (p Piece) Shape() Shape {
	return shapeTable[p.Kind][p.Rotation]
}

// RotatedRight returns the piece after one clockwise turn.
func (p Piece) RotatedRight() Piece {
	return Piece{Kind: p.Kind, Rotation: p.Rotation.Next()}
}

// RotatedLeft returns the piece after one counter-clockwise turn.
func (p Piece) RotatedLeft() Piece {
	return Piece{Kind: p.Kind, Rotation: p.Rotation.Prev()}
}

// String formats the piece as kind and state, e.g. "T/R".
func (p Piece) String() string {
	return p.Kind.String() + "/" + p.Rotation.String()
}
