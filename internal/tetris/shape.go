package tetris

// Shape is the 4x4 occupancy mask of an oriented piece. Row-major, y down.
type Shape [4][4]Cell

// Height returns the number of rows from the top of the box down to the
// lowest occupied row.
func (s Shape) Height() int {
	for y := 3; y >= 0; y-- {
		for x := range 4 {
			if s[y][x].Occupied() {
				return y + 1
			}
		}
	}
	return 0
}

// spawnShapes holds the spawn-state mask of every kind.
var spawnShapes = [KindCount]Shape{
	I: {
		{0, 0, 0, 0},
		{CellI, CellI, CellI, CellI},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	O: {
		{0, CellO, CellO, 0},
		{0, CellO, CellO, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	S: {
		{0, CellS, CellS, 0},
		{CellS, CellS, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	Z: {
		{CellZ, CellZ, 0, 0},
		{0, CellZ, CellZ, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	J: {
		{CellJ, 0, 0, 0},
		{CellJ, CellJ, CellJ, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	L: {
		{0, 0, CellL, 0},
		{CellL, CellL, CellL, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	T: {
		{0, CellT, 0, 0},
		{CellT, CellT, CellT, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

// shapeTable caches ShapeOf for every (kind, rotation).
var shapeTable [KindCount][4]Shape

func init() {
	for _, k := range Kinds {
		for r := Rot0; r <= RotL; r++ {
			shapeTable[k][r] = ShapeOf(k, r)
		}
	}
}

// rotationBox returns the side of the square the kind rotates within.
// O does not rotate at all.
func rotationBox(k Kind) int {
	switch k {
	case I:
		return 4
	case O:
		return 0
	default:
		return 3
	}
}

// ShapeOf computes the mask of kind k in state r by turning the spawn mask
// clockwise once per quarter-turn inside the kind's rotation box.
func ShapeOf(k Kind, r Rotation) Shape {
	shape := spawnShapes[k]
	size := rotationBox(k)
	for range int(r) {
		shape = rotateClockwise(shape, size)
	}
	return shape
}

// rotateClockwise turns the top-left size x size block of s by 90 degrees.
func rotateClockwise(s Shape, size int) Shape {
	if size == 0 {
		return s
	}
	var out Shape
	for y := range size {
		for x := range size {
			out[y][x] = s[size-1-x][y]
		}
	}
	return out
}

// Offset is a signed position delta.
type Offset struct {
	DX, DY int
}

// Kicks is a priority-ordered wall kick candidate list. The first entry is
// always the unshifted rotation.
type Kicks [5]Offset

// Direction is the sense of a rotation.
type Direction uint8

const (
	Clockwise Direction = iota
	CounterClockwise
)

// SRS offsets converted to a y-down grid, indexed by the state rotated from.
var (
	jlstzClockwise = [4]Kicks{
		Rot0: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		RotR: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		Rot2: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		RotL: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	}
	jlstzCounterClockwise = [4]Kicks{
		Rot0: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		RotR: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		Rot2: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		RotL: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	}
	iClockwise = [4]Kicks{
		Rot0: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		RotR: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		Rot2: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		RotL: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	}
	iCounterClockwise = [4]Kicks{
		Rot0: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		RotR: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		Rot2: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		RotL: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	}
	// O never needs to move when it turns.
	noKicks = Kicks{}
)

// WallKickOffsets returns the kick candidates for rotating kind k out of
// state from in direction dir.
func WallKickOffsets(k Kind, from Rotation, dir Direction) Kicks {
	switch k {
	case O:
		return noKicks
	case I:
		if dir == Clockwise {
			return iClockwise[from]
		}
		return iCounterClockwise[from]
	default:
		if dir == Clockwise {
			return jlstzClockwise[from]
		}
		return jlstzCounterClockwise[from]
	}
}
