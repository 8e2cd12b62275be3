package tetris

import (
	"errors"
	"slices"
)

// NextQueueMin is the smallest number of upcoming pieces kept in the queue.
const NextQueueMin = 3

// ScoreTable maps the number of lines cleared by one lock to points.
var ScoreTable = [5]int{0, 1, 5, 25, 100}

// ErrGameOver is returned when a new piece cannot appear at the spawn point.
var ErrGameOver = errors.New("tetris: game over")

// Game is the complete state of one session: the field, the falling piece,
// the hold slot, the upcoming queue and the score.
//
// Illegal moves and rotations are silently ignored. The only failure is
// ErrGameOver from SpawnNext and Lock.
type Game struct {
	field Field
	pos   Position
	piece Piece

	hold    Piece
	hasHold bool
	held    bool // hold already used since the last lock

	queue []Piece
	bag   Bag

	score  int
	lines  int
	pieces int
}

// NewGame creates a game with an empty well and the first piece of a freshly
// shuffled bag already falling.
func NewGame(seed int64) *Game {
	g := &Game{
		field: NewField(),
		bag:   NewBag(seed),
	}
	g.refill()
	//nolint:errcheck // Spawning into an empty well always succeeds
	g.SpawnNext()
	return g
}

// NewPreset creates a game on the given field whose first pieces are kinds,
// in order, followed by regular bags. It fails with ErrGameOver if the first
// piece cannot spawn.
func NewPreset(seed int64, field Field, kinds ...Kind) (*Game, error) {
	g := &Game{
		field: field,
		bag:   NewBag(seed),
	}
	for _, k := range kinds {
		g.queue = append(g.queue, Piece{Kind: k})
	}
	g.refill()
	if err := g.SpawnNext(); err != nil {
		return g, err
	}
	return g, nil
}

// Clone returns a deep copy that shares nothing with g, including the
// randomizer state.
func (g *Game) Clone() *Game {
	c := *g
	c.queue = slices.Clone(g.queue)
	return &c
}

// refill appends one bag to the queue.
func (g *Game) refill() {
	bag := g.bag.Draw()
	g.queue = append(g.queue, bag[:]...)
}

// SpawnNext puts the next queued piece at the spawn position, topping the
// queue up with a new bag when it runs low.
func (g *Game) SpawnNext() error {
	g.pos = SpawnPosition
	g.piece = g.queue[0]
	g.queue = g.queue[1:]
	if len(g.queue) < NextQueueMin {
		g.refill()
	}
	if g.field.IsCollision(g.pos, g.piece.Shape()) {
		return ErrGameOver
	}
	return nil
}

// MoveTo moves the falling piece to pos if it fits there.
func (g *Game) MoveTo(pos Position) {
	if !g.field.IsCollision(pos, g.piece.Shape()) {
		g.pos = pos
	}
}

// Move shifts the falling piece by (dx, dy) if it fits.
func (g *Game) Move(dx, dy int) {
	g.MoveTo(g.pos.Offset(dx, dy))
}

// StepDown moves the falling piece one row down and reports whether it moved.
func (g *Game) StepDown() bool {
	before := g.pos
	g.Move(0, 1)
	return g.pos != before
}

// RotateRight turns the falling piece clockwise, trying each wall kick in
// order. Nothing changes if every kick collides.
func (g *Game) RotateRight() {
	g.rotate(g.piece.RotatedRight(), WallKickOffsets(g.piece.Kind, g.piece.Rotation, Clockwise))
}

// RotateLeft turns the falling piece counter-clockwise.
func (g *Game) RotateLeft() {
	g.rotate(g.piece.RotatedLeft(), WallKickOffsets(g.piece.Kind, g.piece.Rotation, CounterClockwise))
}

func (g *Game) rotate(rotated Piece, kicks Kicks) {
	shape := rotated.Shape()
	for _, k := range kicks {
		pos := g.pos.Offset(k.DX, k.DY)
		if g.field.IsCollision(pos, shape) {
			continue
		}
		g.pos = pos
		g.piece = rotated
		return
	}
}

// HardDrop moves the falling piece straight down as far as it goes. It does
// not lock.
func (g *Game) HardDrop() {
	g.pos = g.field.HardDropPosition(g.pos, g.piece.Shape())
}

// Hold swaps the falling piece with the hold slot, once per lock. With an
// empty slot the next queued piece spawns. A swapped-in piece is placed at
// the spawn position without a collision check.
func (g *Game) Hold() {
	if g.held {
		return
	}
	if g.hasHold {
		g.hold, g.piece = g.piece, g.hold
		g.pos = SpawnPosition
	} else {
		g.hold = g.piece
		g.hasHold = true
		//nolint:errcheck // A blocked spawn surfaces on the next Lock
		g.SpawnNext()
	}
	g.held = true
}

// Fix writes the falling piece into the field without clearing lines,
// scoring or spawning.
func (g *Game) Fix() {
	g.field.Lock(g.pos, g.piece.Shape())
}

// Lock fixes the falling piece, clears full lines, adds their score and
// spawns the next piece. It returns ErrGameOver if that piece is blocked.
func (g *Game) Lock() error {
	g.Fix()
	cleared := g.field.ClearFullLines()
	g.score += ScoreTable[cleared]
	g.lines += cleared
	g.pieces++
	if err := g.SpawnNext(); err != nil {
		return err
	}
	g.held = false
	return nil
}

// Field returns a copy of the locked cells.
func (g *Game) Field() Field {
	return g.field
}

// Position returns the falling piece's position.
func (g *Game) Position() Position {
	return g.pos
}

// Piece returns the falling piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// GhostPosition returns where the falling piece would land.
func (g *Game) GhostPosition() Position {
	return g.field.HardDropPosition(g.pos, g.piece.Shape())
}

// Held returns the piece in the hold slot, if any.
func (g *Game) Held() (Piece, bool) {
	return g.hold, g.hasHold
}

// HeldThisTurn reports whether hold was used since the last lock.
func (g *Game) HeldThisTurn() bool {
	return g.held
}

// Next returns up to n upcoming pieces, front first.
func (g *Game) Next(n int) []Piece {
	n = min(n, len(g.queue))
	return slices.Clone(g.queue[:n])
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the total number of lines cleared.
func (g *Game) Lines() int {
	return g.lines
}

// Pieces returns how many pieces have been locked.
func (g *Game) Pieces() int {
	return g.pieces
}
