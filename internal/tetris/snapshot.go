package tetris

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the Game it was taken from.
type Snapshot struct {
	Field        Field
	Piece        Piece
	Position     Position
	Ghost        Position
	Hold         Piece
	HasHold      bool
	HeldThisTurn bool
	Next         []Piece
	Score        int
	Lines        int
	Pieces       int
}

// Snapshot captures the game with up to next upcoming pieces.
func (g *Game) Snapshot(next int) Snapshot {
	return Snapshot{
		Field:        g.field,
		Piece:        g.piece,
		Position:     g.pos,
		Ghost:        g.GhostPosition(),
		Hold:         g.hold,
		HasHold:      g.hasHold,
		HeldThisTurn: g.held,
		Next:         g.Next(next),
		Score:        g.score,
		Lines:        g.lines,
		Pieces:       g.pieces,
	}
}

// Board returns the field with the falling piece drawn in, and its landing
// projection as Ghost cells when ghost is set.
func (s Snapshot) Board(ghost bool) Field {
	board := s.Field
	shape := s.Piece.Shape()
	if ghost {
		for y := range 4 {
			for x := range 4 {
				if shape[y][x].Occupied() {
					board.Set(s.Ghost.X+x, s.Ghost.Y+y, Ghost)
				}
			}
		}
	}
	board.Lock(s.Position, shape)
	return board
}
