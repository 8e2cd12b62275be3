package tetris

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustPreset(t *testing.T, field Field, kinds ...Kind) *Game {
	t.Helper()
	g, err := NewPreset(1, field, kinds...)
	if err != nil {
		t.Fatalf("NewPreset: %v", err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := NewGame(7)

	if g.Position() != SpawnPosition {
		t.Errorf("Position() = %v, expected %v", g.Position(), SpawnPosition)
	}
	if g.Piece().Rotation != Rot0 {
		t.Errorf("first piece rotation = %v, expected 0", g.Piece().Rotation)
	}
	if n := len(g.Next(NextQueueMin)); n != NextQueueMin {
		t.Errorf("Next(%d) returned %d pieces", NextQueueMin, n)
	}
	if g.Score() != 0 || g.Lines() != 0 || g.Pieces() != 0 {
		t.Error("new game should start with zero score, lines and pieces")
	}
	if _, ok := g.Held(); ok {
		t.Error("new game should have an empty hold slot")
	}
}

func TestBagSequence(t *testing.T) {
	g := NewGame(99)

	var seen []Kind
	seen = append(seen, g.Piece().Kind)
	for range 27 {
		if err := g.SpawnNext(); err != nil {
			t.Fatalf("SpawnNext: %v", err)
		}
		seen = append(seen, g.Piece().Kind)
	}

	for start := 0; start < len(seen); start += KindCount {
		var count [KindCount]int
		for _, k := range seen[start : start+KindCount] {
			count[k]++
		}
		for k, n := range count {
			if n != 1 {
				t.Errorf("bag at %d has %d of %v, expected 1", start, n, Kind(k))
			}
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewGame(5), NewGame(5)
	for range 20 {
		if a.Piece() != b.Piece() {
			t.Fatalf("pieces diverged: %v vs %v", a.Piece(), b.Piece())
		}
		a.SpawnNext() //nolint:errcheck
		b.SpawnNext() //nolint:errcheck
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	g := mustPreset(t, NewField(), T)

	for range 10 {
		g.Move(-1, 0)
	}
	if g.Position().X != 2 {
		t.Errorf("leftmost X = %d, expected 2", g.Position().X)
	}

	for range 10 {
		g.Move(1, 0)
	}
	if g.Position().X != 9 {
		t.Errorf("rightmost X = %d, expected 9", g.Position().X)
	}
}

func TestStepDown(t *testing.T) {
	g := mustPreset(t, NewField(), T)

	steps := 0
	for g.StepDown() {
		steps++
	}
	if steps != 18 {
		t.Errorf("StepDown moved %d rows, expected 18", steps)
	}
	if g.Position() != (Position{X: 5, Y: 19}) {
		t.Errorf("Position() = %v, expected {5 19}", g.Position())
	}
}

func TestHardDrop(t *testing.T) {
	g := mustPreset(t, NewField(), T)

	ghost := g.GhostPosition()
	g.HardDrop()
	if g.Position() != (Position{X: 5, Y: 19}) {
		t.Errorf("HardDrop position = %v, expected {5 19}", g.Position())
	}
	if ghost != g.Position() {
		t.Errorf("GhostPosition() = %v, expected the hard drop position %v", ghost, g.Position())
	}
	field := g.Field()
	if field.Occupied() != 0 {
		t.Error("HardDrop should not lock")
	}
}

func TestRotationClosure(t *testing.T) {
	for _, k := range Kinds {
		g := mustPreset(t, NewField(), k)
		start, pos := g.Piece(), g.Position()

		for range 4 {
			g.RotateRight()
			if g.Position() != pos {
				t.Errorf("%v rotated with a kick on an empty field", k)
			}
		}
		if g.Piece() != start || g.Position() != pos {
			t.Errorf("%v after four rotations = %v at %v, expected %v at %v",
				k, g.Piece(), g.Position(), start, pos)
		}

		for range 4 {
			g.RotateLeft()
		}
		if g.Piece() != start || g.Position() != pos {
			t.Errorf("%v after four left rotations = %v at %v", k, g.Piece(), g.Position())
		}
	}
}

func TestRotateWallKick(t *testing.T) {
	g := mustPreset(t, NewField(), I)

	g.RotateRight()
	g.MoveTo(Position{X: 0, Y: 5})
	if g.Position() != (Position{X: 0, Y: 5}) || g.Piece().Rotation != RotR {
		t.Fatalf("setup: got %v at %v", g.Piece(), g.Position())
	}

	// Flat I would overlap the left wall; the third kick shifts it right
	g.RotateRight()
	if g.Piece().Rotation != Rot2 {
		t.Errorf("rotation = %v, expected 2", g.Piece().Rotation)
	}
	if g.Position() != (Position{X: 2, Y: 5}) {
		t.Errorf("Position() = %v, expected {2 5}", g.Position())
	}
}

func TestRotateBlocked(t *testing.T) {
	f := NewField()
	tShape := Piece{Kind: T}.Shape()
	for y := InteriorTop; y < FloorRow; y++ {
		for x := InteriorLeft; x < InteriorRight; x++ {
			dx, dy := x-SpawnPosition.X, y-SpawnPosition.Y
			if dx >= 0 && dx < 4 && dy >= 0 && dy < 4 && tShape[dy][dx].Occupied() {
				continue
			}
			f.Set(x, y, Wall)
		}
	}

	g := mustPreset(t, f, T)
	before := g.Snapshot(3)
	g.RotateRight()
	g.RotateLeft()
	if diff := cmp.Diff(before, g.Snapshot(3)); diff != "" {
		t.Errorf("blocked rotation changed the game (-want +got):\n%s", diff)
	}
}

func TestLockClearsLine(t *testing.T) {
	f := mustParse(t, "JJJJ.JJJJJ")
	g := mustPreset(t, f, I)

	g.RotateRight()
	g.MoveTo(Position{X: 4, Y: 1})
	g.HardDrop()
	if g.Position() != (Position{X: 4, Y: 17}) {
		t.Fatalf("drop position = %v, expected {4 17}", g.Position())
	}

	field := g.Field()
	before := field.Occupied()
	if err := g.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}

	field = g.Field()
	if got, expected := field.Occupied(), before+4-Columns; got != expected {
		t.Errorf("Occupied() = %d, expected %d", got, expected)
	}
	if g.Score() != 1 || g.Lines() != 1 || g.Pieces() != 1 {
		t.Errorf("score/lines/pieces = %d/%d/%d, expected 1/1/1", g.Score(), g.Lines(), g.Pieces())
	}

	expected := mustParse(t, "....I.....", "....I.....", "....I.....")
	if diff := cmp.Diff(expected, field); diff != "" {
		t.Errorf("field mismatch (-want +got):\n%s", diff)
	}
	if g.Position() != SpawnPosition {
		t.Errorf("next piece at %v, expected spawn", g.Position())
	}
}

func TestLockConservesCells(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGame(seed)
		for i := range 200 {
			g.Move(i%9-4, 0)
			if i%3 == 0 {
				g.RotateRight()
			}
			g.HardDrop()

			before, lines := pieceCells(g.Field()), g.Lines()
			err := g.Lock()

			cleared := g.Lines() - lines
			if got, expected := pieceCells(g.Field()), before+4-cleared*Columns; got != expected {
				t.Fatalf("seed %d lock %d: %d piece cells, expected %d", seed, i, got, expected)
			}
			if errors.Is(err, ErrGameOver) {
				break
			}
		}
	}
}

// pieceCells counts locked piece cells anywhere in f, ceiling row included.
func pieceCells(f Field) int {
	n := 0
	for _, row := range f {
		for _, c := range row {
			if c >= CellI {
				n++
			}
		}
	}
	return n
}

func TestLockScoreTable(t *testing.T) {
	for n := 0; n <= 4; n++ {
		rows := make([]string, 4)
		for i := range rows {
			if i < 4-n {
				rows[i] = "J........."
			} else {
				rows[i] = "JJJJ.JJJJJ"
			}
		}

		g := mustPreset(t, mustParse(t, rows...), I)
		g.RotateRight()
		g.MoveTo(Position{X: 4, Y: 1})
		g.HardDrop()
		if err := g.Lock(); err != nil {
			t.Fatalf("Lock: %v", err)
		}

		if g.Score() != ScoreTable[n] {
			t.Errorf("%d lines scored %d, expected %d", n, g.Score(), ScoreTable[n])
		}
		if g.Lines() != n {
			t.Errorf("Lines() = %d, expected %d", g.Lines(), n)
		}
	}
}

func TestLockGameOver(t *testing.T) {
	g := mustPreset(t, NewField(), I, T)

	// Locking in place fills row 2 under the spawn box
	err := g.Lock()
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("Lock() = %v, expected ErrGameOver", err)
	}
}

func TestPresetGameOver(t *testing.T) {
	f := NewField()
	for x := 5; x <= 8; x++ {
		f.Set(x, 1, Wall)
		f.Set(x, 2, Wall)
	}
	for _, k := range Kinds {
		if _, err := NewPreset(1, f, k); !errors.Is(err, ErrGameOver) {
			t.Errorf("%v: NewPreset() = %v, expected ErrGameOver", k, err)
		}
	}
}

func TestHoldTwiceIsNoop(t *testing.T) {
	g := mustPreset(t, NewField(), T, I, O)

	g.Hold()
	held, ok := g.Held()
	if !ok || held.Kind != T {
		t.Fatalf("Held() = %v, %v, expected T", held, ok)
	}
	if g.Piece().Kind != I || !g.HeldThisTurn() {
		t.Fatalf("after hold: piece %v, held %v", g.Piece(), g.HeldThisTurn())
	}

	before := g.Snapshot(5)
	g.Hold()
	if diff := cmp.Diff(before, g.Snapshot(5)); diff != "" {
		t.Errorf("second hold changed the game (-want +got):\n%s", diff)
	}
}

func TestHoldSwapAfterLock(t *testing.T) {
	g := mustPreset(t, NewField(), T, I, O)

	g.RotateRight()
	g.Hold() // T/R into the slot, I falls
	g.HardDrop()
	if err := g.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if g.HeldThisTurn() {
		t.Error("Lock should re-enable hold")
	}

	g.Move(-2, 3)
	g.Hold()
	if g.Piece() != (Piece{Kind: T, Rotation: RotR}) {
		t.Errorf("swapped in %v, expected T/R with its rotation kept", g.Piece())
	}
	if g.Position() != SpawnPosition {
		t.Errorf("swapped piece at %v, expected spawn", g.Position())
	}
	if held, _ := g.Held(); held.Kind != O {
		t.Errorf("Held() = %v, expected O", held)
	}
}

func TestHoldSwapSkipsSpawnCheck(t *testing.T) {
	g := mustPreset(t, NewField(), T, I, I)

	g.Hold()      // T held, first I falls
	g.Move(0, -1) // I body now sits in row 1
	if err := g.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}

	// The second I spawns in row 2, clear of the locked row
	g.Hold()
	if g.Piece().Kind != T || g.Position() != SpawnPosition {
		t.Fatalf("after swap: %v at %v", g.Piece(), g.Position())
	}
	field := g.Field()
	if !field.IsCollision(g.Position(), g.Piece().Shape()) {
		t.Error("swapped piece should overlap the locked row unchecked")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame(11)
	before := g.Snapshot(NextQueueMin)

	c := g.Clone()
	c.Hold()
	c.RotateRight()
	c.HardDrop()
	c.Lock() //nolint:errcheck

	if diff := cmp.Diff(before, g.Snapshot(NextQueueMin)); diff != "" {
		t.Errorf("original changed by clone (-want +got):\n%s", diff)
	}

	// Both copies carry the same randomizer state
	a, b := g.Clone(), g.Clone()
	for range 15 {
		a.SpawnNext() //nolint:errcheck
		b.SpawnNext() //nolint:errcheck
		if a.Piece() != b.Piece() {
			t.Fatalf("clones diverged: %v vs %v", a.Piece(), b.Piece())
		}
	}
}
