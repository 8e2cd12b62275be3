package tetris

import "math/rand/v2"

// Bag is the 7-bag randomizer: each draw is one shuffled copy of all seven
// kinds. The PCG state is held by value, so copying a Bag forks an
// independent generator that will replay the same sequence.
type Bag struct {
	src rand.PCG
}

// NewBag seeds a bag.
func NewBag(seed int64) Bag {
	return Bag{src: *rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)}
}

// Draw returns the next bag of seven pieces in spawn orientation.
func (b *Bag) Draw() [KindCount]Piece {
	kinds := Kinds
	rng := rand.New(&b.src)
	rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	var pieces [KindCount]Piece
	for i, k := range kinds {
		pieces[i] = Piece{Kind: k}
	}
	return pieces
}
