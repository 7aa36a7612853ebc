package battle

import "math/rand/v2"

// MoveChooser picks the move a combatant uses this round. Implementations
// are called with a non-empty slice.
type MoveChooser interface {
	ChooseMove(available []Move) Move
}

// RandomChooser picks uniformly at random.
type RandomChooser struct {
	rng *rand.Rand
}

func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *RandomChooser) ChooseMove(available []Move) Move {
	return available[c.rng.IntN(len(available))]
}

// FirstMoveChooser always picks the first move.
type FirstMoveChooser struct{}

func (FirstMoveChooser) ChooseMove(available []Move) Move {
	return available[0]
}

// CycleChooser walks the move list in order, wrapping around.
type CycleChooser struct {
	next int
}

func (c *CycleChooser) ChooseMove(available []Move) Move {
	m := available[c.next%len(available)]
	c.next++
	return m
}

// ChooserFunc adapts a plain function to MoveChooser.
type ChooserFunc func(available []Move) Move

func (f ChooserFunc) ChooseMove(available []Move) Move {
	return f(available)
}
