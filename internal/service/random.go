package service

import (
	"lukechampine.com/frand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Random is the entropy source for the random and blended policies.
// *math/rand.Rand satisfies it, which keeps seeded tests deterministic.
type Random interface {
	Intn(n int) int
	Float64() float64
}

type entropy struct{}

// NewEntropy returns a Random backed by frand's pooled generators. It is safe for concurrent use.
func NewEntropy() Random {
	return entropy{}
}

func (entropy) Intn(n int) int {
	return frand.Intn(n)
}

func (entropy) Float64() float64 {
	return frand.Float64()
}

// RandomMove picks an empty cell uniformly at random, or entity.NoMove on a full board.
func RandomMove(board entity.Board, rnd Random) entity.Move {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.NoMove
	}

	return entity.Move(availableCells[rnd.Intn(len(availableCells))])
}
