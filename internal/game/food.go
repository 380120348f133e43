package game

import (
	"math/rand"

	"github.com/kvols/termsnake/internal/core"
)

// Food owns a single grid position.
type Food struct {
	pos core.Point
}

// NewFood creates food at a random position on the board.
func NewFood(rng *rand.Rand, board core.Rect) *Food {
	f := &Food{}
	f.Respawn(rng, board)
	return f
}

// Respawn draws a new position uniformly over the whole board, x and y
// independently. Cells occupied by the snake are not excluded; food that
// lands under the body is simply eaten when the head next passes over it.
func (f *Food) Respawn(rng *rand.Rand, board core.Rect) {
	f.pos = core.Point{
		X: board.X + rng.Intn(board.W),
		Y: board.Y + rng.Intn(board.H),
	}
}

// Position returns the current food position.
func (f *Food) Position() core.Point {
	return f.pos
}
