package bot

import (
	"github.com/mcoot/amoba/internal/dependencies/random"
	"github.com/mcoot/amoba/internal/model"
)

// RandomStrategy picks uniformly among the currently valid moves
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePosition recomputes the valid moves on every call, since legality
// depends on the current board.
func (s *RandomStrategy) ChoosePosition(board *model.Board) (model.Position, bool) {
	valid := board.ValidMoves()
	if len(valid) == 0 {
		return model.Position{}, false
	}
	return valid[s.random.Intn(len(valid))], true
}

var _ Strategy = (*RandomStrategy)(nil)
