package bot

import "github.com/mcoot/amoba/internal/model"

// Strategy defines how the automated player chooses its move
type Strategy interface {
	// ChoosePosition selects a legal move on the board, or false if none exists
	ChoosePosition(board *model.Board) (model.Position, bool)
}
