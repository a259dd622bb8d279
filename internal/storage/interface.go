package storage

import (
	"context"

	"github.com/mcoot/amoba/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Board operations. There is a single saved board slot; saving replaces it.
	SaveBoard(ctx context.Context, board *model.Board) error
	// LoadBoard returns model.ErrBoardNotFound when nothing has been saved
	LoadBoard(ctx context.Context) (*model.Board, error)

	// Score log operations. The log is append-only.
	AppendScore(ctx context.Context, score model.Score) error
	// Scores returns the log oldest first
	Scores(ctx context.Context) ([]model.Score, error)

	Close() error
}

// BoardFromLines rebuilds a board from persisted lines, inferring rows from
// the line count and cols from the first line.
func BoardFromLines(lines []string) (*model.Board, error) {
	if len(lines) == 0 {
		return nil, model.ErrInvalidBoardText
	}
	return model.FromText(len(lines), len([]rune(lines[0])), lines)
}
