package memory

import (
	"context"
	"sync"

	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. Boards are
// kept as their text form so later moves on a saved board do not leak in.
type Storage struct {
	mu sync.RWMutex

	boardLines []string
	scores     []model.Score
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

func (s *Storage) SaveBoard(ctx context.Context, board *model.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boardLines = board.Lines()
	return nil
}

func (s *Storage) LoadBoard(ctx context.Context) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.boardLines == nil {
		return nil, model.ErrBoardNotFound
	}
	return storage.BoardFromLines(s.boardLines)
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, score model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, score)
	return nil
}

func (s *Storage) Scores(ctx context.Context) ([]model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Score, len(s.scores))
	copy(result, s.scores)
	return result, nil
}

func (s *Storage) Close() error {
	return nil
}
