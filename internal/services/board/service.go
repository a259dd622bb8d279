package board

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/storage"
)

// Service saves and loads the board on a best-effort basis: failures are
// logged and reported to the caller but never touch the board in play.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new BoardService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "board-service")),
	}
}

// NewBoard creates a board with the seed move at the center
func (s *Service) NewBoard(rows, cols int) (*model.Board, error) {
	b, err := model.NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	b.PlaceInitialCenter()
	return b, nil
}

// Save persists the board, logging any failure
func (s *Service) Save(ctx context.Context, board *model.Board) error {
	if err := s.storage.SaveBoard(ctx, board); err != nil {
		s.logger.Error("failed to save board", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("board saved",
		slog.Int("rows", board.Rows()),
		slog.Int("cols", board.Cols()),
	)
	return nil
}

// Load returns the saved board, or false when none is available. A missing
// board is expected and not logged as a failure.
func (s *Service) Load(ctx context.Context) (*model.Board, bool) {
	b, err := s.storage.LoadBoard(ctx)
	if err != nil {
		if errors.Is(err, model.ErrBoardNotFound) {
			s.logger.Debug("no saved board")
		} else {
			s.logger.Warn("failed to load board", slog.String("error", err.Error()))
		}
		return nil, false
	}
	s.logger.Info("board loaded",
		slog.Int("rows", b.Rows()),
		slog.Int("cols", b.Cols()),
	)
	return b, true
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBoard(rows, cols int) (*model.Board, error)
	Save(ctx context.Context, board *model.Board) error
	Load(ctx context.Context) (*model.Board, bool)
}

var _ ServiceInterface = (*Service)(nil)
