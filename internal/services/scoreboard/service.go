package scoreboard

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mcoot/amoba/internal/dependencies/clock"
	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/storage"
)

// Service records finished games in the score log and tallies it
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ScoreboardService
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger.With(slog.String("component", "scoreboard")),
	}
}

// EntryName returns the score log name for a result: the player's name when
// the human won, AI when the other side won, DRAW when nobody did
func EntryName(playerName string, human, winner model.Player, won bool) string {
	switch {
	case !won:
		return model.ScoreNameDraw
	case winner == human:
		return playerName
	default:
		return model.ScoreNameAI
	}
}

// Record appends one point for the result. The append is best-effort: a
// failure is logged and returned, and callers may ignore it.
func (s *Service) Record(ctx context.Context, playerName string, human, winner model.Player, won bool) (model.Score, error) {
	score := model.Score{
		Name:       EntryName(playerName, human, winner, won),
		Points:     1,
		RecordedAt: s.clock.Now(),
	}

	if err := s.storage.AppendScore(ctx, score); err != nil {
		s.logger.Error("failed to record score",
			slog.String("name", score.Name),
			slog.String("error", err.Error()),
		)
		return score, err
	}

	s.logger.Info("score recorded", slog.String("name", score.Name))
	return score, nil
}

// Totals sums the score log per name, highest first, ties broken by name
func (s *Service) Totals(ctx context.Context) ([]model.ScoreTotal, error) {
	scores, err := s.storage.Scores(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*model.ScoreTotal)
	for _, score := range scores {
		total, ok := byName[score.Name]
		if !ok {
			total = &model.ScoreTotal{Name: score.Name}
			byName[score.Name] = total
		}
		total.Points += score.Points
		total.Games++
	}

	totals := make([]model.ScoreTotal, 0, len(byName))
	for _, total := range byName {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Points != totals[j].Points {
			return totals[i].Points > totals[j].Points
		}
		return totals[i].Name < totals[j].Name
	})

	return totals, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Record(ctx context.Context, playerName string, human, winner model.Player, won bool) (model.Score, error)
	Totals(ctx context.Context) ([]model.ScoreTotal, error)
}

var _ ServiceInterface = (*Service)(nil)
