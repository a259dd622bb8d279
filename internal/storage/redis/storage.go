package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

// SaveBoard stores the board's text form, one row per line
func (s *Storage) SaveBoard(ctx context.Context, board *model.Board) error {
	data := strings.Join(board.Lines(), "\n")
	return s.client.Set(ctx, boardKey(), data, s.cfg.BoardTTL).Err()
}

func (s *Storage) LoadBoard(ctx context.Context) (*model.Board, error) {
	data, err := s.client.Get(ctx, boardKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBoardNotFound
		}
		return nil, err
	}
	if data == "" {
		return nil, model.ErrInvalidBoardText
	}
	return storage.BoardFromLines(strings.Split(data, "\n"))
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, score model.Score) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, scoresKey(), data).Err()
}

func (s *Storage) Scores(ctx context.Context) ([]model.Score, error) {
	entries, err := s.client.LRange(ctx, scoresKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]model.Score, 0, len(entries))
	for _, entry := range entries {
		var score model.Score
		if err := json.Unmarshal([]byte(entry), &score); err != nil {
			return nil, fmt.Errorf("decode score: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, nil
}
