// Package sqlite provides a SQLite-backed storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS boards (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	grid       TEXT    NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS scores (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT    NOT NULL,
	points      INTEGER NOT NULL,
	recorded_at INTEGER NOT NULL
);`

// Store persists the board and score log in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Ensure Store implements the interface
var _ storage.Storage = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and creates the tables if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveBoard replaces the single saved board row.
func (s *Store) SaveBoard(ctx context.Context, board *model.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO boards (id, grid, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET grid = excluded.grid, updated_at = excluded.updated_at`,
		strings.Join(board.Lines(), "\n"),
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// LoadBoard reads the saved board row.
func (s *Store) LoadBoard(ctx context.Context) (*model.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var grid string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT grid FROM boards WHERE id = 1`).Scan(&grid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrBoardNotFound
		}
		return nil, fmt.Errorf("load board: %w", err)
	}
	if grid == "" {
		return nil, model.ErrInvalidBoardText
	}
	return storage.BoardFromLines(strings.Split(grid, "\n"))
}

// AppendScore inserts one score log entry.
func (s *Store) AppendScore(ctx context.Context, score model.Score) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := strings.TrimSpace(score.Name)
	if name == "" {
		return fmt.Errorf("score name is required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO scores (name, points, recorded_at) VALUES (?, ?, ?)`,
		name,
		score.Points,
		toMillis(score.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return nil
}

// Scores lists the score log in insertion order.
func (s *Store) Scores(ctx context.Context) ([]model.Score, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name, points, recorded_at FROM scores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var scores []model.Score
	for rows.Next() {
		var (
			score      model.Score
			recordedAt int64
		)
		if err := rows.Scan(&score.Name, &score.Points, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		score.RecordedAt = fromMillis(recordedAt)
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return scores, nil
}
