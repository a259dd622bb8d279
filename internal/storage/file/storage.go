// Package file stores the board and score log as plain text files.
//
// Board file: one line per row, one character per cell ('.', 'x', 'o').
// Score file: one "<name>:<points>" line per finished game, append-only.
package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/storage"
)

const lineSeparator = "\n"

// Config holds the file locations
type Config struct {
	BoardPath string
	ScorePath string
}

// DefaultConfig returns the file names used in the working directory
func DefaultConfig() Config {
	return Config{
		BoardPath: "board.txt",
		ScorePath: "scores.txt",
	}
}

// Storage is a text-file implementation of the storage interface
type Storage struct {
	cfg Config
}

// New creates a new file storage instance
func New(cfg Config) *Storage {
	return &Storage{cfg: cfg}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

// SaveBoard writes exactly rows lines of cols characters, replacing the file
func (s *Storage) SaveBoard(ctx context.Context, board *model.Board) error {
	var sb strings.Builder
	for _, line := range board.Lines() {
		sb.WriteString(line)
		sb.WriteString(lineSeparator)
	}
	if err := os.WriteFile(s.cfg.BoardPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	return nil
}

// LoadBoard reads the board file. Lines are not required to share the first
// line's length; short lines load as empty cells.
func (s *Storage) LoadBoard(ctx context.Context) (*model.Board, error) {
	data, err := os.ReadFile(s.cfg.BoardPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrBoardNotFound
		}
		return nil, fmt.Errorf("read board file: %w", err)
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", model.ErrInvalidBoardText, s.cfg.BoardPath)
	}
	return storage.BoardFromLines(lines)
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, score model.Score) error {
	f, err := os.OpenFile(s.cfg.ScorePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open score file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatScore(score) + lineSeparator); err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return f.Close()
}

// Scores reads the log, skipping lines that do not parse. A missing file is
// an empty log.
func (s *Storage) Scores(ctx context.Context) ([]model.Score, error) {
	f, err := os.Open(s.cfg.ScorePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open score file: %w", err)
	}
	defer f.Close()

	var scores []model.Score
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if score, ok := ParseScore(scanner.Text()); ok {
			scores = append(scores, score)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read score file: %w", err)
	}
	return scores, nil
}

func (s *Storage) Close() error {
	return nil
}

// FormatScore renders a score log line
func FormatScore(score model.Score) string {
	return score.Name + ":" + strconv.Itoa(score.Points)
}

// ParseScore parses a score log line. Names may contain ':', so the points
// follow the last one.
func ParseScore(line string) (model.Score, bool) {
	line = strings.TrimRight(line, "\r")
	idx := strings.LastIndex(line, ":")
	if idx <= 0 {
		return model.Score{}, false
	}
	points, err := strconv.Atoi(line[idx+1:])
	if err != nil {
		return model.Score{}, false
	}
	return model.Score{Name: line[:idx], Points: points}, true
}

// splitLines splits on '\n', tolerating "\r\n" and a missing final terminator
func splitLines(data string) []string {
	data = strings.TrimSuffix(data, lineSeparator)
	if data == "" {
		return nil
	}
	lines := strings.Split(data, lineSeparator)
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
