package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/amoba/internal/dependencies/clock"
	"github.com/mcoot/amoba/internal/dependencies/random"
	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/services/board"
	"github.com/mcoot/amoba/internal/services/bot"
	"github.com/mcoot/amoba/internal/services/game"
	"github.com/mcoot/amoba/internal/services/scoreboard"
	"github.com/mcoot/amoba/internal/storage"
	filestorage "github.com/mcoot/amoba/internal/storage/file"
	"github.com/mcoot/amoba/internal/storage/memory"
	redisstorage "github.com/mcoot/amoba/internal/storage/redis"
	"github.com/mcoot/amoba/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Strategy          bot.Strategy
	BoardService      *board.Service
	ScoreboardService *scoreboard.Service

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory", "redis" or "sqlite")
	// If empty, defaults to "file"
	StorageType string
	// FileConfig holds the board and score file paths (used if StorageType is "file")
	// If zero value, defaults to file.DefaultConfig()
	FileConfig filestorage.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		fileCfg := cfg.FileConfig
		if fileCfg == (filestorage.Config{}) {
			fileCfg = filestorage.DefaultConfig()
		}
		return filestorage.New(fileCfg), nil
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be one of file, memory, redis, sqlite", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Strategy:          bot.NewRandomStrategy(rnd),
		BoardService:      board.New(store, logger),
		ScoreboardService: scoreboard.New(store, clk, logger),
		Logger:            logger,
	}
}

// NewGame starts a human-vs-automated game on the given board
func (a *App) NewGame(b *model.Board) *game.Game {
	return game.New(b, model.PlayerX, model.PlayerO, a.Strategy, a.Logger)
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
