package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/amoba/internal/factory"
	filestorage "github.com/mcoot/amoba/internal/storage/file"
	redisstorage "github.com/mcoot/amoba/internal/storage/redis"
)

// Config holds CLI configuration. Environment variables provide the
// defaults; flags override them.
type Config struct {
	Rows       int    `env:"AMOBA_ROWS" envDefault:"10"`
	Cols       int    `env:"AMOBA_COLS" envDefault:"10"`
	PlayerName string `env:"AMOBA_PLAYER"`

	StorageType string `env:"AMOBA_STORAGE" envDefault:"file"`
	BoardFile   string `env:"AMOBA_BOARD_FILE" envDefault:"board.txt"`
	ScoreFile   string `env:"AMOBA_SCORE_FILE" envDefault:"scores.txt"`
	RedisURL    string `env:"AMOBA_REDIS_URL" envDefault:"redis://localhost:6379"`
	SQLitePath  string `env:"AMOBA_SQLITE_PATH" envDefault:"amoba.db"`

	LogLevel string `env:"AMOBA_LOG_LEVEL" envDefault:"warn"`
	Output   string `env:"AMOBA_OUTPUT" envDefault:"text"`
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// FactoryConfig maps the CLI settings onto the application factory
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		FileConfig: filestorage.Config{
			BoardPath: c.BoardFile,
			ScorePath: c.ScoreFile,
		},
		SQLitePath: c.SQLitePath,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}
