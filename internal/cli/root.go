package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/amoba/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command. Running it without a subcommand
// starts an interactive game.
func NewRootCmd() *cobra.Command {
	var cfgErr error
	cfg, cfgErr = LoadConfig()
	if cfgErr != nil {
		cfg = &Config{}
	}

	rootCmd := &cobra.Command{
		Use:   "amoba",
		Short: "Four-in-a-row against a random opponent",
		Long: `amoba is a command line connect-four style game on an NxM grid.

You play 'x' against an automated 'o'. The first mark sits at the center of
the board and every later mark must touch an existing one, diagonals
included. Four in a row, column or diagonal wins.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}

			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			app, err = factory.New(cfg.FactoryConfig(logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		RunE:         runPlay,
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "Default board rows (env: AMOBA_ROWS)")
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "Default board columns (env: AMOBA_COLS)")
	flags.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "Player name, skips the prompt (env: AMOBA_PLAYER)")
	flags.StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: file, memory, redis, sqlite (env: AMOBA_STORAGE)")
	flags.StringVar(&cfg.BoardFile, "board-file", cfg.BoardFile, "Saved board file (env: AMOBA_BOARD_FILE)")
	flags.StringVar(&cfg.ScoreFile, "score-file", cfg.ScoreFile, "Score log file (env: AMOBA_SCORE_FILE)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: AMOBA_REDIS_URL)")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database file (env: AMOBA_SQLITE_PATH)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: AMOBA_LOG_LEVEL)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format for show and scores: text, json")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newScoresCmd())

	return rootCmd
}

// Execute runs the root command with os.Args
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
