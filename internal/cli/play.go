package cli

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game (default)",
		Long: `Play an interactive game.

At the prompt enter a coordinate such as a5 (column letter, row number) or
one of the commands: save, load, exit. exit saves the board before quitting.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	session := NewSession(app, cmd.InOrStdin(), cmd.OutOrStdout(), SessionOptions{
		DefaultRows: cfg.Rows,
		DefaultCols: cfg.Cols,
		PlayerName:  cfg.PlayerName,
	})
	return session.Run(cmd.Context())
}
