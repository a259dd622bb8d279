package cli

import (
	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Print the score totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := app.ScoreboardService.Totals(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(NewScoreTable(totals))
			return nil
		},
	}
}
