package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			board, ok := app.BoardService.Load(cmd.Context())
			if !ok {
				out.PrintMessage("No saved board.")
				return nil
			}

			out.Print(NewBoardView(board))
			return nil
		},
	}
}
