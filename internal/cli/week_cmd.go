package cli

import (
	"fmt"

	"github.com/alexanderramin/bell/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show every school day's schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.weekUseCase()
			if err != nil {
				return err
			}

			resp, err := uc.Week(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(resp))
			return nil
		},
	}
}
