package cli

import (
	"fmt"

	"github.com/alexanderramin/bell/internal/cli/formatter"
	"github.com/alexanderramin/bell/internal/timetable"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var printDefault bool

	cmd := &cobra.Command{
		Use:   "check [timetable.yaml]",
		Short: "Validate a timetable file",
		Long: `Validate a timetable file and summarize each weekday.

Without an argument the configured timetable (--timetable, BELL_TIMETABLE or
the config file) is checked, falling back to the built-in schedule.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if printDefault {
				_, err := cmd.OutOrStdout().Write(timetable.DefaultSchemaYAML())
				return err
			}

			path := app.Config.TimetablePath
			if len(args) == 1 {
				path = args[0]
			}

			tt, err := timetable.Load(path)
			if err != nil {
				return err
			}

			source := path
			if source == "" {
				source = "built-in"
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheck(source, tt))
			return nil
		},
	}

	cmd.Flags().BoolVar(&printDefault, "print-default", false, "Print the built-in timetable as YAML and exit")

	return cmd
}
