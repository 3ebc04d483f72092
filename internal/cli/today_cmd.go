package cli

import (
	"fmt"

	bellapp "github.com/alexanderramin/bell/internal/app"
	"github.com/alexanderramin/bell/internal/cli/formatter"
	"github.com/alexanderramin/bell/internal/domain"
	"github.com/spf13/cobra"
)

type todayOptions struct {
	onlyRemaining bool
	at            string
	day           string
}

func addTodayFlags(cmd *cobra.Command, opts *todayOptions) {
	cmd.Flags().BoolVarP(&opts.onlyRemaining, "blocks-remaining", "b", false, "Only show blocks remaining in the day")
	cmd.Flags().StringVar(&opts.at, "at", "", "Pretend the time is HH:MM (24-hour) instead of now")
	cmd.Flags().StringVar(&opts.day, "day", "", "Show the schedule for another weekday (e.g. monday, wed)")
}

func newTodayCmd(app *App) *cobra.Command {
	var opts todayOptions

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's schedule (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, app, opts)
		},
	}
	addTodayFlags(cmd, &opts)

	return cmd
}

func runToday(cmd *cobra.Command, app *App, opts todayOptions) error {
	req, err := buildTodayRequest(app, opts)
	if err != nil {
		return err
	}

	uc, err := app.todayUseCase()
	if err != nil {
		return err
	}

	resp, err := uc.Today(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToday(resp))
	return nil
}

func buildTodayRequest(app *App, opts todayOptions) (bellapp.TodayRequest, error) {
	req := bellapp.NewTodayRequest()
	req.OnlyRemaining = opts.onlyRemaining

	if opts.at != "" {
		tod, err := domain.ParseClock24(opts.at)
		if err != nil {
			return req, fmt.Errorf("--at: %w", err)
		}
		at := tod.On(app.now())
		req.Now = &at
	}
	if opts.day != "" {
		wd, err := domain.ParseWeekday(opts.day)
		if err != nil {
			return req, fmt.Errorf("--day: %w", err)
		}
		req.Weekday = &wd
	}
	return req, nil
}
