package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/bell/internal/config"
	"github.com/alexanderramin/bell/internal/service"
	"github.com/alexanderramin/bell/internal/timetable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the services and process hooks used by CLI commands. Nil services
// are wired from configuration when the first command runs.
type App struct {
	Today service.TodayService
	Week  service.WeekService

	// Clock defaults to time.Now.
	Clock func() time.Time
	// IsTerminal reports whether stdout is a terminal; nil means it is not.
	IsTerminal func() bool
	// ConfigDirs are searched for config.yaml.
	ConfigDirs []string
	// LogOutput receives log lines; nil discards them.
	LogOutput io.Writer

	Config    config.Config
	Logger    *zap.Logger
	Timetable *timetable.Timetable
}

// NewRootCmd creates the top-level "bell" command. Run bare, it shows today's
// schedule.
func NewRootCmd(app *App) *cobra.Command {
	var opts todayOptions

	root := &cobra.Command{
		Use:           "bell",
		Short:         "Show today's class schedule and the block in progress",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.bootstrap(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, app, opts)
		},
	}

	root.PersistentFlags().String("timetable", "", "Timetable YAML file (default: built-in schedule)")
	root.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	root.PersistentFlags().String("log-level", "warn", "Log level for stderr: debug, info, warn or error")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	addTodayFlags(root, &opts)

	root.AddCommand(
		newTodayCmd(app),
		newWeekCmd(app),
		newCheckCmd(app),
	)

	return root
}
