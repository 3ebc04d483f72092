package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/bell/internal/config"
	"github.com/alexanderramin/bell/internal/domain"
	"github.com/alexanderramin/bell/internal/logging"
	"github.com/alexanderramin/bell/internal/service"
	"github.com/alexanderramin/bell/internal/timetable"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrap resolves configuration, logging and color for the command about
// to run. Loading the timetable is left to the commands that need it.
func (a *App) bootstrap(cmd *cobra.Command) error {
	loader := config.NewLoader(a.ConfigDirs...)
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.Config = cfg

	out := a.LogOutput
	if out == nil {
		out = io.Discard
	}
	logger, err := logging.New(out, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.Logger = logger
	if used := loader.ConfigFileUsed(); used != "" {
		logger.Debug("config_file", zap.String("path", used))
	}

	applyColorMode(cfg.Color, a.isTerminal())
	return nil
}

func applyColorMode(mode domain.ColorMode, tty bool) {
	switch {
	case mode == domain.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == domain.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case !tty:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func (a *App) isTerminal() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

// loadTimetable loads the configured timetable once. A broken timetable is
// fatal for every schedule command.
func (a *App) loadTimetable() (*timetable.Timetable, error) {
	if a.Timetable != nil {
		return a.Timetable, nil
	}
	tt, err := timetable.Load(a.Config.TimetablePath)
	if err != nil {
		return nil, err
	}
	source := a.Config.TimetablePath
	if source == "" {
		source = "built-in"
	}
	a.logger().Debug("timetable_loaded",
		zap.String("source", source),
		zap.Int("days", len(tt.Days())))
	a.Timetable = tt
	return tt, nil
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) observer() service.UseCaseObserver {
	return service.NewLogUseCaseObserver(a.Logger)
}
