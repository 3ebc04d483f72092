package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/bell/internal/cli"
	"github.com/alexanderramin/bell/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config lookup: ./config.yaml (development), then ~/.bell/config.yaml
	dirs := []string{"."}
	if dir, err := config.DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}

	app := &cli.App{
		Clock:      time.Now,
		ConfigDirs: dirs,
		LogOutput:  os.Stderr,
	}

	// Color "auto" only styles output for a terminal.
	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
	return nil
}
