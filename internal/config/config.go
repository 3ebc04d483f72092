package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/bell/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags, env vars (BELL_<KEY>) and the config file.
const (
	KeyTimetable = "timetable"
	KeyColor     = "color"
	KeyLogLevel  = "log_level"
	KeyVerbose   = "verbose"
)

const envPrefix = "BELL"

// Config holds the resolved settings for one invocation.
type Config struct {
	// TimetablePath points at a timetable YAML file. Empty means built-in.
	TimetablePath string           `mapstructure:"timetable"`
	Color         domain.ColorMode `mapstructure:"color"`
	LogLevel      string           `mapstructure:"log_level"`
	Verbose       bool             `mapstructure:"verbose"`
}

// DefaultConfig returns a Config with sensible defaults.
// Logging stays quiet unless asked for.
func DefaultConfig() Config {
	return Config{
		TimetablePath: "",
		Color:         domain.ColorAuto,
		LogLevel:      "warn",
		Verbose:       false,
	}
}

// DefaultConfigDir returns ~/.bell, where config.yaml is looked up.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".bell"), nil
}

// Loader resolves configuration from, in order of precedence: flags that
// were set, BELL_* environment variables, the config file, defaults.
type Loader struct {
	v        *viper.Viper
	withFile bool
}

// NewLoader creates a Loader that searches configDirs for config.yaml.
// Pass no dirs to skip file lookup.
func NewLoader(configDirs ...string) *Loader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault(KeyTimetable, def.TimetablePath)
	v.SetDefault(KeyColor, string(def.Color))
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyVerbose, def.Verbose)

	if len(configDirs) > 0 {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range configDirs {
			v.AddConfigPath(dir)
		}
	}
	return &Loader{v: v, withFile: len(configDirs) > 0}
}

// BindFlags wires cobra/pflag flags into the lookup chain. Flag names use
// dashes; keys use underscores.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyTimetable: "timetable",
		KeyColor:     "color",
		KeyLogLevel:  "log-level",
		KeyVerbose:   "verbose",
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file (if any) and resolves all settings.
func (l *Loader) Load() (Config, error) {
	if l.withFile {
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := Config{
		TimetablePath: l.v.GetString(KeyTimetable),
		Color:         domain.ColorMode(strings.ToLower(l.v.GetString(KeyColor))),
		LogLevel:      strings.ToLower(l.v.GetString(KeyLogLevel)),
		Verbose:       l.v.GetBool(KeyVerbose),
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	if !domain.ValidColorModes[string(cfg.Color)] {
		return Config{}, fmt.Errorf("color: invalid value %q (expected auto, always or never)", cfg.Color)
	}
	if cfg.TimetablePath != "" {
		cfg.TimetablePath = expandHome(cfg.TimetablePath)
	}
	return cfg, nil
}

// ConfigFileUsed returns the path of the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
