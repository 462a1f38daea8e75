package config

import (
	"io"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/diegok/duopong/internal/game"
)

// Frontend selects how the game is shown
type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
)

// Default values for configuration
const (
	DefaultFrontend      = FrontendWindow
	DefaultTickRate      = 60
	MaxTickRate          = 1000
	DefaultLogFile       = "duopong.log"
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultForeground    = "#ffffff"
	DefaultBackground    = "#000000"

	// EnvPrefix prefixes environment overrides, e.g. DUOPONG_TICK_RATE
	EnvPrefix = "DUOPONG"
)

// DefaultKeys binds W/S to the left paddle and the arrow keys to the right one
var DefaultKeys = map[game.Action]string{
	game.ActionLeftUp:    "w",
	game.ActionLeftDown:  "s",
	game.ActionRightUp:   "up",
	game.ActionRightDown: "down",
}

// Config holds the application configuration
type Config struct {
	Frontend      Frontend
	TickRate      int
	Seed          int64 // 0 seeds from the clock
	LogFile       string
	LogLevel      logrus.Level
	LogMaxSizeMB  int
	LogMaxBackups int
	Keys          map[game.Action]string // Key names, resolved by each frontend
	Foreground    colorful.Color
	Background    colorful.Color
}

// Palette returns the configured colours for the renderers
func (c *Config) Palette() game.Palette {
	return game.Palette{Foreground: c.Foreground, Background: c.Background}
}

// ParseArgs parses command line arguments, an optional config file and
// DUOPONG_* environment variables, in increasing order of precedence:
// defaults, file, environment, flags.
func ParseArgs(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("duopong", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.String("frontend", string(DefaultFrontend), "window or terminal")
	fs.Int("tick-rate", DefaultTickRate, "simulation steps per second (1-1000)")
	fs.Int64("seed", 0, "random seed, 0 for time based")
	fs.String("config", "", "path to a config file (yaml, toml, json)")
	fs.String("log-file", DefaultLogFile, "log file path")
	fs.String("log-level", DefaultLogLevel, "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	v := viper.New()
	v.SetDefault("log-max-size", DefaultLogMaxSizeMB)
	v.SetDefault("log-max-backups", DefaultLogMaxBackups)
	v.SetDefault("colors.foreground", DefaultForeground)
	v.SetDefault("colors.background", DefaultBackground)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Frontend:      Frontend(strings.ToLower(v.GetString("frontend"))),
		TickRate:      v.GetInt("tick-rate"),
		Seed:          v.GetInt64("seed"),
		LogFile:       v.GetString("log-file"),
		LogMaxSizeMB:  v.GetInt("log-max-size"),
		LogMaxBackups: v.GetInt("log-max-backups"),
	}

	// Validate frontend
	if cfg.Frontend != FrontendWindow && cfg.Frontend != FrontendTerminal {
		return nil, errors.Errorf("frontend must be %q or %q, got %q", FrontendWindow, FrontendTerminal, cfg.Frontend)
	}

	// Validate tick rate
	if cfg.TickRate < 1 || cfg.TickRate > MaxTickRate {
		return nil, errors.Errorf("tick rate must be between 1 and %d, got %d", MaxTickRate, cfg.TickRate)
	}

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	cfg.LogLevel = level

	if cfg.LogFile == "" {
		return nil, errors.New("log file must not be empty")
	}
	if cfg.LogMaxSizeMB < 1 {
		return nil, errors.Errorf("log max size must be at least 1MB, got %d", cfg.LogMaxSizeMB)
	}

	keys, err := parseKeys(v.Get("keys"))
	if err != nil {
		return nil, err
	}
	cfg.Keys = keys

	if cfg.Foreground, err = colorful.Hex(v.GetString("colors.foreground")); err != nil {
		return nil, errors.Wrap(err, "foreground colour")
	}
	if cfg.Background, err = colorful.Hex(v.GetString("colors.background")); err != nil {
		return nil, errors.Wrap(err, "background colour")
	}

	return cfg, nil
}

// parseKeys overlays bindings from the config file on the defaults.
// Each key may be bound to one action only.
func parseKeys(raw interface{}) (map[game.Action]string, error) {
	keys := make(map[game.Action]string, len(DefaultKeys))
	for a, k := range DefaultKeys {
		keys[a] = k
	}
	if raw == nil {
		return keys, nil
	}

	bindings, err := cast.ToStringMapStringE(raw)
	if err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	for name, key := range bindings {
		action, ok := game.ParseAction(strings.ToLower(name))
		if !ok {
			return nil, errors.Errorf("keys: unknown action %q", name)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, errors.Errorf("keys: empty key for %s", action)
		}
		keys[action] = key
	}

	seen := make(map[string]game.Action, len(keys))
	for _, a := range game.Actions() {
		if other, dup := seen[keys[a]]; dup {
			return nil, errors.Errorf("keys: %q bound to both %s and %s", keys[a], other, a)
		}
		seen[keys[a]] = a
	}
	return keys, nil
}
