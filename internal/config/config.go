// Package config reads runtime settings from the environment and builds the
// process logger.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"creature-arena/internal/apperr"
)

// AppName names the data directory under $XDG_DATA_HOME.
const AppName = "creature-arena"

// Config holds every setting the binaries read from the environment.
type Config struct {
	Seed          int64  `env:"ARENA_SEED" envDefault:"0"`
	AbilitiesFile string `env:"ARENA_ABILITIES"`
	CreaturesFile string `env:"ARENA_CREATURES"`
	LogLevel      string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"ARENA_LOG_FORMAT" envDefault:"text"`
	SSHPort       int    `env:"ARENA_SSH_PORT" envDefault:"2222"`
	HostKey       string `env:"ARENA_HOST_KEY"`
	DataDir       string `env:"ARENA_DATA_DIR"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DataPath returns the directory for logs and battle records: DataDir when
// set, otherwise $XDG_DATA_HOME/creature-arena, defaulting to
// ~/.local/share/creature-arena.
func (c Config) DataPath() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, apperr.Wrap(apperr.CodeUnknownData, fmt.Sprintf("log level %q", s), err)
	}
	return lvl, nil
}

// NewLogger builds a logger writing to w in the configured format.
func NewLogger(c Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, apperr.Unknown(fmt.Sprintf("log format %q", c.LogFormat))
}
