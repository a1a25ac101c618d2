// Package config loads the engine configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultLogFile is the log file used when no configuration is given.
const DefaultLogFile = "uci-log.txt"

// maxDepth caps search.max_depth.
const maxDepth = 64

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Name:    "Chess Engine",
			Version: "1.0",
			Author:  "ChessProjectCPL contributors",
		},
		Search: SearchConfig{
			MaxDepth: 4,
		},
		Log: LogConfig{
			File:  DefaultLogFile,
			Level: "debug",
		},
	}
}

// Load reads and parses the configuration file at path. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Decode(data)
}

// Decode parses TOML configuration data over the defaults.
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, undecoded[0])
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// validate checks the configuration for required fields and ranges.
func validate(cfg *Config) error {
	if cfg.Engine.Name == "" {
		return fmt.Errorf("%w: missing engine.name", ErrInvalidConfig)
	}
	if cfg.Search.MaxDepth < 1 || cfg.Search.MaxDepth > maxDepth {
		return fmt.Errorf("%w: search.max_depth must be in [1, %d], got %d", ErrInvalidConfig, maxDepth, cfg.Search.MaxDepth)
	}
	if cfg.Search.DefaultMoveTimeMS < 0 {
		return fmt.Errorf("%w: search.default_movetime_ms must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	return nil
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ParseLevel maps a log level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, s)
	}
}

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chess-engine"), nil
}

// DefaultPath returns the configuration file looked up when no -config
// flag is given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
