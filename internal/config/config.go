// Package config loads the command-line tool's YAML settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

// Config holds the defaults the CLI applies to every request.
type Config struct {
	StepSize      float64 `yaml:"step_size"`      // metres, default 0.1
	Preset        string  `yaml:"preset"`         // vehicle preset used when the input names none
	LogLevel      string  `yaml:"log_level"`      // debug, info, warn, error
	Layers        bool    `yaml:"layers"`         // include export layers in the output
	SnapshotEvery int     `yaml:"snapshot_every"` // body snapshot interval in states, 0 = off
	Workers       int     `yaml:"workers"`        // concurrent path simulations, 0 = GOMAXPROCS
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		StepSize: geometry.DefaultStep,
		LogLevel: "info",
	}
}

// Load reads and parses a YAML configuration file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data on top of Default and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks field ranges and that a named preset exists.
func Validate(cfg *Config) error {
	if err := geometry.ValidateStep(cfg.StepSize); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.SnapshotEvery < 0 {
		return fmt.Errorf("snapshot_every must not be negative, got %d", cfg.SnapshotEvery)
	}
	if cfg.Preset != "" {
		if _, err := vehicle.Preset(cfg.Preset); err != nil {
			return err
		}
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level. An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.New("unknown log level " + name)
	}
}
