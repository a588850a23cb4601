// Package config loads evenflow settings from defaults, an optional
// .evenflow.yaml file, EVENFLOW_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evenflow/instance"
)

// Defaults.
const (
	DefaultWorkers  = 1
	DefaultFormat   = string(instance.FormatPlain)
	DefaultLogLevel = "warn"
)

// Generator defaults.
const (
	DefaultGenCount     = 5
	DefaultGenJunctions = 8
	DefaultGenDensity   = 0.4
	DefaultGenSeed      = 1
	DefaultGenMinWeight = 1
	DefaultGenMaxWeight = 100
)

var (
	// ErrInvalidWorkers indicates solve.workers < 1.
	ErrInvalidWorkers = errors.New("config: solve.workers must be at least 1")
	// ErrInvalidCount indicates generate.count < 0.
	ErrInvalidCount = errors.New("config: generate.count must not be negative")
)

// Config is the root configuration.
type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Solve    SolveConfig    `mapstructure:"solve"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// SolveConfig configures the solve command.
type SolveConfig struct {
	Workers     int    `mapstructure:"workers"`
	Format      string `mapstructure:"format"`
	Exhaustive  bool   `mapstructure:"exhaustive"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// GenerateConfig configures the generate command.
type GenerateConfig struct {
	Count     int     `mapstructure:"count"`
	Junctions int     `mapstructure:"junctions"`
	Density   float64 `mapstructure:"density"`
	Seed      int64   `mapstructure:"seed"`
	MinWeight int     `mapstructure:"min_weight"`
	MaxWeight int     `mapstructure:"max_weight"`
}

// Validate checks values that would otherwise fail deep inside a command.
// Generator ranges are checked by the gen package itself.
func (c *Config) Validate() error {
	if c.Solve.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Solve.Workers)
	}
	if _, err := instance.ParseFormat(c.Solve.Format); err != nil {
		return fmt.Errorf("config: solve.format: %w", err)
	}
	if c.Generate.Count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.Generate.Count)
	}

	return nil
}
