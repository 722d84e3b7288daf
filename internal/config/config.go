// Package config defines scorehook configuration and its loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - All loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Seed makes score generation reproducible. Zero uses the runtime-seeded source.
	Seed uint64 `koanf:"seed"`

	// ScoreCeiling is the exclusive upper bound for generated scores.
	ScoreCeiling int `koanf:"score_ceiling"`

	// Count is how many virtual-user contexts the fixture tool runs.
	Count int `koanf:"count"`

	// Workers bounds how many contexts run the step concurrently.
	Workers int `koanf:"workers"`

	// Output is the JSON file records are written to; empty picks a timestamped name.
	Output string `koanf:"output"`

	// Function names the registered scenario step to run.
	Function string `koanf:"function"`

	// MetricsFile, when set, receives a Prometheus textfile dump after a run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Seed:         0,
		ScoreCeiling: 100,
		Count:        1_000,
		Workers:      runtime.NumCPU() * 2,
		Output:       "",
		Function:     "createRandomScore",
		MetricsFile:  "",
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.ScoreCeiling <= 0:
		return invalid("score_ceiling must be positive")
	case c.Count <= 0:
		return invalid("count must be positive")
	case c.Workers <= 0:
		return invalid("workers must be positive")
	case c.Function == "":
		return invalid("function must not be empty")
	}
	return nil
}
