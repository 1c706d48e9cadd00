// Package config loads service settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all settings for the estimator service.
type Config struct {
	// Port is the HTTP listen port.
	Port int `env:"PORT" envDefault:"8080"`
	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is "json" or "console".
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	// DefaultTrials is used when a request omits a trial count.
	DefaultTrials int `env:"DEFAULT_TRIALS" envDefault:"100000"`
	// MaxTrials caps a single request so one caller cannot pin the CPU
	// indefinitely.
	MaxTrials int `env:"MAX_TRIALS" envDefault:"10000000"`
	// MaxWorkers caps per-request parallelism. Zero means use all CPUs.
	MaxWorkers int `env:"MAX_WORKERS" envDefault:"0"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return c, nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
