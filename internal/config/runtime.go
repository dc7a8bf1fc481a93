package config

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// RuntimeConfig holds settings for parallel processing and logging.
type RuntimeConfig struct {
	// Workers is the number of analysis goroutines; 0 means one per CPU
	Workers int

	// BufferSize bounds the work and result queues
	BufferSize int

	// LogLevel is the minimum level written to the log file
	LogLevel slog.Level
}

// NewRuntimeConfig creates a RuntimeConfig with default values.
func NewRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		BufferSize: 100,
		LogLevel:   slog.LevelWarn,
	}
}

// EffectiveWorkers resolves a zero worker count to the number of CPUs.
func (c *RuntimeConfig) EffectiveWorkers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Validate checks that the runtime configuration is valid.
func (c *RuntimeConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be positive: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
