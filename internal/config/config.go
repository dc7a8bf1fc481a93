// Package config provides configuration for kingcheck.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=board count

	Input   *InputConfig
	Output  *OutputConfig
	Vision  *VisionConfig
	Runtime *RuntimeConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Input:      NewInputConfig(),
		Output:     NewOutputConfig(),
		Vision:     NewVisionConfig(),
		Runtime:    NewRuntimeConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream reports are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Runtime.Validate()
}

// ParseLogLevel converts a level name (debug, info, warn, error) to a slog level.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level %q: %w", name, errors.ErrInvalidConfig)
	}
	return level, nil
}
