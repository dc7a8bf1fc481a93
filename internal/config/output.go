package config

import (
	"fmt"

	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// OutputFormat represents the report format.
type OutputFormat int

const (
	Summary   OutputFormat = iota // Four-line text summary per board
	JSON                          // One JSON document holding every board
	JSONLines                     // One JSON object per line
)

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	// Format selects the report format
	Format OutputFormat

	// Diagram adds a text diagram under each summary
	Diagram bool

	// Details adds attacker and escape square lines under each summary
	Details bool

	// SVGDir, when set, receives one SVG diagram per board
	SVGDir string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Format: Summary}
}

// Validate checks that the output configuration is valid.
func (c *OutputConfig) Validate() error {
	if c.Format < Summary || c.Format > JSONLines {
		return fmt.Errorf("output format %d: %w", int(c.Format), errors.ErrInvalidConfig)
	}
	if c.Format != Summary && (c.Diagram || c.Details) {
		return fmt.Errorf("diagrams and details need summary output: %w", errors.ErrInvalidConfig)
	}
	return nil
}
