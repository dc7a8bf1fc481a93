package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// InputKind selects how an input file is read.
type InputKind int

const (
	AutoInput  InputKind = iota // Decide by file extension
	GridInput                   // Grid rows, '*' for empty squares
	FENInput                    // One FEN per line
	ImageInput                  // PNG screenshot
)

var inputKindNames = [...]string{"auto", "grid", "fen", "image"}

// ParseInputKind converts a name such as "fen" to an InputKind.
func ParseInputKind(name string) (InputKind, error) {
	for i, n := range inputKindNames {
		if strings.EqualFold(n, name) {
			return InputKind(i), nil
		}
	}
	return AutoInput, fmt.Errorf("input type %q: %w", name, errors.ErrInvalidConfig)
}

// String returns the flag name of the kind.
func (k InputKind) String() string {
	if k < 0 || int(k) >= len(inputKindNames) {
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
	return inputKindNames[k]
}

// KindForFile resolves AutoInput by extension: .png, .bmp and .webp are
// images, .fen a FEN list, anything else grid text.
func KindForFile(kind InputKind, name string) InputKind {
	if kind != AutoInput {
		return kind
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".bmp", ".webp":
		return ImageInput
	case ".fen":
		return FENInput
	default:
		return GridInput
	}
}

// InputConfig holds settings for reading boards.
type InputConfig struct {
	// Kind forces every input to be read one way
	Kind InputKind

	// Files lists the inputs; empty means standard input
	Files []string
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{Kind: AutoInput}
}

// Validate checks that the input configuration is valid.
func (c *InputConfig) Validate() error {
	if c.Kind < AutoInput || c.Kind > ImageInput {
		return fmt.Errorf("input kind %d: %w", int(c.Kind), errors.ErrInvalidConfig)
	}
	if c.Kind == ImageInput && len(c.Files) == 0 {
		return fmt.Errorf("image input cannot be read from stdin: %w", errors.ErrInvalidConfig)
	}
	return nil
}
