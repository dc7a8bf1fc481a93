// Package errors provides sentinel errors and error types for kingcheck.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedBoard indicates a board with the wrong number of rows,
	// a row of the wrong length, or an unrecognised square symbol.
	ErrMalformedBoard = errors.New("malformed board")

	// ErrKingNotFound indicates the requested colour has no king on the board.
	ErrKingNotFound = errors.New("king not found")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnrecognizedImage indicates a screenshot without a detectable board.
	ErrUnrecognizedImage = errors.New("unrecognized board image")

	// ErrMissingTemplate indicates an incomplete tile or piece template set.
	ErrMissingTemplate = errors.New("missing template")
)

// BoardError locates a board parsing error. Row and Col are 0-based and
// negative when not applicable.
type BoardError struct {
	Err    error  // The underlying error
	Source string // Input name, if known
	Row    int    // Offending row
	Col    int    // Offending column
	Got    string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *BoardError) Error() string {
	var parts []string

	if e.Source != "" {
		parts = append(parts, e.Source)
	}

	switch {
	case e.Row >= 0 && e.Col >= 0:
		parts = append(parts, fmt.Sprintf("row %d col %d", e.Row, e.Col))
	case e.Row >= 0:
		parts = append(parts, fmt.Sprintf("row %d", e.Row))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "board error"
}

// Unwrap returns the underlying error.
func (e *BoardError) Unwrap() error {
	return e.Err
}

// InputError wraps errors with input context: the file the board came
// from and its 1-based position within that file.
type InputError struct {
	Err   error  // The underlying error
	File  string // Source file name ("-" for stdin)
	Index int    // 1-based board number in the file (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *InputError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("board %d", e.Index))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the InputError wrapper.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
