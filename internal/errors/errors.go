// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the structural contract violations the engine surfaces and
// structured error types that preserve context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a square outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove indicates a move that violates chess rules was applied.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPosition indicates a setup that cannot be turned into a board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOracleMismatch indicates the move generator disagreed with the reference generator.
	ErrOracleMismatch = errors.New("move generator mismatch")
)

// MoveError wraps errors with the context of the move that caused them.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Move   string // Rendered move text (if known)
	Reason string // Short description of what went wrong (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a decoding error with a position inside the input.
// It's used for FEN decoding errors.
type ParseError struct {
	Err    error  // The underlying error
	Field  string // Name of the field being decoded
	Offset int    // 1-based character offset in the field (0 if unknown)
	Got    string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Offset > 0 {
			loc += fmt.Sprintf(":%d", e.Offset)
		}
		parts = append(parts, loc)
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
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
