// Package config holds the settings of a chessrules run.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// MaxDepth bounds perft depth; beyond it a run takes hours.
const MaxDepth = 8

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Summary    = 1 // one line per run stage
	Commentary = 2 // every applied or rejected move
)

// Config holds all program configuration.
type Config struct {
	// Position
	FEN   string   // Starting position
	Moves []string // Coordinate moves applied before anything else (e2e4, e7e8q)

	// Actions
	ShowBoard bool
	ListMoves bool
	Depth     int  // Perft depth, 0 = no perft
	Divide    bool // Break perft down by root move
	Detailed  bool // Classify perft leaves
	Verify    bool // Cross-check perft against the reference generator

	// Execution
	Workers     int
	HashEntries int // Perft transposition table size, 0 = no table

	// Output
	JSON      bool
	NoColour  bool
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FEN:        fen.InitialFEN,
		ShowBoard:  true,
		Workers:    runtime.NumCPU(),
		Verbosity:  Summary,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.Depth < 0 || c.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d not in 0..%d", c.Depth, MaxDepth)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d, need at least 1", c.Workers)
	}
	if c.HashEntries < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "hash entries %d is negative", c.HashEntries)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d not in %d..%d", c.Verbosity, Silent, Commentary)
	}
	if (c.Divide || c.Detailed || c.Verify) && c.Depth == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "divide, detailed and verify need a depth")
	}
	if _, err := fen.Decode(c.FEN); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "position: %v", err)
	}
	if c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no output writer")
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
