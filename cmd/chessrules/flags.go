// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList  = flag.String("moves", "", "Coordinate moves to play first, comma or space separated (e2e4,e7e5,e7e8q)")

	// Actions
	noBoard   = flag.Bool("noboard", false, "Don't print the board diagram")
	listMoves = flag.Bool("list", false, "List the legal moves of the final position")
	depth     = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to this depth")
	divide    = flag.Bool("divide", false, "Break the perft count down by root move")
	detailed  = flag.Bool("detailed", false, "Classify perft leaves (captures, castles, checks...)")
	verify    = flag.Bool("verify", false, "Cross-check perft against a reference move generator")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noColour     = flag.Bool("nocolour", false, "Plain ASCII board diagram")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every move played")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers     = flag.Int("workers", 0, "Number of perft worker goroutines (0 = auto-detect based on CPU cores)")
	hashEntries = flag.Int("hash", 0, "Perft transposition table entries (0 = no table)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyActionFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.HashEntries = *hashEntries
}

// applyPositionFlags sets the starting position and the moves to play.
func applyPositionFlags(cfg *config.Config) {
	if *fenString != "" {
		cfg.FEN = *fenString
	}
	cfg.Moves = splitMoves(*moveList)
}

// applyActionFlags selects what the run reports.
func applyActionFlags(cfg *config.Config) {
	cfg.ShowBoard = !*noBoard
	cfg.ListMoves = *listMoves
	cfg.Depth = *depth
	cfg.Divide = *divide
	cfg.Detailed = *detailed
	cfg.Verify = *verify
}

// applyOutputFlags configures the report format.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSON = *jsonOutput
	cfg.NoColour = *noColour
}

// splitMoves splits a move list on commas and whitespace.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
