// chessrules validates chess moves, reports positions and counts legal move
// trees (perft).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := interruptContext(context.Background())
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// interruptContext returns a context cancelled by the first SIGINT. The
// handler is released at that point, so a second SIGINT ends the process.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	// Colour escapes are only useful on a terminal.
	cfg.NoColour = true
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Validates chess moves and reports positions and perft counts.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -moves e2e4,e7e5,g1f3 -list\n")
	fmt.Fprintf(os.Stderr, "  chessrules -fen \"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\" -perft 4 -divide -verify\n")
}
