package main

import (
	"context"
	"errors"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/oracle"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// run loads the position, plays the configured moves and writes the
// requested reports.
func run(ctx context.Context, cfg *config.Config) error {
	board, err := fen.Decode(cfg.FEN)
	if err != nil {
		return err
	}
	fullmove := fullmoveNumber(cfg.FEN)

	board, fullmove, err = playMoves(cfg, board, fullmove)
	if err != nil {
		return err
	}
	if len(cfg.Moves) > 0 {
		cfg.Logf(config.Summary, "played %d moves", len(cfg.Moves))
	}

	w := output.NewReportWriter(cfg.OutputFile, cfg)

	if cfg.ShowBoard || cfg.ListMoves || cfg.Depth == 0 {
		report := output.NewPositionReport(board, fullmove, cfg.ListMoves, cfg.ShowBoard)
		if err := w.WritePosition(report); err != nil {
			return err
		}
	}

	var runErr error
	if cfg.Depth > 0 {
		report, err := runPerft(ctx, cfg, board, fullmove)
		if err != nil {
			return err
		}
		if err := w.WritePerft(report); err != nil {
			return err
		}
		if report.Verified && len(report.Mismatches) > 0 {
			runErr = chesserrors.Wrapf(chesserrors.ErrOracleMismatch, "%d root moves differ", len(report.Mismatches))
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

// runPerft counts the move tree on the worker pool and, when asked,
// cross-checks the count against the reference generator.
func runPerft(ctx context.Context, cfg *config.Config, board chess.Board, fullmove int) (output.PerftReport, error) {
	cfg.Logf(config.Summary, "perft depth %d on %d workers", cfg.Depth, cfg.Workers)

	var opts []worker.PerftOption
	var table *hashing.ThreadSafePerftTable
	if cfg.HashEntries > 0 && !cfg.Detailed {
		table = hashing.NewThreadSafePerftTable(cfg.HashEntries)
		opts = append(opts, worker.WithTable(table))
	}

	start := time.Now()
	result, err := worker.Divide(ctx, board, cfg.Depth, cfg.Workers, cfg.Detailed, opts...)
	if err != nil {
		return output.PerftReport{}, err
	}
	elapsed := time.Since(start)
	if table != nil {
		cfg.Logf(config.Summary, "transposition table: %d entries, %d hits", table.Len(), table.Hits())
	}

	report := output.PerftReport{
		FEN:       fen.Encode(board, fullmove),
		Depth:     cfg.Depth,
		Nodes:     result.Total.Nodes,
		ElapsedNs: elapsed.Nanoseconds(),
	}
	if cfg.Detailed {
		stats := result.Total
		report.Stats = &stats
	}
	if cfg.Divide {
		report.Divide = output.NewDivideLines(board, result.Entries)
	}

	if cfg.Verify {
		check, err := oracle.CrossCheck(report.FEN, cfg.Depth)
		if err != nil && !errors.Is(err, chesserrors.ErrOracleMismatch) {
			return output.PerftReport{}, err
		}
		report.Verified = true
		report.Reference = check.Reference
		report.Mismatches = check.Mismatches
		cfg.Logf(config.Summary, "reference perft %d, %d mismatches", check.Reference, len(check.Mismatches))
	}
	return report, nil
}
