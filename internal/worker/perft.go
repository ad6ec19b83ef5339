package worker

import (
	"context"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// PerftOption configures a parallel perft run.
type PerftOption func(*perftSettings)

type perftSettings struct {
	table *hashing.ThreadSafePerftTable
}

// WithTable shares a transposition table between the workers. It applies
// to plain node counts only; detailed runs ignore it.
func WithTable(t *hashing.ThreadSafePerftTable) PerftOption {
	return func(s *perftSettings) {
		s.table = t
	}
}

// DivideResult is the per-root-move breakdown of a parallel perft run.
type DivideResult struct {
	Entries []engine.DivideEntry // In root move generation order
	Total   engine.PerftStats
}

// Divide counts every root move's subtree to depth on workers goroutines
// (runtime.NumCPU when workers < 1). Leaf statistics are gathered only when
// detailed is set; otherwise Stats carries node counts alone. A cancelled
// context stops the running counts and the remaining jobs, and returns
// ctx.Err().
func Divide(ctx context.Context, board chess.Board, depth, workers int, detailed bool, opts ...PerftOption) (DivideResult, error) {
	var settings perftSettings
	for _, opt := range opts {
		opt(&settings)
	}

	var res DivideResult
	if depth <= 0 {
		res.Total.Nodes = 1
		return res, nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var jobs []Job
	for _, m := range engine.LegalMoves(board) {
		next, err := engine.MakeMove(board, m)
		if err != nil {
			return res, err
		}
		jobs = append(jobs, Job{Index: len(jobs), Move: m, Board: next, Depth: depth - 1})
	}

	count := func(ctx context.Context, job Job) (engine.PerftStats, error) {
		if detailed {
			return jobStats(ctx, job)
		}
		if settings.table != nil {
			nodes, err := hashing.Perft(ctx, job.Board, job.Depth, settings.table)
			return engine.PerftStats{Nodes: nodes}, err
		}
		nodes, err := engine.PerftContext(ctx, job.Board, job.Depth)
		return engine.PerftStats{Nodes: nodes}, err
	}

	if err := ctx.Err(); err != nil {
		return DivideResult{}, err
	}

	pool := NewPool(count, WithWorkers(workers), WithBufferSize(len(jobs)+1))
	pool.Start(ctx)
	for _, job := range jobs {
		pool.Submit(job)
	}
	go pool.Close()

	res.Entries = make([]engine.DivideEntry, len(jobs))
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil || r.Skipped {
			if firstErr == nil {
				firstErr = r.Err
			}
			pool.Stop()
			continue
		}
		res.Entries[r.Index] = engine.DivideEntry{Move: r.Move, Nodes: r.Stats.Nodes}
		res.Total.Add(r.Stats)
	}
	if err := ctx.Err(); err != nil {
		return DivideResult{}, err
	}
	if firstErr != nil {
		return DivideResult{}, firstErr
	}
	return res, nil
}

// Perft is Divide without the per-move breakdown.
func Perft(ctx context.Context, board chess.Board, depth, workers int, opts ...PerftOption) (uint64, error) {
	res, err := Divide(ctx, board, depth, workers, false, opts...)
	if err != nil {
		return 0, err
	}
	return res.Total.Nodes, nil
}

// jobStats counts a job's subtree with full statistics. A job with no
// plies left is itself a leaf.
func jobStats(ctx context.Context, job Job) (engine.PerftStats, error) {
	if job.Depth > 0 {
		return engine.PerftDetailedContext(ctx, job.Board, job.Depth)
	}
	return engine.LeafStats(job.Move, job.Board), nil
}
