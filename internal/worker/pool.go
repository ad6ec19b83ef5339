// Package worker runs perft subtrees on a pool of goroutines, one job per
// root move.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Job is one root move whose subtree is to be counted.
type Job struct {
	Index int // Position in the root move order
	Move  chess.Move
	Board chess.Board // Position after Move
	Depth int         // Plies still to search below Board
}

// Result is the count for one Job.
type Result struct {
	Index   int
	Move    chess.Move
	Stats   engine.PerftStats
	Skipped bool  // Pool was stopped or the context done before the job ran
	Err     error // Set when the count gave up part way
}

// CountFunc counts the subtree of a job. It should return ctx.Err() soon
// after ctx is done.
type CountFunc func(ctx context.Context, job Job) (engine.PerftStats, error)

// Pool manages a set of goroutines counting perft subtrees.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	count      CountFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that counts jobs with count.
// Default: 1 worker, buffer size of 64 (more than any position's root moves).
func NewPool(count CountFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 64,
		count:      count,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Jobs taken after ctx is done are
// skipped, and ctx is passed to the count function of running jobs.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() || ctx.Err() != nil {
			p.results <- Result{Index: job.Index, Move: job.Move, Skipped: true}
			continue
		}
		stats, err := p.count(ctx, job)
		p.results <- Result{Index: job.Index, Move: job.Move, Stats: stats, Err: err}
	}
}

// Submit queues a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes workers skip every job they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting jobs, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished jobs.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
