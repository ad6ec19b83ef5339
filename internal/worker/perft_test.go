package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerft(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
		want    uint64
	}{
		{"depth 0", fen.InitialFEN, 0, 4, 1},
		{"initial depth 1", fen.InitialFEN, 1, 4, 20},
		{"initial depth 3", fen.InitialFEN, 3, 4, 8902},
		{"initial depth 3 one worker", fen.InitialFEN, 3, 1, 8902},
		{"kiwipete depth 2 default workers", kiwipeteFEN, 2, 0, 2039},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			got, err := Perft(context.Background(), board, tt.depth, tt.workers)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Perft() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestDivide_MatchesSequential(t *testing.T) {
	board := testutil.MustBoard(t, kiwipeteFEN)
	res, err := Divide(context.Background(), board, 2, 4, false)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Entries, engine.Divide(board, 2))
	if res.Total.Nodes != 2039 {
		t.Errorf("Total.Nodes = %d; want 2039", res.Total.Nodes)
	}
}

func TestDivide_Detailed(t *testing.T) {
	tests := []struct {
		name  string
		depth int
	}{
		{"leaves at the root", 1},
		{"leaves below the root", 2},
	}
	board := testutil.MustBoard(t, kiwipeteFEN)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Divide(context.Background(), board, tt.depth, 3, true)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Total, engine.PerftDetailed(board, tt.depth))
		})
	}
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := testutil.MustBoard(t, fen.InitialFEN)
	_, err := Divide(ctx, board, 3, 2, false)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Divide() error = %v; want context.Canceled", err)
	}
}

func TestDivide_CancelledWhileRunning(t *testing.T) {
	tests := []struct {
		name     string
		detailed bool
		opts     []PerftOption
	}{
		{"plain", false, nil},
		{"detailed", true, nil},
		{"with table", false, []PerftOption{WithTable(hashing.NewThreadSafePerftTable(0))}},
	}

	board := testutil.MustBoard(t, fen.InitialFEN)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			time.AfterFunc(20*time.Millisecond, cancel)

			// Depth 7 runs for minutes unless the running counts stop.
			start := time.Now()
			_, err := Divide(ctx, board, 7, 2, tt.detailed, tt.opts...)
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Divide() error = %v; want context.Canceled", err)
			}
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Errorf("Divide() took %v after cancellation", elapsed)
			}
		})
	}
}

func TestPerft_WithTable(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 4", fen.InitialFEN, 4, 197281},
		{"kiwipete depth 3", kiwipeteFEN, 3, 97862},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := hashing.NewThreadSafePerftTable(0)
			board := testutil.MustBoard(t, tt.fen)
			got, err := Perft(context.Background(), board, tt.depth, 4, WithTable(table))
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Perft() = %d; want %d", got, tt.want)
			}
			if table.Len() == 0 {
				t.Error("table is empty after a cached run")
			}
		})
	}
}
