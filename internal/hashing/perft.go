package hashing

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Perft counts leaf nodes like engine.Perft, reusing counts of positions
// reached by transposition. Subtrees of depth 1 are not stored. Once ctx is
// done it returns ctx.Err(); partial counts never reach the table.
func Perft(ctx context.Context, board chess.Board, depth int, table *ThreadSafePerftTable) (uint64, error) {
	if depth <= 1 {
		return engine.Perft(board, depth), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if nodes, ok := table.Lookup(board, depth); ok {
		return nodes, nil
	}

	var nodes uint64
	for _, next := range engine.Successors(board) {
		n, err := Perft(ctx, next, depth-1, table)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	table.Store(board, depth, nodes)
	return nodes, nil
}
