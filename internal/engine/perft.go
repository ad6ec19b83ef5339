package engine

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PerftStats counts the leaves of a legal move tree by kind.
type PerftStats struct {
	Nodes      uint64 `json:"nodes"`
	Captures   uint64 `json:"captures"`
	EnPassant  uint64 `json:"enPassant"`
	Castles    uint64 `json:"castles"`
	Promotions uint64 `json:"promotions"`
	Checks     uint64 `json:"checks"`
	Checkmates uint64 `json:"checkmates"`
}

// Add accumulates another set of counts.
func (s *PerftStats) Add(o PerftStats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassant += o.EnPassant
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
	s.Checkmates += o.Checkmates
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, next := range legalMoves(board) {
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftContext is Perft that gives up once ctx is done. The context is
// checked at every node with more than one ply below it; on cancellation
// the count so far is returned with ctx.Err().
func PerftContext(ctx context.Context, board chess.Board, depth int) (uint64, error) {
	if depth <= 1 {
		return Perft(board, depth), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var nodes uint64
	for _, next := range legalMoves(board) {
		n, err := PerftContext(ctx, next, depth-1)
		nodes += n
		if err != nil {
			return nodes, err
		}
	}
	return nodes, nil
}

// PerftDetailed counts the leaf nodes of the legal move tree and classifies
// the moves that reach them.
func PerftDetailed(board chess.Board, depth int) PerftStats {
	var stats PerftStats
	if depth <= 0 {
		stats.Nodes = 1
		return stats
	}
	for m, next := range legalMoves(board) {
		if depth > 1 {
			stats.Add(PerftDetailed(next, depth-1))
			continue
		}
		stats.Add(LeafStats(m, next))
	}
	return stats
}

// PerftDetailedContext is PerftDetailed that gives up once ctx is done,
// checking it like PerftContext.
func PerftDetailedContext(ctx context.Context, board chess.Board, depth int) (PerftStats, error) {
	if depth <= 1 {
		return PerftDetailed(board, depth), nil
	}
	var stats PerftStats
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	for _, next := range legalMoves(board) {
		sub, err := PerftDetailedContext(ctx, next, depth-1)
		stats.Add(sub)
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// LeafStats classifies a single move that ends at a perft leaf; next is the
// board it produces.
func LeafStats(m chess.Move, next chess.Board) PerftStats {
	stats := PerftStats{Nodes: 1}
	if m.IsCapture() {
		stats.Captures++
	}
	switch m.Kind {
	case chess.EnPassant:
		stats.EnPassant++
	case chess.Castle:
		stats.Castles++
	case chess.Promotion:
		stats.Promotions++
	}
	if InCheck(next, next.SideToMove()) {
		stats.Checks++
		if !HasLegalMoves(next) {
			stats.Checkmates++
		}
	}
	return stats
}

// Divide returns the perft count below each legal root move, in generation order.
func Divide(board chess.Board, depth int) []DivideEntry {
	var entries []DivideEntry
	if depth <= 0 {
		return entries
	}
	for m, next := range legalMoves(board) {
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(next, depth-1)})
	}
	return entries
}
