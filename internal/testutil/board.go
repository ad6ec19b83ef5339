package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// MustBoard decodes a FEN string and calls t.Fatal if it is invalid.
// Use this in test setup where a bad fixture should abort the test.
func MustBoard(t testing.TB, fenStr string) chess.Board {
	t.Helper()
	board, err := fen.Decode(fenStr)
	if err != nil {
		t.Fatalf("fen.Decode(%q) failed: %v", fenStr, err)
	}
	return board
}

// MustSquare parses algebraic coordinates and calls t.Fatal if they are invalid.
func MustSquare(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("chess.ParseSquare(%q) failed: %v", s, err)
	}
	return sq
}

// RenderAll renders moves against a board and returns them sorted.
func RenderAll(board chess.Board, moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, chess.Render(m, board))
	}
	sort.Strings(out)
	return out
}
