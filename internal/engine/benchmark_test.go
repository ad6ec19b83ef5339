package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkValidateMove(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to chess.Square
	}{
		{"PawnMove", benchFENs["Initial"], chess.E2, chess.E4},
		{"PieceMove", benchFENs["Midgame"], chess.F3, chess.G5},
		{"Castle", benchFENs["Castling"], chess.E1, chess.G1},
		{"EnPassant", benchFENs["EnPassant"], chess.F5, chess.E6},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			board := testutil.MustBoard(b, tc.fen)
			m, ok := ResolveMove(board, tc.from, tc.to, chess.NoKind)
			if !ok {
				b.Fatalf("no legal move %v%v", tc.from, tc.to)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ValidateMove(board, m)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := [][2]chess.Square{
		{chess.E2, chess.E4}, {chess.E7, chess.E5},
		{chess.G1, chess.F3}, {chess.B8, chess.C6},
		{chess.F1, chess.C4}, {chess.F8, chess.C5},
	}
	start := testutil.MustBoard(b, benchFENs["Initial"])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := start
		for _, mv := range moves {
			m, _ := ResolveMove(board, mv[0], mv[1], chess.NoKind)
			board, _ = MakeMove(board, m)
		}
	}
}

func BenchmarkInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board := testutil.MustBoard(b, benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			InCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board := testutil.MustBoard(b, checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			InCheck(board, chess.White)
		}
	})
}

func BenchmarkLegalMoves(b *testing.B) {
	for _, name := range []string{"Initial", "Midgame", "Endgame", "Complex"} {
		b.Run(name, func(b *testing.B) {
			board := testutil.MustBoard(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board)
			}
		})
	}
}

func BenchmarkHasLegalMoves(b *testing.B) {
	for _, name := range []string{"Initial", "Midgame", "Endgame"} {
		b.Run(name, func(b *testing.B) {
			board := testutil.MustBoard(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board)
			}
		})
	}
}

func BenchmarkPerft3(b *testing.B) {
	board := testutil.MustBoard(b, benchFENs["Initial"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}
