package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.SideToMove() != White {
			t.Errorf("SideToMove() = %v; want White", b.SideToMove())
		}
		if b.CastlingRights() != AllCastlingRights {
			t.Errorf("CastlingRights() = %v; want KQkq", b.CastlingRights())
		}
		if sq, ok := b.EnPassantTarget(); ok {
			t.Errorf("EnPassantTarget() = %v; want none", sq)
		}
		if b.HalfmoveClock() != 0 {
			t.Errorf("HalfmoveClock() = %d; want 0", b.HalfmoveClock())
		}
	})

	t.Run("every square holds the standard piece", func(t *testing.T) {
		want := map[Square]Occupant{
			A1: W(Rook), B1: W(Knight), C1: W(Bishop), D1: W(Queen),
			E1: W(King), F1: W(Bishop), G1: W(Knight), H1: W(Rook),
			A8: B(Rook), B8: B(Knight), C8: B(Bishop), D8: B(Queen),
			E8: B(King), F8: B(Bishop), G8: B(Knight), H8: B(Rook),
		}
		for f := FileA; f <= FileH; f++ {
			want[makeSquare(f, Rank2)] = W(Pawn)
			want[makeSquare(f, Rank7)] = B(Pawn)
		}

		for sq := A1; sq <= H8; sq++ {
			got, err := b.OccupantAt(sq)
			if err != nil {
				t.Fatalf("OccupantAt(%v) error: %v", sq, err)
			}
			if got != want[sq] {
				t.Errorf("OccupantAt(%v) = %v; want %v", sq, got, want[sq])
			}
		}
	})

	t.Run("one king per side", func(t *testing.T) {
		if sq, ok := b.KingSquare(White); !ok || sq != E1 {
			t.Errorf("KingSquare(White) = %v, %v; want e1, true", sq, ok)
		}
		if sq, ok := b.KingSquare(Black); !ok || sq != E8 {
			t.Errorf("KingSquare(Black) = %v, %v; want e8, true", sq, ok)
		}
	})
}

func TestOccupantAt_OutOfBounds(t *testing.T) {
	b := NewBoard()
	for _, sq := range []Square{NoSquare, 64, 100, -20} {
		got, err := b.OccupantAt(sq)
		if !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Errorf("OccupantAt(%d) error = %v; want ErrOutOfBounds", sq, err)
		}
		if got != Empty {
			t.Errorf("OccupantAt(%d) = %v; want Empty", sq, got)
		}
		if b.At(sq) != Empty {
			t.Errorf("At(%d) = %v; want Empty", sq, b.At(sq))
		}
	}
}

func TestGrid(t *testing.T) {
	b := NewBoard()
	g := b.Grid()

	if g[0][0] != B(Rook) {
		t.Errorf("Grid()[0][0] = %v; want black rook (a8)", g[0][0])
	}
	if g[7][4] != W(King) {
		t.Errorf("Grid()[7][4] = %v; want white king (e1)", g[7][4])
	}
	if g[0][3] != B(Queen) {
		t.Errorf("Grid()[0][3] = %v; want black queen (d8)", g[0][3])
	}
	for col := 0; col < BoardSize; col++ {
		if g[4][col] != Empty {
			t.Errorf("Grid()[4][%d] = %v; want Empty", col, g[4][col])
		}
	}
}

func TestInspectionIsIdempotent(t *testing.T) {
	b := NewBoard()
	before := b.Setup()
	first := b.Grid()

	for i := 0; i < 3; i++ {
		g := b.Grid()
		// Writing to the returned copy must not reach the board.
		g[7][4] = Empty
		for sq := A1; sq <= H8; sq++ {
			if _, err := b.OccupantAt(sq); err != nil {
				t.Fatalf("OccupantAt(%v) error: %v", sq, err)
			}
		}
	}

	if diff := cmp.Diff(first, b.Grid()); diff != "" {
		t.Errorf("Grid() changed between calls (-first +now):\n%s", diff)
	}
	if diff := cmp.Diff(before, b.Setup()); diff != "" {
		t.Errorf("board state changed by inspection (-before +after):\n%s", diff)
	}
}

func TestNewBoardFromSetup(t *testing.T) {
	t.Run("round trip through Setup", func(t *testing.T) {
		original := NewBoard()
		rebuilt, err := NewBoardFromSetup(original.Setup())
		if err != nil {
			t.Fatalf("NewBoardFromSetup() error: %v", err)
		}
		if rebuilt != original {
			t.Error("rebuilt board differs from the original")
		}
	})

	t.Run("edits to a setup do not reach the board", func(t *testing.T) {
		original := NewBoard()
		s := original.Setup()
		s.Place(E4, W(Pawn))
		s.Place(E2, Empty)
		s.SideToMove = Black

		if original.At(E4) != Empty || original.At(E2) != W(Pawn) {
			t.Error("original board changed after editing its Setup")
		}
		if original.SideToMove() != White {
			t.Error("original side to move changed after editing its Setup")
		}
	})

	t.Run("en-passant target", func(t *testing.T) {
		s := NewBoard().Setup()
		s.EnPassant = E3
		b, err := NewBoardFromSetup(s)
		if err != nil {
			t.Fatalf("NewBoardFromSetup() error: %v", err)
		}
		if sq, ok := b.EnPassantTarget(); !ok || sq != E3 {
			t.Errorf("EnPassantTarget() = %v, %v; want e3, true", sq, ok)
		}
	})

	tests := []struct {
		name    string
		edit    func(*Setup)
		wantErr error
	}{
		{"bad side", func(s *Setup) { s.SideToMove = 7 }, chesserrors.ErrInvalidPosition},
		{"bad castling bits", func(s *Setup) { s.Castling = 0x80 }, chesserrors.ErrInvalidPosition},
		{"bad piece kind", func(s *Setup) { s.Squares[D4] = Occupant{Kind: 12} }, chesserrors.ErrInvalidPosition},
		{"en-passant off board", func(s *Setup) { s.EnPassant = 70 }, chesserrors.ErrOutOfBounds},
		{"en-passant wrong rank", func(s *Setup) { s.EnPassant = E4 }, chesserrors.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSetup()
			tt.edit(&s)
			if _, err := NewBoardFromSetup(s); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBoardFromSetup() error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}
