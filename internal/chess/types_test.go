package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestSide(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap sides")
	}
	if White.Forward() != 1 || Black.Forward() != -1 {
		t.Error("Forward() = wrong pawn direction")
	}
	if White.PromotionRank() != Rank8 || Black.PromotionRank() != Rank1 {
		t.Error("PromotionRank() = wrong rank")
	}
	if White.PawnRank() != Rank2 || Black.PawnRank() != Rank7 {
		t.Error("PawnRank() = wrong rank")
	}
}

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq   Square
		file File
		rank Rank
		name string
	}{
		{A1, FileA, Rank1, "a1"},
		{H1, FileH, Rank1, "h1"},
		{E4, FileE, Rank4, "e4"},
		{B6, FileB, Rank6, "b6"},
		{A8, FileA, Rank8, "a8"},
		{H8, FileH, Rank8, "h8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sq.File() != tt.file || tt.sq.Rank() != tt.rank {
				t.Errorf("%v = (%d, %d); want (%d, %d)", tt.sq, tt.sq.File(), tt.sq.Rank(), tt.file, tt.rank)
			}
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			sq, err := NewSquare(tt.file, tt.rank)
			if err != nil || sq != tt.sq {
				t.Errorf("NewSquare(%d, %d) = %v, %v; want %v", tt.file, tt.rank, sq, err, tt.sq)
			}
			parsed, err := ParseSquare(tt.name)
			if err != nil || parsed != tt.sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", tt.name, parsed, err, tt.sq)
			}
		})
	}
}

func TestSquareOutOfBounds(t *testing.T) {
	bad := []struct {
		file File
		rank Rank
	}{
		{-1, 0}, {8, 0}, {0, -1}, {0, 8}, {20, 20},
	}
	for _, tt := range bad {
		if _, err := NewSquare(tt.file, tt.rank); !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Errorf("NewSquare(%d, %d) error = %v; want ErrOutOfBounds", tt.file, tt.rank, err)
		}
	}

	for _, s := range []string{"", "e", "i1", "a9", "a0", "E4", "e44"} {
		if _, err := ParseSquare(s); !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrOutOfBounds", s, err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	if sq, ok := E4.Offset(1, 2); !ok || sq != F6 {
		t.Errorf("e4.Offset(1, 2) = %v, %v; want f6, true", sq, ok)
	}
	if _, ok := H8.Offset(1, 0); ok {
		t.Error("h8.Offset(1, 0) should leave the board")
	}
	if _, ok := A1.Offset(0, -1); ok {
		t.Error("a1.Offset(0, -1) should leave the board")
	}
}

func TestCastlingRights(t *testing.T) {
	rights := AllCastlingRights.Without(WhiteQueenside | BlackKingside)
	if got := rights.String(); got != "Kq" {
		t.Errorf("String() = %q; want %q", got, "Kq")
	}
	if !rights.Has(WhiteKingside) || rights.Has(WhiteQueenside) {
		t.Error("Has() reports wrong rights")
	}
	if NoCastlingRights.String() != "-" {
		t.Errorf("NoCastlingRights.String() = %q; want -", NoCastlingRights.String())
	}
	if CastlingRight(Black, Queenside) != BlackQueenside {
		t.Error("CastlingRight(Black, Queenside) != BlackQueenside")
	}
	if CastlingRight(White, NoCastle) != NoCastlingRights {
		t.Error("CastlingRight(White, NoCastle) should be empty")
	}
}

func TestOccupant(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty.IsEmpty() = false")
	}
	if !W(Knight).Is(White, Knight) || W(Knight).Is(Black, Knight) {
		t.Error("Is() mismatch")
	}
	if Empty.BelongsTo(White) {
		t.Error("Empty should belong to no side")
	}
	if got := B(Queen).String(); got != "Black Queen" {
		t.Errorf("String() = %q; want %q", got, "Black Queen")
	}
	for _, k := range PromotionChoices {
		if !k.IsPromotionChoice() {
			t.Errorf("%v should be a promotion choice", k)
		}
	}
	if Pawn.IsPromotionChoice() || King.IsPromotionChoice() {
		t.Error("pawn and king are not promotion choices")
	}
}
