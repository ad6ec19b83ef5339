// Package chess provides the board data model for the rules engine:
// sides, pieces, squares, the immutable Board value and the Move proposal.
package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Side represents the colour of a piece or player.
type Side uint8

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn direction in ranks).
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank holding the side's king and rooks at game start.
func (s Side) HomeRank() Rank {
	if s == White {
		return Rank1
	}
	return Rank8
}

// PawnRank returns the rank the side's pawns start on.
func (s Side) PawnRank() Rank {
	if s == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the last rank for the side's pawns.
func (s Side) PromotionRank() Rank {
	if s == White {
		return Rank8
	}
	return Rank1
}

// PieceKind represents a chess piece type.
type PieceKind uint8

const (
	NoKind PieceKind = iota // Absent; only used for empty squares and "no promotion"
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the notation letter of a piece kind. Pawns have no letter.
func (k PieceKind) Letter() string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// IsPromotionChoice reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotionChoice() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PromotionChoices lists the kinds a pawn may promote to.
var PromotionChoices = [...]PieceKind{Queen, Rook, Bishop, Knight}

// Occupant is the content of a square: either Empty or a piece of a side.
type Occupant struct {
	Kind PieceKind
	Side Side
}

// Empty is the occupant of a square holding no piece.
var Empty = Occupant{}

// IsEmpty returns true if no piece occupies the square.
func (o Occupant) IsEmpty() bool {
	return o.Kind == NoKind
}

// Is returns true if the occupant is a piece of the given kind and side.
func (o Occupant) Is(side Side, kind PieceKind) bool {
	return o.Kind == kind && o.Side == side && kind != NoKind
}

// BelongsTo returns true if the occupant is a piece of the given side.
func (o Occupant) BelongsTo(side Side) bool {
	return !o.IsEmpty() && o.Side == side
}

// String returns a short description, e.g. "White Knight" or "Empty".
func (o Occupant) String() string {
	if o.IsEmpty() {
		return "Empty"
	}
	return o.Side.String() + " " + o.Kind.String()
}

// W creates a white piece.
func W(kind PieceKind) Occupant {
	return Occupant{Kind: kind, Side: White}
}

// B creates a black piece.
func B(kind PieceKind) Occupant {
	return Occupant{Kind: kind, Side: Black}
}

// File represents a chess file (column), 0 for a through 7 for h.
type File int8

// Rank represents a chess rank (row), 0 for rank 1 through 7 for rank 8.
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// BoardSize is the number of files and of ranks.
const BoardSize = 8

// Valid returns true if the file is within a-h.
func (f File) Valid() bool {
	return f >= FileA && f <= FileH
}

// Valid returns true if the rank is within 1-8.
func (r Rank) Valid() bool {
	return r >= Rank1 && r <= Rank8
}

// String returns the file letter.
func (f File) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('a' + f))
}

// String returns the rank digit as displayed (1-8).
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('1' + r))
}

// Square is a board coordinate encoded as rank*8 + file.
// Values outside 0-63 are never produced by this package's constructors.
type Square int8

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

// Named squares, a1 = 0 through h8 = 63.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = iota*8 + 0, iota*8 + 1, iota*8 + 2, iota*8 + 3, iota*8 + 4, iota*8 + 5, iota*8 + 6, iota*8 + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// NewSquare builds a square from a file and a rank.
// It fails with ErrOutOfBounds when either component is outside 0-7.
func NewSquare(file File, rank Rank) (Square, error) {
	if !file.Valid() || !rank.Valid() {
		return NoSquare, errors.Wrapf(errors.ErrOutOfBounds, "file %d rank %d", file, rank)
	}
	return makeSquare(file, rank), nil
}

// ParseSquare converts algebraic coordinates such as "e4" into a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrOutOfBounds, "square %q", s)
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1'))
}

// Offset returns the square displaced by the given file and rank deltas,
// and false if that leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := int(s.File()) + df
	r := int(s.Rank()) + dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return NoSquare, false
	}
	return makeSquare(File(f), Rank(r)), true
}

func makeSquare(file File, rank Rank) Square {
	return Square(int8(rank)*BoardSize + int8(file))
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s >= A1 && s <= H8
}

// File returns the file component of the square.
func (s Square) File() File {
	return File(s % BoardSize)
}

// Rank returns the rank component of the square.
func (s Square) Rank() Rank {
	return Rank(s / BoardSize)
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.File())+int(s.Rank()))%2 == 1
}

// String returns algebraic coordinates, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// CastleSide names the wing a castling move goes to.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the castling notation for the side.
func (c CastleSide) String() string {
	switch c {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// CastlingRights records which of the four castling options are still held.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastlingRights  CastlingRights = 0
	AllCastlingRights                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the right for a side castling towards a wing.
func CastlingRight(side Side, wing CastleSide) CastlingRights {
	switch {
	case side == White && wing == Kingside:
		return WhiteKingside
	case side == White && wing == Queenside:
		return WhiteQueenside
	case side == Black && wing == Kingside:
		return BlackKingside
	case side == Black && wing == Queenside:
		return BlackQueenside
	default:
		return NoCastlingRights
	}
}

// Has returns true if every right in r is held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != 0 && c&r == r
}

// Without returns the rights with r revoked.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	s := ""
	if c.Has(WhiteKingside) {
		s += "K"
	}
	if c.Has(WhiteQueenside) {
		s += "Q"
	}
	if c.Has(BlackKingside) {
		s += "k"
	}
	if c.Has(BlackQueenside) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
