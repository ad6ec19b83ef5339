package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// Board represents a chess position with all state needed to judge legality.
// A Board is a value: methods never modify it, and successor positions are
// produced by the engine as new values.
type Board struct {
	// The board squares, indexed by Square.
	squares [NumSquares]Occupant

	// Who has the next move.
	sideToMove Side

	// Which castling options remain.
	castling CastlingRights

	// The square skipped by a pawn's two-square advance on the previous
	// half-move, if any.
	hasEnPassant bool
	enPassant    Square

	// The half-move clock since the last pawn move or capture.
	halfmoveClock uint32
}

// Grid is a read-only 8x8 view of the board. Row 0 is rank 8 (the top of a
// diagram drawn from White's side) and column 0 is the a-file.
type Grid [BoardSize][BoardSize]Occupant

var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard chess starting position: White to move,
// all castling rights held, no en-passant target and a zero half-move clock.
func NewBoard() Board {
	var b Board
	for file := FileA; file <= FileH; file++ {
		b.squares[makeSquare(file, Rank1)] = W(backRank[file])
		b.squares[makeSquare(file, Rank2)] = W(Pawn)
		b.squares[makeSquare(file, Rank7)] = B(Pawn)
		b.squares[makeSquare(file, Rank8)] = B(backRank[file])
	}
	b.sideToMove = White
	b.castling = AllCastlingRights
	b.enPassant = NoSquare
	return b
}

// OccupantAt returns the content of a square.
// It fails with ErrOutOfBounds if the square is not on the board.
func (b Board) OccupantAt(sq Square) (Occupant, error) {
	if !sq.Valid() {
		return Empty, errors.Wrapf(errors.ErrOutOfBounds, "square %d", sq)
	}
	return b.squares[sq], nil
}

// At returns the content of a square, or Empty if the square is off the board.
func (b Board) At(sq Square) Occupant {
	if !sq.Valid() {
		return Empty
	}
	return b.squares[sq]
}

// Grid returns a copy of the board as an 8x8 array of occupants.
func (b Board) Grid() Grid {
	var g Grid
	for sq := A1; sq <= H8; sq++ {
		g[Rank8-sq.Rank()][sq.File()] = b.squares[sq]
	}
	return g
}

// SideToMove returns the side that has the next move.
func (b Board) SideToMove() Side {
	return b.sideToMove
}

// CastlingRights returns the castling options still held.
func (b Board) CastlingRights() CastlingRights {
	return b.castling
}

// EnPassantTarget returns the square a pawn skipped on the previous
// half-move, and false if there is none.
func (b Board) EnPassantTarget() (Square, bool) {
	if !b.hasEnPassant {
		return NoSquare, false
	}
	return b.enPassant, true
}

// HalfmoveClock returns the number of half-moves since the last pawn move or capture.
func (b Board) HalfmoveClock() uint32 {
	return b.halfmoveClock
}

// KingSquare returns the square of the given side's king, and false if the
// side has no king on the board.
func (b Board) KingSquare(side Side) (Square, bool) {
	king := Occupant{Kind: King, Side: side}
	for sq := A1; sq <= H8; sq++ {
		if b.squares[sq] == king {
			return sq, true
		}
	}
	return NoSquare, false
}

// Setup is a fully exposed, mutable description of a position. It is the
// only way to build a Board other than NewBoard and the engine's successor
// function; Board itself has no mutators.
type Setup struct {
	// Squares, indexed by Square.
	Squares [NumSquares]Occupant

	SideToMove    Side
	Castling      CastlingRights
	EnPassant     Square // NoSquare when there is no target
	HalfmoveClock uint32
}

// NewSetup returns an empty setup: no pieces, White to move, no rights.
func NewSetup() Setup {
	return Setup{EnPassant: NoSquare}
}

// Setup returns the position as an editable Setup.
func (b Board) Setup() Setup {
	s := Setup{
		Squares:       b.squares,
		SideToMove:    b.sideToMove,
		Castling:      b.castling,
		EnPassant:     NoSquare,
		HalfmoveClock: b.halfmoveClock,
	}
	if b.hasEnPassant {
		s.EnPassant = b.enPassant
	}
	return s
}

// Place puts an occupant on a square. Off-board squares are ignored.
func (s *Setup) Place(sq Square, o Occupant) {
	if sq.Valid() {
		s.Squares[sq] = o
	}
}

// NewBoardFromSetup validates a setup and returns it as a Board.
// Only structural problems are rejected (unknown piece kinds or sides,
// an en-passant target off the third or sixth rank, unknown castling bits);
// chess plausibility such as king counts is left to the caller.
func NewBoardFromSetup(s Setup) (Board, error) {
	if s.SideToMove != White && s.SideToMove != Black {
		return Board{}, errors.Wrapf(errors.ErrInvalidPosition, "side to move %d", s.SideToMove)
	}
	if s.Castling&^AllCastlingRights != 0 {
		return Board{}, errors.Wrapf(errors.ErrInvalidPosition, "castling rights %#x", uint8(s.Castling))
	}
	for sq, o := range s.Squares {
		if o.Kind > King || (o.Side != White && o.Side != Black) {
			return Board{}, errors.Wrapf(errors.ErrInvalidPosition, "occupant of %s", Square(sq))
		}
	}

	b := Board{
		squares:       s.Squares,
		sideToMove:    s.SideToMove,
		castling:      s.Castling,
		enPassant:     NoSquare,
		halfmoveClock: s.HalfmoveClock,
	}
	if s.EnPassant != NoSquare {
		if !s.EnPassant.Valid() {
			return Board{}, errors.Wrapf(errors.ErrOutOfBounds, "en-passant square %d", s.EnPassant)
		}
		if r := s.EnPassant.Rank(); r != Rank3 && r != Rank6 {
			return Board{}, errors.Wrapf(errors.ErrInvalidPosition, "en-passant square %s", s.EnPassant)
		}
		b.hasEnPassant = true
		b.enPassant = s.EnPassant
	}
	return b, nil
}
