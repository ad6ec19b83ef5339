package chess

import "strings"

// MoveKind classifies a move.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	EnPassant
	Castle
	Promotion
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "Quiet"
	case Capture:
		return "Capture"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Move is a proposal to move a piece. It is only meaningful relative to the
// Board it was built against and carries no validity of its own.
type Move struct {
	// Source and destination squares. For castling these are the king's squares.
	From Square
	To   Square

	// The piece standing on From.
	Piece Occupant

	// The piece removed by the move (Empty if none). For en-passant this is
	// the passed pawn, which does not stand on To.
	Captured Occupant

	Kind MoveKind

	// The wing for Castle moves.
	CastleSide CastleSide

	// The piece chosen for Promotion moves.
	Promotion PieceKind
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant || !m.Captured.IsEmpty()
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == Castle
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion
}

// String renders the move without reference to a board.
func (m Move) String() string {
	return Render(m, Board{})
}

// Render formats a move in short coordinate notation:
// <PieceLetter><from>[x]<to>, e.g. "Ra3b6" or "Kh2xd5". Pawns have no letter,
// castling renders as "O-O" or "O-O-O" and promotions append "=<PieceLetter>".
// The board supplies the moving piece when the move does not carry one.
func Render(m Move, b Board) string {
	if m.Kind == Castle {
		if m.CastleSide == Queenside {
			return "O-O-O"
		}
		return "O-O"
	}

	piece := m.Piece
	if piece.IsEmpty() {
		piece = b.At(m.From)
	}

	var sb strings.Builder
	sb.Grow(8)
	sb.WriteString(piece.Kind.Letter())
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Kind == Promotion {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}
	return sb.String()
}
