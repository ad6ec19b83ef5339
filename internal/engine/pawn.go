package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// derivePawn classifies a pawn move: single or double advance onto empty
// squares, a diagonal capture, or an en-passant capture. Reaching the last
// rank requires a promotion choice; promotion is refused anywhere else.
func derivePawn(board chess.Board, m chess.Move, promotion chess.PieceKind) (chess.Move, error) {
	side := m.Piece.Side
	dir := side.Forward()
	colDiff := int(m.To.File()) - int(m.From.File())
	rankDiff := int(m.To.Rank()) - int(m.From.Rank())
	target := board.At(m.To)

	switch {
	case colDiff == 0 && rankDiff == dir:
		if !target.IsEmpty() {
			return m, errPawnBlocked
		}
		m.Kind = chess.Quiet

	case colDiff == 0 && rankDiff == 2*dir:
		if m.From.Rank() != side.PawnRank() {
			return m, errBadGeometry
		}
		skipped, _ := m.From.Offset(0, dir)
		if !board.At(skipped).IsEmpty() || !target.IsEmpty() {
			return m, errPawnBlocked
		}
		m.Kind = chess.Quiet

	case abs(colDiff) == 1 && rankDiff == dir:
		switch {
		case target.BelongsTo(side.Opposite()):
			m.Kind = chess.Capture
		case target.IsEmpty() && isEnPassantTarget(board, m.To):
			victim := enPassantVictim(m.To, side)
			if !board.At(victim).Is(side.Opposite(), chess.Pawn) {
				return m, errNothingToCapture
			}
			m.Kind = chess.EnPassant
			m.Captured = board.At(victim)
		default:
			return m, errNothingToCapture
		}

	default:
		return m, errBadGeometry
	}

	if m.To.Rank() == side.PromotionRank() {
		if !promotion.IsPromotionChoice() {
			return m, errBadPromotion
		}
		m.Kind = chess.Promotion
		m.Promotion = promotion
	} else if promotion != chess.NoKind {
		return m, errBadPromotion
	}

	return m, nil
}

// isEnPassantTarget reports whether sq is the board's en-passant target.
func isEnPassantTarget(board chess.Board, sq chess.Square) bool {
	ep, ok := board.EnPassantTarget()
	return ok && ep == sq
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture landing on target.
func enPassantVictim(target chess.Square, capturer chess.Side) chess.Square {
	sq, _ := target.Offset(0, -capturer.Forward())
	return sq
}

// doubleStepSkipped returns the square a pawn skips with a two-square
// advance, and false for any other move.
func doubleStepSkipped(m chess.Move) (chess.Square, bool) {
	if m.Piece.Kind != chess.Pawn {
		return chess.NoSquare, false
	}
	rankDiff := int(m.To.Rank()) - int(m.From.Rank())
	if abs(rankDiff) != 2 {
		return chess.NoSquare, false
	}
	return m.From.Offset(0, sign(rankDiff))
}
