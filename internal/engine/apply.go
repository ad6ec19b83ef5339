package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// successor returns the board after a derived move without judging its
// legality: the piece is relocated, the captured piece removed, castling
// rights and the en-passant target updated, the half-move clock advanced and
// the side to move flipped.
func successor(board chess.Board, m chess.Move) (chess.Board, error) {
	s := board.Setup()
	side := board.SideToMove()

	s.Squares[m.From] = chess.Empty

	switch m.Kind {
	case chess.Castle:
		plan := planCastle(side, m.CastleSide)
		s.Squares[plan.kingTo] = m.Piece
		s.Squares[plan.rookFrom] = chess.Empty
		s.Squares[plan.rookTo] = chess.Occupant{Kind: chess.Rook, Side: side}

	case chess.EnPassant:
		s.Squares[enPassantVictim(m.To, side)] = chess.Empty
		s.Squares[m.To] = m.Piece

	case chess.Promotion:
		s.Squares[m.To] = chess.Occupant{Kind: m.Promotion, Side: side}

	default:
		s.Squares[m.To] = m.Piece
	}

	s.Castling = updateCastlingRights(s.Castling, m)

	// The target only survives the half-move that created it.
	s.EnPassant = chess.NoSquare
	if skipped, ok := doubleStepSkipped(m); ok {
		s.EnPassant = skipped
	}

	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		s.HalfmoveClock = 0
	} else {
		s.HalfmoveClock++
	}

	s.SideToMove = side.Opposite()

	return chess.NewBoardFromSetup(s)
}

// legalSuccessor simulates a derived move on a scratch board and returns
// it only if the mover's king is not attacked afterwards.
func legalSuccessor(board chess.Board, m chess.Move) (chess.Board, bool) {
	next, err := successor(board, m)
	if err != nil {
		return chess.Board{}, false
	}
	if InCheck(next, board.SideToMove()) {
		return chess.Board{}, false
	}
	return next, true
}
