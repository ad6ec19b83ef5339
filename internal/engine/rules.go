// Package engine provides chess move validation and successor-board
// computation on top of the chess board model. Every function is pure: input
// boards are values and are never modified.
package engine

import (
	"errors"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// Rejection reasons. These never escape as sentinel values; MakeMove reports
// them as the Reason of a MoveError wrapping ErrIllegalMove.
var (
	errOffBoard           = errors.New("square off the board")
	errNoPiece            = errors.New("no piece on the source square")
	errWrongSide          = errors.New("piece belongs to the side not to move")
	errOwnPiece           = errors.New("destination holds a piece of the same side")
	errBadGeometry        = errors.New("piece cannot move that way")
	errPathBlocked        = errors.New("path is blocked")
	errPawnBlocked        = errors.New("pawn advance is blocked")
	errNothingToCapture   = errors.New("pawn diagonal move captures nothing")
	errBadPromotion       = errors.New("invalid promotion")
	errNoCastlingRight    = errors.New("castling right not held")
	errCastlePathBlocked  = errors.New("squares between king and rook are occupied")
	errCastleOutOfCheck   = errors.New("cannot castle out of check")
	errCastleThroughCheck = errors.New("king passes through or lands on an attacked square")
	errTagMismatch        = errors.New("move does not match the board")
	errSelfCheck          = errors.New("move leaves own king in check")
)

// ValidateMove reports whether a move is fully legal for the side to move.
// It never fails: every kind of illegality, including malformed input,
// yields false.
//
// The move's Piece, Kind, CastleSide and Promotion must be what the board
// implies. Captured may be left Empty on any non-quiet move; the board then
// supplies it. A Captured that is set must name the piece actually taken.
func ValidateMove(board chess.Board, move chess.Move) bool {
	_, err := checkMove(board, move)
	return err == nil
}

// MakeMove returns the position after a legal move. The move must pass
// ValidateMove; otherwise MakeMove returns a *errors.MoveError wrapping
// errors.ErrIllegalMove and a zero Board.
func MakeMove(board chess.Board, move chess.Move) (chess.Board, error) {
	canonical, reason := checkMove(board, move)
	if reason != nil {
		return chess.Board{}, &chesserrors.MoveError{
			Err:    chesserrors.ErrIllegalMove,
			Move:   chess.Render(move, board),
			Reason: reason.Error(),
		}
	}
	next, err := successor(board, canonical)
	if err != nil {
		return chess.Board{}, &chesserrors.MoveError{
			Err:    chesserrors.ErrIllegalMove,
			Move:   chess.Render(move, board),
			Reason: err.Error(),
		}
	}
	return next, nil
}

// ResolveMove builds the fully tagged legal move that takes the piece on
// from to to, choosing promotion as the promoted piece (chess.NoKind for
// non-promoting moves). It returns false if no such legal move exists.
func ResolveMove(board chess.Board, from, to chess.Square, promotion chess.PieceKind) (chess.Move, bool) {
	m, err := deriveMove(board, from, to, promotion)
	if err != nil {
		return chess.Move{}, false
	}
	if _, ok := legalSuccessor(board, m); !ok {
		return chess.Move{}, false
	}
	return m, true
}

// checkMove runs the full legality algorithm and returns the fully tagged
// move, or the first reason the move is rejected.
func checkMove(board chess.Board, move chess.Move) (chess.Move, error) {
	canonical, err := deriveMove(board, move.From, move.To, move.Promotion)
	if err != nil {
		return chess.Move{}, err
	}
	if move.Captured.IsEmpty() && move.Kind != chess.Quiet {
		move.Captured = canonical.Captured
	}
	if canonical != move {
		return chess.Move{}, errTagMismatch
	}
	if _, ok := legalSuccessor(board, canonical); !ok {
		return chess.Move{}, errSelfCheck
	}
	return canonical, nil
}

// deriveMove applies the bounds, occupancy, geometry and castling rules to
// a from/to pair and returns the move as the board implies it: moving piece,
// captured piece and kind filled in. It ignores whether the mover's king is
// left attacked.
func deriveMove(board chess.Board, from, to chess.Square, promotion chess.PieceKind) (chess.Move, error) {
	m := chess.Move{From: from, To: to}
	if !from.Valid() || !to.Valid() || from == to {
		return m, errOffBoard
	}

	side := board.SideToMove()
	piece := board.At(from)
	if piece.IsEmpty() {
		return m, errNoPiece
	}
	if piece.Side != side {
		return m, errWrongSide
	}
	m.Piece = piece

	if piece.Kind == chess.King {
		if wing := castleWing(side, from, to); wing != chess.NoCastle {
			if promotion != chess.NoKind {
				return m, errBadPromotion
			}
			return deriveCastle(board, m, wing)
		}
	}

	target := board.At(to)
	if target.BelongsTo(side) {
		return m, errOwnPiece
	}
	m.Captured = target

	if piece.Kind == chess.Pawn {
		return derivePawn(board, m, promotion)
	}

	if promotion != chess.NoKind {
		return m, errBadPromotion
	}
	if !canPieceMove(board, piece.Kind, from, to) {
		if shapeOK(piece.Kind, from, to) {
			return m, errPathBlocked
		}
		return m, errBadGeometry
	}

	if target.IsEmpty() {
		m.Kind = chess.Quiet
	} else {
		m.Kind = chess.Capture
	}
	return m, nil
}

// shapeOK reports whether a slider's displacement is a legal shape, used only
// to tell a blocked path from an impossible one.
func shapeOK(kind chess.PieceKind, from, to chess.Square) bool {
	colDiff := abs(int(to.File()) - int(from.File()))
	rankDiff := abs(int(to.Rank()) - int(from.Rank()))
	switch kind {
	case chess.Bishop:
		return colDiff == rankDiff
	case chess.Rook:
		return colDiff == 0 || rankDiff == 0
	case chess.Queen:
		return colDiff == rankDiff || colDiff == 0 || rankDiff == 0
	}
	return false
}
