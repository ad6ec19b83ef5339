package engine

import (
	"iter"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// maxTargets bounds the candidate squares of one piece (a queen in the open
// reaches 27; a king adds its two castling squares to eight steps).
const maxTargets = 28

// GenerateLegalMoves lazily yields every legal move for the side to move.
// Moves are produced square by square from a1 to h8; stopping the iteration
// early skips the remaining work.
func GenerateLegalMoves(board chess.Board) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		for m := range legalMoves(board) {
			if !yield(m) {
				return
			}
		}
	}
}

// LegalMoves returns all legal moves for the side to move.
func LegalMoves(board chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for m := range legalMoves(board) {
		moves = append(moves, m)
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board chess.Board) bool {
	for range legalMoves(board) {
		return true
	}
	return false
}

// Successors yields each legal move together with the board it produces,
// in the same order as GenerateLegalMoves.
func Successors(board chess.Board) iter.Seq2[chess.Move, chess.Board] {
	return legalMoves(board)
}

// legalMoves yields each legal move together with the board it produces.
func legalMoves(board chess.Board) iter.Seq2[chess.Move, chess.Board] {
	return func(yield func(chess.Move, chess.Board) bool) {
		side := board.SideToMove()
		buf := make([]chess.Square, 0, maxTargets)

		for from := chess.A1; from <= chess.H8; from++ {
			piece := board.At(from)
			if !piece.BelongsTo(side) {
				continue
			}

			buf = candidateTargets(board, from, piece, buf)
			for _, to := range buf {
				if piece.Kind == chess.Pawn && to.Rank() == side.PromotionRank() {
					for _, promo := range chess.PromotionChoices {
						if !tryYield(board, from, to, promo, yield) {
							return
						}
					}
					continue
				}
				if !tryYield(board, from, to, chess.NoKind, yield) {
					return
				}
			}
		}
	}
}

// tryYield derives and simulates one candidate move, yielding it if legal.
// It returns false when the consumer asked to stop.
func tryYield(board chess.Board, from, to chess.Square, promo chess.PieceKind, yield func(chess.Move, chess.Board) bool) bool {
	m, err := deriveMove(board, from, to, promo)
	if err != nil {
		return true
	}
	next, ok := legalSuccessor(board, m)
	if !ok {
		return true
	}
	return yield(m, next)
}
