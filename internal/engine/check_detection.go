package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheck returns true if the given side's king is attacked.
// A side without a king is never in check.
func InCheck(board chess.Board, side chess.Side) bool {
	kingSq, ok := board.KingSquare(side)
	if !ok {
		return false
	}
	return IsAttacked(board, kingSq, side.Opposite())
}

// IsAttacked returns true if any piece of the attacking side could capture
// onto sq by its movement rules. It never considers whether such a capture
// would expose the attacker's own king, so it cannot recurse into legality
// checking.
func IsAttacked(board chess.Board, sq chess.Square, by chess.Side) bool {
	if !sq.Valid() {
		return false
	}
	for from := chess.A1; from <= chess.H8; from++ {
		piece := board.At(from)
		if !piece.BelongsTo(by) {
			continue
		}
		if attacks(board, piece, from, sq) {
			return true
		}
	}
	return false
}

// Attackers lists the squares of the attacking side's pieces that attack sq.
func Attackers(board chess.Board, sq chess.Square, by chess.Side) []chess.Square {
	var found []chess.Square
	if !sq.Valid() {
		return found
	}
	for from := chess.A1; from <= chess.H8; from++ {
		piece := board.At(from)
		if piece.BelongsTo(by) && attacks(board, piece, from, sq) {
			found = append(found, from)
		}
	}
	return found
}
