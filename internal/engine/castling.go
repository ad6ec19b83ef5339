package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlePlan holds the squares involved in one castling option.
type castlePlan struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	passes           chess.Square // the square the king crosses
}

// planCastle returns the squares for a side castling towards a wing.
func planCastle(side chess.Side, wing chess.CastleSide) castlePlan {
	rank := side.HomeRank()
	sq := func(f chess.File) chess.Square {
		s, _ := chess.NewSquare(f, rank)
		return s
	}
	if wing == chess.Kingside {
		return castlePlan{
			kingFrom: sq(chess.FileE), kingTo: sq(chess.FileG),
			rookFrom: sq(chess.FileH), rookTo: sq(chess.FileF),
			passes: sq(chess.FileF),
		}
	}
	return castlePlan{
		kingFrom: sq(chess.FileE), kingTo: sq(chess.FileC),
		rookFrom: sq(chess.FileA), rookTo: sq(chess.FileD),
		passes: sq(chess.FileD),
	}
}

// castleWing recognises a king move as a castling attempt by its squares.
func castleWing(side chess.Side, from, to chess.Square) chess.CastleSide {
	for _, wing := range [...]chess.CastleSide{chess.Kingside, chess.Queenside} {
		plan := planCastle(side, wing)
		if from == plan.kingFrom && to == plan.kingTo {
			return wing
		}
	}
	return chess.NoCastle
}

// deriveCastle checks every castling precondition except the final
// self-check test, which the caller applies to all moves alike.
func deriveCastle(board chess.Board, m chess.Move, wing chess.CastleSide) (chess.Move, error) {
	side := board.SideToMove()
	if !board.CastlingRights().Has(chess.CastlingRight(side, wing)) {
		return m, errNoCastlingRight
	}

	plan := planCastle(side, wing)
	if !board.At(plan.kingFrom).Is(side, chess.King) || !board.At(plan.rookFrom).Is(side, chess.Rook) {
		return m, errNoCastlingRight
	}

	// All squares between king and rook must be empty.
	if !isPathClear(board, plan.kingFrom, plan.rookFrom) {
		return m, errCastlePathBlocked
	}

	enemy := side.Opposite()
	if IsAttacked(board, plan.kingFrom, enemy) {
		return m, errCastleOutOfCheck
	}
	if IsAttacked(board, plan.passes, enemy) || IsAttacked(board, plan.kingTo, enemy) {
		return m, errCastleThroughCheck
	}

	m.Kind = chess.Castle
	m.CastleSide = wing
	m.Captured = chess.Empty
	return m, nil
}

// rookCorners maps each original rook square to the right it guards.
var rookCorners = map[chess.Square]chess.CastlingRights{
	chess.H1: chess.WhiteKingside,
	chess.A1: chess.WhiteQueenside,
	chess.H8: chess.BlackKingside,
	chess.A8: chess.BlackQueenside,
}

// updateCastlingRights revokes the rights a move gives up: a king move loses
// both of its side's rights, and any move from or onto a rook's original
// square loses the right tied to that rook.
func updateCastlingRights(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	if m.Piece.Kind == chess.King {
		rights = rights.Without(chess.CastlingRight(m.Piece.Side, chess.Kingside) |
			chess.CastlingRight(m.Piece.Side, chess.Queenside))
	}
	if r, ok := rookCorners[m.From]; ok {
		rights = rights.Without(r)
	}
	if r, ok := rookCorners[m.To]; ok {
		rights = rights.Without(r)
	}
	return rights
}
