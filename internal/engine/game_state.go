package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status summarises the situation of the side to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "normal"
	}
}

// PositionStatus classifies the position for the side to move. Declaring
// the game over is left to the caller.
func PositionStatus(board chess.Board) Status {
	inCheck := InCheck(board, board.SideToMove())
	hasMoves := HasLegalMoves(board)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Normal
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board chess.Board) bool {
	return InCheck(board, board.SideToMove()) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board chess.Board) bool {
	return !InCheck(board, board.SideToMove()) && !HasLegalMoves(board)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.At(sq)
		if piece.IsEmpty() || piece.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		switch piece.Kind {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Side == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
