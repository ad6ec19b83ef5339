package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	knightOffsets   = [...][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [...][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [...][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = [...][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	noSlidingDirs   = [0][2]int{}
	pawnCaptureCols = [...]int{-1, 1}
)

// canPieceMove checks whether a non-pawn piece can travel from one square to
// another by its movement pattern, with sliding pieces requiring every
// intervening square to be empty. Occupancy of the destination is not checked.
func canPieceMove(board chess.Board, kind chess.PieceKind, from, to chess.Square) bool {
	colDiff := abs(int(to.File()) - int(from.File()))
	rankDiff := abs(int(to.Rank()) - int(from.Rank()))
	if colDiff == 0 && rankDiff == 0 {
		return false
	}

	switch kind {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff != rankDiff && colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// pawnAttacks reports whether a pawn of the given side on from attacks to.
func pawnAttacks(side chess.Side, from, to chess.Square) bool {
	rankDiff := int(to.Rank()) - int(from.Rank())
	colDiff := abs(int(to.File()) - int(from.File()))
	return rankDiff == side.Forward() && colDiff == 1
}

// attacks reports whether the piece on from could capture onto to, ignoring
// whether doing so would expose its own king.
func attacks(board chess.Board, piece chess.Occupant, from, to chess.Square) bool {
	if piece.Kind == chess.Pawn {
		return pawnAttacks(piece.Side, from, to)
	}
	return canPieceMove(board, piece.Kind, from, to)
}

// isPathClear checks that every square strictly between from and to is empty.
// The squares must share a rank, a file or a diagonal.
func isPathClear(board chess.Board, from, to chess.Square) bool {
	colDir := sign(int(to.File()) - int(from.File()))
	rankDir := sign(int(to.Rank()) - int(from.Rank()))

	sq, ok := from.Offset(colDir, rankDir)
	for ok && sq != to {
		if !board.At(sq).IsEmpty() {
			return false
		}
		sq, ok = sq.Offset(colDir, rankDir)
	}
	return ok
}

// slidingDirs returns the ray directions of a sliding piece.
func slidingDirs(kind chess.PieceKind) [][2]int {
	switch kind {
	case chess.Bishop:
		return diagonalDirs[:]
	case chess.Rook:
		return straightDirs[:]
	case chess.Queen:
		return allSlidingDirs[:]
	default:
		return noSlidingDirs[:]
	}
}

// candidateTargets lists the squares a piece might move to by shape alone,
// stopping sliding rays at the first occupied square (which is included).
// Every candidate still has to pass deriveMove.
func candidateTargets(board chess.Board, from chess.Square, piece chess.Occupant, buf []chess.Square) []chess.Square {
	buf = buf[:0]
	add := func(df, dr int) {
		if sq, ok := from.Offset(df, dr); ok {
			buf = append(buf, sq)
		}
	}

	switch piece.Kind {
	case chess.Pawn:
		dir := piece.Side.Forward()
		add(0, dir)
		if from.Rank() == piece.Side.PawnRank() {
			add(0, 2*dir)
		}
		for _, dc := range pawnCaptureCols {
			add(dc, dir)
		}

	case chess.Knight:
		for _, o := range knightOffsets {
			add(o[0], o[1])
		}

	case chess.King:
		for _, o := range kingOffsets {
			add(o[0], o[1])
		}
		add(2, 0)
		add(-2, 0)

	case chess.Bishop, chess.Rook, chess.Queen:
		for _, dir := range slidingDirs(piece.Kind) {
			sq, ok := from.Offset(dir[0], dir[1])
			for ok {
				buf = append(buf, sq)
				if !board.At(sq).IsEmpty() {
					break // Blocked
				}
				sq, ok = sq.Offset(dir[0], dir[1])
			}
		}
	}

	return buf
}
