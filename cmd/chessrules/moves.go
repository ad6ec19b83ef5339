package main

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// promotionLetters maps the trailing letter of a coordinate move to the
// promoted piece.
var promotionLetters = map[byte]chess.PieceKind{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// parseMove turns a coordinate move such as "e2e4" or "e7e8q" into the
// legal move it names on board.
func parseMove(board chess.Board, text string) (chess.Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Reason: "expected from and to squares"}
	}

	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Reason: err.Error()}
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Reason: err.Error()}
	}

	promotion := chess.NoKind
	if len(s) == 5 {
		kind, ok := promotionLetters[s[4]]
		if !ok {
			return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Reason: "unknown promotion piece"}
		}
		promotion = kind
	}

	m, ok := engine.ResolveMove(board, from, to, promotion)
	if !ok {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Reason: "not legal in this position"}
	}
	return m, nil
}

// playMoves applies the configured moves in order and returns the final
// board with its fullmove number.
func playMoves(cfg *config.Config, board chess.Board, fullmove int) (chess.Board, int, error) {
	for i, text := range cfg.Moves {
		m, err := parseMove(board, text)
		if err != nil {
			cfg.Logf(config.Commentary, "move %d: %s rejected", i+1, text)
			return board, fullmove, err
		}
		next, err := engine.MakeMove(board, m)
		if err != nil {
			return board, fullmove, err
		}
		if board.SideToMove() == chess.Black {
			cfg.Logf(config.Commentary, "%d... %s", fullmove, chess.Render(m, board))
			fullmove++
		} else {
			cfg.Logf(config.Commentary, "%d. %s", fullmove, chess.Render(m, board))
		}
		board = next
	}
	return board, fullmove, nil
}

// fullmoveNumber reads the sixth FEN field, defaulting to 1.
func fullmoveNumber(fenStr string) int {
	fields := strings.Fields(fenStr)
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
