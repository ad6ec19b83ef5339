// Package output formats position and perft reports as text or JSON.
package output

import (
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/oracle"
)

// PositionReport describes one position.
type PositionReport struct {
	FEN                  string   `json:"fen"`
	SideToMove           string   `json:"sideToMove"`
	Status               string   `json:"status"`
	InsufficientMaterial bool     `json:"insufficientMaterial,omitempty"`
	Moves                []string `json:"moves,omitempty"`
	UCI                  []string `json:"uci,omitempty"`

	board     chess.Board
	showBoard bool
}

// NewPositionReport summarises a board. Legal moves are listed only when
// withMoves is set.
func NewPositionReport(board chess.Board, fullmove int, withMoves, showBoard bool) PositionReport {
	r := PositionReport{
		FEN:                  fen.Encode(board, fullmove),
		SideToMove:           board.SideToMove().String(),
		Status:               engine.PositionStatus(board).String(),
		InsufficientMaterial: engine.HasInsufficientMaterial(board),
		board:                board,
		showBoard:            showBoard,
	}
	if withMoves {
		for m := range engine.GenerateLegalMoves(board) {
			r.Moves = append(r.Moves, chess.Render(m, board))
			r.UCI = append(r.UCI, oracle.UCI(m))
		}
	}
	return r
}

// DivideLine is one root move of a divide breakdown.
type DivideLine struct {
	Move  string `json:"move"`
	UCI   string `json:"uci"`
	Nodes uint64 `json:"nodes"`
}

// PerftReport describes one perft run.
type PerftReport struct {
	FEN     string             `json:"fen"`
	Depth   int                `json:"depth"`
	Nodes   uint64             `json:"nodes"`
	Stats   *engine.PerftStats `json:"stats,omitempty"`
	Divide  []DivideLine       `json:"divide,omitempty"`

	// Wall-clock time of the count in nanoseconds.
	ElapsedNs int64 `json:"elapsedNs"`

	// Set when the run was cross-checked.
	Verified   bool              `json:"verified,omitempty"`
	Reference  uint64            `json:"reference,omitempty"`
	Mismatches []oracle.Mismatch `json:"mismatches,omitempty"`
}

// NewDivideLines renders divide entries against the root board.
func NewDivideLines(board chess.Board, entries []engine.DivideEntry) []DivideLine {
	lines := make([]DivideLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, DivideLine{
			Move:  chess.Render(e.Move, board),
			UCI:   oracle.UCI(e.Move),
			Nodes: e.Nodes,
		})
	}
	return lines
}

// Elapsed returns the time the count took.
func (r PerftReport) Elapsed() time.Duration {
	return time.Duration(r.ElapsedNs)
}

// Rate returns nodes per second, 0 when no time was measured.
func (r PerftReport) Rate() uint64 {
	if r.ElapsedNs <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Elapsed().Seconds())
}
