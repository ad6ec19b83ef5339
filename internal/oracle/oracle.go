// Package oracle cross-checks the engine's move generator against an
// independent implementation (github.com/dylhunn/dragontoothmg) by comparing
// perft node counts below every root move.
package oracle

import (
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// UCI encodes a move in UCI long algebraic form: "e2e4", "e7e8q", and
// castling as the king's move ("e1g1").
func UCI(m chess.Move) string {
	s := m.From.String() + m.To.String()
	if m.Kind == chess.Promotion {
		s += strings.ToLower(m.Promotion.Letter())
	}
	return s
}

// Mismatch describes one root move whose subtree counts differ.
// A zero count means the move was not generated on that side.
type Mismatch struct {
	Move      string `json:"move"`
	Ours      uint64 `json:"ours"`
	Reference uint64 `json:"reference"`
}

// Report is the outcome of a cross-check.
type Report struct {
	FEN        string
	Depth      int
	Ours       uint64
	Reference  uint64
	Mismatches []Mismatch
}

// OK returns true if both generators agree.
func (r Report) OK() bool {
	return r.Ours == r.Reference && len(r.Mismatches) == 0
}

// CrossCheck runs divide on both generators for a position. It returns an
// error wrapping ErrInvalidFEN for a bad position and one wrapping
// ErrOracleMismatch, together with the full report, when the counts disagree.
func CrossCheck(fenStr string, depth int) (Report, error) {
	board, err := fen.Decode(fenStr)
	if err != nil {
		return Report{}, err
	}
	report := Report{FEN: fen.Encode(board, 1), Depth: depth}
	if depth < 1 {
		return report, errors.Wrapf(errors.ErrInvalidConfig, "depth %d", depth)
	}

	ours := make(map[string]uint64)
	for _, e := range engine.Divide(board, depth) {
		ours[UCI(e.Move)] = e.Nodes
		report.Ours += e.Nodes
	}
	ref := ReferenceDivide(report.FEN, depth)
	for _, n := range ref {
		report.Reference += n
	}

	report.Mismatches = diffCounts(ours, ref)
	if !report.OK() {
		return report, errors.Wrapf(errors.ErrOracleMismatch, "%d root moves differ at depth %d",
			len(report.Mismatches), depth)
	}
	return report, nil
}

// diffCounts lists the moves whose counts differ, sorted by move.
func diffCounts(ours, ref map[string]uint64) []Mismatch {
	var out []Mismatch
	for mv, n := range ours {
		if ref[mv] != n {
			out = append(out, Mismatch{Move: mv, Ours: n, Reference: ref[mv]})
		}
	}
	for mv, n := range ref {
		if _, ok := ours[mv]; !ok {
			out = append(out, Mismatch{Move: mv, Reference: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Move < out[j].Move })
	return out
}

// ReferencePerft counts leaf nodes with the reference generator. The FEN
// must be complete (all six fields).
func ReferencePerft(fenStr string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fenStr)
	return referencePerft(&b, depth)
}

// ReferenceDivide returns the reference perft count below each root move,
// keyed by UCI move string.
func ReferenceDivide(fenStr string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fenStr)
	out := make(map[string]uint64)
	if depth < 1 {
		return out
	}
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = referencePerft(&b, depth-1)
		unapply()
	}
	return out
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
