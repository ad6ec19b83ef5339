package output

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// Diagram draws boards as text, rank 8 at the top.
type Diagram struct {
	// cells[light][side] colours an occupied square; empty[light] an empty one.
	cells [2][2]*color.Color
	empty [2]*color.Color
	plain bool
}

// NewDiagram creates a diagram renderer. With noColour set it emits plain
// ASCII; otherwise squares and pieces are drawn with ANSI colours whether or
// not the output is a terminal.
func NewDiagram(noColour bool) *Diagram {
	d := &Diagram{plain: noColour}
	backgrounds := [2]color.Attribute{color.BgGreen, color.BgWhite}
	foregrounds := [2]color.Attribute{color.FgHiWhite, color.FgBlack}
	for light, bg := range backgrounds {
		d.empty[light] = color.New(bg)
		for side, fg := range foregrounds {
			d.cells[light][side] = color.New(fg, color.Bold, bg)
		}
	}
	for _, c := range d.all() {
		if noColour {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return d
}

func (d *Diagram) all() []*color.Color {
	return []*color.Color{d.empty[0], d.empty[1], d.cells[0][0], d.cells[0][1], d.cells[1][0], d.cells[1][1]}
}

// Render returns the diagram of a board followed by a line describing the
// side to move, castling rights, en-passant target and half-move clock.
func (d *Diagram) Render(board chess.Board) string {
	var sb strings.Builder
	for row, squares := range board.Grid() {
		rank := chess.Rank8 - chess.Rank(row)
		sb.WriteString(rank.String())
		sb.WriteByte(' ')
		for file, o := range squares {
			if d.plain && file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(d.square(o, (int(rank)+file)%2 == 1))
		}
		sb.WriteByte('\n')
	}
	if d.plain {
		sb.WriteString("  a b c d e f g h\n")
	} else {
		sb.WriteString("   a  b  c  d  e  f  g  h\n")
	}

	ep := "-"
	if sq, ok := board.EnPassantTarget(); ok {
		ep = sq.String()
	}
	sb.WriteString(board.SideToMove().String() + " to move, castling " + board.CastlingRights().String() +
		", en passant " + ep + ", halfmove clock " + strconv.FormatUint(uint64(board.HalfmoveClock()), 10) + "\n")
	return sb.String()
}

// square draws one square: a bare FEN letter in plain mode, a three-cell
// coloured block otherwise.
func (d *Diagram) square(o chess.Occupant, light bool) string {
	c := fen.PieceChar(o)
	if d.plain {
		return string(c)
	}

	shade := 0
	if light {
		shade = 1
	}
	if o.IsEmpty() {
		return d.empty[shade].Sprint("   ")
	}
	return d.cells[shade][o.Side].Sprint(" " + strings.ToUpper(string(c)) + " ")
}
