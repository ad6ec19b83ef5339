// Package fen translates Forsyth-Edwards Notation to and from chess boards.
// It sits outside the rules engine as a boundary layer: callers use it to
// load positions, the engine itself never parses text.
package fen

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN piece characters (White shown; Black is lowercase).
var pieceChars = map[chess.PieceKind]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// charToKind converts a FEN character to a piece kind.
func charToKind(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// PieceChar returns the FEN character for an occupant, '.' for an empty square.
func PieceChar(o chess.Occupant) byte {
	c, ok := pieceChars[o.Kind]
	if !ok {
		return '.'
	}
	if o.Side == chess.Black {
		c = byte(unicode.ToLower(rune(c)))
	}
	return c
}

// Decode parses a FEN string into a board. The side, castling, en-passant
// and clock fields may be omitted and default to "w - - 0"; the fullmove
// number is checked for syntax and otherwise ignored.
func Decode(fen string) (chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}
	if len(parts) > 6 {
		return chess.Board{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fields", Got: parts[6]}
	}

	setup := chess.NewSetup()
	if err := parsePlacement(&setup, parts[0]); err != nil {
		return chess.Board{}, err
	}

	steps := []func(*chess.Setup, string) error{
		parseSideToMove,
		parseCastlingRights,
		parseEnPassant,
		parseHalfmoveClock,
		parseFullmove,
	}
	for i, step := range steps {
		if len(parts) <= i+1 {
			break
		}
		if err := step(&setup, parts[i+1]); err != nil {
			return chess.Board{}, err
		}
	}

	board, err := chess.NewBoardFromSetup(setup)
	if err != nil {
		return chess.Board{}, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	return board, nil
}

// parsePlacement parses the piece placement field of a FEN string.
func parsePlacement(setup *chess.Setup, placement string) error {
	rank := chess.Rank8
	file := chess.FileA

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != chess.BoardSize || rank == chess.Rank1 {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Offset: i + 1, Got: "/"}
			}
			rank--
			file = chess.FileA
		case c >= '1' && c <= '8':
			file += chess.File(c - '0')
			if file > chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Offset: i + 1, Got: string(c)}
			}
		default:
			kind := charToKind(c)
			if kind == chess.NoKind || file >= chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Offset: i + 1, Got: string(c)}
			}
			side := chess.White
			if unicode.IsLower(rune(c)) {
				side = chess.Black
			}
			sq, err := chess.NewSquare(file, rank)
			if err != nil {
				return errors.Wrap(errors.ErrInvalidFEN, err.Error())
			}
			setup.Place(sq, chess.Occupant{Kind: kind, Side: side})
			file++
		}
	}

	if rank != chess.Rank1 || file != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Got: placement}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *chess.Setup, field string) error {
	switch field {
	case "w":
		setup.SideToMove = chess.White
	case "b":
		setup.SideToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side", Got: field}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(setup *chess.Setup, field string) error {
	setup.Castling = chess.NoCastlingRights
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		var r chess.CastlingRights
		switch field[i] {
		case 'K':
			r = chess.WhiteKingside
		case 'Q':
			r = chess.WhiteQueenside
		case 'k':
			r = chess.BlackKingside
		case 'q':
			r = chess.BlackQueenside
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Offset: i + 1, Got: string(field[i])}
		}
		setup.Castling |= r
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(setup *chess.Setup, field string) error {
	setup.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en-passant", Got: field}
	}
	setup.EnPassant = sq
	return nil
}

// parseHalfmoveClock parses the halfmove clock field.
func parseHalfmoveClock(setup *chess.Setup, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove", Got: field}
	}
	setup.HalfmoveClock = uint32(n)
	return nil
}

// parseFullmove checks the fullmove number field.
func parseFullmove(_ *chess.Setup, field string) error {
	if n, err := strconv.ParseUint(field, 10, 32); err != nil || n == 0 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fullmove", Got: field}
	}
	return nil
}

// Encode converts a board to a FEN string. The board does not track move
// numbers, so the caller supplies the fullmove number.
func Encode(board chess.Board, fullmove int) string {
	var sb strings.Builder

	writePlacement(&sb, board)
	sb.WriteByte(' ')
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(board.CastlingRights().String())
	sb.WriteByte(' ')
	if ep, ok := board.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.HalfmoveClock()), 10))
	sb.WriteByte(' ')
	if fullmove < 1 {
		fullmove = 1
	}
	sb.WriteString(strconv.Itoa(fullmove))

	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, board chess.Board) {
	grid := board.Grid()
	for row, squares := range grid {
		emptyCount := 0
		for _, o := range squares {
			if o.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceChar(o))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < len(grid)-1 {
			sb.WriteByte('/')
		}
	}
}
