// Package hashing provides position keys and a transposition table for
// perft counting.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key set so hashes are stable between runs.
const zobristSeed = 0x9d39247e33776d41

// zobristKeys holds one random number per feature of a position.
type zobristKeys struct {
	pieces    [2][chess.King + 1][64]uint64
	blackMove uint64
	castling  [16]uint64
	enPassant [chess.BoardSize]uint64
}

var keys = newZobristKeys()

func newZobristKeys() *zobristKeys {
	r := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>1))
	k := &zobristKeys{blackMove: r.Uint64()}
	for side := range k.pieces {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := range k.pieces[side][kind] {
				k.pieces[side][kind][sq] = r.Uint64()
			}
		}
	}
	for i := range k.castling {
		k.castling[i] = r.Uint64()
	}
	for i := range k.enPassant {
		k.enPassant[i] = r.Uint64()
	}
	return k
}

// Key returns the Zobrist hash of a board. The halfmove clock is not part
// of the key.
func Key(board chess.Board) uint64 {
	var h uint64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		o := board.At(sq)
		if o.IsEmpty() {
			continue
		}
		h ^= keys.pieces[o.Side][o.Kind][sq]
	}
	if board.SideToMove() == chess.Black {
		h ^= keys.blackMove
	}
	h ^= keys.castling[board.CastlingRights()&0x0f]
	if ep, ok := board.EnPassantTarget(); ok {
		h ^= keys.enPassant[ep.File()]
	}
	return h
}
