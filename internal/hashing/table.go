package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PerftTable remembers subtree node counts by position and depth.
type PerftTable struct {
	// entries stores counts bucketed by Zobrist key
	entries map[uint64][]Entry
	// maxCapacity limits the number of entries (0 = unlimited)
	maxCapacity int
	size        int
	hits        int
	misses      int
}

// Entry is one stored subtree count.
type Entry struct {
	// Board is kept to rule out key collisions
	Board chess.Board
	Depth int
	Nodes uint64
}

// NewPerftTable creates a table holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[uint64][]Entry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for board at depth.
func (t *PerftTable) Lookup(board chess.Board, depth int) (uint64, bool) {
	for _, e := range t.entries[Key(board)] {
		if e.Depth == depth && e.Board == board {
			t.hits++
			return e.Nodes, true
		}
	}
	t.misses++
	return 0, false
}

// Store records a count. It returns false when the table is full or the
// entry is already present.
func (t *PerftTable) Store(board chess.Board, depth int, nodes uint64) bool {
	if t.IsFull() {
		return false
	}
	key := Key(board)
	for _, e := range t.entries[key] {
		if e.Depth == depth && e.Board == board {
			return false
		}
	}
	t.entries[key] = append(t.entries[key], Entry{Board: board, Depth: depth, Nodes: nodes})
	t.size++
	return true
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return t.size
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *PerftTable) Misses() int {
	return t.misses
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && t.size >= t.maxCapacity
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[uint64][]Entry)
	t.size = 0
	t.hits = 0
	t.misses = 0
}
