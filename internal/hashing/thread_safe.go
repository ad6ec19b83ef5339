package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ThreadSafePerftTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.Mutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the stored count for board at depth.
func (t *ThreadSafePerftTable) Lookup(board chess.Board, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(board, depth)
}

// Store records a count.
func (t *ThreadSafePerftTable) Store(board chess.Board, depth int, nodes uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Store(board, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafePerftTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.IsFull()
}
