package hashing

import (
	"sync"
)

// ThreadSafeTable wraps Table with mutex protection for concurrent access
// by perft workers.
type ThreadSafeTable struct {
	table *Table
	mu    sync.RWMutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewTable(maxCapacity),
	}
}

// Probe returns the stored count for k.
func (t *ThreadSafeTable) Probe(k Key) (uint64, bool) {
	// Probe counts hits, so it needs the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Probe(k)
}

// Store records the count for k.
func (t *ThreadSafeTable) Store(k Key, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(k, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful probes.
func (t *ThreadSafeTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
