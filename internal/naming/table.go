package naming

import (
	"strconv"
	"sync"
)

// Table tracks base usernames issued during a run and disambiguates repeats
// by appending numeric suffixes. It is created empty at run start and
// discarded at run end; nothing persists between invocations. All methods
// are goroutine-safe.
type Table struct {
	mu     sync.Mutex
	counts map[string]int // base → number of suffixed variants issued
}

// NewTable creates a ready-to-use table.
func NewTable() *Table {
	return &Table{
		counts: make(map[string]int),
	}
}

// Resolve returns the username for base. The first occurrence is returned
// unchanged; the n-th repeat (1-indexed after the first) returns base
// followed by n. The suffix is not subject to the 8-character base limit.
func (t *Table) Resolve(base string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, seen := t.counts[base]
	if !seen {
		t.counts[base] = 0
		return base
	}

	n++
	t.counts[base] = n
	return base + strconv.Itoa(n)
}
