package refmap

import (
	"sort"
	"sync"
)

// Table maps absolute source asset paths to absolute target asset
// paths. Safe for concurrent use: the asset stage may run converters
// in parallel, each owning its own keys.
type Table struct {
	mu      sync.RWMutex
	entries map[string]string
}

// Pair is one source-to-target mapping.
type Pair struct {
	Source string
	Target string
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[string]string)}
}

// Put inserts or overwrites the mapping for sourcePath.
func (t *Table) Put(sourcePath, targetPath string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[sourcePath] = targetPath
}

// Get returns the converted path for sourcePath. A miss is not an
// error: the caller treats the reference as unresolved and omits the
// dependent property.
func (t *Table) Get(sourcePath string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	target, ok := t.entries[sourcePath]

	return target, ok
}

// Len returns the number of mappings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Pairs returns every mapping sorted by source path, so downstream
// passes iterate deterministically.
func (t *Table) Pairs() []Pair {
	t.mu.RLock()
	defer t.mu.RUnlock()

	pairs := make([]Pair, 0, len(t.entries))
	for src, dst := range t.entries {
		pairs = append(pairs, Pair{Source: src, Target: dst})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Source < pairs[j].Source })

	return pairs
}
