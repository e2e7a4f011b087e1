// Package registry holds the magnitude kernel implementations available to
// the vecmath package.
//
// Architecture packages register an OpEntry from init(). The vecmath package
// asks for the highest priority entry the current CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-magnitude/internal/cpu"
)

// OpEntry is one registered kernel implementation.
//
// Priorities in use: generic 0, NEON 15, AVX2 20.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// AbsBlock writes dst[i] = |src[i]|.
	// Slices must have equal length; panics otherwise.
	AbsBlock func(dst, src []float64)

	// AbsBlockInPlace writes x[i] = |x[i]|.
	AbsBlockInPlace func(x []float64)

	// MaxAbs returns max(|x[i]|), 0 for an empty slice.
	MaxAbs func(x []float64) float64
}

// OpRegistry stores the registered entries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by descending priority
}

// Global is the registry used by the vecmath package.
var Global = &OpRegistry{}

// Register adds an entry. Safe for concurrent use.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest priority entry supported by features, or nil
// when nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority is an insertion sort; the registry holds a handful of entries.
// Must be called with r.mu held.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
