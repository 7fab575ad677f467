// Package registry provides the implementation registry for vecmath kernels.
//
// Kernel variants register themselves from init() functions. The vecmath
// package looks up the highest-priority variant supported by the detected
// CPU features the first time an operation is used.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered kernel variant.
//
// Not every field must be populated; callers check for nil before use.
type OpEntry struct {
	// Name identifies the variant ("generic", "avx2", ...).
	Name string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	Priority int

	// Max returns the maximum of x and its first index. (0, -1) for empty x.
	Max func(x []float64) (float64, int)

	// Min returns the minimum of x and its first index. (0, -1) for empty x.
	Min func(x []float64) (float64, int)

	// SubBlock computes dst[i] = a[i] - b[i].
	SubBlock func(dst, a, b []float64)

	// ScaleBlock computes dst[i] = src[i] * scalar.
	ScaleBlock func(dst, src []float64, scalar float64)

	// AddBlockInPlace computes dst[i] += src[i].
	AddBlockInPlace func(dst, src []float64)

	// Sum returns the sum of all elements.
	Sum func(x []float64) float64
}

// OpRegistry stores the registered kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry used by the vecmath package.
var Global = &OpRegistry{}

// Register adds a variant. All registrations should complete before the
// first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features, or nil.
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

// sortByPriority orders entries by descending priority. Caller holds r.mu.
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
