// Package registry provides the kernel set registry for bulk-memory operations.
//
// The registry-based dispatch allows multiple kernel variants (scalar, narrow
// 16-byte blocks, wide 32-byte blocks) to coexist. The best kernel set for the
// current CPU is selected at runtime: tier packages register themselves via
// init() functions, and the mem package looks up the highest-priority set
// compatible with the detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-mem/internal/cpu"
)

// OpEntry is a registered kernel set: one implementation of every bulk-memory
// operation at a specific capability tier.
//
// All function fields must be populated. Kernels may assume that paired slices
// have equal length (the mem package enforces this before dispatch) and must
// handle zero-length slices without dereferencing them.
type OpEntry struct {
	// Name is a human-readable identifier for this kernel set
	// (e.g. "wide32", "narrow16", "generic").
	Name string

	// SIMDLevel is the instruction set class this kernel set is keyed to.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible kernel
	// sets exist. Higher priority wins. Suggested priorities:
	//   - generic (SIMDNone): 0
	//   - narrow16 on SSE2: 10
	//   - narrow16 on NEON: 15
	//   - wide32 on AVX2: 20
	Priority int

	// Copy copies len(src) bytes from src to dst. Regions must not overlap.
	Copy func(dst, src []byte)

	// Compare lexicographically compares a and b: 0 iff byte-identical,
	// otherwise the sign of the first differing byte pair (unsigned).
	Compare func(a, b []byte) int

	// Equal reports whether a and b are byte-identical.
	Equal func(a, b []byte) bool

	// Zero sets every byte of dst to zero.
	Zero func(dst []byte)

	// Fill sets every byte of dst to c.
	Fill func(dst []byte, c byte)
}

// OpRegistry manages the registration and lookup of kernel sets.
//
// Kernel sets register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority set compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the mem package.
var Global = &OpRegistry{}

// Register adds a kernel set to the registry.
//
// Typically called from init() functions in tier packages. Safe to call
// concurrently, but all registrations should complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best kernel set for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if none
// is compatible (which cannot happen while the scalar set is registered).
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

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds at most a handful of entries.
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

// ListEntries returns a copy of all registered entries.
// Primarily intended for testing and diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
