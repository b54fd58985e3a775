//go:build amd64 && !purego

package narrow

import (
	"github.com/cwbudde/algo-mem/internal/cpu"
	"github.com/cwbudde/algo-mem/internal/registry"
)

// init registers the narrow (16-byte block) kernel set for amd64.
//
// SSE2 is part of the x86-64 baseline, so this set is eligible on every
// amd64 CPU and serves as the vector fallback when AVX2 is absent.
//
// Priority: 10 (preferred over generic, below wide32)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "narrow16",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Copy:    Copy,
		Compare: Compare,
		Equal:   Equal,
		Zero:    Zero,
		Fill:    Fill,
	})
}
