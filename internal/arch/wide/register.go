//go:build amd64 && !purego

package wide

import (
	"github.com/cwbudde/algo-mem/internal/cpu"
	"github.com/cwbudde/algo-mem/internal/registry"
)

// init registers the wide (32-byte block) kernel set.
//
// Keyed to AVX2: hardware with 256-bit vector units moves 32-byte blocks at
// full width, so the wide set only pays off there. Available on Intel Haswell
// (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (preferred over narrow16 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "wide32",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		Copy:    Copy,
		Compare: Compare,
		Equal:   Equal,
		Zero:    Zero,
		Fill:    Fill,
	})
}
