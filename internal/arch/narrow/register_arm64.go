//go:build arm64 && !purego

package narrow

import (
	"github.com/cwbudde/algo-mem/internal/cpu"
	"github.com/cwbudde/algo-mem/internal/registry"
)

// init registers the narrow (16-byte block) kernel set for arm64.
//
// NEON is mandatory on ARMv8, so this set is eligible on every arm64 CPU.
// No wide set exists on arm64: NEON registers are 128-bit.
//
// Priority: 15 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "narrow16",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Copy:    Copy,
		Compare: Compare,
		Equal:   Equal,
		Zero:    Zero,
		Fill:    Fill,
	})
}
