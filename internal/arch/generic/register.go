package generic

import (
	"github.com/cwbudde/algo-mem/internal/cpu"
	"github.com/cwbudde/algo-mem/internal/registry"
)

// init registers the scalar kernel set with the registry.
//
// The scalar set is the baseline fallback, used when no vector tier is
// compiled in or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no vector tier is eligible)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Copy:    Copy,
		Compare: Compare,
		Equal:   Equal,
		Zero:    Zero,
		Fill:    Fill,
	})
}
