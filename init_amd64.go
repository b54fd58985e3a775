//go:build amd64 && !purego

package mem

// This file imports the amd64 tier packages to trigger their init()
// functions, which register kernel sets with the global registry.

import (
	// Scalar kernel set (pure Go fallback)
	_ "github.com/cwbudde/algo-mem/internal/arch/generic"

	// Vector kernel sets
	_ "github.com/cwbudde/algo-mem/internal/arch/narrow"
	_ "github.com/cwbudde/algo-mem/internal/arch/wide"
)
