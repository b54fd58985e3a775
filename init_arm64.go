//go:build arm64 && !purego

package mem

// This file imports the arm64 tier packages to trigger their init()
// functions, which register kernel sets with the global registry.

import (
	// Scalar kernel set (pure Go fallback)
	_ "github.com/cwbudde/algo-mem/internal/arch/generic"

	// Vector kernel set (NEON class; arm64 has no 32-byte tier)
	_ "github.com/cwbudde/algo-mem/internal/arch/narrow"
)
