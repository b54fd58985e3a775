// Package cpu provides CPU feature detection for bulk-memory kernel selection.
//
// This package detects the SIMD instruction set extensions (SSE2, AVX2, NEON)
// available on the current processor and caches the result for efficient
// querying. The mem package keys its kernel tier on these features: wide
// (32-byte) block kernels require AVX2-class hardware, narrow (16-byte) block
// kernels require SSE2 or NEON, and the scalar tier runs everywhere.
//
// Detection is performed once, on the first call to DetectFeatures(), and the
// cached result is immutable for the process lifetime.
package cpu

import "sync"

// SIMDLevel represents a SIMD instruction set extension level.
// Levels are not strictly comparable across architectures (AVX2 vs NEON);
// the registry pairs each kernel set with the level it requires.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go scalar fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64, 128-bit vectors).
	SIMDSSE2

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit integer operations).
	SIMDAVX2

	// SIMDNEON indicates ARM NEON / Advanced SIMD (128-bit vectors).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX2 bool // Advanced Vector Extensions 2

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// ForceGeneric disables all vector kernels (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

var (
	mu       sync.Mutex
	detected *Features // cached hardware probe result
	forced   *Features // test override, takes precedence when set
)

// DetectFeatures returns the CPU features available on the current system.
//
// The hardware probe runs once on the first call; subsequent calls return the
// cached result. Safe for concurrent use.
func DetectFeatures() Features {
	mu.Lock()
	defer mu.Unlock()

	if forced != nil {
		return *forced
	}
	if detected == nil {
		f := detectFeaturesImpl()
		detected = &f
	}
	return *detected
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasNEON returns true if the CPU supports ARM NEON instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides hardware detection with the specified features.
// Intended for testing only.
func SetForcedFeatures(f Features) {
	mu.Lock()
	defer mu.Unlock()
	forced = &f
}

// ResetDetection clears any forced features and the detection cache.
// Intended for testing only.
func ResetDetection() {
	mu.Lock()
	defer mu.Unlock()
	forced = nil
	detected = nil
}

// Supports returns true if the given features satisfy the specified SIMD level.
// The registry uses this to determine kernel set compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
