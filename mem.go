// Package mem provides vectorized bulk-memory primitives over caller-owned
// byte regions: copy, three-way compare, equality, zero-fill, and byte-fill.
//
// Three capability tiers share one chunked-loop shape and differ only in
// block width:
//
//   - wide:   32-byte blocks, unrolled four-wide (128 bytes/iteration),
//     keyed to AVX2-class hardware (amd64)
//   - narrow: 16-byte blocks, unrolled four-wide (64 bytes/iteration),
//     keyed to SSE2 (amd64) or NEON (arm64)
//   - scalar: the standard byte-wise primitives; used for sizes below four
//     blocks and as the universal fallback
//
// The tier is selected once per process: CPU features are probed on first
// use, the winning kernel set is cached, and every later call costs one
// pointer load plus an indirect call. Building with the purego tag, or
// running on an architecture without a vector tier, selects the scalar set.
//
// All operations are pure, allocation-free and reentrant; concurrent calls on
// disjoint regions never interfere. Results are bit-for-bit identical to the
// standard primitives for every size and alignment. As with those primitives,
// passing overlapping regions to Copy is a caller defect with unspecified
// behavior, and slices of mismatched length panic rather than being clamped.
package mem

// Implementation reports the name of the kernel set selected for this
// process ("wide32", "narrow16" or "generic"). Intended for diagnostics.
func Implementation() string {
	return kernels().Name
}
