//go:build amd64 && !purego

// Package wide provides the wide kernel set: 32-byte blocks unrolled
// four-wide, 128 bytes per main-loop iteration. Keyed to AVX2-class hardware.
package wide

import "github.com/cwbudde/algo-mem/internal/arch/block"

// Copy copies len(src) bytes from src to dst. Regions must not overlap.
func Copy(dst, src []byte) {
	block.Copy[block.Vec32](dst, src)
}

// Compare lexicographically compares a and b, which must have equal length.
func Compare(a, b []byte) int {
	return block.Compare[block.Vec32](a, b)
}

// Equal reports whether a and b are byte-identical.
func Equal(a, b []byte) bool {
	return block.Equal[block.Vec32](a, b)
}

// Zero sets every byte of dst to zero.
func Zero(dst []byte) {
	block.Fill[block.Vec32](dst, 0)
}

// Fill sets every byte of dst to c.
func Fill(dst []byte, c byte) {
	block.Fill[block.Vec32](dst, c)
}
