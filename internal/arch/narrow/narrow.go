//go:build (amd64 || arm64) && !purego

// Package narrow provides the narrow kernel set: 16-byte blocks unrolled
// four-wide, 64 bytes per main-loop iteration. Keyed to SSE2 on amd64 and
// NEON on arm64; selected when wide-vector support is unavailable.
package narrow

import "github.com/cwbudde/algo-mem/internal/arch/block"

// Copy copies len(src) bytes from src to dst. Regions must not overlap.
func Copy(dst, src []byte) {
	block.Copy[block.Vec16](dst, src)
}

// Compare lexicographically compares a and b, which must have equal length.
func Compare(a, b []byte) int {
	return block.Compare[block.Vec16](a, b)
}

// Equal reports whether a and b are byte-identical.
func Equal(a, b []byte) bool {
	return block.Equal[block.Vec16](a, b)
}

// Zero sets every byte of dst to zero.
func Zero(dst []byte) {
	block.Fill[block.Vec16](dst, 0)
}

// Fill sets every byte of dst to c.
func Fill(dst []byte, c byte) {
	block.Fill[block.Vec16](dst, c)
}
