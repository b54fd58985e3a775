// Package generic provides the scalar kernel set: the standard byte-wise
// primitives the vector tiers accelerate. It is the universal fallback,
// registered on every architecture, and defines the behavior the other tiers
// must match bit for bit.
package generic

import "bytes"

// Copy copies len(src) bytes from src to dst. Regions must not overlap.
func Copy(dst, src []byte) {
	copy(dst, src)
}

// Compare lexicographically compares a and b, which must have equal length.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Equal reports whether a and b are byte-identical.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Zero sets every byte of dst to zero.
func Zero(dst []byte) {
	clear(dst)
}

// Fill sets every byte of dst to c.
func Fill(dst []byte, c byte) {
	for i := range dst {
		dst[i] = c
	}
}
