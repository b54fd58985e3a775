//go:build (amd64 || arm64) && !purego

// Package block implements the shared chunked-loop shape of the bulk-memory
// kernels, parameterized by vector block width.
//
// Every operation follows the same four stages: threshold check (sizes below
// four blocks delegate wholly to the scalar primitives), optional destination
// alignment prefix (copy only), a four-wide unrolled main loop, a single-block
// drain, and a scalar tail. The narrow and wide tier packages instantiate
// these kernels with 16-byte and 32-byte blocks respectively.
//
// Blocks are loaded and stored as word arrays through unsafe pointer
// reinterpretation, which requires an architecture that tolerates unaligned
// word access; the build tags restrict the package accordingly. Word order
// within a block never affects results: copy and fill move blocks verbatim,
// and compare only derives equality from them, never ordering.
package block

import (
	"bytes"
	"unsafe"
)

// Vec16 is the narrow vector block: 16 bytes, two 64-bit words.
type Vec16 [2]uint64

// Vec32 is the wide vector block: 32 bytes, four 64-bit words.
type Vec32 [4]uint64

func (Vec16) width() int { return 16 }
func (Vec32) width() int { return 32 }

// Vector constrains kernels to one of the two supported block widths.
type Vector interface {
	Vec16 | Vec32
	width() int
}

// unroll is the number of blocks processed per main-loop iteration.
// A chunk is unroll consecutive blocks; sizes below one chunk take the
// scalar path.
const unroll = 4

// maxWidth is the widest supported block in bytes.
const maxWidth = 32

func load[V Vector](b []byte, off int) V {
	return *(*V)(unsafe.Pointer(&b[off]))
}

func store[V Vector](b []byte, off int, v V) {
	*(*V)(unsafe.Pointer(&b[off])) = v
}

// Copy copies len(src) bytes from src into dst using width-sized blocks.
// dst must be at least as long as src and must not overlap it.
func Copy[V Vector](dst, src []byte) {
	var v V
	w := v.width()
	chunk := w * unroll
	n := len(src)
	if n < chunk {
		copy(dst, src)
		return
	}

	// Scalar-copy a short prefix so the destination is block-aligned.
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&dst[0])) & uintptr(w-1)); rem != 0 {
		off = w - rem
		copy(dst[:off], src[:off])
	}

	// Four independent load/store pairs per iteration.
	for n-off >= chunk {
		b0 := load[V](src, off)
		b1 := load[V](src, off+w)
		b2 := load[V](src, off+2*w)
		b3 := load[V](src, off+3*w)
		store(dst, off, b0)
		store(dst, off+w, b1)
		store(dst, off+2*w, b2)
		store(dst, off+3*w, b3)
		off += chunk
	}

	for n-off >= w {
		store(dst, off, load[V](src, off))
		off += w
	}

	copy(dst[off:], src[off:])
}

// Compare lexicographically compares a and b, which must have equal length.
// It returns 0 iff the slices are byte-identical; otherwise the sign matches
// the unsigned comparison of the first differing byte pair.
//
// Blocks serve only as an equality oracle here: whenever a chunk fails the
// combined equality test, exactly that chunk is re-compared with the scalar
// lexicographic comparator, which supplies the sign. The first difference
// necessarily lies within that chunk since all earlier chunks proved equal.
func Compare[V Vector](a, b []byte) int {
	var v V
	w := v.width()
	chunk := w * unroll
	n := len(a)
	if n < chunk {
		return bytes.Compare(a, b)
	}

	off := 0
	for n-off >= chunk {
		eq0 := load[V](a, off) == load[V](b, off)
		eq1 := load[V](a, off+w) == load[V](b, off+w)
		eq2 := load[V](a, off+2*w) == load[V](b, off+2*w)
		eq3 := load[V](a, off+3*w) == load[V](b, off+3*w)
		if !(eq0 && eq1 && eq2 && eq3) {
			return bytes.Compare(a[off:off+chunk], b[off:off+chunk])
		}
		off += chunk
	}

	if off < n {
		return bytes.Compare(a[off:], b[off:])
	}
	return 0
}

// Equal reports whether a and b are byte-identical. Both slices must have
// equal length. Same chunk scan as Compare, without the sign derivation.
func Equal[V Vector](a, b []byte) bool {
	var v V
	w := v.width()
	chunk := w * unroll
	n := len(a)
	if n < chunk {
		return bytes.Equal(a, b)
	}

	off := 0
	for n-off >= chunk {
		eq0 := load[V](a, off) == load[V](b, off)
		eq1 := load[V](a, off+w) == load[V](b, off+w)
		eq2 := load[V](a, off+2*w) == load[V](b, off+2*w)
		eq3 := load[V](a, off+3*w) == load[V](b, off+3*w)
		if !(eq0 && eq1 && eq2 && eq3) {
			return false
		}
		off += chunk
	}

	return bytes.Equal(a[off:], b[off:])
}

// Fill sets every byte of dst to c using width-sized block stores.
// Stores of a broadcast constant carry no data dependencies, so no alignment
// prefix is needed for correctness.
func Fill[V Vector](dst []byte, c byte) {
	var v V
	w := v.width()
	chunk := w * unroll
	n := len(dst)
	if n < chunk {
		fillScalar(dst, c)
		return
	}

	if c != 0 {
		var pat [maxWidth]byte
		for i := range pat {
			pat[i] = c
		}
		v = load[V](pat[:], 0)
	}

	off := 0
	for n-off >= chunk {
		store(dst, off, v)
		store(dst, off+w, v)
		store(dst, off+2*w, v)
		store(dst, off+3*w, v)
		off += chunk
	}

	for n-off >= w {
		store(dst, off, v)
		off += w
	}

	fillScalar(dst[off:], c)
}

func fillScalar(dst []byte, c byte) {
	for i := range dst {
		dst[i] = c
	}
}
