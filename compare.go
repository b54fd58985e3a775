package mem

// Compare lexicographically compares a and b, which must have the same
// length. It returns 0 iff the slices are byte-identical; otherwise a
// negative or positive value whose sign matches the unsigned comparison of
// the first differing byte pair, as bytes.Compare would return.
// Panics if the lengths differ.
//
// Unlike Copy, the two regions may overlap or alias each other entirely;
// a reflexive call returns 0.
func Compare(a, b []byte) int {
	if len(a) != len(b) {
		panic("mem: slice length mismatch")
	}
	if len(a) == 0 {
		return 0
	}
	return kernels().Compare(a, b)
}

// Equal reports whether a and b are byte-identical. Both slices must have
// the same length; Equal panics if they differ. This is the equality-oracle
// path of Compare without the ordering fallback, so a mismatch costs no
// scalar re-scan.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		panic("mem: slice length mismatch")
	}
	if len(a) == 0 {
		return true
	}
	return kernels().Equal(a, b)
}
