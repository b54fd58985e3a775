package mem

// Copy copies len(src) bytes from src to dst, which must have the same
// length. The regions must not overlap; behavior is unspecified if they do.
// There is no overlap-safe ("move") variant. Panics if the lengths differ.
func Copy(dst, src []byte) {
	if len(dst) != len(src) {
		panic("mem: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	kernels().Copy(dst, src)
}
