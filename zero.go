package mem

// Zero sets every byte of dst to zero. Bytes outside dst are untouched.
// Idempotent.
func Zero(dst []byte) {
	if len(dst) == 0 {
		return
	}
	kernels().Zero(dst)
}

// Fill sets every byte of dst to c. Bytes outside dst are untouched.
// Fill(dst, 0) is equivalent to Zero(dst).
func Fill(dst []byte, c byte) {
	if len(dst) == 0 {
		return
	}
	kernels().Fill(dst, c)
}
