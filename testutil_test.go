package mem

import (
	"math/rand"
	"strconv"
)

// Test sizes shared across test files: zero, sub-block sizes, both tier
// thresholds (64 narrow, 128 wide) with their direct neighbors, exact chunk
// multiples, and a large buffer.
var testSizes = []int{0, 1, 3, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 4096}

// Destination alignments swept relative to the widest (32-byte) boundary.
const alignSweep = 32

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

func randomBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

// sentinelRegion returns a region of n bytes starting align bytes into a
// fresh backing array whose every byte is the sentinel value. Sweeping align
// over 0..31 sweeps every destination residue relative to a 32-byte boundary.
func sentinelRegion(n, align int, sentinel byte) (backing, region []byte) {
	backing = make([]byte, n+2*alignSweep)
	for i := range backing {
		backing[i] = sentinel
	}
	return backing, backing[align : align+n]
}

// checkSentinels fails the test if any byte outside [align, align+n) of the
// backing array was touched.
func checkSentinels(t testingT, backing []byte, n, align int, sentinel byte) {
	t.Helper()
	for i := 0; i < align; i++ {
		if backing[i] != sentinel {
			t.Fatalf("leading sentinel at %d clobbered: got %#x", i, backing[i])
		}
	}
	for i := align + n; i < len(backing); i++ {
		if backing[i] != sentinel {
			t.Fatalf("trailing sentinel at %d clobbered: got %#x", i, backing[i])
		}
	}
}

// testingT is the subset of *testing.T the helpers need.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// mismatchPositions returns the byte positions where compare tests plant a
// single difference: the first byte, the last byte, and every block and chunk
// boundary (with neighbors) that fits in n.
func mismatchPositions(n int) []int {
	if n == 0 {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	add := func(p int) {
		if p >= 0 && p < n && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	add(0)
	add(n - 1)
	for b := 16; b < n; b += 16 {
		add(b - 1)
		add(b)
		add(b + 1)
	}
	return out
}
