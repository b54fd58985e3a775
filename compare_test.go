package mem

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestCompareReflexive(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			buf := randomBytes(r, n)
			if got := Compare(buf, buf); got != 0 {
				t.Errorf("Compare(x, x) = %d, want 0", got)
			}
			if !Equal(buf, buf) {
				t.Error("Equal(x, x) = false, want true")
			}
		})
	}
}

func TestCompareEqualBuffers(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := randomBytes(r, n)
			b := make([]byte, n)
			copy(b, a)

			if got := Compare(a, b); got != 0 {
				t.Errorf("Compare of identical buffers = %d, want 0", got)
			}
			if !Equal(a, b) {
				t.Error("Equal of identical buffers = false, want true")
			}
		})
	}
}

// TestCompareMismatch plants a single differing byte at the first byte, the
// last byte, and around every block/chunk boundary, in both directions, and
// checks the sign against the reference lexicographic comparator.
func TestCompareMismatch(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	for _, n := range testSizes {
		if n == 0 {
			continue
		}
		t.Run(sizeStr(n), func(t *testing.T) {
			a := randomBytes(r, n)
			b := make([]byte, n)
			copy(b, a)

			for _, pos := range mismatchPositions(n) {
				for _, delta := range []byte{1, 0x80, 0xFF} {
					b[pos] = a[pos] + delta // wraps, guaranteed != a[pos]

					want := sign(bytes.Compare(a, b))
					if got := sign(Compare(a, b)); got != want {
						t.Fatalf("pos %d delta %#x: Compare sign = %d, want %d", pos, delta, got, want)
					}
					if got := sign(Compare(b, a)); got != -want {
						t.Fatalf("pos %d delta %#x: reversed Compare sign = %d, want %d", pos, delta, got, -want)
					}
					if Equal(a, b) {
						t.Fatalf("pos %d delta %#x: Equal = true for differing buffers", pos, delta)
					}

					b[pos] = a[pos]
				}
			}
		})
	}
}

// TestCompareScenario checks the 128-byte pair differing only at index 65:
// equal before the mutation, and afterwards the sign matches the unsigned
// difference of the bytes at index 65.
func TestCompareScenario(t *testing.T) {
	a := make([]byte, 128)
	for i := range a {
		a[i] = byte(i * 3)
	}
	b := make([]byte, 128)
	copy(b, a)

	if got := Compare(a, b); got != 0 {
		t.Fatalf("Compare before mutation = %d, want 0", got)
	}

	b[65] = a[65] + 7
	want := sign(int(a[65]) - int(b[65]))
	if got := sign(Compare(a, b)); got != want {
		t.Errorf("Compare after mutation sign = %d, want %d", got, want)
	}
}

func TestCompareZeroLength(t *testing.T) {
	if got := Compare(nil, nil); got != 0 {
		t.Errorf("Compare(nil, nil) = %d, want 0", got)
	}
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil) = false, want true")
	}
}

func TestComparePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Compare should panic on mismatched lengths")
		}
	}()
	Compare(make([]byte, 5), make([]byte, 6))
}

func TestEqualPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Equal should panic on mismatched lengths")
		}
	}()
	Equal(make([]byte, 5), make([]byte, 6))
}
