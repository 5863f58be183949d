package ClassiCrypt

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// XORBytes returns a ^ b over the length of the shorter slice
func XORBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// NewXOF returns a SHAKE128 stream absorbed with seed.
// The same seed always yields the same stream, which makes it a
// reproducible source of keys, nonces and messages.
func NewXOF(seed []byte) io.Reader {
	shake := sha3.NewShake128()
	if _, err := shake.Write(seed); err != nil {
		panic("Failed to init SHAKE128!")
	}
	return shake
}

// RandomBytes reads n bytes from r
func RandomBytes(r io.Reader, n int) []byte {
	out := make([]byte, n)
	_, err := io.ReadFull(r, out)
	HandleError(err)
	return out
}

// TestVectorGen returns n hex vectors of size bytes drawn from the XOF seeded
// with seed, in the form used by the test_cases.go tables
func TestVectorGen(seed string, n int, size int) []string {
	xof := NewXOF([]byte(seed))
	vectors := make([]string, n)
	for i := range vectors {
		vectors[i] = BytesToHex(RandomBytes(xof, size))
	}
	return vectors
}
