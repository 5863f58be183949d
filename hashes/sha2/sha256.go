// Package sha2 implements the SHA-256 and SHA-224 compression functions
// (FIPS 180-4) on top of the generic Merkle-Damgard driver.
package sha2

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"ClassiCrypt"
	"ClassiCrypt/hashes/mdhash"
)

const (
	// Size is the SHA-256 digest length in bytes
	Size = 32
	// Size224 is the SHA-224 digest length in bytes
	Size224 = 28
	// BlockSize is the compression input size shared by SHA-224 and SHA-256
	BlockSize = 64

	lengthSize = 8
)

var iv256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var iv224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

// first 32 bits of the fractional parts of the cube roots of the first 64 primes
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

type compressor struct {
	h    [8]uint32
	iv   [8]uint32
	size int
}

// New256 returns a streaming SHA-256 hash
func New256() hash.Hash {
	return mdhash.New(&compressor{iv: iv256, size: Size})
}

// New224 returns a streaming SHA-224 hash
func New224() hash.Hash {
	return mdhash.New(&compressor{iv: iv224, size: Size224})
}

// Sum256 returns the SHA-256 digest of data
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	h := New256()
	_, _ = h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}

// Sum224 returns the SHA-224 digest of data
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	h := New224()
	_, _ = h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}

// Hash returns the SHA-256 digest of message as a slice
func Hash(message []byte) ClassiCrypt.Digest {
	d := Sum256(message)
	return d[:]
}

func (c *compressor) BlockSize() int  { return BlockSize }
func (c *compressor) Size() int       { return c.size }
func (c *compressor) LengthSize() int { return lengthSize }

func (c *compressor) Reset() {
	c.h = c.iv
}

func (c *compressor) Clone() mdhash.Compressor {
	c0 := *c
	return &c0
}

func (c *compressor) Digest() []byte {
	out := make([]byte, 32)
	for i, v := range c.h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out[:c.size]
}

func (c *compressor) Compress(block []byte) {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(block[4*t:])
	}
	for t := 16; t < 64; t++ {
		s0 := bits.RotateLeft32(w[t-15], -7) ^ bits.RotateLeft32(w[t-15], -18) ^ w[t-15]>>3
		s1 := bits.RotateLeft32(w[t-2], -17) ^ bits.RotateLeft32(w[t-2], -19) ^ w[t-2]>>10
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, cc, d, e, f, g, h := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4], c.h[5], c.h[6], c.h[7]
	for t := 0; t < 64; t++ {
		S1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + S1 + ch + k[t] + w[t]
		S0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & cc) ^ (b & cc)
		t2 := S0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = cc
		cc = b
		b = a
		a = t1 + t2
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += cc
	c.h[3] += d
	c.h[4] += e
	c.h[5] += f
	c.h[6] += g
	c.h[7] += h
}
