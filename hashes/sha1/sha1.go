// Package sha1 implements the SHA-1 compression function. SHA-1 is broken
// for collision resistance and is kept only as a second Merkle-Damgard instance.
package sha1

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"ClassiCrypt/hashes/mdhash"
)

const (
	Size      = 20
	BlockSize = 64
)

var iv = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

type compressor struct {
	h [5]uint32
}

func New() hash.Hash {
	return mdhash.New(&compressor{})
}

// Sum returns the SHA-1 digest of data
func Sum(data []byte) [Size]byte {
	var out [Size]byte
	h := New()
	_, _ = h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}

func (c *compressor) BlockSize() int  { return BlockSize }
func (c *compressor) Size() int       { return Size }
func (c *compressor) LengthSize() int { return 8 }
func (c *compressor) Reset()          { c.h = iv }

func (c *compressor) Clone() mdhash.Compressor {
	c0 := *c
	return &c0
}

func (c *compressor) Digest() []byte {
	out := make([]byte, Size)
	for i, v := range c.h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out
}

func (c *compressor) Compress(block []byte) {
	var w [80]uint32
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(block[4*t:])
	}
	for t := 16; t < 80; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, cc, d, e := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4]
	for t := 0; t < 80; t++ {
		var f, k uint32
		switch {
		case t < 20:
			f, k = (b&cc)|(^b&d), 0x5a827999
		case t < 40:
			f, k = b^cc^d, 0x6ed9eba1
		case t < 60:
			f, k = (b&cc)|(b&d)|(cc&d), 0x8f1bbcdc
		default:
			f, k = b^cc^d, 0xca62c1d6
		}
		tmp := bits.RotateLeft32(a, 5) + f + e + k + w[t]
		e = d
		d = cc
		cc = bits.RotateLeft32(b, 30)
		b = a
		a = tmp
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += cc
	c.h[3] += d
	c.h[4] += e
}
