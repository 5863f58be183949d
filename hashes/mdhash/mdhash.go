// Package mdhash turns a compression function into a streaming hash.Hash
// using Merkle-Damgard iteration with length padding.
package mdhash

import (
	"hash"

	"ClassiCrypt/padding"
)

// Compressor holds the chaining value of an iterated hash
type Compressor interface {
	// BlockSize is the compression input size in bytes
	BlockSize() int
	// Size is the digest length in bytes
	Size() int
	// LengthSize is the width of the big-endian bit-length trailer
	LengthSize() int
	// Reset loads the initial chaining value
	Reset()
	// Compress folds exactly one block into the chaining value
	Compress(block []byte)
	// Digest serializes the chaining value, truncated to Size bytes
	Digest() []byte
	Clone() Compressor
}

type digest struct {
	c      Compressor
	buf    []byte
	nx     int
	length uint64
}

// New returns a hash.Hash driving c. Sum leaves the running state untouched.
func New(c Compressor) hash.Hash {
	d := &digest{
		c:   c,
		buf: make([]byte, c.BlockSize()),
	}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.c.Reset()
	d.nx = 0
	d.length = 0
}

func (d *digest) Size() int {
	return d.c.Size()
}

func (d *digest) BlockSize() int {
	return d.c.BlockSize()
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	d.length += uint64(n)
	bs := len(d.buf)

	if d.nx > 0 {
		k := copy(d.buf[d.nx:], p)
		d.nx += k
		p = p[k:]
		if d.nx < bs {
			return n, nil
		}
		d.c.Compress(d.buf)
		d.nx = 0
	}
	for len(p) >= bs {
		d.c.Compress(p[:bs])
		p = p[bs:]
	}
	if len(p) > 0 {
		d.nx = copy(d.buf, p)
	}
	return n, nil
}

func (d *digest) clone() *digest {
	buf := make([]byte, len(d.buf))
	copy(buf, d.buf)
	return &digest{
		c:      d.c.Clone(),
		buf:    buf,
		nx:     d.nx,
		length: d.length,
	}
}

func (d *digest) Sum(in []byte) []byte {
	d0 := d.clone()
	suffix := padding.MerkleDamgardSuffix(d0.length, d0.c.BlockSize(), d0.c.LengthSize())
	_, _ = d0.Write(suffix)
	return append(in, d0.c.Digest()...)
}
