package mac

import (
	"hash"

	"ClassiCrypt"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

type hmacDigest struct {
	inner, outer hash.Hash
	ipad, opad   []byte
}

// NewHMAC returns a streaming HMAC over the hash built by newHash.
// Keys longer than the block size are hashed first; shorter keys are zero padded.
func NewHMAC(newHash func() hash.Hash, key []byte) hash.Hash {
	inner, outer := newHash(), newHash()
	bs := inner.BlockSize()

	k := make([]byte, bs)
	if len(key) > bs {
		_, _ = outer.Write(key)
		copy(k, outer.Sum(nil))
		outer.Reset()
	} else {
		copy(k, key)
	}

	d := &hmacDigest{
		inner: inner,
		outer: outer,
		ipad:  make([]byte, bs),
		opad:  make([]byte, bs),
	}
	for i, b := range k {
		d.ipad[i] = b ^ ipadByte
		d.opad[i] = b ^ opadByte
	}
	d.Reset()
	return d
}

func (d *hmacDigest) Write(p []byte) (int, error) {
	return d.inner.Write(p)
}

func (d *hmacDigest) Sum(in []byte) []byte {
	innerSum := d.inner.Sum(nil)
	d.outer.Reset()
	_, _ = d.outer.Write(d.opad)
	_, _ = d.outer.Write(innerSum)
	return d.outer.Sum(in)
}

func (d *hmacDigest) Reset() {
	d.inner.Reset()
	_, _ = d.inner.Write(d.ipad)
}

func (d *hmacDigest) Size() int      { return d.outer.Size() }
func (d *hmacDigest) BlockSize() int { return d.inner.BlockSize() }

// HMAC computes H((K ^ opad) || H((K ^ ipad) || message))
type HMAC struct {
	Hash func() hash.Hash
}

func (m HMAC) Tag(key, message []byte) (ClassiCrypt.Tag, error) {
	h := NewHMAC(m.Hash, key)
	_, _ = h.Write(message)
	return h.Sum(nil), nil
}

func (m HMAC) Verify(key, message []byte, tag ClassiCrypt.Tag) (bool, error) {
	return verify(m, key, message, tag)
}
