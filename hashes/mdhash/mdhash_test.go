package mdhash

import (
	"encoding/binary"
	"testing"

	"ClassiCrypt"
	"ClassiCrypt/padding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumCompressor is a toy compression function that records every block it sees
type sumCompressor struct {
	state  uint64
	blocks [][]byte
}

func (s *sumCompressor) BlockSize() int  { return 16 }
func (s *sumCompressor) Size() int       { return 8 }
func (s *sumCompressor) LengthSize() int { return 8 }
func (s *sumCompressor) Reset() {
	s.state = 0x0123456789abcdef
	s.blocks = nil
}
func (s *sumCompressor) Compress(block []byte) {
	s.blocks = append(s.blocks, append([]byte(nil), block...))
	s.state = s.state*31 + binary.BigEndian.Uint64(block[:8]) ^ binary.BigEndian.Uint64(block[8:])
}
func (s *sumCompressor) Digest() []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, s.state)
	return out
}
func (s *sumCompressor) Clone() Compressor {
	c := *s
	c.blocks = append([][]byte(nil), s.blocks...)
	return &c
}

func TestStreamingMatchesOneShot(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("mdhash/stream"))
	msg := ClassiCrypt.RandomBytes(xof, 100)

	oneShot := New(&sumCompressor{})
	_, _ = oneShot.Write(msg)
	want := oneShot.Sum(nil)

	for _, chunk := range []int{1, 3, 15, 16, 17, 64} {
		h := New(&sumCompressor{})
		for i := 0; i < len(msg); i += chunk {
			end := i + chunk
			if end > len(msg) {
				end = len(msg)
			}
			_, _ = h.Write(msg[i:end])
		}
		assert.Equal(t, want, h.Sum(nil), "chunk %d", chunk)
	}
}

func TestBlocksArePadded(t *testing.T) {
	c := &sumCompressor{}
	h := New(c)
	msg := []byte("0123456789")
	_, _ = h.Write(msg)
	_ = h.Sum(nil)
	require.Empty(t, c.blocks, "Sum must not advance the running state")

	padded, err := padding.MerkleDamgard(msg, 16, 8)
	require.NoError(t, err)

	clone := c.Clone().(*sumCompressor)
	clone.Reset()
	for i := 0; i < len(padded); i += 16 {
		clone.Compress(padded[i : i+16])
	}
	assert.Equal(t, clone.Digest(), h.Sum(nil))
}

func TestSumDoesNotChangeState(t *testing.T) {
	h := New(&sumCompressor{})
	_, _ = h.Write([]byte("part one "))
	first := h.Sum(nil)
	assert.Equal(t, first, h.Sum(nil))
	_, _ = h.Write([]byte("part two"))

	whole := New(&sumCompressor{})
	_, _ = whole.Write([]byte("part one part two"))
	assert.Equal(t, whole.Sum(nil), h.Sum(nil))

	h.Reset()
	fresh := New(&sumCompressor{})
	assert.Equal(t, fresh.Sum(nil), h.Sum(nil))
	assert.Equal(t, 8, h.Size())
	assert.Equal(t, 16, h.BlockSize())
}

func TestSumAppends(t *testing.T) {
	h := New(&sumCompressor{})
	prefix := []byte{0xaa, 0xbb}
	out := h.Sum(prefix)
	require.Len(t, out, 10)
	assert.Equal(t, prefix, out[:2])
}
