package sha1

import (
	stdsha1 "crypto/sha1"
	"testing"

	"ClassiCrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA1(t *testing.T) {
	for _, tc := range []struct {
		msg  string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	} {
		got := Sum([]byte(tc.msg))
		assert.Equal(t, tc.want, ClassiCrypt.BytesToHex(got[:]), "message %q", tc.msg)
	}
}

func TestSHA1MatchesStdlib(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("sha1/stdlib"))
	for n := 0; n < 200; n++ {
		msg := ClassiCrypt.RandomBytes(xof, n)
		require.Equal(t, stdsha1.Sum(msg), Sum(msg), "len %d", n)
	}
	assert.Equal(t, Size, New().Size())
}
