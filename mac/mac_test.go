package mac

import (
	stdaes "crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"testing"

	"ClassiCrypt"
	"ClassiCrypt/hashes/sha1"
	"ClassiCrypt/hashes/sha2"
	"ClassiCrypt/padding"
	"ClassiCrypt/sym/aes"
	"ClassiCrypt/sym/xtea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testString(opName string, tc TestContext) string {
	return fmt.Sprintf("%s/%s/KeyLen=%d/MsgLen=%d", opName, tc.Name, len(tc.Key), len(tc.Message))
}

func newAES(key ClassiCrypt.Key) (ClassiCrypt.BlockCipher, error) {
	return aes.NewAES(key)
}

func newXTEA(key ClassiCrypt.Key) (ClassiCrypt.BlockCipher, error) {
	return xtea.NewXTEA(key)
}

func TestHMAC(t *testing.T) {
	logger := ClassiCrypt.NewLogger(ClassiCrypt.DEBUG)
	scheme := HMAC{Hash: sha2.New256}
	for _, tc := range TestVector {
		tc := tc
		t.Run(testString("HMAC/SHA256", tc), func(t *testing.T) {
			tag, err := scheme.Tag(tc.Key, tc.Message)
			require.NoError(t, err)
			assert.Equal(t, tc.Tag, tag)

			ok, err := scheme.Verify(tc.Key, tc.Message, tc.Tag)
			require.NoError(t, err)
			assert.True(t, ok)
			logger.PrintHex(tc.Name, tag)
		})
	}
}

func TestHMACMatchesStdlib(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("mac/hmac"))
	for i := 0; i < 64; i++ {
		key := ClassiCrypt.RandomBytes(xof, i*3)
		msg := ClassiCrypt.RandomBytes(xof, i*5)

		ref := hmac.New(sha256.New, key)
		ref.Write(msg)
		want := ref.Sum(nil)

		h := NewHMAC(sha2.New256, key)
		_, _ = h.Write(msg)
		require.Equal(t, want, h.Sum(nil), "iteration %d", i)
		require.Equal(t, want, h.Sum(nil), "Sum must be repeatable")
	}

	t.Run("SHA1", func(t *testing.T) {
		tag, err := HMAC{Hash: sha1.New}.Tag([]byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
		require.NoError(t, err)
		assert.Equal(t, "de7c9b85b8b78aa6bc8a7a36f70a90701c9db4d9", ClassiCrypt.BytesToHex(tag))
	})

	t.Run("Reset", func(t *testing.T) {
		h := NewHMAC(sha2.New256, []byte("k"))
		_, _ = h.Write([]byte("garbage"))
		h.Reset()
		_, _ = h.Write([]byte("msg"))
		fresh := NewHMAC(sha2.New256, []byte("k"))
		_, _ = fresh.Write([]byte("msg"))
		assert.Equal(t, fresh.Sum(nil), h.Sum(nil))
		assert.Equal(t, sha2.Size, h.Size())
		assert.Equal(t, sha2.BlockSize, h.BlockSize())
	})
}

func TestSecretPrefix(t *testing.T) {
	scheme := SecretPrefix{Hash: sha2.New256}
	tag, err := scheme.Tag([]byte("key"), []byte("message"))
	require.NoError(t, err)
	want := sha256.Sum256([]byte("keymessage"))
	assert.Equal(t, want[:], []byte(tag))
}

func TestCBCMAC(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("mac/cbcmac"))

	t.Run("MatchesStdlib", func(t *testing.T) {
		key := ClassiCrypt.RandomBytes(xof, 16)
		msg := ClassiCrypt.RandomBytes(xof, 45)

		tag, err := CBCMAC{NewCipher: newAES}.Tag(key, msg)
		require.NoError(t, err)
		require.Len(t, tag, aes.BlockSize)

		ref, err := stdaes.NewCipher(key)
		require.NoError(t, err)
		padded, err := padding.PKCS7.Pad(msg, 16)
		require.NoError(t, err)
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(ref, make([]byte, 16)).CryptBlocks(out, padded)
		assert.Equal(t, out[len(out)-16:], []byte(tag))
	})

	t.Run("XTEA", func(t *testing.T) {
		tag, err := CBCMAC{NewCipher: newXTEA}.Tag(ClassiCrypt.RandomBytes(xof, 16), []byte("short"))
		require.NoError(t, err)
		assert.Len(t, tag, xtea.BlockSize)
	})

	t.Run("BadKey", func(t *testing.T) {
		_, err := CBCMAC{NewCipher: newAES}.Tag(make([]byte, 7), []byte("m"))
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKeySize))
		_, err = CBCMAC{NewCipher: newAES}.Verify(make([]byte, 7), []byte("m"), nil)
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKeySize))
	})
}

func TestVerifyRejectsTampering(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("mac/tamper"))
	key := ClassiCrypt.RandomBytes(xof, 16)
	msg := []byte("transfer 100 to alice")

	for name, scheme := range map[string]Scheme{
		"HMAC":         HMAC{Hash: sha2.New256},
		"SecretPrefix": SecretPrefix{Hash: sha2.New256},
		"CBCMAC":       CBCMAC{NewCipher: newAES},
	} {
		scheme := scheme
		t.Run(name, func(t *testing.T) {
			tag, err := scheme.Tag(key, msg)
			require.NoError(t, err)

			ok, err := scheme.Verify(key, msg, tag)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = scheme.Verify(key, []byte("transfer 900 to alice"), tag)
			require.NoError(t, err)
			assert.False(t, ok)

			other := append([]byte(nil), key...)
			other[0] ^= 0xff
			ok, err = scheme.Verify(other, msg, tag)
			require.NoError(t, err)
			assert.False(t, ok)

			bad := append(ClassiCrypt.Tag(nil), tag...)
			bad[len(bad)-1] ^= 0x01
			ok, err = scheme.Verify(key, msg, bad)
			require.NoError(t, err)
			assert.False(t, ok)

			ok, err = scheme.Verify(key, msg, tag[:len(tag)-1])
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
