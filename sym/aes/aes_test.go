package aes

import (
	stdaes "crypto/aes"
	"errors"
	"fmt"
	"testing"

	"ClassiCrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testString(opName string, p Parameter) string {
	return fmt.Sprintf("%s/BlockSize=%d/KeySize=%d/Rounds=%d",
		opName, p.GetBlockSize(), p.GetKeySize(), p.GetRounds())
}

func TestAES(t *testing.T) {
	logger := ClassiCrypt.NewLogger(ClassiCrypt.DEBUG)
	logger.PrintHeader("AES known-answer tests")
	for _, tc := range TestVector {
		tc := tc
		cipher, err := NewAES(tc.Key)
		require.NoError(t, err)
		require.Equal(t, tc.Params, cipher.Params())

		var ciphertext ClassiCrypt.Block
		t.Run(testString("AES/EncryptBlock", tc.Params), func(t *testing.T) {
			ciphertext, err = cipher.EncryptBlock(tc.Plaintext)
			require.NoError(t, err)
			assert.Equal(t, tc.Ciphertext, ciphertext)
			logger.PrintMemUsage("AESEncryptionTest")
		})

		t.Run(testString("AES/DecryptBlock", tc.Params), func(t *testing.T) {
			plaintext, err := cipher.DecryptBlock(tc.Ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tc.Plaintext, plaintext)
		})

		t.Run(testString("AES/Functional", tc.Params), func(t *testing.T) {
			ct, err := EncryptBlock(tc.Plaintext, tc.Key)
			require.NoError(t, err)
			assert.Equal(t, tc.Ciphertext, ct)
			pt, err := DecryptBlock(ct, tc.Key)
			require.NoError(t, err)
			assert.Equal(t, tc.Plaintext, pt)
		})

		logger.PrintDataLen(tc.Key)
		logger.PrintHex("ciphertext", ciphertext)
	}
}

func TestSBox(t *testing.T) {
	assert.Equal(t, byte(0x63), sBox[0x00])
	assert.Equal(t, byte(0x7c), sBox[0x01])
	assert.Equal(t, byte(0xed), sBox[0x53])
	assert.Equal(t, byte(0x16), sBox[0xff])
	for i := 0; i < 256; i++ {
		require.Equal(t, byte(i), invSBox[sBox[i]])
	}
	assert.Equal(t, byte(0xc1), gfMul(0x57, 0x83))
	assert.Equal(t, byte(0x36), rcon[10])
}

func TestAESMatchesStdlib(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("aes/stdlib"))
	for _, params := range []Parameter{AES128, AES192, AES256} {
		params := params
		t.Run(testString("AES/Stdlib", params), func(t *testing.T) {
			for i := 0; i < 32; i++ {
				key := ClassiCrypt.RandomBytes(xof, params.GetKeySize())
				block := ClassiCrypt.RandomBytes(xof, BlockSize)

				ours, err := NewAES(key)
				require.NoError(t, err)
				ref, err := stdaes.NewCipher(key)
				require.NoError(t, err)

				got, err := ours.EncryptBlock(block)
				require.NoError(t, err)
				want := make([]byte, BlockSize)
				ref.Encrypt(want, block)
				require.Equal(t, want, []byte(got))

				back, err := ours.DecryptBlock(got)
				require.NoError(t, err)
				require.Equal(t, block, []byte(back))
			}
		})
	}
}

func TestAESCipherBlock(t *testing.T) {
	tc := TestVector[2]
	c, err := NewAES(tc.Key)
	require.NoError(t, err)

	dst := make([]byte, BlockSize)
	c.Encrypt(dst, tc.Plaintext)
	assert.Equal(t, []byte(tc.Ciphertext), dst)
	c.Decrypt(dst, dst)
	assert.Equal(t, []byte(tc.Plaintext), dst)

	assert.Panics(t, func() { c.Encrypt(dst, make([]byte, 8)) })
}

func TestAESErrors(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 31, 33} {
		_, err := NewAES(make([]byte, n))
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKeySize), "key length %d", n)
	}

	c, err := NewAES(make([]byte, 16))
	require.NoError(t, err)
	for _, n := range []int{0, 15, 17, 32} {
		_, err = c.EncryptBlock(make([]byte, n))
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidBlockSize), "block length %d", n)
		_, err = c.DecryptBlock(make([]byte, n))
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidBlockSize), "block length %d", n)
	}

	_, err = EncryptBlock(make([]byte, 16), make([]byte, 5))
	assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKeySize))
}

func TestAESDoesNotMutateInput(t *testing.T) {
	tc := TestVector[1]
	c, err := NewAES(tc.Key)
	require.NoError(t, err)
	in := append(ClassiCrypt.Block(nil), tc.Plaintext...)
	_, err = c.EncryptBlock(in)
	require.NoError(t, err)
	assert.Equal(t, tc.Plaintext, in)
}
