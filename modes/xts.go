package modes

import (
	"crypto/cipher"
	"fmt"

	"ClassiCrypt"
	"golang.org/x/crypto/xts"
)

const xtsBlockSize = 16

// XTS encrypts fixed-size storage sectors. Each sector is tweaked by its
// number, so identical sectors at different positions encrypt differently.
type XTS struct {
	c *xts.Cipher
}

// NewXTS builds XTS from a 16-byte block cipher constructor and a double-length key;
// the first half keys the data cipher and the second half the tweak cipher
func NewXTS(newCipher func(key []byte) (cipher.Block, error), key []byte) (*XTS, error) {
	if len(key) == 0 || len(key)%2 != 0 {
		return nil, fmt.Errorf("%w: XTS key is %d bytes, want two equal halves", ClassiCrypt.ErrInvalidKeySize, len(key))
	}
	half, err := newCipher(key[:len(key)/2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ClassiCrypt.ErrInvalidKeySize, err)
	}
	if half.BlockSize() != xtsBlockSize {
		return nil, fmt.Errorf("%w: XTS needs a %d-byte block cipher, got %d",
			ClassiCrypt.ErrInvalidBlockSize, xtsBlockSize, half.BlockSize())
	}
	c, err := xts.NewCipher(newCipher, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ClassiCrypt.ErrInvalidKeySize, err)
	}
	return &XTS{c: c}, nil
}

func checkSector(data []byte) error {
	if len(data) == 0 || len(data)%xtsBlockSize != 0 {
		return fmt.Errorf("%w: sector is %d bytes, want a positive multiple of %d",
			ClassiCrypt.ErrInvalidBlockSize, len(data), xtsBlockSize)
	}
	return nil
}

// EncryptSector encrypts plaintext as sector number sectorNum
func (x *XTS) EncryptSector(plaintext []byte, sectorNum uint64) ([]byte, error) {
	if err := checkSector(plaintext); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	x.c.Encrypt(out, plaintext, sectorNum)
	return out, nil
}

// DecryptSector reverses EncryptSector for the same sector number
func (x *XTS) DecryptSector(ciphertext []byte, sectorNum uint64) ([]byte, error) {
	if err := checkSector(ciphertext); err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	x.c.Decrypt(out, ciphertext, sectorNum)
	return out, nil
}
