// Package padding extends messages to a block boundary and strips that
// extension again. Pad never modifies its input.
package padding

import (
	"crypto/rand"
	"fmt"
	"io"

	"ClassiCrypt"
)

type Scheme interface {
	Pad(data []byte, blockSize int) ([]byte, error)
	Unpad(data []byte, blockSize int) ([]byte, error)
	String() string
}

var (
	PKCS7    Scheme = pkcs7{}
	ANSIX923 Scheme = ansiX923{}
	ISO7816  Scheme = iso7816{}
	ISO10126 Scheme = NewISO10126(rand.Reader)
)

func checkBlockSize(blockSize int) error {
	if blockSize < 1 || blockSize > 255 {
		return fmt.Errorf("%w: padding block size %d outside [1, 255]", ClassiCrypt.ErrInvalidBlockSize, blockSize)
	}
	return nil
}

// padLength is the number of bytes needed to reach the next boundary, always in [1, blockSize]
func padLength(dataLen, blockSize int) int {
	return blockSize - dataLen%blockSize
}

func extend(data []byte, n int) []byte {
	out := make([]byte, len(data)+n)
	copy(out, data)
	return out
}

// trailer validates the length byte shared by PKCS#7, ANSI X.923 and ISO 10126
func trailer(data []byte, blockSize int) (int, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return 0, fmt.Errorf("%w: padded length %d is not a positive multiple of %d", ClassiCrypt.ErrPadding, len(data), blockSize)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return 0, fmt.Errorf("%w: pad length byte %d", ClassiCrypt.ErrPadding, n)
	}
	return n, nil
}

type pkcs7 struct{}

func (pkcs7) String() string { return "PKCS7" }

func (pkcs7) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	n := padLength(len(data), blockSize)
	out := extend(data, n)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out, nil
}

func (pkcs7) Unpad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	n, err := trailer(data, blockSize)
	if err != nil {
		return nil, err
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent PKCS7 bytes", ClassiCrypt.ErrPadding)
		}
	}
	return data[:len(data)-n], nil
}

type ansiX923 struct{}

func (ansiX923) String() string { return "ANSIX923" }

func (ansiX923) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	n := padLength(len(data), blockSize)
	out := extend(data, n)
	out[len(out)-1] = byte(n)
	return out, nil
}

func (ansiX923) Unpad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	n, err := trailer(data, blockSize)
	if err != nil {
		return nil, err
	}
	for _, b := range data[len(data)-n : len(data)-1] {
		if b != 0 {
			return nil, fmt.Errorf("%w: non-zero ANSI X.923 filler", ClassiCrypt.ErrPadding)
		}
	}
	return data[:len(data)-n], nil
}

type iso10126 struct {
	random io.Reader
}

// NewISO10126 returns ISO 10126 padding whose filler bytes are read from random
func NewISO10126(random io.Reader) Scheme {
	return iso10126{random: random}
}

func (iso10126) String() string { return "ISO10126" }

func (p iso10126) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	n := padLength(len(data), blockSize)
	out := extend(data, n)
	if _, err := io.ReadFull(p.random, out[len(data):len(out)-1]); err != nil {
		return nil, fmt.Errorf("padding: reading ISO 10126 filler: %w", err)
	}
	out[len(out)-1] = byte(n)
	return out, nil
}

func (iso10126) Unpad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	n, err := trailer(data, blockSize)
	if err != nil {
		return nil, err
	}
	return data[:len(data)-n], nil
}

// iso7816 appends 0x80 followed by zeros
type iso7816 struct{}

func (iso7816) String() string { return "ISO7816" }

func (iso7816) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	out := extend(data, padLength(len(data), blockSize))
	out[len(data)] = 0x80
	return out, nil
}

func (iso7816) Unpad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: padded length %d is not a positive multiple of %d", ClassiCrypt.ErrPadding, len(data), blockSize)
	}
	floor := len(data) - blockSize
	i := len(data) - 1
	for i >= floor && data[i] == 0x00 {
		i--
	}
	if i >= floor && data[i] == 0x80 {
		return data[:i], nil
	}
	return nil, fmt.Errorf("%w: missing ISO 7816-4 marker", ClassiCrypt.ErrPadding)
}
