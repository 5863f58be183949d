// Package xtea implements the XTEA Feistel cipher with a 64-bit block and a
// 128-bit key. Words are read big-endian.
package xtea

import (
	"encoding/binary"
	"fmt"

	"ClassiCrypt"
)

type XTEA interface {
	ClassiCrypt.BlockCipher
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
	Params() Parameter
}

type xtea struct {
	params Parameter
	key    [4]uint32
}

// NewXTEA returns a 64-round XTEA cipher
func NewXTEA(key ClassiCrypt.Key) (XTEA, error) {
	return NewXTEAWithParams(key, Standard)
}

// NewXTEAWithParams returns an XTEA cipher running params.Rounds Feistel rounds
func NewXTEAWithParams(key ClassiCrypt.Key, params Parameter) (XTEA, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ClassiCrypt.ErrInvalidKeySize, len(key), KeySize)
	}
	if params.GetRounds() <= 0 || params.GetRounds()%2 != 0 {
		return nil, fmt.Errorf("xtea: round count must be positive and even, got %d", params.GetRounds())
	}
	x := &xtea{params: params}
	for i := range x.key {
		x.key[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	return x, nil
}

// EncryptBlock encrypts one 8-byte block under a 16-byte key
func EncryptBlock(block ClassiCrypt.Block, key ClassiCrypt.Key) (ClassiCrypt.Block, error) {
	c, err := NewXTEA(key)
	if err != nil {
		return nil, err
	}
	return c.EncryptBlock(block)
}

// DecryptBlock decrypts one 8-byte block under a 16-byte key
func DecryptBlock(block ClassiCrypt.Block, key ClassiCrypt.Key) (ClassiCrypt.Block, error) {
	c, err := NewXTEA(key)
	if err != nil {
		return nil, err
	}
	return c.DecryptBlock(block)
}

func (x *xtea) BlockSize() int {
	return BlockSize
}

func (x *xtea) Params() Parameter {
	return x.params
}

func checkBlock(block []byte) error {
	if len(block) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ClassiCrypt.ErrInvalidBlockSize, len(block), BlockSize)
	}
	return nil
}

func (x *xtea) EncryptBlock(block ClassiCrypt.Block) (ClassiCrypt.Block, error) {
	if err := checkBlock(block); err != nil {
		return nil, err
	}
	out := make(ClassiCrypt.Block, BlockSize)
	x.encrypt(out, block)
	return out, nil
}

func (x *xtea) DecryptBlock(block ClassiCrypt.Block) (ClassiCrypt.Block, error) {
	if err := checkBlock(block); err != nil {
		return nil, err
	}
	out := make(ClassiCrypt.Block, BlockSize)
	x.decrypt(out, block)
	return out, nil
}

// Encrypt satisfies crypto/cipher.Block; it panics on short buffers
func (x *xtea) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("xtea: input not full block")
	}
	x.encrypt(dst, src)
}

// Decrypt satisfies crypto/cipher.Block; it panics on short buffers
func (x *xtea) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("xtea: input not full block")
	}
	x.decrypt(dst, src)
}

func (x *xtea) encrypt(dst, src []byte) {
	v0 := binary.BigEndian.Uint32(src[0:4])
	v1 := binary.BigEndian.Uint32(src[4:8])
	k := &x.key

	var sum uint32
	for i := 0; i < x.params.GetRounds()/2; i++ {
		v0 += (v1<<4 ^ v1>>5 + v1) ^ (sum + k[sum&3])
		sum += delta
		v1 += (v0<<4 ^ v0>>5 + v0) ^ (sum + k[(sum>>11)&3])
	}

	binary.BigEndian.PutUint32(dst[0:4], v0)
	binary.BigEndian.PutUint32(dst[4:8], v1)
}

func (x *xtea) decrypt(dst, src []byte) {
	v0 := binary.BigEndian.Uint32(src[0:4])
	v1 := binary.BigEndian.Uint32(src[4:8])
	k := &x.key

	cycles := x.params.GetRounds() / 2
	sum := uint32(delta) * uint32(cycles)
	for i := 0; i < cycles; i++ {
		v1 -= (v0<<4 ^ v0>>5 + v0) ^ (sum + k[(sum>>11)&3])
		sum -= delta
		v0 -= (v1<<4 ^ v1>>5 + v1) ^ (sum + k[sum&3])
	}

	binary.BigEndian.PutUint32(dst[0:4], v0)
	binary.BigEndian.PutUint32(dst[4:8], v1)
}
