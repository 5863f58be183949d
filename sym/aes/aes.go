// Package aes implements the AES block cipher (FIPS-197) for 128, 192 and
// 256-bit keys. The state is kept as 16 bytes in input order, so row r of
// column c lives at index 4c+r.
package aes

import (
	"fmt"

	"ClassiCrypt"
)

type AES interface {
	ClassiCrypt.BlockCipher
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
	Params() Parameter
}

type aes struct {
	params    Parameter
	roundKeys [][BlockSize]byte
}

// NewAES expands key into an AES cipher; the key length picks AES-128, 192 or 256
func NewAES(key ClassiCrypt.Key) (AES, error) {
	params, ok := ParameterForKey(len(key))
	if !ok {
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 24 or 32", ClassiCrypt.ErrInvalidKeySize, len(key))
	}
	return &aes{
		params:    params,
		roundKeys: expandKey(key, params),
	}, nil
}

// EncryptBlock encrypts one 16-byte block under key
func EncryptBlock(block ClassiCrypt.Block, key ClassiCrypt.Key) (ClassiCrypt.Block, error) {
	c, err := NewAES(key)
	if err != nil {
		return nil, err
	}
	return c.EncryptBlock(block)
}

// DecryptBlock decrypts one 16-byte block under key
func DecryptBlock(block ClassiCrypt.Block, key ClassiCrypt.Key) (ClassiCrypt.Block, error) {
	c, err := NewAES(key)
	if err != nil {
		return nil, err
	}
	return c.DecryptBlock(block)
}

func (a *aes) BlockSize() int {
	return BlockSize
}

func (a *aes) Params() Parameter {
	return a.params
}

func checkBlock(block []byte) error {
	if len(block) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ClassiCrypt.ErrInvalidBlockSize, len(block), BlockSize)
	}
	return nil
}

func (a *aes) EncryptBlock(block ClassiCrypt.Block) (ClassiCrypt.Block, error) {
	if err := checkBlock(block); err != nil {
		return nil, err
	}
	out := make(ClassiCrypt.Block, BlockSize)
	a.encrypt(out, block)
	return out, nil
}

func (a *aes) DecryptBlock(block ClassiCrypt.Block) (ClassiCrypt.Block, error) {
	if err := checkBlock(block); err != nil {
		return nil, err
	}
	out := make(ClassiCrypt.Block, BlockSize)
	a.decrypt(out, block)
	return out, nil
}

// Encrypt satisfies crypto/cipher.Block; it panics on short buffers
func (a *aes) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes: input not full block")
	}
	a.encrypt(dst, src)
}

// Decrypt satisfies crypto/cipher.Block; it panics on short buffers
func (a *aes) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes: input not full block")
	}
	a.decrypt(dst, src)
}

func (a *aes) encrypt(dst, src []byte) {
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])
	rounds := a.params.GetRounds()

	addRoundKey(&state, &a.roundKeys[0])
	for round := 1; round < rounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, &a.roundKeys[round])
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, &a.roundKeys[rounds])

	copy(dst, state[:])
}

func (a *aes) decrypt(dst, src []byte) {
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])
	rounds := a.params.GetRounds()

	addRoundKey(&state, &a.roundKeys[rounds])
	for round := rounds - 1; round > 0; round-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, &a.roundKeys[round])
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, &a.roundKeys[0])

	copy(dst, state[:])
}

// expandKey produces rounds+1 round keys laid out like the state
func expandKey(key []byte, params Parameter) [][BlockSize]byte {
	nk := params.GetKeySize() / 4
	total := 4 * (params.GetRounds() + 1)
	w := make([][4]byte, total)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := nk; i < total; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk]
		} else if nk > 6 && i%nk == 4 {
			temp = subWord(temp)
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	roundKeys := make([][BlockSize]byte, params.GetRounds()+1)
	for r := range roundKeys {
		for c := 0; c < 4; c++ {
			copy(roundKeys[r][4*c:4*c+4], w[4*r+c][:])
		}
	}
	return roundKeys
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func subWord(w [4]byte) [4]byte {
	return [4]byte{sBox[w[0]], sBox[w[1]], sBox[w[2]], sBox[w[3]]}
}

func addRoundKey(state, roundKey *[BlockSize]byte) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}

func subBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sBox[state[i]]
	}
}

func invSubBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = invSBox[state[i]]
	}
}

// shiftRows rotates row r left by r columns
func shiftRows(state *[BlockSize]byte) {
	old := *state
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[4*c+r] = old[4*((c+r)%4)+r]
		}
	}
}

func invShiftRows(state *[BlockSize]byte) {
	old := *state
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[4*c+r] = old[4*((c-r+4)%4)+r]
		}
	}
}

func mixColumns(state *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gfMul(a0, 2) ^ gfMul(a1, 3) ^ a2 ^ a3
		state[4*c+1] = a0 ^ gfMul(a1, 2) ^ gfMul(a2, 3) ^ a3
		state[4*c+2] = a0 ^ a1 ^ gfMul(a2, 2) ^ gfMul(a3, 3)
		state[4*c+3] = gfMul(a0, 3) ^ a1 ^ a2 ^ gfMul(a3, 2)
	}
}

func invMixColumns(state *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gfMul(a0, 0x0e) ^ gfMul(a1, 0x0b) ^ gfMul(a2, 0x0d) ^ gfMul(a3, 0x09)
		state[4*c+1] = gfMul(a0, 0x09) ^ gfMul(a1, 0x0e) ^ gfMul(a2, 0x0b) ^ gfMul(a3, 0x0d)
		state[4*c+2] = gfMul(a0, 0x0d) ^ gfMul(a1, 0x09) ^ gfMul(a2, 0x0e) ^ gfMul(a3, 0x0b)
		state[4*c+3] = gfMul(a0, 0x0b) ^ gfMul(a1, 0x0d) ^ gfMul(a2, 0x09) ^ gfMul(a3, 0x0e)
	}
}
