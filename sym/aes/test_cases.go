package aes

import "ClassiCrypt"

type TestContext struct {
	Params     Parameter
	Key        ClassiCrypt.Key
	Plaintext  ClassiCrypt.Block
	Ciphertext ClassiCrypt.Block
}

// TestVector holds the FIPS-197 appendix vectors and the all-zero AES-128 case
var TestVector = []TestContext{
	{
		Params:     AES128,
		Key:        ClassiCrypt.HexToBytes("00000000000000000000000000000000"),
		Plaintext:  ClassiCrypt.HexToBytes("00000000000000000000000000000000"),
		Ciphertext: ClassiCrypt.HexToBytes("66e94bd4ef8a2c3b884cfa59ca342b2e"),
	},
	{
		Params:     AES128,
		Key:        ClassiCrypt.HexToBytes("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  ClassiCrypt.HexToBytes("3243f6a8885a308d313198a2e0370734"),
		Ciphertext: ClassiCrypt.HexToBytes("3925841d02dc09fbdc118597196a0b32"),
	},
	{
		Params:     AES128,
		Key:        ClassiCrypt.HexToBytes("000102030405060708090a0b0c0d0e0f"),
		Plaintext:  ClassiCrypt.HexToBytes("00112233445566778899aabbccddeeff"),
		Ciphertext: ClassiCrypt.HexToBytes("69c4e0d86a7b0430d8cdb78070b4c55a"),
	},
	{
		Params:     AES192,
		Key:        ClassiCrypt.HexToBytes("000102030405060708090a0b0c0d0e0f1011121314151617"),
		Plaintext:  ClassiCrypt.HexToBytes("00112233445566778899aabbccddeeff"),
		Ciphertext: ClassiCrypt.HexToBytes("dda97ca4864cdfe06eaf70a0ec0d7191"),
	},
	{
		Params:     AES256,
		Key:        ClassiCrypt.HexToBytes("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
		Plaintext:  ClassiCrypt.HexToBytes("00112233445566778899aabbccddeeff"),
		Ciphertext: ClassiCrypt.HexToBytes("8ea2b7ca516745bfeafc49904b496089"),
	},
}
