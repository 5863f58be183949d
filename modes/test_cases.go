package modes

import "ClassiCrypt"

type TestContext struct {
	Mode       Mode
	Key        ClassiCrypt.Key
	IV         []byte
	Plaintext  ClassiCrypt.Plaintext
	Ciphertext ClassiCrypt.Ciphertext
}

// TestVector holds NIST SP 800-38A AES-128 vectors (first two blocks).
// Block-mode ciphertexts omit the trailing padding block.
var TestVector = []TestContext{
	{
		Mode:       ECB,
		Key:        ClassiCrypt.HexToBytes("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  ClassiCrypt.HexToBytes("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51"),
		Ciphertext: ClassiCrypt.HexToBytes("3ad77bb40d7a3660a89ecaf32466ef97f5d3d58503b9699de785895a96fdbaaf"),
	},
	{
		Mode:       CBC,
		Key:        ClassiCrypt.HexToBytes("2b7e151628aed2a6abf7158809cf4f3c"),
		IV:         ClassiCrypt.HexToBytes("000102030405060708090a0b0c0d0e0f"),
		Plaintext:  ClassiCrypt.HexToBytes("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51"),
		Ciphertext: ClassiCrypt.HexToBytes("7649abac8119b246cee98e9b12e9197d5086cb9b507219ee95db113a917678b2"),
	},
	{
		Mode:       CFB,
		Key:        ClassiCrypt.HexToBytes("2b7e151628aed2a6abf7158809cf4f3c"),
		IV:         ClassiCrypt.HexToBytes("000102030405060708090a0b0c0d0e0f"),
		Plaintext:  ClassiCrypt.HexToBytes("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51"),
		Ciphertext: ClassiCrypt.HexToBytes("3b3fd92eb72dad20333449f8e83cfb4ac8a64537a0b3a93fcde3cdad9f1ce58b"),
	},
	{
		Mode:       OFB,
		Key:        ClassiCrypt.HexToBytes("2b7e151628aed2a6abf7158809cf4f3c"),
		IV:         ClassiCrypt.HexToBytes("000102030405060708090a0b0c0d0e0f"),
		Plaintext:  ClassiCrypt.HexToBytes("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51"),
		Ciphertext: ClassiCrypt.HexToBytes("3b3fd92eb72dad20333449f8e83cfb4a7789508d16918f03f53c52dac54ed825"),
	},
	{
		Mode:       CTR,
		Key:        ClassiCrypt.HexToBytes("2b7e151628aed2a6abf7158809cf4f3c"),
		IV:         ClassiCrypt.HexToBytes("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"),
		Plaintext:  ClassiCrypt.HexToBytes("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51"),
		Ciphertext: ClassiCrypt.HexToBytes("874d6191b620e3261bef6864990db6ce9806f66b7970fdff8617187bb9fffdff"),
	},
}
