package xtea

import "ClassiCrypt"

type TestContext struct {
	Params     Parameter
	Key        ClassiCrypt.Key
	Plaintext  ClassiCrypt.Block
	Ciphertext ClassiCrypt.Block
}

// TestVector holds published 64-round XTEA vectors
var TestVector = []TestContext{
	{
		Params:     Standard,
		Key:        ClassiCrypt.HexToBytes("000102030405060708090a0b0c0d0e0f"),
		Plaintext:  ClassiCrypt.HexToBytes("4142434445464748"),
		Ciphertext: ClassiCrypt.HexToBytes("497df3d072612cb5"),
	},
	{
		Params:     Standard,
		Key:        ClassiCrypt.HexToBytes("00000000000000000000000000000000"),
		Plaintext:  ClassiCrypt.HexToBytes("0000000000000000"),
		Ciphertext: ClassiCrypt.HexToBytes("dee9d4d8f7131ed9"),
	},
}
