package xtea

import (
	"fmt"
	"testing"

	"ClassiCrypt"
)

func BenchmarkXTEA(b *testing.B) {
	for _, tc := range TestVector {
		benchmarkXTEA(&tc, b)
	}
}

func benchmarkXTEA(tc *TestContext, b *testing.B) {
	fmt.Println(testString("XTEA", tc.Params))
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}

	var cipher XTEA
	var ciphertext ClassiCrypt.Block

	b.Run("XTEA/NewXTEA", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			cipher, _ = NewXTEAWithParams(tc.Key, tc.Params)
		}
	})

	b.Run("XTEA/EncryptBlock", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ciphertext, _ = cipher.EncryptBlock(tc.Plaintext)
		}
	})

	b.Run("XTEA/DecryptBlock", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = cipher.DecryptBlock(ciphertext)
		}
	})
}
