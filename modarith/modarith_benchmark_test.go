package modarith

import (
	"math/big"
	"testing"

	"ClassiCrypt"
)

func BenchmarkModArith(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}
	xof := ClassiCrypt.NewXOF([]byte("modarith/bench"))
	base := new(big.Int).SetBytes(ClassiCrypt.RandomBytes(xof, 256))
	exp := new(big.Int).SetBytes(ClassiCrypt.RandomBytes(xof, 256))
	m := new(big.Int).SetBytes(ClassiCrypt.RandomBytes(xof, 256))
	m.SetBit(m, 0, 1)
	m.SetBit(m, 2047, 1)

	b.Run("ModArith/ModExp/2048", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ModExp(base, exp, m)
		}
	})

	b.Run("ModArith/ModInverse/2048", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ModInverse(base, m)
		}
	})

	b.Run("ModArith/MillerRabin/2048", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = MillerRabin(m, 8, xof)
		}
	})
}
