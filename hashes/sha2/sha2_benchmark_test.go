package sha2

import (
	"testing"

	"ClassiCrypt"
)

func BenchmarkSHA2(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}
	msg := ClassiCrypt.RandomBytes(ClassiCrypt.NewXOF([]byte("sha2/bench")), 8192)

	b.Run("SHA256/Sum/8KiB", func(b *testing.B) {
		b.SetBytes(int64(len(msg)))
		for i := 0; i < b.N; i++ {
			_ = Sum256(msg)
		}
	})

	b.Run("SHA224/Sum/8KiB", func(b *testing.B) {
		b.SetBytes(int64(len(msg)))
		for i := 0; i < b.N; i++ {
			_ = Sum224(msg)
		}
	})
}
