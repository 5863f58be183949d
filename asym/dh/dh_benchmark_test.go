package dh

import (
	"fmt"
	"math/big"
	"testing"

	"ClassiCrypt"
)

func BenchmarkDH(b *testing.B) {
	params := MODP2048
	fmt.Println(testString("DH", params))
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}
	xof := ClassiCrypt.NewXOF([]byte("dh/bench"))

	var alice, bob *Party
	var peer *big.Int

	b.Run("DH/NewParty", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			alice, _ = NewParty(params, xof)
		}
	})

	bob, _ = NewParty(params, xof)
	peer = bob.PublicKey()

	b.Run("DH/SharedSecret", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = alice.SharedSecret(peer)
		}
	})
}
