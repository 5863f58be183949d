package dh

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"ClassiCrypt"
	"ClassiCrypt/modarith"
)

const primalityRounds = 20

// Parameter is a Diffie-Hellman group: a prime modulus and a generator
type Parameter struct {
	Prime     *big.Int
	Generator *big.Int
}

// GetPrime returns the prime modulus p
func (params Parameter) GetPrime() *big.Int {
	return params.Prime
}
// GetGenerator returns the group generator g
func (params Parameter) GetGenerator() *big.Int {
	return params.Generator
}
// GetBitSize returns the bit length of p
func (params Parameter) GetBitSize() int {
	return params.Prime.BitLen()
}

// MODP2048 is the 2048-bit MODP group 14 from RFC 3526 with generator 2
var MODP2048 = Parameter{
	Prime: mustHex(`
		FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
		E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
		DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
		15728E5A 8AACAA68 FFFFFFFF FFFFFFFF`),
	Generator: big.NewInt(2),
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(strings.Join(strings.Fields(s), ""), 16)
	if !ok {
		panic("dh: malformed group constant")
	}
	return n
}

// NewParameter validates a group. The modulus must be an odd prime above 3
// and the generator must lie in (1, p-1).
func NewParameter(prime, generator *big.Int) (Parameter, error) {
	if prime == nil || prime.Cmp(big.NewInt(3)) <= 0 || prime.Bit(0) == 0 {
		return Parameter{}, fmt.Errorf("%w: DH modulus must be an odd prime above 3, got %v", ClassiCrypt.ErrInvalidModulus, prime)
	}
	if !modarith.IsProbablePrime(prime, primalityRounds) {
		return Parameter{}, fmt.Errorf("%w: DH modulus is composite", ClassiCrypt.ErrInvalidModulus)
	}
	pMinusOne := new(big.Int).Sub(prime, big.NewInt(1))
	if generator == nil || generator.Cmp(big.NewInt(1)) <= 0 || generator.Cmp(pMinusOne) >= 0 {
		return Parameter{}, fmt.Errorf("%w: generator must lie in (1, p-1), got %v", ClassiCrypt.ErrInvalidKey, generator)
	}
	return Parameter{
		Prime:     new(big.Int).Set(prime),
		Generator: new(big.Int).Set(generator),
	}, nil
}

// GenerateParameter builds a group over a fresh safe prime p = 2q + 1 of the
// given size, with the smallest generator of the full group (p-1 elements).
// A nil random uses crypto/rand.
func GenerateParameter(random io.Reader, bits int) (Parameter, error) {
	if random == nil {
		random = rand.Reader
	}
	if bits < 16 {
		return Parameter{}, fmt.Errorf("%w: safe prime of %d bits is too small", ClassiCrypt.ErrInvalidModulus, bits)
	}

	one := big.NewInt(1)
	var p, q *big.Int
	for {
		var err error
		q, err = rand.Prime(random, bits-1)
		if err != nil {
			return Parameter{}, fmt.Errorf("failed to generate prime: %w", err)
		}
		p = new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		ok, err := modarith.MillerRabin(p, primalityRounds, random)
		if err != nil {
			return Parameter{}, err
		}
		if ok {
			break
		}
	}

	// g^2 != 1 for 1 < g < p-1, so g^q != 1 leaves order 2q
	pMinusOne := new(big.Int).Sub(p, one)
	for g := big.NewInt(2); g.Cmp(pMinusOne) < 0; g.Add(g, one) {
		r, err := modarith.ModExp(g, q, p)
		if err != nil {
			return Parameter{}, err
		}
		if r.Cmp(one) != 0 {
			return Parameter{Prime: p, Generator: new(big.Int).Set(g)}, nil
		}
	}
	return Parameter{}, fmt.Errorf("%w: no generator found", ClassiCrypt.ErrInvalidModulus)
}
