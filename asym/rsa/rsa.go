// Package rsa implements textbook RSA: unpadded encryption and
// hash-then-sign signatures computed as H(m)^d mod N.
package rsa

import (
	"crypto/rand"
	"errors"
	"fmt"
	"hash"
	"io"
	"math/big"

	"ClassiCrypt"
	"ClassiCrypt/modarith"
)

// DefaultExponent is the public exponent used by GenerateKey
const DefaultExponent = 65537

type PublicKey struct {
	N *big.Int
	E *big.Int
}

type PrivateKey struct {
	PublicKey
	D *big.Int
	P *big.Int
	Q *big.Int
}

// Size returns the modulus length in bytes
func (pub *PublicKey) Size() int {
	return (pub.N.BitLen() + 7) / 8
}

// NewPrivateKey assembles a key from two distinct primes and a public exponent
func NewPrivateKey(p, q, e *big.Int) (*PrivateKey, error) {
	one := big.NewInt(1)
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 || p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: RSA needs two distinct primes", ClassiCrypt.ErrInvalidModulus)
	}
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	if e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return nil, fmt.Errorf("%w: public exponent must lie in (1, phi(N))", ClassiCrypt.ErrInvalidKey)
	}
	d, err := modarith.ModInverse(e, phi)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		PublicKey: PublicKey{N: n, E: new(big.Int).Set(e)},
		D:         d,
		P:         new(big.Int).Set(p),
		Q:         new(big.Int).Set(q),
	}, nil
}

// GenerateKey returns a key with an N of exactly bits bits and E = 65537.
// A nil random uses crypto/rand.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	if bits < 64 {
		return nil, fmt.Errorf("%w: RSA modulus of %d bits is too small", ClassiCrypt.ErrInvalidModulus, bits)
	}
	e := big.NewInt(DefaultExponent)
	for {
		p, err := rand.Prime(random, bits-bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		q, err := rand.Prime(random, bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		key, err := NewPrivateKey(p, q, e)
		if errors.Is(err, ClassiCrypt.ErrNoInverse) || errors.Is(err, ClassiCrypt.ErrInvalidModulus) {
			// gcd(e, phi) != 1 or p == q
			continue
		}
		if err != nil {
			return nil, err
		}
		if key.N.BitLen() != bits {
			continue
		}
		return key, nil
	}
}

func checkRepresentative(pub *PublicKey, m *big.Int) error {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return fmt.Errorf("%w: representative must lie in [0, N)", ClassiCrypt.ErrMessageTooLarge)
	}
	return nil
}

// Encrypt returns m^E mod N
func Encrypt(pub *PublicKey, m *big.Int) (*big.Int, error) {
	if err := checkRepresentative(pub, m); err != nil {
		return nil, err
	}
	return modarith.ModExp(m, pub.E, pub.N)
}

// Decrypt returns c^D mod N
func Decrypt(priv *PrivateKey, c *big.Int) (*big.Int, error) {
	if err := checkRepresentative(&priv.PublicKey, c); err != nil {
		return nil, err
	}
	return modarith.ModExp(c, priv.D, priv.N)
}

// Sign returns H(message)^D mod N, left padded to the modulus length
func Sign(priv *PrivateKey, newHash func() hash.Hash, message []byte) ([]byte, error) {
	h := newHash()
	_, _ = h.Write(message)
	m := new(big.Int).SetBytes(h.Sum(nil))
	s, err := Decrypt(priv, m)
	if err != nil {
		return nil, err
	}
	return s.FillBytes(make([]byte, priv.Size())), nil
}

// Verify recomputes H(message) and compares it with signature^E mod N
func Verify(pub *PublicKey, newHash func() hash.Hash, message, signature []byte) bool {
	s := new(big.Int).SetBytes(signature)
	m, err := Encrypt(pub, s)
	if err != nil {
		return false
	}
	h := newHash()
	_, _ = h.Write(message)
	return m.Cmp(new(big.Int).SetBytes(h.Sum(nil))) == 0
}
