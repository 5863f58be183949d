// Package kdf stretches secrets into keys using HKDF and PBKDF2 driven by
// this module's own hash functions.
package kdf

import (
	"fmt"
	"hash"
	"io"
	"math/big"

	"ClassiCrypt"
	"ClassiCrypt/hashes/sha2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// HKDF derives length bytes from secret (RFC 5869). An empty salt is
// replaced by a zero block of the hash size.
func HKDF(newHash func() hash.Hash, secret, salt, info []byte, length int) ([]byte, error) {
	size := newHash().Size()
	if length <= 0 || length > 255*size {
		return nil, fmt.Errorf("%w: HKDF output of %d bytes, want 1..%d", ClassiCrypt.ErrInvalidKeySize, length, 255*size)
	}
	if len(salt) == 0 {
		salt = make([]byte, size)
	}

	reader := hkdf.New(newHash, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// PBKDF2 derives keyLen bytes from a password with iter rounds of HMAC over newHash
func PBKDF2(newHash func() hash.Hash, password, salt []byte, iter, keyLen int) ([]byte, error) {
	if iter < 1 {
		return nil, fmt.Errorf("kdf: PBKDF2 needs at least one iteration, got %d", iter)
	}
	if keyLen <= 0 {
		return nil, fmt.Errorf("%w: PBKDF2 output of %d bytes", ClassiCrypt.ErrInvalidKeySize, keyLen)
	}
	return pbkdf2.Key(password, salt, iter, keyLen, newHash), nil
}

// SharedKey turns a Diffie-Hellman shared secret into a symmetric key with
// HKDF-SHA256. The secret is encoded big-endian and left padded to the byte
// length of modulus so both parties hash identical input.
func SharedKey(secret, modulus *big.Int, info []byte, length int) (ClassiCrypt.Key, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ClassiCrypt.ErrInvalidModulus)
	}
	if secret.Sign() < 0 || secret.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: shared secret outside [0, modulus)", ClassiCrypt.ErrInvalidKey)
	}
	encoded := secret.FillBytes(make([]byte, (modulus.BitLen()+7)/8))
	return HKDF(sha2.New256, encoded, nil, info, length)
}
