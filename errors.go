package ClassiCrypt

import "errors"

var (
	// ErrInvalidKeySize is returned when a key does not match the cipher's key length.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidBlockSize is returned when a block, IV or nonce has the wrong length,
	// or when ciphertext is not a whole number of blocks.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrPadding is returned when decrypted data does not end in valid padding.
	ErrPadding = errors.New("invalid padding")

	// ErrNoInverse is returned when a value has no inverse modulo the given modulus.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrInvalidModulus is returned for a zero, negative or otherwise unusable modulus.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrInvalidKey is returned when an integer key lies outside its allowed range.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNegativeResult is returned when integer subtraction would leave the non-negative integers.
	ErrNegativeResult = errors.New("negative result")

	// ErrMessageTooLarge is returned when a message representative is not smaller than the modulus.
	ErrMessageTooLarge = errors.New("message too large for modulus")
)
