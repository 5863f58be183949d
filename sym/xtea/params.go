package xtea

const (
	// BlockSize is the XTEA block size in bytes
	BlockSize = 8
	// KeySize is the XTEA key size in bytes
	KeySize = 16

	delta = 0x9E3779B9
)

type Parameter struct {
	Rounds int
}

// Standard is the usual 64 Feistel rounds (32 cycles)
var Standard = Parameter{Rounds: 64}

// GetBlockSize returns the block size in bytes
func (params Parameter) GetBlockSize() int {
	return BlockSize
}
// GetKeySize returns the secret key size in bytes
func (params Parameter) GetKeySize() int {
	return KeySize
}
// GetRounds returns the number of Feistel rounds
func (params Parameter) GetRounds() int {
	return params.Rounds
}
