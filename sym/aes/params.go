package aes

// BlockSize is the AES block size in bytes
const BlockSize = 16

type Parameter struct {
	KeySize int
	Rounds  int
}

var (
	AES128 = Parameter{KeySize: 16, Rounds: 10}
	AES192 = Parameter{KeySize: 24, Rounds: 12}
	AES256 = Parameter{KeySize: 32, Rounds: 14}
)

// GetBlockSize returns the block size in bytes
func (params Parameter) GetBlockSize() int {
	return BlockSize
}
// GetKeySize returns the secret key size in bytes
func (params Parameter) GetKeySize() int {
	return params.KeySize
}
// GetRounds returns the number of cipher rounds
func (params Parameter) GetRounds() int {
	return params.Rounds
}

// ParameterForKey returns the parameter set matching a key length
func ParameterForKey(keyLen int) (Parameter, bool) {
	switch keyLen {
	case AES128.KeySize:
		return AES128, true
	case AES192.KeySize:
		return AES192, true
	case AES256.KeySize:
		return AES256, true
	}
	return Parameter{}, false
}
