package ClassiCrypt

type Key []byte
type Block []byte
type Plaintext []byte
type Ciphertext []byte
type Digest []byte
type Tag []byte

// BlockCipher is a keyed permutation over fixed-size blocks.
// Implementations are immutable after construction and safe for concurrent use.
type BlockCipher interface {
	BlockSize() int
	EncryptBlock(block Block) (Block, error)
	DecryptBlock(block Block) (Block, error)
}
