package mac

import (
	"hash"

	"ClassiCrypt"
)

// SecretPrefix computes H(key || message). With a Merkle-Damgard hash the
// tag is open to length extension; HMAC exists to close that gap.
type SecretPrefix struct {
	Hash func() hash.Hash
}

func (m SecretPrefix) Tag(key, message []byte) (ClassiCrypt.Tag, error) {
	h := m.Hash()
	_, _ = h.Write(key)
	_, _ = h.Write(message)
	return h.Sum(nil), nil
}

func (m SecretPrefix) Verify(key, message []byte, tag ClassiCrypt.Tag) (bool, error) {
	return verify(m, key, message, tag)
}
