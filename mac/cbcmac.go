package mac

import (
	"ClassiCrypt"
	"ClassiCrypt/modes"
)

// CBCMAC takes the last block of the CBC encryption of the PKCS#7-padded
// message under a zero IV. It is only sound for messages of one fixed length.
type CBCMAC struct {
	NewCipher func(key ClassiCrypt.Key) (ClassiCrypt.BlockCipher, error)
}

func (m CBCMAC) Tag(key, message []byte) (ClassiCrypt.Tag, error) {
	c, err := m.NewCipher(key)
	if err != nil {
		return nil, err
	}
	bs := c.BlockSize()
	ct, err := modes.EncryptCBC(c, make([]byte, bs), message)
	if err != nil {
		return nil, err
	}
	tag := make(ClassiCrypt.Tag, bs)
	copy(tag, ct[len(ct)-bs:])
	return tag, nil
}

func (m CBCMAC) Verify(key, message []byte, tag ClassiCrypt.Tag) (bool, error) {
	return verify(m, key, message, tag)
}
