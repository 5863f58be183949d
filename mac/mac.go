// Package mac derives authentication tags from a key and a message.
// Verification recomputes the tag and compares with bytes.Equal, which is
// not constant time.
package mac

import (
	"bytes"

	"ClassiCrypt"
)

type Scheme interface {
	Tag(key, message []byte) (ClassiCrypt.Tag, error)
	Verify(key, message []byte, tag ClassiCrypt.Tag) (bool, error)
}

func verify(s Scheme, key, message []byte, tag ClassiCrypt.Tag) (bool, error) {
	want, err := s.Tag(key, message)
	if err != nil {
		return false, err
	}
	return bytes.Equal(want, tag), nil
}
