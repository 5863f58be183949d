package padding

import "fmt"

// MerkleDamgardSuffix returns the bytes appended to a messageLen-byte message:
// a single 1 bit (0x80), zeros, then the message length in bits as a
// big-endian integer filling the final lengthSize bytes. The padded length
// is a multiple of blockSize.
func MerkleDamgardSuffix(messageLen uint64, blockSize, lengthSize int) []byte {
	bs := uint64(blockSize)
	zeros := (bs - (messageLen+1+uint64(lengthSize))%bs) % bs
	suffix := make([]byte, 1+int(zeros)+lengthSize)
	suffix[0] = 0x80

	bits := messageLen << 3
	for i := 0; i < lengthSize && i < 8; i++ {
		suffix[len(suffix)-1-i] = byte(bits >> (8 * i))
	}
	return suffix
}

// MerkleDamgard returns a padded copy of message
func MerkleDamgard(message []byte, blockSize, lengthSize int) ([]byte, error) {
	if blockSize <= 0 || lengthSize <= 0 || lengthSize >= blockSize {
		return nil, fmt.Errorf("padding: invalid Merkle-Damgard geometry block=%d length=%d", blockSize, lengthSize)
	}
	suffix := MerkleDamgardSuffix(uint64(len(message)), blockSize, lengthSize)
	out := make([]byte, 0, len(message)+len(suffix))
	out = append(out, message...)
	return append(out, suffix...), nil
}
