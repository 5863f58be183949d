package ClassiCrypt

import (
	"encoding/hex"
	"fmt"
)

// HandleError checks the error and panics if the error isn't nil
func HandleError(err error) {
	if err != nil {
		fmt.Printf("|-> Error: %s\n", err.Error())
		panic("=== Panic\n ")
	}
}

// HexToBytes decodes a hex literal, panicking on malformed input.
// Intended for test vector tables.
func HexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	HandleError(err)
	return b
}

// BytesToHex encodes data as lowercase hex
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}
