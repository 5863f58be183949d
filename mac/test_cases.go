package mac

import (
	"bytes"

	"ClassiCrypt"
)

type TestContext struct {
	Name    string
	Key     []byte
	Message []byte
	Tag     ClassiCrypt.Tag
}

// TestVector holds RFC 4231 HMAC-SHA256 cases
var TestVector = []TestContext{
	{
		Name:    "RFC4231/1",
		Key:     bytes.Repeat([]byte{0x0b}, 20),
		Message: []byte("Hi There"),
		Tag:     ClassiCrypt.HexToBytes("b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"),
	},
	{
		Name:    "RFC4231/2",
		Key:     []byte("Jefe"),
		Message: []byte("what do ya want for nothing?"),
		Tag:     ClassiCrypt.HexToBytes("5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"),
	},
	{
		Name:    "RFC4231/6",
		Key:     bytes.Repeat([]byte{0xaa}, 131),
		Message: []byte("Test Using Larger Than Block-Size Key - Hash Key First"),
		Tag:     ClassiCrypt.HexToBytes("60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54"),
	},
}
