package sha2

import (
	"bytes"

	"ClassiCrypt"
)

type TestContext struct {
	Name    string
	Message []byte
	Digest  ClassiCrypt.Digest
}

// TestVector holds NIST SHA-256 examples, including the padding boundary lengths
var TestVector = []TestContext{
	{"Empty", []byte{}, ClassiCrypt.HexToBytes("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")},
	{"Abc", []byte("abc"), ClassiCrypt.HexToBytes("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")},
	{
		"TwoBlock",
		[]byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
		ClassiCrypt.HexToBytes("248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"),
	},
	{"OneByte", []byte{0xbd}, ClassiCrypt.HexToBytes("68325720aabd7c82f30f554b313d0570c95accbb7dc4b5aae11204c08ffe732b")},
	{"Zeros55", make([]byte, 55), ClassiCrypt.HexToBytes("02779466cdec163811d078815c633f21901413081449002f24aa3e80f0b88ef7")},
	{"Zeros56", make([]byte, 56), ClassiCrypt.HexToBytes("d4817aa5497628e7c77e6b606107042bbba3130888c5f47a375e6179be789fbb")},
	{"Zeros64", make([]byte, 64), ClassiCrypt.HexToBytes("f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b")},
	{"Zeros1000", bytes.Repeat([]byte{0}, 1000), ClassiCrypt.HexToBytes("541b3e9daa09b20bf85fa273e5cbd3e80185aa4ec298e765db87742b70138a53")},
}

// TestVector224 holds SHA-224 examples
var TestVector224 = []TestContext{
	{"Empty", []byte{}, ClassiCrypt.HexToBytes("d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f")},
	{"Abc", []byte("abc"), ClassiCrypt.HexToBytes("23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7")},
}
