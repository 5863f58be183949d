package modes

import (
	"ClassiCrypt/padding"
)

type Mode int

const (
	ECB Mode = iota
	CBC
	PCBC
	CFB
	OFB
	CTR
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	case PCBC:
		return "PCBC"
	case CFB:
		return "CFB"
	case OFB:
		return "OFB"
	case CTR:
		return "CTR"
	}
	return "Unknown"
}

// IsStream reports whether the mode XORs a keystream and therefore needs no padding
func (m Mode) IsStream() bool {
	return m == CFB || m == OFB || m == CTR
}

// Parameter configures an Encryptor. IV is the initialization vector for
// CBC, PCBC, CFB and OFB, and the initial counter block for CTR. ECB ignores it.
type Parameter struct {
	Mode    Mode
	Padding padding.Scheme
	IV      []byte
}

// GetMode returns the mode of operation
func (params Parameter) GetMode() Mode {
	return params.Mode
}
// GetPadding returns the padding scheme, PKCS#7 when none is set
func (params Parameter) GetPadding() padding.Scheme {
	if params.Padding == nil {
		return padding.PKCS7
	}
	return params.Padding
}
// GetIV returns the initialization vector or initial counter block
func (params Parameter) GetIV() []byte {
	return params.IV
}
