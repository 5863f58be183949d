package modes

import (
	"fmt"

	"ClassiCrypt"
)

type Encryptor interface {
	Encrypt(plaintext ClassiCrypt.Plaintext) (ClassiCrypt.Ciphertext, error)
	Decrypt(ciphertext ClassiCrypt.Ciphertext) (ClassiCrypt.Plaintext, error)
	KeyStream(size int) ([]byte, error)
}

type encryptor struct {
	cipher ClassiCrypt.BlockCipher
	params Parameter
}

// NewEncryptor binds a block cipher to a mode, padding scheme and IV.
// The IV is copied, so later changes by the caller have no effect.
func NewEncryptor(b ClassiCrypt.BlockCipher, params Parameter) (Encryptor, error) {
	if params.GetMode() < ECB || params.GetMode() > CTR {
		return nil, fmt.Errorf("modes: unknown mode %d", params.GetMode())
	}
	if params.GetMode() != ECB {
		if err := checkIV(b, params.GetIV()); err != nil {
			return nil, err
		}
	}
	iv := make([]byte, len(params.IV))
	copy(iv, params.IV)
	params.IV = iv
	params.Padding = params.GetPadding()
	return &encryptor{cipher: b, params: params}, nil
}

// Encrypt pads for ECB, CBC and PCBC; stream modes keep the plaintext length
func (enc *encryptor) Encrypt(plaintext ClassiCrypt.Plaintext) (ClassiCrypt.Ciphertext, error) {
	mode := enc.params.GetMode()
	iv := enc.params.GetIV()

	if mode.IsStream() {
		var out []byte
		var err error
		switch mode {
		case CFB:
			out, err = cfbXOR(enc.cipher, iv, plaintext, false)
		case OFB:
			out, err = ofbXOR(enc.cipher, iv, plaintext)
		default:
			out, err = ctrXOR(enc.cipher, iv, plaintext)
		}
		return out, err
	}

	padded, err := enc.params.GetPadding().Pad(plaintext, enc.cipher.BlockSize())
	if err != nil {
		return nil, err
	}
	switch mode {
	case ECB:
		return ecbEncrypt(enc.cipher, padded)
	case CBC:
		return cbcEncrypt(enc.cipher, iv, padded)
	default:
		return pcbcEncrypt(enc.cipher, iv, padded)
	}
}

// Decrypt fails with ErrInvalidBlockSize on misaligned block-mode input and
// with ErrPadding when the recovered padding is inconsistent
func (enc *encryptor) Decrypt(ciphertext ClassiCrypt.Ciphertext) (ClassiCrypt.Plaintext, error) {
	mode := enc.params.GetMode()
	iv := enc.params.GetIV()

	if mode.IsStream() {
		var out []byte
		var err error
		switch mode {
		case CFB:
			out, err = cfbXOR(enc.cipher, iv, ciphertext, true)
		case OFB:
			out, err = ofbXOR(enc.cipher, iv, ciphertext)
		default:
			out, err = ctrXOR(enc.cipher, iv, ciphertext)
		}
		return out, err
	}

	if err := checkAligned(enc.cipher, ciphertext); err != nil {
		return nil, err
	}
	var padded []byte
	var err error
	switch mode {
	case ECB:
		padded, err = ecbDecrypt(enc.cipher, ciphertext)
	case CBC:
		padded, err = cbcDecrypt(enc.cipher, iv, ciphertext)
	default:
		padded, err = pcbcDecrypt(enc.cipher, iv, ciphertext)
	}
	if err != nil {
		return nil, err
	}
	return enc.params.GetPadding().Unpad(padded, enc.cipher.BlockSize())
}

// KeyStream returns the first size keystream bytes of OFB or CTR.
// Other modes have no plaintext-independent keystream.
func (enc *encryptor) KeyStream(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("modes: negative keystream size %d", size)
	}
	zeros := make([]byte, size)
	switch enc.params.GetMode() {
	case OFB:
		return ofbXOR(enc.cipher, enc.params.GetIV(), zeros)
	case CTR:
		return ctrXOR(enc.cipher, enc.params.GetIV(), zeros)
	}
	return nil, fmt.Errorf("modes: %s has no standalone keystream", enc.params.GetMode())
}
