// Package modes builds variable-length encryption out of any
// ClassiCrypt.BlockCipher. Inputs are never modified and every call
// allocates its own output.
package modes

import (
	"fmt"

	"ClassiCrypt"
	"ClassiCrypt/padding"
)

func checkIV(b ClassiCrypt.BlockCipher, iv []byte) error {
	if len(iv) != b.BlockSize() {
		return fmt.Errorf("%w: IV is %d bytes, want %d", ClassiCrypt.ErrInvalidBlockSize, len(iv), b.BlockSize())
	}
	return nil
}

func checkAligned(b ClassiCrypt.BlockCipher, data []byte) error {
	if len(data) == 0 || len(data)%b.BlockSize() != 0 {
		return fmt.Errorf("%w: ciphertext is %d bytes, want a positive multiple of %d",
			ClassiCrypt.ErrInvalidBlockSize, len(data), b.BlockSize())
	}
	return nil
}

// EncryptCBC pads plaintext with PKCS#7 and encrypts it in CBC mode.
// Empty plaintext yields one full block.
func EncryptCBC(b ClassiCrypt.BlockCipher, iv []byte, plaintext []byte) ([]byte, error) {
	if err := checkIV(b, iv); err != nil {
		return nil, err
	}
	padded, err := padding.PKCS7.Pad(plaintext, b.BlockSize())
	if err != nil {
		return nil, err
	}
	return cbcEncrypt(b, iv, padded)
}

// DecryptCBC decrypts CBC ciphertext and strips its PKCS#7 padding
func DecryptCBC(b ClassiCrypt.BlockCipher, iv []byte, ciphertext []byte) ([]byte, error) {
	if err := checkIV(b, iv); err != nil {
		return nil, err
	}
	if err := checkAligned(b, ciphertext); err != nil {
		return nil, err
	}
	padded, err := cbcDecrypt(b, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	return padding.PKCS7.Unpad(padded, b.BlockSize())
}

// CTRCrypt XORs input with the keystream E(counter), E(counter+1), ... where the
// counter starts at nonce and is incremented as one big-endian integer,
// wrapping to zero. The same call encrypts and decrypts.
func CTRCrypt(b ClassiCrypt.BlockCipher, nonce []byte, input []byte) ([]byte, error) {
	if err := checkIV(b, nonce); err != nil {
		return nil, err
	}
	return ctrXOR(b, nonce, input)
}

func ecbEncrypt(b ClassiCrypt.BlockCipher, data []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += bs {
		c, err := b.EncryptBlock(data[i : i+bs])
		if err != nil {
			return nil, err
		}
		copy(out[i:], c)
	}
	return out, nil
}

func ecbDecrypt(b ClassiCrypt.BlockCipher, data []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += bs {
		p, err := b.DecryptBlock(data[i : i+bs])
		if err != nil {
			return nil, err
		}
		copy(out[i:], p)
	}
	return out, nil
}

func cbcEncrypt(b ClassiCrypt.BlockCipher, iv, data []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(data))
	prev := iv
	for i := 0; i < len(data); i += bs {
		c, err := b.EncryptBlock(ClassiCrypt.XORBytes(data[i:i+bs], prev))
		if err != nil {
			return nil, err
		}
		copy(out[i:], c)
		prev = out[i : i+bs]
	}
	return out, nil
}

func cbcDecrypt(b ClassiCrypt.BlockCipher, iv, data []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(data))
	prev := iv
	for i := 0; i < len(data); i += bs {
		d, err := b.DecryptBlock(data[i : i+bs])
		if err != nil {
			return nil, err
		}
		copy(out[i:], ClassiCrypt.XORBytes(d, prev))
		prev = data[i : i+bs]
	}
	return out, nil
}

// PCBC feeds back P(i) ^ C(i), so an error in one block garbles all following blocks
func pcbcEncrypt(b ClassiCrypt.BlockCipher, iv, data []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(data))
	feedback := iv
	for i := 0; i < len(data); i += bs {
		p := data[i : i+bs]
		c, err := b.EncryptBlock(ClassiCrypt.XORBytes(p, feedback))
		if err != nil {
			return nil, err
		}
		copy(out[i:], c)
		feedback = ClassiCrypt.XORBytes(p, c)
	}
	return out, nil
}

func pcbcDecrypt(b ClassiCrypt.BlockCipher, iv, data []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(data))
	feedback := iv
	for i := 0; i < len(data); i += bs {
		c := data[i : i+bs]
		d, err := b.DecryptBlock(c)
		if err != nil {
			return nil, err
		}
		p := ClassiCrypt.XORBytes(d, feedback)
		copy(out[i:], p)
		feedback = ClassiCrypt.XORBytes(p, c)
	}
	return out, nil
}

// cfbXOR runs full-block CFB; the shift register is always fed ciphertext
func cfbXOR(b ClassiCrypt.BlockCipher, iv, input []byte, decrypt bool) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(input))
	register := iv
	for i := 0; i < len(input); i += bs {
		ks, err := b.EncryptBlock(register)
		if err != nil {
			return nil, err
		}
		end := i + bs
		if end > len(input) {
			end = len(input)
		}
		copy(out[i:end], ClassiCrypt.XORBytes(input[i:end], ks))
		if decrypt {
			register = input[i:end]
		} else {
			register = out[i:end]
		}
	}
	return out, nil
}

func ofbXOR(b ClassiCrypt.BlockCipher, iv, input []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(input))
	register := iv
	for i := 0; i < len(input); i += bs {
		ks, err := b.EncryptBlock(register)
		if err != nil {
			return nil, err
		}
		end := i + bs
		if end > len(input) {
			end = len(input)
		}
		copy(out[i:end], ClassiCrypt.XORBytes(input[i:end], ks))
		register = ks
	}
	return out, nil
}

func ctrXOR(b ClassiCrypt.BlockCipher, nonce, input []byte) ([]byte, error) {
	bs := b.BlockSize()
	out := make([]byte, len(input))
	counter := make([]byte, bs)
	copy(counter, nonce)
	for i := 0; i < len(input); i += bs {
		ks, err := b.EncryptBlock(counter)
		if err != nil {
			return nil, err
		}
		end := i + bs
		if end > len(input) {
			end = len(input)
		}
		copy(out[i:end], ClassiCrypt.XORBytes(input[i:end], ks))
		incrementCounter(counter)
	}
	return out, nil
}

// incrementCounter adds one to counter as a big-endian integer, wrapping on overflow
func incrementCounter(counter []byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}
