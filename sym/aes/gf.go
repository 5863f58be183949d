package aes

// Arithmetic in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

func gfMul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// gfInverse returns a^254, the multiplicative inverse of a (0 maps to 0)
func gfInverse(a byte) byte {
	if a == 0 {
		return 0
	}
	r, x := byte(1), a
	for e := 254; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = gfMul(r, x)
		}
		x = gfMul(x, x)
	}
	return r
}

func rotl8(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}

func affineTransform(b byte) byte {
	return b ^ rotl8(b, 1) ^ rotl8(b, 2) ^ rotl8(b, 3) ^ rotl8(b, 4) ^ 0x63
}

// sBox and invSBox are derived once and never written afterwards
var sBox, invSBox = buildSBoxes()

func buildSBoxes() (s, inv [256]byte) {
	for i := 0; i < 256; i++ {
		v := affineTransform(gfInverse(byte(i)))
		s[i] = v
		inv[v] = byte(i)
	}
	return
}

// rcon[i] = x^(i-1) in GF(2^8)
var rcon = buildRcon()

func buildRcon() (r [15]byte) {
	r[1] = 1
	for i := 2; i < len(r); i++ {
		r[i] = xtime(r[i-1])
	}
	return
}
