package modarith

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

var smallPrimes = []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// RandomInRange returns a uniform integer in [lo, hi]
func RandomInRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, fmt.Errorf("modarith: empty range [%v, %v]", lo, hi)
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, one)
	r, err := rand.Int(random, width)
	if err != nil {
		return nil, err
	}
	return r.Add(r, lo), nil
}

// MillerRabin reports whether n is probably prime after the given number of
// rounds with witnesses drawn from random. A composite passes with
// probability at most 4^-rounds.
func MillerRabin(n *big.Int, rounds int, random io.Reader) (bool, error) {
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if new(big.Int).Mod(n, bp).Sign() == 0 {
			return n.Cmp(bp) == 0, nil
		}
	}

	// n - 1 = d * 2^s
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinusTwo := new(big.Int).Sub(n, two)
	for i := 0; i < rounds; i++ {
		a, err := RandomInRange(random, two, nMinusTwo)
		if err != nil {
			return false, err
		}
		x, err := ModExp(a, d, n)
		if err != nil {
			return false, err
		}
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		composite := true
		for j := 1; j < s; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// IsProbablePrime runs MillerRabin with witnesses from crypto/rand
func IsProbablePrime(n *big.Int, rounds int) bool {
	ok, err := MillerRabin(n, rounds, rand.Reader)
	return err == nil && ok
}
