// Package modarith implements modular arithmetic over arbitrary-precision
// non-negative integers. Every result is reduced into [0, m).
package modarith

import (
	"fmt"
	"math/big"

	"ClassiCrypt"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

func checkModulus(m *big.Int) error {
	if m == nil || m.Sign() <= 0 {
		return fmt.Errorf("%w: modulus must be positive, got %v", ClassiCrypt.ErrInvalidModulus, m)
	}
	return nil
}

// Add returns a + b
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub returns a - b, failing when the difference would be negative
func Sub(a, b *big.Int) (*big.Int, error) {
	if a.Cmp(b) < 0 {
		return nil, fmt.Errorf("%w: %v - %v", ClassiCrypt.ErrNegativeResult, a, b)
	}
	return new(big.Int).Sub(a, b), nil
}

// Mul returns a * b
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// Mod returns a mod m in [0, m)
func Mod(a, m *big.Int) (*big.Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	return new(big.Int).Mod(a, m), nil
}

// ModAdd returns (a + b) mod m
func ModAdd(a, b, m *big.Int) (*big.Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m), nil
}

// ModSub returns (a - b) mod m, never negative
func ModSub(a, b, m *big.Int) (*big.Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m), nil
}

// ModMul returns (a * b) mod m
func ModMul(a, b, m *big.Int) (*big.Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m), nil
}

// ModExp computes base^exp mod m by left-to-right square-and-multiply.
// A negative exponent raises the inverse of base instead, and fails with
// ErrNoInverse when base is not invertible.
func ModExp(base, exp, m *big.Int) (*big.Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	b := new(big.Int).Mod(base, m)
	e := new(big.Int).Set(exp)
	if e.Sign() < 0 {
		inv, err := ModInverse(b, m)
		if err != nil {
			return nil, err
		}
		b = inv
		e.Neg(e)
	}

	result := big.NewInt(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, m)
		if e.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
	}
	// m == 1 with exp == 0
	return result.Mod(result, m), nil
}

// GCD returns the greatest common divisor of a and b
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(a, b)
	return g
}

// ExtendedGCD returns g = gcd(a, b) and Bezout coefficients x, y with a*x + b*y = g.
// Inputs are expected to be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Div(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}
	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) with a*x = 1 (mod m).
// It fails with ErrNoInverse when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	r := new(big.Int).Mod(a, m)
	g, x, _ := ExtendedGCD(r, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%v, %v) = %v", ClassiCrypt.ErrNoInverse, a, m, g)
	}
	return x.Mod(x, m), nil
}
