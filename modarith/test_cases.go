package modarith

import "math/big"

type TestCase int

const (
	EXP TestCase = iota
	INV
)

type TestContext struct {
	tc       TestCase
	a        *big.Int
	b        *big.Int
	modulus  *big.Int
	expected *big.Int
}

func bigFromString(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("invalid integer literal " + s)
	}
	return n
}

// TestVector holds ModExp (a^b mod m) and ModInverse (a^-1 mod m) cases
var TestVector = []TestContext{
	{tc: EXP, a: big.NewInt(4), b: big.NewInt(13), modulus: big.NewInt(497), expected: big.NewInt(445)},
	{tc: EXP, a: big.NewInt(2), b: big.NewInt(10), modulus: big.NewInt(1000), expected: big.NewInt(24)},
	{tc: EXP, a: big.NewInt(3), b: big.NewInt(0), modulus: big.NewInt(7), expected: big.NewInt(1)},
	{tc: EXP, a: big.NewInt(5), b: big.NewInt(0), modulus: big.NewInt(1), expected: big.NewInt(0)},
	{tc: EXP, a: big.NewInt(0), b: big.NewInt(5), modulus: big.NewInt(13), expected: big.NewInt(0)},
	{tc: EXP, a: big.NewInt(2), b: big.NewInt(-1), modulus: big.NewInt(7), expected: big.NewInt(4)},
	{tc: EXP, a: big.NewInt(65), b: big.NewInt(17), modulus: big.NewInt(3233), expected: big.NewInt(2790)},
	{tc: EXP, a: big.NewInt(2790), b: big.NewInt(2753), modulus: big.NewInt(3233), expected: big.NewInt(65)},
	{
		tc:       EXP,
		a:        big.NewInt(2),
		b:        bigFromString("0xffffffffffffffff"),
		modulus:  bigFromString("0xffffffffffffffc5"),
		expected: nil, // checked against math/big
	},
	{tc: INV, a: big.NewInt(3), modulus: big.NewInt(11), expected: big.NewInt(4)},
	{tc: INV, a: big.NewInt(17), modulus: big.NewInt(3120), expected: big.NewInt(2753)},
	{tc: INV, a: big.NewInt(10), modulus: big.NewInt(17), expected: big.NewInt(12)},
	{tc: INV, a: big.NewInt(-3), modulus: big.NewInt(11), expected: big.NewInt(7)},
	{tc: INV, a: big.NewInt(1), modulus: big.NewInt(1), expected: big.NewInt(0)},
}

// Carmichael numbers fool the Fermat test but not Miller-Rabin
var Carmichael = []int64{561, 1105, 1729, 2465, 2821, 6601, 8911, 10585, 15841, 29341}
