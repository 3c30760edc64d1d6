// Package ff implements arithmetic over the BLS12-381 base field F_p and
// its quadratic extension F_p^2 = F_p[i] / (i^2 + 1).
//
// All operations return fresh values; nothing mutates its operands. The
// package is safe for concurrent use.
package ff

import "math/big"

// P is the base field modulus,
// p = 0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab.
// Treat as read-only.
var P, _ = new(big.Int).SetString(
	"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

var (
	// (p+1)/4, the square-root exponent for p = 3 mod 4.
	pPlus1Over4 = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)
	// (p-1)/2, the threshold for the upper half of the field.
	pMinus1Over2 = new(big.Int).Rsh(new(big.Int).Sub(P, big.NewInt(1)), 1)
	// p^2 - 1, the order of the multiplicative group of F_p^2.
	q2Order = new(big.Int).Sub(new(big.Int).Mul(P, P), big.NewInt(1))
)

// Q2Order returns p^2 - 1, the order of the multiplicative group of F_p^2.
func Q2Order() *big.Int {
	return new(big.Int).Set(q2Order)
}

// Add returns (a + b) mod p.
func Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, P)
}

// Sub returns (a - b) mod p.
func Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, P)
}

// Mul returns (a * b) mod p.
func Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, P)
}

// Sqr returns a^2 mod p.
func Sqr(a *big.Int) *big.Int {
	return Mul(a, a)
}

// Exp returns a^e mod p.
func Exp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, P)
}

// Inv returns a^(-1) mod p.
func Inv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, P)
}

// Neg returns (-a) mod p.
func Neg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(P, new(big.Int).Mod(a, P))
}

// Sqrt returns a square root of a mod p. Because p = 3 mod 4 the candidate
// is a^((p+1)/4); the second result is false when a is a non-residue.
func Sqrt(a *big.Int) (*big.Int, bool) {
	r := Exp(a, pPlus1Over4)
	if Sqr(r).Cmp(new(big.Int).Mod(a, P)) != 0 {
		return nil, false
	}
	return r, true
}

// IsSquare reports whether a is a quadratic residue mod p, by Euler's
// criterion. Zero counts as a square.
func IsSquare(a *big.Int) bool {
	r := new(big.Int).Mod(a, P)
	if r.Sign() == 0 {
		return true
	}
	return Exp(r, pMinus1Over2).Cmp(big.NewInt(1)) == 0
}

// IsHigh reports whether c lies in the upper half of the field's
// representative range, i.e. floor(2c/p) = 1. This is the bit the
// compressed-point a-flag records.
func IsHigh(c *big.Int) bool {
	return c.Cmp(pMinus1Over2) > 0
}
