package ff

import "math/big"

// Fp2 is an element of F_p^2, represented as C0 + C1*i with i^2 = -1.
// C0 is the real coefficient, C1 the imaginary one. Values are immutable:
// every operation returns a new element and coefficients are never
// modified in place.
type Fp2 struct {
	C0, C1 *big.Int
}

// NewFp2 builds an element from the given coefficients, reducing mod p.
func NewFp2(c0, c1 *big.Int) Fp2 {
	return Fp2{
		C0: new(big.Int).Mod(c0, P),
		C1: new(big.Int).Mod(c1, P),
	}
}

// Fp2Zero returns the additive identity.
func Fp2Zero() Fp2 {
	return Fp2{C0: new(big.Int), C1: new(big.Int)}
}

// Fp2One returns the multiplicative identity.
func Fp2One() Fp2 {
	return Fp2{C0: big.NewInt(1), C1: new(big.Int)}
}

func (e Fp2) IsZero() bool {
	return e.C0.Sign() == 0 && e.C1.Sign() == 0
}

func (e Fp2) Equal(f Fp2) bool {
	return e.C0.Cmp(f.C0) == 0 && e.C1.Cmp(f.C1) == 0
}

func (e Fp2) Add(f Fp2) Fp2 {
	return Fp2{C0: Add(e.C0, f.C0), C1: Add(e.C1, f.C1)}
}

func (e Fp2) Sub(f Fp2) Fp2 {
	return Fp2{C0: Sub(e.C0, f.C0), C1: Sub(e.C1, f.C1)}
}

// Mul returns e * f using the schoolbook-Karatsuba identity
// (a0 + a1*i)(b0 + b1*i) = (a0*b0 - a1*b1) + ((a0+a1)(b0+b1) - a0*b0 - a1*b1)*i.
func (e Fp2) Mul(f Fp2) Fp2 {
	v0 := Mul(e.C0, f.C0)
	v1 := Mul(e.C1, f.C1)
	c1 := Sub(Mul(Add(e.C0, e.C1), Add(f.C0, f.C1)), Add(v0, v1))
	return Fp2{C0: Sub(v0, v1), C1: c1}
}

func (e Fp2) Sqr() Fp2 {
	ab := Mul(e.C0, e.C1)
	return Fp2{
		C0: Mul(Add(e.C0, e.C1), Sub(e.C0, e.C1)),
		C1: Add(ab, ab),
	}
}

func (e Fp2) Neg() Fp2 {
	return Fp2{C0: Neg(e.C0), C1: Neg(e.C1)}
}

// Inv returns e^(-1): (a - b*i) / (a^2 + b^2). The norm a^2 + b^2 is zero
// only for the zero element, which has no inverse; callers must not pass it.
func (e Fp2) Inv() Fp2 {
	t := Inv(Add(Sqr(e.C0), Sqr(e.C1)))
	return Fp2{C0: Mul(e.C0, t), C1: Mul(Neg(e.C1), t)}
}

// Exp returns e^k by square-and-multiply. k must be non-negative.
func (e Fp2) Exp(k *big.Int) Fp2 {
	res := Fp2One()
	base := e
	for i := k.BitLen() - 1; i >= 0; i-- {
		res = res.Sqr()
		if k.Bit(i) == 1 {
			res = res.Mul(base)
		}
	}
	return res
}

// IsHigh reports the sign of e under the field's upper-half convention:
// the imaginary coefficient decides unless it is zero, in which case the
// real coefficient does. This matches the a-flag selection rule for
// compressed points.
func (e Fp2) IsHigh() bool {
	if e.C1.Sign() != 0 {
		return IsHigh(e.C1)
	}
	return IsHigh(e.C0)
}

// EighthRootsOfUnity returns the eight 8th roots of unity of F_p^2,
// computed as (1+i)^(k*(p^2-1)/8) for k = 0..7. The ordering carries the
// invariant the deterministic square root relies on: entry 2k is the
// square of entry k, so every even-indexed entry (the residue subset) has
// its own square root at half its index.
func EighthRootsOfUnity() [8]Fp2 {
	var roots [8]Fp2
	base := NewFp2(big.NewInt(1), big.NewInt(1))
	step := new(big.Int).Rsh(q2Order, 3)
	for k := 0; k < 8; k++ {
		roots[k] = base.Exp(new(big.Int).Mul(step, big.NewInt(int64(k))))
	}
	return roots
}
