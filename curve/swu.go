package curve

import (
	"math/big"

	"github.com/blsig/bls12381/ff"
)

// Parameters of the curve 3-isogenous to the G2 twist,
// E': y^2 = x^3 + A'x + B' with A' = 240i, B' = 1012(1+i), and the
// SWU non-square Z = -(2+i).
// https://tools.ietf.org/html/draft-irtf-cfrg-hash-to-curve-04#section-6.5.2
var (
	isoA = ff.NewFp2(new(big.Int), big.NewInt(240))
	isoB = ff.NewFp2(big.NewInt(1012), big.NewInt(1012))
	isoZ = ff.NewFp2(big.NewInt(-2), big.NewInt(-1))

	// (p^2 - 9) / 16, the exponent of the square-root candidate used by
	// sqrtDivision.
	sqrtDivExp = new(big.Int).Rsh(
		new(big.Int).Sub(new(big.Int).Mul(ff.P, ff.P), big.NewInt(9)), 4)

	eighthRoots = ff.EighthRootsOfUnity()
)

// sqrtDivision returns y with y^2 = u/v without computing the division
// first: the candidate gamma = (u*v^7) * (u*v^15)^((p^2-9)/16) is correct
// up to an 8th root of unity, so each root is tried until the candidate
// verifies. The second result is false when u/v is a non-residue.
func sqrtDivision(u, v ff.Fp2) (ff.Fp2, bool) {
	v7 := v.Sqr().Sqr().Mul(v.Sqr()).Mul(v)
	t1 := u.Mul(v7)
	t2 := t1.Mul(v7).Mul(v)
	gamma := t2.Exp(sqrtDivExp).Mul(t1)

	for _, root := range eighthRoots {
		candidate := root.Mul(gamma)
		if candidate.Sqr().Mul(v).Equal(u) {
			return candidate, true
		}
	}
	return ff.Fp2Zero(), false
}

// MapToCurveG2 is the simplified SWU map for G2: it sends a field element
// to an affine point on the 3-isogenous curve E'. The caller applies
// IsogenyMapG2 to land on the twist itself; the two steps always run in
// that order.
func MapToCurveG2(t ff.Fp2) (x, y ff.Fp2) {
	t2 := t.Sqr()
	zt2 := isoZ.Mul(t2)
	temp := zt2.Add(zt2.Sqr())

	denominator := isoA.Mul(temp).Neg()
	numerator := isoB.Mul(temp.Add(ff.Fp2One()))
	if denominator.IsZero() {
		// Z*t^2 = 0 or -1; x0 degenerates to B'/(Z*A').
		denominator = isoZ.Mul(isoA)
	}

	// g(x) evaluated projectively: with x = N/D,
	// u/v = g(x) for u = N^3 + A'*N*D^2 + B'*D^3 and v = D^3.
	v := denominator.Sqr().Mul(denominator)
	u := numerator.Sqr().Mul(numerator).
		Add(isoA.Mul(numerator).Mul(denominator.Sqr())).
		Add(isoB.Mul(v))

	yCand, ok := sqrtDivision(u, v)
	if !ok {
		// g(x0) is a non-residue, so g(x1) with x1 = Z*t^2*x0 is not:
		// g(x1) = Z^3*t^6*g(x0), a non-square times a square times a
		// non-square.
		numerator = numerator.Mul(zt2)
		zt2Cubed := zt2.Sqr().Mul(zt2)
		yCand, ok = sqrtDivision(u.Mul(zt2Cubed), v)
		if !ok {
			panic("curve: swu map found no square root on either branch")
		}
	}

	if t.IsHigh() != yCand.IsHigh() {
		yCand = yCand.Neg()
	}

	x = numerator.Mul(denominator.Inv())
	y = yCand
	return x, y
}
