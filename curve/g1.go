// Package curve implements the BLS12-381 group operations the codec and
// hash-to-curve layers build on: Jacobian point arithmetic for G1 and G2,
// curve membership checks, the simplified SWU map onto the 3-isogenous
// curve, the 3-isogeny back to G2, and cofactor clearing.
package curve

import (
	"math/big"

	"github.com/blsig/bls12381/ff"
)

// Order is the prime order r of the G1 and G2 subgroups. Treat as read-only.
var Order, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// B is the G1 curve coefficient: y^2 = x^3 + 4.
var B = big.NewInt(4)

var (
	g1GenX, _ = new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	g1GenY, _ = new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)
)

// PointG1 is a point on G1 in Jacobian coordinates (X/Z^2, Y/Z^3).
// The point at infinity has Z = 0.
type PointG1 struct {
	X, Y, Z *big.Int
}

// G1Generator returns the standard generator of G1.
func G1Generator() *PointG1 {
	return &PointG1{
		X: new(big.Int).Set(g1GenX),
		Y: new(big.Int).Set(g1GenY),
		Z: big.NewInt(1),
	}
}

// G1Infinity returns the identity element of G1.
func G1Infinity() *PointG1 {
	return &PointG1{X: big.NewInt(1), Y: big.NewInt(1), Z: new(big.Int)}
}

// G1FromAffine lifts affine coordinates into a Jacobian point. The
// coordinates are taken as-is; membership is the caller's concern.
func G1FromAffine(x, y *big.Int) *PointG1 {
	return &PointG1{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
		Z: big.NewInt(1),
	}
}

func (p *PointG1) IsInfinity() bool {
	return p.Z.Sign() == 0
}

// Affine normalizes p to affine coordinates. The infinity point maps
// to (0, 0).
func (p *PointG1) Affine() (x, y *big.Int) {
	if p.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	zInv := ff.Inv(p.Z)
	zInv2 := ff.Sqr(zInv)
	return ff.Mul(p.X, zInv2), ff.Mul(p.Y, ff.Mul(zInv2, zInv))
}

// Equal reports whether p and q are the same group element.
func (p *PointG1) Equal(q *PointG1) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	px, py := p.Affine()
	qx, qy := q.Affine()
	return px.Cmp(qx) == 0 && py.Cmp(qy) == 0
}

// G1IsOnCurve checks that affine (x, y) satisfies y^2 = x^3 + 4 and that
// both coordinates are canonical, i.e. in [0, p). (0, 0) stands for
// infinity and passes.
func G1IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if x.Sign() < 0 || x.Cmp(ff.P) >= 0 || y.Sign() < 0 || y.Cmp(ff.P) >= 0 {
		return false
	}
	lhs := ff.Sqr(y)
	rhs := ff.Add(ff.Mul(ff.Sqr(x), x), B)
	return lhs.Cmp(rhs) == 0
}

// G1Add adds two G1 points.
func G1Add(a, b *PointG1) *PointG1 {
	if a.IsInfinity() {
		return &PointG1{X: new(big.Int).Set(b.X), Y: new(big.Int).Set(b.Y), Z: new(big.Int).Set(b.Z)}
	}
	if b.IsInfinity() {
		return &PointG1{X: new(big.Int).Set(a.X), Y: new(big.Int).Set(a.Y), Z: new(big.Int).Set(a.Z)}
	}

	z1s := ff.Sqr(a.Z)
	z2s := ff.Sqr(b.Z)
	u1 := ff.Mul(a.X, z2s)
	u2 := ff.Mul(b.X, z1s)
	s1 := ff.Mul(a.Y, ff.Mul(b.Z, z2s))
	s2 := ff.Mul(b.Y, ff.Mul(a.Z, z1s))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return G1Double(a)
		}
		return G1Infinity()
	}

	h := ff.Sub(u2, u1)
	i := ff.Sqr(ff.Add(h, h))
	j := ff.Mul(h, i)
	r := ff.Sub(s2, s1)
	r = ff.Add(r, r)
	v := ff.Mul(u1, i)

	x3 := ff.Sub(ff.Sub(ff.Sqr(r), j), ff.Add(v, v))
	sj := ff.Mul(s1, j)
	y3 := ff.Sub(ff.Mul(r, ff.Sub(v, x3)), ff.Add(sj, sj))
	z3 := ff.Mul(ff.Sub(ff.Sub(ff.Sqr(ff.Add(a.Z, b.Z)), z1s), z2s), h)

	return &PointG1{X: x3, Y: y3, Z: z3}
}

// G1Double doubles a G1 point.
func G1Double(a *PointG1) *PointG1 {
	if a.IsInfinity() {
		return G1Infinity()
	}

	xx := ff.Sqr(a.X)
	yy := ff.Sqr(a.Y)
	yyyy := ff.Sqr(yy)

	d := ff.Sub(ff.Sub(ff.Sqr(ff.Add(a.X, yy)), xx), yyyy)
	d = ff.Add(d, d)
	e := ff.Add(ff.Add(xx, xx), xx)

	x3 := ff.Sub(ff.Sqr(e), ff.Add(d, d))
	eight := ff.Add(ff.Add(yyyy, yyyy), ff.Add(yyyy, yyyy))
	eight = ff.Add(eight, eight)
	y3 := ff.Sub(ff.Mul(e, ff.Sub(d, x3)), eight)
	z3 := ff.Mul(ff.Add(a.Y, a.Y), a.Z)

	return &PointG1{X: x3, Y: y3, Z: z3}
}

// G1ScalarMul computes k*P by double-and-add.
func G1ScalarMul(p *PointG1, k *big.Int) *PointG1 {
	r := G1Infinity()
	if k.Sign() <= 0 || p.IsInfinity() {
		return r
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = G1Double(r)
		if k.Bit(i) == 1 {
			r = G1Add(r, p)
		}
	}
	return r
}

// G1InSubgroup checks [r]P = infinity.
func G1InSubgroup(p *PointG1) bool {
	if p.IsInfinity() {
		return true
	}
	return G1ScalarMul(p, Order).IsInfinity()
}
