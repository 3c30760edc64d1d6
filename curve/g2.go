package curve

import (
	"math/big"

	"github.com/blsig/bls12381/ff"
)

// B2 is the G2 twist curve coefficient: y^2 = x^3 + 4(1+i).
var B2 = ff.NewFp2(big.NewInt(4), big.NewInt(4))

var (
	g2GenXRe, _ = new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	g2GenXIm, _ = new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	g2GenYRe, _ = new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	g2GenYIm, _ = new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)

	// Effective cofactor for G2 cofactor clearing, per the
	// Budroni-Pintore method (https://eprint.iacr.org/2017/419).
	g2CofactorEff, _ = new(big.Int).SetString(
		"bc69f08f2ee75b3584c6a0ea91b352888e2a8e9145ad7689986ff031508ffe1329c2f178731db956d82bf015d1212b02ec0ec69d7477c1ae954cbc06689f6a359894c0adebbf6b4e8020005aaa95551", 16)
)

// PointG2 is a point on the G2 twist curve in Jacobian coordinates.
// The point at infinity has Z = 0.
type PointG2 struct {
	X, Y, Z ff.Fp2
}

// G2Generator returns the standard generator of G2.
func G2Generator() *PointG2 {
	return &PointG2{
		X: ff.NewFp2(g2GenXRe, g2GenXIm),
		Y: ff.NewFp2(g2GenYRe, g2GenYIm),
		Z: ff.Fp2One(),
	}
}

// G2Infinity returns the identity element of G2.
func G2Infinity() *PointG2 {
	return &PointG2{X: ff.Fp2One(), Y: ff.Fp2One(), Z: ff.Fp2Zero()}
}

// G2FromAffine lifts affine coordinates into a Jacobian point. (0, 0)
// stands for infinity. Membership is the caller's concern.
func G2FromAffine(x, y ff.Fp2) *PointG2 {
	if x.IsZero() && y.IsZero() {
		return G2Infinity()
	}
	return &PointG2{X: x, Y: y, Z: ff.Fp2One()}
}

func (p *PointG2) IsInfinity() bool {
	return p.Z.IsZero()
}

// Affine normalizes p to affine coordinates. The infinity point maps
// to (0, 0).
func (p *PointG2) Affine() (x, y ff.Fp2) {
	if p.IsInfinity() {
		return ff.Fp2Zero(), ff.Fp2Zero()
	}
	zInv := p.Z.Inv()
	zInv2 := zInv.Sqr()
	return p.X.Mul(zInv2), p.Y.Mul(zInv2.Mul(zInv))
}

// Equal reports whether p and q are the same group element.
func (p *PointG2) Equal(q *PointG2) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	px, py := p.Affine()
	qx, qy := q.Affine()
	return px.Equal(qx) && py.Equal(qy)
}

// G2IsOnCurve checks that affine (x, y) satisfies y^2 = x^3 + 4(1+i) with
// canonical coefficients. (0, 0) stands for infinity and passes.
func G2IsOnCurve(x, y ff.Fp2) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	for _, c := range []*big.Int{x.C0, x.C1, y.C0, y.C1} {
		if c.Sign() < 0 || c.Cmp(ff.P) >= 0 {
			return false
		}
	}
	lhs := y.Sqr()
	rhs := x.Sqr().Mul(x).Add(B2)
	return lhs.Equal(rhs)
}

// G2Add adds two G2 points.
func G2Add(a, b *PointG2) *PointG2 {
	if a.IsInfinity() {
		return &PointG2{X: b.X, Y: b.Y, Z: b.Z}
	}
	if b.IsInfinity() {
		return &PointG2{X: a.X, Y: a.Y, Z: a.Z}
	}

	z1s := a.Z.Sqr()
	z2s := b.Z.Sqr()
	u1 := a.X.Mul(z2s)
	u2 := b.X.Mul(z1s)
	s1 := a.Y.Mul(b.Z.Mul(z2s))
	s2 := b.Y.Mul(a.Z.Mul(z1s))

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return G2Double(a)
		}
		return G2Infinity()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Sqr()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Sqr().Sub(j).Sub(v.Add(v))
	sj := s1.Mul(j)
	y3 := r.Mul(v.Sub(x3)).Sub(sj.Add(sj))
	z3 := a.Z.Add(b.Z).Sqr().Sub(z1s).Sub(z2s).Mul(h)

	return &PointG2{X: x3, Y: y3, Z: z3}
}

// G2Double doubles a G2 point.
func G2Double(a *PointG2) *PointG2 {
	if a.IsInfinity() {
		return G2Infinity()
	}

	xx := a.X.Sqr()
	yy := a.Y.Sqr()
	yyyy := yy.Sqr()

	d := a.X.Add(yy).Sqr().Sub(xx).Sub(yyyy)
	d = d.Add(d)
	e := xx.Add(xx).Add(xx)

	x3 := e.Sqr().Sub(d.Add(d))
	eight := yyyy.Add(yyyy)
	eight = eight.Add(eight)
	eight = eight.Add(eight)
	y3 := e.Mul(d.Sub(x3)).Sub(eight)
	z3 := a.Y.Add(a.Y).Mul(a.Z)

	return &PointG2{X: x3, Y: y3, Z: z3}
}

// G2ScalarMul computes k*P by double-and-add.
func G2ScalarMul(p *PointG2, k *big.Int) *PointG2 {
	r := G2Infinity()
	if k.Sign() <= 0 || p.IsInfinity() {
		return r
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = G2Double(r)
		if k.Bit(i) == 1 {
			r = G2Add(r, p)
		}
	}
	return r
}

// G2InSubgroup checks [r]P = infinity.
func G2InSubgroup(p *PointG2) bool {
	if p.IsInfinity() {
		return true
	}
	return G2ScalarMul(p, Order).IsInfinity()
}

// ClearCofactorG2 multiplies by the effective cofactor, mapping any curve
// point into the order-r subgroup.
func ClearCofactorG2(p *PointG2) *PointG2 {
	return G2ScalarMul(p, g2CofactorEff)
}
