package bls12381

import (
	"github.com/blsig/bls12381/ff"
)

// SqrtFp2 computes a deterministic square root in F_p^2. The candidate
// v^((p^2+7)/16) is off from a true root by at most an 8th root of unity:
// squaring it and dividing by v lands on the precomputed table, and v is a
// residue exactly when it lands on an even index. Dividing the candidate by
// the root at half that index yields one true root; of the pair {x, -x} the
// canonical one has the larger imaginary coefficient, with the larger real
// coefficient breaking ties.
//
// The second result is false when v has no square root. Zero maps to zero.
func (s *Suite) SqrtFp2(v ff.Fp2) (ff.Fp2, bool) {
	if v.IsZero() {
		return ff.Fp2Zero(), true
	}

	candidate := v.Exp(s.sqrtExp)
	check := candidate.Sqr().Mul(v.Inv())

	idx := -1
	for k, root := range s.roots {
		if check.Equal(root) {
			idx = k
			break
		}
	}
	if idx < 0 || idx%2 != 0 {
		return ff.Fp2Zero(), false
	}

	x1 := candidate.Mul(s.rootsInv[idx/2])
	x2 := x1.Neg()
	if fp2Less(x1, x2) {
		return x2, true
	}
	return x1, true
}

// fp2Less orders elements imaginary coefficient first, then real.
func fp2Less(a, b ff.Fp2) bool {
	if c := a.C1.Cmp(b.C1); c != 0 {
		return c < 0
	}
	return a.C0.Cmp(b.C0) < 0
}
