package bls12381

import (
	"fmt"
	"math/big"

	"github.com/blsig/bls12381/curve"
	"github.com/blsig/bls12381/ff"
)

// CompressG2 serializes a G2 point to its 96-byte compressed form. The
// first 48 bytes hold the imaginary coefficient of x together with all
// three flag bits; the last 48 hold the real coefficient with its flag
// bits zero. Unlike CompressG1 this rejects points off the curve, since a
// signature serialized from a bad point would never verify anywhere.
func (s *Suite) CompressG2(p *curve.PointG2) ([CompressedG2Size]byte, error) {
	var out [CompressedG2Size]byte
	if p.IsInfinity() {
		out[0] = flagC | flagB
		return out, nil
	}

	x, y := p.Affine()
	if !curve.G2IsOnCurve(x, y) {
		return out, fmt.Errorf("%w: refusing to compress", ErrNotOnCurve)
	}

	x.C1.FillBytes(out[:CompressedG1Size])
	x.C0.FillBytes(out[CompressedG1Size:])
	out[0] |= flagC
	if y.IsHigh() {
		out[0] |= flagA
	}
	return out, nil
}

// DecompressG2 parses a 96-byte compressed G2 point. With the b-flag set
// the input decodes to infinity regardless of the remaining bits.
// Otherwise x is reassembled from its two halves, y is recovered with the
// deterministic extension-field square root, and the a-flag picks the
// root under the imaginary-first sign convention. Subgroup membership is
// not checked here.
func (s *Suite) DecompressG2(data []byte) (*curve.PointG2, error) {
	if len(data) != CompressedG2Size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, CompressedG2Size, len(data))
	}
	flags := data[0] & flagMask
	if flags&flagC == 0 {
		return nil, fmt.Errorf("%w: compression flag not set", ErrInvalidEncoding)
	}
	if flags&flagB != 0 {
		return curve.G2Infinity(), nil
	}

	var z1 [CompressedG1Size]byte
	copy(z1[:], data[:CompressedG1Size])
	z1[0] &^= flagMask
	xIm := new(big.Int).SetBytes(z1[:])
	xRe := new(big.Int).SetBytes(data[CompressedG1Size:])
	if xIm.Cmp(ff.P) >= 0 || xRe.Cmp(ff.P) >= 0 {
		return nil, fmt.Errorf("%w: x coordinate out of range", ErrInvalidEncoding)
	}
	x := ff.NewFp2(xRe, xIm)

	rhs := x.Sqr().Mul(x).Add(curve.B2)
	y, ok := s.SqrtFp2(rhs)
	if !ok {
		return nil, fmt.Errorf("%w: cannot recover y coordinate", ErrNoSquareRoot)
	}
	if y.IsHigh() != (flags&flagA != 0) {
		y = y.Neg()
	}
	if !curve.G2IsOnCurve(x, y) {
		return nil, fmt.Errorf("%w: decoded coordinates fail curve equation", ErrNotOnCurve)
	}
	return curve.G2FromAffine(x, y), nil
}
