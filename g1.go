package bls12381

import (
	"fmt"
	"math/big"

	"github.com/blsig/bls12381/curve"
	"github.com/blsig/bls12381/ff"
)

// CompressG1 serializes a G1 point to its 48-byte compressed form: the
// x-coordinate big-endian with the c-flag always set, the b-flag set for
// infinity, and the a-flag recording which of the two y-roots the point
// carries. The input is taken to be a valid curve point; use
// curve.G1IsOnCurve first when the point comes from outside.
func (s *Suite) CompressG1(p *curve.PointG1) [CompressedG1Size]byte {
	var out [CompressedG1Size]byte
	if p.IsInfinity() {
		out[0] = flagC | flagB
		return out
	}

	x, y := p.Affine()
	x.FillBytes(out[:])
	out[0] |= flagC
	if ff.IsHigh(y) {
		out[0] |= flagA
	}
	return out
}

// DecompressG1 parses a 48-byte compressed G1 point. The b-flag short
// circuits to infinity; otherwise the y-coordinate is recovered from the
// curve equation and the a-flag picks between the two roots. Inputs whose
// x-coordinate is not canonical or does not sit on the curve are rejected.
// Subgroup membership is not checked here.
func (s *Suite) DecompressG1(data []byte) (*curve.PointG1, error) {
	if len(data) != CompressedG1Size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, CompressedG1Size, len(data))
	}
	flags := data[0] & flagMask
	if flags&flagC == 0 {
		return nil, fmt.Errorf("%w: compression flag not set", ErrInvalidEncoding)
	}
	if flags&flagB != 0 {
		// The remaining bits carry no information for infinity.
		return curve.G1Infinity(), nil
	}

	var raw [CompressedG1Size]byte
	copy(raw[:], data)
	raw[0] &^= flagMask
	x := new(big.Int).SetBytes(raw[:])
	if x.Cmp(ff.P) >= 0 {
		return nil, fmt.Errorf("%w: x coordinate out of range", ErrInvalidEncoding)
	}

	rhs := ff.Add(ff.Mul(ff.Sqr(x), x), curve.B)
	y, ok := ff.Sqrt(rhs)
	if !ok {
		return nil, fmt.Errorf("%w: no y coordinate for x", ErrNotOnCurve)
	}
	if ff.IsHigh(y) != (flags&flagA != 0) {
		y = ff.Neg(y)
	}
	return curve.G1FromAffine(x, y), nil
}
