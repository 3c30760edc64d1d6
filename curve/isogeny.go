package curve

import (
	"math/big"

	"github.com/blsig/bls12381/ff"
)

// 3-isogeny map constants for G2, appendix C.2 of
// https://tools.ietf.org/html/draft-irtf-cfrg-hash-to-curve-04.
// x_num is degree 3, x_den degree 2 (monic), y_num degree 3, y_den
// degree 3 (monic); trailing one/zero entries pad each table to the
// Horner loop's shape.
var (
	isoKxNum = [4]ff.Fp2{
		fp2FromHex(
			"5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97d6",
			"5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97d6"),
		fp2FromHex(
			"0",
			"11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71a"),
		fp2FromHex(
			"11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71e",
			"8ab05f8bdd54cde190937e76bc3e447cc27c3d6fbd7063fcd104635a790520c0a395554e5c6aaaa9354ffffffffe38d"),
		fp2FromHex(
			"171d6541fa38ccfaed6dea691f5fb614cb14b4e7f4e810aa22d6108f142b85757098e38d0f671c7188e2aaaaaaaa5ed1",
			"0"),
	}
	isoKxDen = [4]ff.Fp2{
		fp2FromHex(
			"0",
			"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa63"),
		fp2FromHex(
			"c",
			"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa9f"),
		fp2FromHex("1", "0"),
		fp2FromHex("0", "0"),
	}
	isoKyNum = [4]ff.Fp2{
		fp2FromHex(
			"1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706",
			"1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706"),
		fp2FromHex(
			"0",
			"5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97be"),
		fp2FromHex(
			"11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71c",
			"8ab05f8bdd54cde190937e76bc3e447cc27c3d6fbd7063fcd104635a790520c0a395554e5c6aaaa9354ffffffffe38f"),
		fp2FromHex(
			"124c9ad43b6cf79bfbf7043de3811ad0761b0f37a1e26286b0e977c69aa274524e79097a56dc4bd9e1b371c71c718b10",
			"0"),
	}
	isoKyDen = [4]ff.Fp2{
		fp2FromHex(
			"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa8fb",
			"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa8fb"),
		fp2FromHex(
			"0",
			"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa9d3"),
		fp2FromHex(
			"12",
			"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa99"),
		fp2FromHex("1", "0"),
	}
)

func fp2FromHex(c0, c1 string) ff.Fp2 {
	re, ok := new(big.Int).SetString(c0, 16)
	if !ok {
		panic("curve: bad isogeny constant")
	}
	im, ok := new(big.Int).SetString(c1, 16)
	if !ok {
		panic("curve: bad isogeny constant")
	}
	return ff.NewFp2(re, im)
}

func evalPoly(ks [4]ff.Fp2, x ff.Fp2) ff.Fp2 {
	res := ks[3]
	for i := 2; i >= 0; i-- {
		res = res.Mul(x).Add(ks[i])
	}
	return res
}

// IsogenyMapG2 evaluates the 3-isogeny from E' onto the G2 twist at the
// affine point (x, y). At a root of either denominator polynomial the
// image is the point at infinity, returned as (0, 0).
func IsogenyMapG2(x, y ff.Fp2) (ff.Fp2, ff.Fp2) {
	xDen := evalPoly(isoKxDen, x)
	yDen := evalPoly(isoKyDen, x)
	if xDen.IsZero() || yDen.IsZero() {
		return ff.Fp2Zero(), ff.Fp2Zero()
	}

	xNum := evalPoly(isoKxNum, x)
	yNum := evalPoly(isoKyNum, x)

	xOut := xNum.Mul(xDen.Inv())
	yOut := y.Mul(yNum).Mul(yDen.Inv())
	return xOut, yOut
}
