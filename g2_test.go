package bls12381

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	circl "github.com/cloudflare/circl/ecc/bls12381"

	"github.com/blsig/bls12381/curve"
	"github.com/blsig/bls12381/ff"
	"github.com/blsig/bls12381/util"
)

const (
	g2GeneratorCompressed = "93e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8"
	g2Times2Compressed    = "aa4edef9c1ed7f729f520e47730a124fd70662a904ba1074728114d1031e1572c6c886f6b57ec72a6178288c47c335771638533957d540a9d2370f17cc7ed5863bc0b995b8825e0ee1ea1e1e4d00dbae81f14b0bf3611b78c952aacab827a053"
	g2Times5Compressed    = "80fb837804dba8213329db46608b6c121d973363c1234a86dd183baff112709cf97096c5e9a1a770ee9d7dc641a894d60411a5de6730ffece671a9f21d65028cc0f1102378de124562cb1ff49db6f004fcd14d683024b0548eff3d1468df2688"

	g2InfinityCompressed = "c00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"

	// x = 0: x^3 + 4(1+i) = 4 + 4i is a non-residue.
	g2NoRootCompressed = "800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"
)

func TestCompressG2KnownPoints(t *testing.T) {
	s := DefaultSuite()
	g := curve.G2Generator()

	cases := []struct {
		k    int64
		want string
	}{
		{1, g2GeneratorCompressed},
		{2, g2Times2Compressed},
		{5, g2Times5Compressed},
	}
	for _, c := range cases {
		enc, err := s.CompressG2(curve.G2ScalarMul(g, big.NewInt(c.k)))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(enc[:], util.MustUnhex(t, c.want)) {
			t.Fatalf("Wrong compression for %d*G: got %s", c.k, util.MustHex(enc[:]))
		}
	}
}

func TestCompressG2Infinity(t *testing.T) {
	s := DefaultSuite()
	enc, err := s.CompressG2(curve.G2Infinity())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc[:], util.MustUnhex(t, g2InfinityCompressed)) {
		t.Fatal("Wrong compression for the identity")
	}
}

func TestCompressG2RejectsOffCurve(t *testing.T) {
	s := DefaultSuite()
	bogus := curve.G2FromAffine(
		ff.NewFp2(big.NewInt(1), big.NewInt(2)),
		ff.NewFp2(big.NewInt(3), big.NewInt(4)))

	if _, err := s.CompressG2(bogus); !errors.Is(err, ErrNotOnCurve) {
		t.Fatalf("Expected ErrNotOnCurve, got %v", err)
	}
}

func TestDecompressG2RoundTrip(t *testing.T) {
	s := DefaultSuite()
	g := curve.G2Generator()

	for _, k := range []int64{1, 2, 3, 5, 7, 11, 100003} {
		p := curve.G2ScalarMul(g, big.NewInt(k))
		enc, err := s.CompressG2(p)
		if err != nil {
			t.Fatal(err)
		}
		q, err := s.DecompressG2(enc[:])
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(q) {
			t.Fatalf("Round trip mismatch for %d*G", k)
		}

		enc2, err := s.CompressG2(q)
		if err != nil {
			t.Fatal(err)
		}
		if enc != enc2 {
			t.Fatalf("Re-compression mismatch for %d*G", k)
		}
	}
}

func TestDecompressG2Infinity(t *testing.T) {
	s := DefaultSuite()
	p, err := s.DecompressG2(util.MustUnhex(t, g2InfinityCompressed))
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() {
		t.Fatal("Identity encoding must decode to infinity")
	}
}

func TestDecompressG2InfinityIgnoresTrailingBits(t *testing.T) {
	s := DefaultSuite()

	// With the b-flag set the rest of the string carries no information.
	noisy := make([]byte, CompressedG2Size)
	noisy[0] = 0xc0
	for i := CompressedG1Size; i < CompressedG2Size; i++ {
		noisy[i] = byte(i - CompressedG1Size)
	}
	p, err := s.DecompressG2(noisy)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() {
		t.Fatal("b-flag encoding must decode to infinity")
	}
}

func TestDecompressG2NoSquareRoot(t *testing.T) {
	s := DefaultSuite()
	_, err := s.DecompressG2(util.MustUnhex(t, g2NoRootCompressed))
	if !errors.Is(err, ErrNoSquareRoot) {
		t.Fatalf("Expected ErrNoSquareRoot, got %v", err)
	}
}

func TestDecompressG2MissingCompressionFlag(t *testing.T) {
	s := DefaultSuite()
	enc := util.MustUnhex(t, g2GeneratorCompressed)
	enc[0] &^= 0x80

	_, err := s.DecompressG2(enc)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Expected ErrInvalidEncoding, got %v", err)
	}
}

func TestDecompressG2OutOfRange(t *testing.T) {
	s := DefaultSuite()

	// Imaginary coefficient p in the first half.
	enc := make([]byte, CompressedG2Size)
	ff.P.FillBytes(enc[:CompressedG1Size])
	enc[0] |= 0x80
	if _, err := s.DecompressG2(enc); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Expected ErrInvalidEncoding for high imaginary, got %v", err)
	}

	// Real coefficient p in the second half.
	enc = make([]byte, CompressedG2Size)
	enc[0] = 0x80
	ff.P.FillBytes(enc[CompressedG1Size:])
	if _, err := s.DecompressG2(enc); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Expected ErrInvalidEncoding for high real, got %v", err)
	}
}

func TestDecompressG2WrongLength(t *testing.T) {
	s := DefaultSuite()
	for _, n := range []int{0, 48, 95, 97} {
		if _, err := s.DecompressG2(make([]byte, n)); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("Length %d must be rejected", n)
		}
	}
}

func TestCompressG2MatchesReference(t *testing.T) {
	s := DefaultSuite()
	g := curve.G2Generator()

	for _, k := range []uint64{1, 2, 5, 31337} {
		p := curve.G2ScalarMul(g, new(big.Int).SetUint64(k))
		enc, err := s.CompressG2(p)
		if err != nil {
			t.Fatal(err)
		}

		var scalar circl.Scalar
		scalar.SetUint64(k)
		ref := &circl.G2{}
		ref.ScalarMult(&scalar, circl.G2Generator())
		if !bytes.Equal(enc[:], ref.BytesCompressed()) {
			t.Fatalf("Compression of %d*G disagrees with reference", k)
		}
	}
}
