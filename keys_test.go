package bls12381

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/blsig/bls12381/curve"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	s := DefaultSuite()
	p := curve.G1ScalarMul(curve.G1Generator(), big.NewInt(424242))

	enc := s.MarshalPublicKey(p)
	if len(enc) != CompressedG1Size {
		t.Fatalf("Public key must be %d bytes, got %d", CompressedG1Size, len(enc))
	}

	q, err := s.UnmarshalPublicKey(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Fatal("Public key round trip mismatch")
	}
	if !bytes.Equal(enc, s.MarshalPublicKey(q)) {
		t.Fatal("Re-marshaled public key differs")
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	s := DefaultSuite()
	p := curve.G2ScalarMul(curve.G2Generator(), big.NewInt(424242))

	enc, err := s.MarshalSignature(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != CompressedG2Size {
		t.Fatalf("Signature must be %d bytes, got %d", CompressedG2Size, len(enc))
	}

	q, err := s.UnmarshalSignature(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Fatal("Signature round trip mismatch")
	}
}

func TestUnmarshalPublicKeyWrongLength(t *testing.T) {
	s := DefaultSuite()
	for _, n := range []int{0, 1, 47, 49, 96} {
		if _, err := s.UnmarshalPublicKey(make([]byte, n)); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("Public key length %d must be rejected", n)
		}
	}
}

func TestUnmarshalSignatureWrongLength(t *testing.T) {
	s := DefaultSuite()
	for _, n := range []int{0, 1, 48, 95, 97, 192} {
		if _, err := s.UnmarshalSignature(make([]byte, n)); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("Signature length %d must be rejected", n)
		}
	}
}

func TestUnmarshalPublicKeyTrailingData(t *testing.T) {
	s := DefaultSuite()
	enc := s.MarshalPublicKey(curve.G1Generator())
	enc = append(enc, 0x00)

	if _, err := s.UnmarshalPublicKey(enc); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatal("Trailing data must be rejected")
	}
}
