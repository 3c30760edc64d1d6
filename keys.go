package bls12381

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/blsig/bls12381/curve"
)

// MarshalPublicKey encodes a G1 public key point as its 48-byte
// compressed form.
func (s *Suite) MarshalPublicKey(p *curve.PointG1) []byte {
	enc := s.CompressG1(p)
	b := cryptobyte.NewBuilder(nil)
	b.AddBytes(enc[:])
	return b.BytesOrPanic()
}

// UnmarshalPublicKey decodes a 48-byte public key into its G1 point.
// Trailing data is rejected.
func (s *Suite) UnmarshalPublicKey(data []byte) (*curve.PointG1, error) {
	var enc []byte
	str := cryptobyte.String(data)
	if !str.ReadBytes(&enc, CompressedG1Size) || !str.Empty() {
		return nil, fmt.Errorf("%w: public key must be exactly %d bytes", ErrInvalidEncoding, CompressedG1Size)
	}
	return s.DecompressG1(enc)
}

// MarshalSignature encodes a G2 signature point as its 96-byte compressed
// form. Points off the curve are rejected.
func (s *Suite) MarshalSignature(p *curve.PointG2) ([]byte, error) {
	enc, err := s.CompressG2(p)
	if err != nil {
		return nil, err
	}
	b := cryptobyte.NewBuilder(nil)
	b.AddBytes(enc[:])
	return b.BytesOrPanic(), nil
}

// UnmarshalSignature decodes a 96-byte signature into its G2 point.
// Trailing data is rejected.
func (s *Suite) UnmarshalSignature(data []byte) (*curve.PointG2, error) {
	var enc []byte
	str := cryptobyte.String(data)
	if !str.ReadBytes(&enc, CompressedG2Size) || !str.Empty() {
		return nil, fmt.Errorf("%w: signature must be exactly %d bytes", ErrInvalidEncoding, CompressedG2Size)
	}
	return s.DecompressG2(enc)
}
