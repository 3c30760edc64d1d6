// Package bls12381 implements the canonical compressed-point codec and the
// deterministic hash-to-G2 pipeline for the BLS12-381 signature scheme:
// 48-byte public keys (compressed G1), 96-byte signatures (compressed G2),
// and the HKDF-based hash-to-curve of
// https://tools.ietf.org/html/draft-irtf-cfrg-hash-to-curve-04.
//
// It deliberately implements exactly one curve's encoding rules and one
// ciphersuite; it is not a general-purpose elliptic-curve library. Scalar
// multiplication by secret keys, pairings and aggregation live elsewhere.
package bls12381

import (
	"math/big"

	"github.com/blsig/bls12381/ff"
)

const (
	// CompressedG1Size is the byte length of a compressed G1 point and of
	// a public key.
	CompressedG1Size = 48
	// CompressedG2Size is the byte length of a compressed G2 point and of
	// a signature.
	CompressedG2Size = 96
)

// Flag bits carried in the top three bits of the first byte of a
// compressed point: c is always set, b marks infinity, a selects between
// the two y-roots.
const (
	flagC byte = 0x80
	flagB byte = 0x40
	flagA byte = 0x20

	flagMask byte = flagC | flagB | flagA
)

// CiphersuiteDomain is the domain separation tag of the proof-of-possession
// BLS ciphersuite this package targets by default.
var CiphersuiteDomain = []byte("BLS_SIG_BLS12381G2-SHA256-SSWU-RO-_POP_")

// Suite captures the configuration a codec/hash instance needs: the domain
// separation tag and the precomputed 8th-roots-of-unity table. A Suite is
// immutable after construction and safe for concurrent use; distinct
// Suites let multiple ciphersuite instances coexist in one process.
type Suite struct {
	dst      []byte
	roots    [8]ff.Fp2
	sqrtExp  *big.Int
	rootsInv [4]ff.Fp2
}

// NewSuite builds a Suite for the given domain separation tag.
func NewSuite(dst []byte) *Suite {
	s := &Suite{
		dst:   append([]byte(nil), dst...),
		roots: ff.EighthRootsOfUnity(),
		// (q2 + 8) / 16 with q2 = p^2 - 1; valid because q2 = 8 mod 16.
		sqrtExp: new(big.Int).Rsh(new(big.Int).Add(ff.Q2Order(), big.NewInt(8)), 4),
	}
	for k := 0; k < 4; k++ {
		s.rootsInv[k] = s.roots[k].Inv()
	}
	return s
}

// DefaultSuite returns a Suite using CiphersuiteDomain.
func DefaultSuite() *Suite {
	return NewSuite(CiphersuiteDomain)
}

// DomainSeparationTag returns a copy of the suite's tag.
func (s *Suite) DomainSeparationTag() []byte {
	return append([]byte(nil), s.dst...)
}
