// Package util holds small helpers shared by the test suites.
package util

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"testing"
)

// /////
// Infallible Serialize / Deserialize
func fatalOnError(t *testing.T, err error, msg string) {
	realMsg := fmt.Sprintf("%s: %v", msg, err)
	if err != nil {
		if t != nil {
			t.Fatal(realMsg)
		} else {
			panic(realMsg)
		}
	}
}

func MustUnhex(t *testing.T, h string) []byte {
	out, err := hex.DecodeString(h)
	fatalOnError(t, err, "Unhex failed")
	return out
}

func MustHex(d []byte) string {
	return hex.EncodeToString(d)
}

// MustBigInt parses a hex string into a big integer for test vectors.
func MustBigInt(t *testing.T, h string) *big.Int {
	v, ok := new(big.Int).SetString(h, 16)
	if !ok {
		msg := fmt.Sprintf("Bad integer literal: %s", h)
		if t != nil {
			t.Fatal(msg)
		} else {
			panic(msg)
		}
	}
	return v
}
