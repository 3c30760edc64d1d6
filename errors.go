package bls12381

import "errors"

// Decode and verify failures surface as one of these kinds, possibly
// wrapped with position detail. Verifiers must treat every one of them as
// "reject the input"; none is retryable.
var (
	// ErrInvalidEncoding marks a byte string that is structurally not a
	// compressed point: wrong length, or a flag/coordinate combination
	// with no valid decoding.
	ErrInvalidEncoding = errors.New("bls12381: invalid point encoding")

	// ErrNotOnCurve marks decoded or supplied coordinates that fail the
	// curve equation.
	ErrNotOnCurve = errors.New("bls12381: point not on curve")

	// ErrNoSquareRoot marks a G2 x-coordinate whose curve equation
	// right-hand side has no root in the extension field. Only reachable
	// on adversarial input.
	ErrNoSquareRoot = errors.New("bls12381: no square root exists")
)
