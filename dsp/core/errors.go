package core

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds reported by the signal, algebra and transform packages.
// Failures wrap one of these, so callers can match with errors.Is.
var (
	// ErrInvalidParameter reports an out-of-domain scalar argument such as a
	// non-positive sample rate or a negative duration.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrIncompatibleSignals reports a binary operation on signals whose
	// length or sample rate differ.
	ErrIncompatibleSignals = errors.New("incompatible signals")

	// ErrUnsupportedLength reports a transform length rejected by the
	// configured length policy.
	ErrUnsupportedLength = errors.New("unsupported transform length")

	// ErrDivisionByZero reports a measure normalized by a zero duration.
	ErrDivisionByZero = errors.New("division by zero")
)

// CheckSampleRate reports ErrInvalidParameter unless rate is finite and > 0.
func CheckSampleRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidParameter, rate)
	}
	return nil
}
