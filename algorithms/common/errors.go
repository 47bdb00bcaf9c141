package common

import "errors"

// Error taxonomy shared by all signal-processing packages. Transforms fail
// fast and never substitute defaults for invalid numeric input; callers match
// with errors.Is.
var (
	// ErrInvalidParameter marks out-of-range parameters: taper fractions
	// outside [0, 0.5], non-positive window lengths, unknown window names.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData marks series shorter than the minimum length a
	// transform requires.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDimensionMismatch marks time/value length mismatches and window
	// conversions that collapse to a zero sample count.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
