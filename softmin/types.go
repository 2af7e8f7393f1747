// Package softmin: sentinel errors and validation helpers shared by the
// softdp operator packages.
//
// Every message is prefixed with "softmin: ..." for consistency and easy
// grepping. Algorithms return these sentinels unwrapped; callers match
// them via errors.Is.
package softmin

import (
	"errors"
	"math"
)

// Sentinel errors returned by the soft-min primitive.
var (
	// ErrInvalidGamma indicates the smoothing temperature is not usable:
	// gamma must be strictly positive and finite.
	ErrInvalidGamma = errors.New("softmin: gamma must be positive and finite")

	// ErrEmptyInput indicates an empty value sequence was supplied.
	ErrEmptyInput = errors.New("softmin: values must be non-empty")

	// ErrNaNValue indicates a NaN or -Inf entry was encountered.
	// +Inf is the only supported special value (soft-min identity).
	ErrNaNValue = errors.New("softmin: NaN or -Inf encountered; +Inf is the only supported special value")
)

// ValidateGamma ensures the smoothing temperature is strictly positive
// and finite. Sibling packages delegate here so the gamma contract has a
// single source of truth.
//
// Complexity: O(1).
func ValidateGamma(gamma float64) error {
	if gamma <= 0 || math.IsInf(gamma, 0) || math.IsNaN(gamma) {
		return ErrInvalidGamma
	}

	return nil
}

// validateValues ensures every entry is either finite or +Inf.
// Returns ErrEmptyInput for a zero-length slice and ErrNaNValue on the
// first NaN or -Inf entry.
func validateValues(values []float64) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return ErrNaNValue
		}
	}

	return nil
}
