// Package softdtw: sentinel errors, configuration options and documented
// defaults. Algorithms return these sentinels and tests check them via
// errors.Is; no operator panics on user input.
package softdtw

import "errors"

// Sentinel errors returned by the Soft-DTW operators.
var (
	// ErrInvalidGamma indicates the smoothing temperature is not usable:
	// gamma must be strictly positive and finite.
	ErrInvalidGamma = errors.New("softdtw: gamma must be positive and finite")

	// ErrEmptyInput indicates one or both input sequences (or cost-matrix
	// dimensions) are empty.
	ErrEmptyInput = errors.New("softdtw: input sequences must be non-empty")

	// ErrDimensionMismatch indicates a cost-matrix buffer whose length
	// disagrees with its declared n×m shape, mismatched vector dimensions,
	// or an alignment table that does not match its cost matrix.
	ErrDimensionMismatch = errors.New("softdtw: dimension mismatch")

	// ErrNaNCost indicates a NaN or -Inf cost entry. +Inf is the only
	// supported special value (a forbidden alignment cell).
	ErrNaNCost = errors.New("softdtw: NaN or -Inf cost encountered")

	// ErrUnknownMetric indicates an unrecognized Metric constant was
	// passed to a cost builder.
	ErrUnknownMetric = errors.New("softdtw: unknown cost metric")
)

// DefaultGamma is the smoothing temperature used by DefaultOptions.
// γ=1 is the conventional starting point: visibly smoothed but still
// dominated by the optimal alignment.
const DefaultGamma = 1.0

// Options configures the high-level Discrepancy entry point.
//
// Fields:
//   - Gamma    — smoothing temperature; must be positive and finite.
//   - Debiased — if true, return the Soft-DTW divergence
//     SoftDTW(x,y) − ½(SoftDTW(x,x)+SoftDTW(y,y)) instead of the raw
//     (biased) discrepancy. The divergence is zero on identical inputs.
//
// Example:
//
//	opts := softdtw.DefaultOptions()
//	opts.Gamma = 0.1
//	opts.Debiased = true
//	d, err := softdtw.Discrepancy(x, y, &opts)
type Options struct {
	Gamma    float64
	Debiased bool
}

// DefaultOptions returns Options initialized with the documented
// defaults: Gamma=DefaultGamma, Debiased=false (raw discrepancy).
func DefaultOptions() Options {
	return Options{Gamma: DefaultGamma}
}
