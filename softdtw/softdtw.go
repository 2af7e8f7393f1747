package softdtw

import (
	"math"

	"github.com/katalvlaran/softdp/softmin"
)

// Soft-DTW — smoothed Dynamic Time Warping
//
// Algorithm Outline (forward pass):
//  1. Let n = D.N, m = D.M. Allocate the (n+1)×(m+1) alignment table R,
//     stored row-major in a flat slice with stride m+1.
//  2. Initialize:
//     R[0][0] = 0
//     R[i][0] = +∞ for i=1..n
//     R[0][j] = +∞ for j=1..m
//  3. For i = 1..n, j = 1..m:
//     R[i][j] = D[i-1][j-1] + softmin_γ(R[i-1][j], R[i][j-1], R[i-1][j-1])
//  4. discrepancy = R[n][m].
//
// The smoothed minimum uses the max-shifted log-sum-exp form throughout,
// so costs of any magnitude stay well-conditioned. +Inf cells behave as
// forbidden alignments: they take no soft-min weight and propagate only
// when every route is forbidden.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) for R (owned by the call, discarded after backward)

// Value computes the Soft-DTW discrepancy R[n][m] for a cost matrix D at
// temperature gamma.
//
// Errors:
//   - ErrInvalidGamma      — gamma ≤ 0, NaN, or ±Inf.
//   - ErrEmptyInput        — zero rows or columns.
//   - ErrDimensionMismatch — len(D.Data) != D.N*D.M.
//   - ErrNaNCost           — a NaN or -Inf cost entry.
func Value(d CostMatrix, gamma float64) (float64, error) {
	_, v, err := Forward(d, gamma)

	return v, err
}

// Forward computes the full alignment table R and the discrepancy
// R[n][m]. The returned table is flat row-major with stride D.M+1 and is
// owned by the caller; feed it to Gradient to obtain ∂R[n][m]/∂D.
//
// Errors: same set as Value.
func Forward(d CostMatrix, gamma float64) ([]float64, float64, error) {
	if err := softmin.ValidateGamma(gamma); err != nil {
		return nil, 0, ErrInvalidGamma
	}
	if err := d.validate(); err != nil {
		return nil, 0, err
	}

	n, m := d.N, d.M
	w := m + 1
	r := make([]float64, (n+1)*(m+1))

	// Boundary: +Inf walls on the first row and column, origin at 0.
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		r[j] = inf
	}
	for i := 1; i <= n; i++ {
		r[i*w] = inf
	}

	// Fill row-major; each cell depends only on (i-1,·) and (·,j-1).
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			r[i*w+j] = d.Data[(i-1)*m+(j-1)] +
				softmin.SoftMin3(gamma, r[(i-1)*w+j], r[i*w+(j-1)], r[(i-1)*w+(j-1)])
		}
	}

	return r, r[n*w+m], nil
}

// Discrepancy is the high-level scalar-sequence entry point: it builds
// the squared-distance cost matrix between x and y and returns either the
// raw Soft-DTW discrepancy or, with opts.Debiased, the Soft-DTW
// divergence. A nil opts selects DefaultOptions.
//
// Errors: ErrInvalidGamma, ErrEmptyInput.
//
// Example:
//
//	opts := softdtw.DefaultOptions()
//	opts.Gamma = 0.5
//	d, err := softdtw.Discrepancy(x, y, &opts)
func Discrepancy(x, y []float64, opts *Options) (float64, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if cfg.Debiased {
		return DivergenceSequences(x, y, cfg.Gamma)
	}

	return Value(FromSequences(x, y), cfg.Gamma)
}
