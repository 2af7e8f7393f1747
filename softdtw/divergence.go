package softdtw

// Soft-DTW divergence — the debiased variant.
//
// The raw discrepancy is biased: it is not minimized at x == y and can go
// negative. Subtracting the self-alignment baselines fixes both:
//
//	div_γ(x,y) = SoftDTW_γ(x,y) − ½·SoftDTW_γ(x,x) − ½·SoftDTW_γ(y,y)
//
// which is zero on identical inputs for every γ, by construction. The
// three terms are independent forward passes sharing one γ; the gradient
// is the matching linear combination of the three backward passes.

// Divergence computes the debiased Soft-DTW divergence from three
// precomputed cost matrices: dxy between the sequences (n×m), dxx and dyy
// the self-alignment costs (n×n and m×m).
//
// Errors:
//   - ErrInvalidGamma      — gamma ≤ 0, NaN, or ±Inf.
//   - ErrEmptyInput        — any matrix with a zero dimension.
//   - ErrDimensionMismatch — dxx not n×n, dyy not m×m, or an inconsistent
//     buffer length.
//   - ErrNaNCost           — a NaN or -Inf cost entry.
//
// Complexity: O(n² + m² + n·m) time.
func Divergence(dxy, dxx, dyy CostMatrix, gamma float64) (float64, error) {
	if err := validateDivergenceShapes(dxy, dxx, dyy); err != nil {
		return 0, err
	}

	vxy, err := Value(dxy, gamma)
	if err != nil {
		return 0, err
	}
	vxx, err := Value(dxx, gamma)
	if err != nil {
		return 0, err
	}
	vyy, err := Value(dyy, gamma)
	if err != nil {
		return 0, err
	}

	return vxy - 0.5*(vxx+vyy), nil
}

// DivergenceSequences computes the divergence for two scalar sequences
// under the squared distance, building the three cost matrices
// internally. div(x, x) is exactly zero: the three passes are identical
// and cancel without rounding residue.
//
// Errors: ErrInvalidGamma, ErrEmptyInput.
func DivergenceSequences(x, y []float64, gamma float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}

	return Divergence(FromSequences(x, y), FromSequences(x, x), FromSequences(y, y), gamma)
}

// DivergenceGradient computes the divergence together with its gradient
// with respect to each of the three cost matrices. The returned matrices
// are already scaled into the divergence's linear combination:
//
//	∂div/∂dxy = exy       (the plain backward pass)
//	∂div/∂dxx = exx       (the backward pass scaled by −½)
//	∂div/∂dyy = eyy       (the backward pass scaled by −½)
//
// so a caller composing further gradients adds them directly, no extra
// bookkeeping.
//
// Errors: same set as Divergence.
//
// Complexity: O(n² + m² + n·m) time and memory.
func DivergenceGradient(dxy, dxx, dyy CostMatrix, gamma float64) (div float64, exy, exx, eyy CostMatrix, err error) {
	if err = validateDivergenceShapes(dxy, dxx, dyy); err != nil {
		return 0, CostMatrix{}, CostMatrix{}, CostMatrix{}, err
	}

	vxy, exy, err := ValueAndGradient(dxy, gamma)
	if err != nil {
		return 0, CostMatrix{}, CostMatrix{}, CostMatrix{}, err
	}
	vxx, exx, err := ValueAndGradient(dxx, gamma)
	if err != nil {
		return 0, CostMatrix{}, CostMatrix{}, CostMatrix{}, err
	}
	vyy, eyy, err := ValueAndGradient(dyy, gamma)
	if err != nil {
		return 0, CostMatrix{}, CostMatrix{}, CostMatrix{}, err
	}

	for i := range exx.Data {
		exx.Data[i] *= -0.5
	}
	for i := range eyy.Data {
		eyy.Data[i] *= -0.5
	}

	return vxy - 0.5*(vxx+vyy), exy, exx, eyy, nil
}

// validateDivergenceShapes checks the n×m / n×n / m×m contract before
// any forward pass runs, so shape failures are reported up front rather
// than mid-composition.
func validateDivergenceShapes(dxy, dxx, dyy CostMatrix) error {
	if dxy.N == 0 || dxy.M == 0 {
		return ErrEmptyInput
	}
	if dxx.N != dxy.N || dxx.M != dxy.N || dyy.N != dxy.M || dyy.M != dxy.M {
		return ErrDimensionMismatch
	}

	return nil
}
