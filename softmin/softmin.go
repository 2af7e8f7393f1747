package softmin

import "math"

// SoftMin — smoothed minimum of a finite value set.
//
// Description:
//
//	Computes softmin_γ(v) = −γ·log Σᵢ exp(−vᵢ/γ) using the max-shifted
//	log-sum-exp form, so the raw exponential sum is never evaluated:
//
//	  m = min over finite vᵢ
//	  softmin_γ(v) = m − γ·log Σᵢ exp(−(vᵢ − m)/γ)
//
//	+Inf entries contribute exp(−∞) = 0 and act as additive identities.
//	If every entry is +Inf the result is +Inf.
//
// Errors:
//   - ErrInvalidGamma — gamma ≤ 0, NaN, or ±Inf.
//   - ErrEmptyInput   — len(values) == 0.
//   - ErrNaNValue     — a NaN or -Inf entry.
//
// Complexity: O(k) time, O(1) memory.
func SoftMin(values []float64, gamma float64) (float64, error) {
	if err := ValidateGamma(gamma); err != nil {
		return 0, err
	}
	if err := validateValues(values); err != nil {
		return 0, err
	}

	return softMinUnchecked(values, gamma), nil
}

// SoftMinWeights — smoothed minimum plus its gradient weights.
//
// Description:
//
//	Returns the SoftMin value together with the normalized soft-assignment
//	distribution wᵢ = exp(−(vᵢ−m)/γ) / Σⱼ exp(−(vⱼ−m)/γ), which is exactly
//	∂softmin_γ(v)/∂vᵢ. Weights are nonnegative and sum to 1; +Inf entries
//	receive weight 0. Ties split evenly by the formula itself.
//
//	dst, when non-nil and large enough, receives the weights in place so
//	hot DP loops can stay allocation-free; otherwise a fresh slice is
//	allocated. The returned slice always has len(values) entries.
//
//	If every entry is +Inf the value is +Inf and all weights are 0
//	(no distribution exists over an empty support).
//
// Errors: same set as SoftMin.
//
// Complexity: O(k) time, O(k) memory for the weight slice.
func SoftMinWeights(values []float64, gamma float64, dst []float64) (float64, []float64, error) {
	if err := ValidateGamma(gamma); err != nil {
		return 0, nil, err
	}
	if err := validateValues(values); err != nil {
		return 0, nil, err
	}

	k := len(values)
	if cap(dst) >= k {
		dst = dst[:k]
	} else {
		dst = make([]float64, k)
	}

	// 1) Locate the finite minimum m (the shift).
	m := math.Inf(1)
	for _, v := range values {
		if v < m {
			m = v
		}
	}

	// 2) All-+Inf input: +Inf value, empty support.
	if math.IsInf(m, 1) {
		for i := range dst {
			dst[i] = 0
		}

		return math.Inf(1), dst, nil
	}

	// 3) Shifted exponentials and their sum. exp(−(v−m)/γ) ≤ 1 always,
	//    so the sum cannot overflow; +Inf entries contribute exactly 0.
	var sum float64
	for i, v := range values {
		e := math.Exp(-(v - m) / gamma)
		dst[i] = e
		sum += e
	}

	// 4) Normalize weights; sum ≥ 1 since the minimizing entry maps to 1.
	invSum := 1 / sum
	for i := range dst {
		dst[i] *= invSum
	}

	return m - gamma*math.Log(sum), dst, nil
}

// SoftMin3 — allocation-free three-way soft-min.
//
// The fast path for DP recurrences with a fixed predecessor set (the
// Soft-DTW cell update). gamma must already be validated via
// ValidateGamma; this function performs no checks of its own.
//
// Complexity: O(1).
func SoftMin3(gamma, a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if math.IsInf(m, 1) {
		return math.Inf(1)
	}
	sum := math.Exp(-(a-m)/gamma) + math.Exp(-(b-m)/gamma) + math.Exp(-(c-m)/gamma)

	return m - gamma*math.Log(sum)
}

// SoftMin3Weights — three-way soft-min with its gradient weights.
//
// Returns the smoothed minimum of (a, b, c) plus the soft-assignment
// weight of each argument. Agrees exactly with SoftMinWeights on the
// equivalent three-element slice. gamma must be pre-validated.
//
// Complexity: O(1).
func SoftMin3Weights(gamma, a, b, c float64) (v, wa, wb, wc float64) {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if math.IsInf(m, 1) {
		return math.Inf(1), 0, 0, 0
	}
	ea := math.Exp(-(a - m) / gamma)
	eb := math.Exp(-(b - m) / gamma)
	ec := math.Exp(-(c - m) / gamma)
	sum := ea + eb + ec

	return m - gamma*math.Log(sum), ea / sum, eb / sum, ec / sum
}

// LogSumExp — max-shifted log Σ exp(xᵢ).
//
// The load-bearing stability routine: computes log Σᵢ exp(xᵢ) as
// m + log Σᵢ exp(xᵢ−m) with m = max(xᵢ), so no intermediate exponential
// can overflow. Returns -Inf for an empty slice or when every entry is
// -Inf (the empty-sum convention), and NaN when any entry is NaN.
//
// Complexity: O(k) time, O(1) memory.
func LogSumExp(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if x > m {
			m = x
		}
	}
	if math.IsInf(m, -1) {
		return math.Inf(-1)
	}

	var sum float64
	for _, x := range xs {
		sum += math.Exp(x - m)
	}

	return m + math.Log(sum)
}

// softMinUnchecked computes the smoothed minimum assuming inputs were
// already validated.
func softMinUnchecked(values []float64, gamma float64) float64 {
	m := math.Inf(1)
	for _, v := range values {
		if v < m {
			m = v
		}
	}
	if math.IsInf(m, 1) {
		return math.Inf(1)
	}

	var sum float64
	for _, v := range values {
		sum += math.Exp(-(v - m) / gamma)
	}

	return m - gamma*math.Log(sum)
}
