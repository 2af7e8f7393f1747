package softdtw

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CostMatrix is a caller-owned rectangular pairwise-cost buffer: N×M
// double-precision entries stored row-major in a flat slice, so the cost
// of aligning element i of the first sequence with element j of the
// second is Data[i*M+j]. No tensor-framework types: any numeric pipeline
// can produce or consume it by plain indexing.
//
// Entries must be finite or +Inf (a forbidden alignment cell); NaN and
// -Inf are rejected by the operators.
type CostMatrix struct {
	N, M int
	Data []float64
}

// NewCostMatrix allocates a zero-filled n×m cost matrix.
func NewCostMatrix(n, m int) CostMatrix {
	return CostMatrix{N: n, M: m, Data: make([]float64, n*m)}
}

// At returns the cost of aligning element i with element j (0-based).
func (c CostMatrix) At(i, j int) float64 { return c.Data[i*c.M+j] }

// Set assigns the cost of aligning element i with element j (0-based).
func (c CostMatrix) Set(i, j int, v float64) { c.Data[i*c.M+j] = v }

// validate checks shape consistency and the numeric policy.
// Error priority: negative shape → empty shape → buffer length →
// NaN/-Inf entries.
func (c CostMatrix) validate() error {
	if c.N < 0 || c.M < 0 {
		return ErrDimensionMismatch
	}
	if c.N == 0 || c.M == 0 {
		return ErrEmptyInput
	}
	if len(c.Data) != c.N*c.M {
		return ErrDimensionMismatch
	}
	for _, v := range c.Data {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return ErrNaNCost
		}
	}

	return nil
}

// FromSequences builds the squared-distance cost matrix between two
// scalar sequences: Data[i*m+j] = (x[i]−y[j])². This is the cost the
// classic Soft-DTW operator is defined over.
//
// Complexity: O(N·M).
func FromSequences(x, y []float64) CostMatrix {
	c := NewCostMatrix(len(x), len(y))
	var d float64
	for i, xi := range x {
		for j, yj := range y {
			d = xi - yj
			c.Data[i*c.M+j] = d * d
		}
	}

	return c
}

// Metric selects the pairwise distance used by FromVectors.
//
//   - SquaredEuclidean — ‖a−b‖²; the canonical Soft-DTW cost, smooth in
//     every coordinate.
//   - CosineDistance   — sqrt(max(0, 1 − cos(a,b))); angle-based cost for
//     embedding sequences (sentence vectors, session encodings). A
//     zero-norm vector is maximally dissimilar to everything (cost 1).
type Metric int

const (
	// SquaredEuclidean selects the squared L2 distance ‖a−b‖².
	SquaredEuclidean Metric = iota

	// CosineDistance selects sqrt(max(0, 1 − cosine similarity)).
	CosineDistance
)

// FromVectors builds a cost matrix between two sequences of equal-width
// vectors (e.g. embedding sequences) under the chosen metric.
//
// Errors:
//   - ErrEmptyInput        — either sequence is empty.
//   - ErrDimensionMismatch — vectors of differing width.
//   - ErrUnknownMetric     — unrecognized Metric constant.
//
// Complexity: O(N·M·dim).
func FromVectors(xs, ys [][]float64, metric Metric) (CostMatrix, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return CostMatrix{}, ErrEmptyInput
	}
	if metric != SquaredEuclidean && metric != CosineDistance {
		return CostMatrix{}, ErrUnknownMetric
	}

	// All vectors must share the width of the first one.
	dim := len(xs[0])
	if dim == 0 {
		return CostMatrix{}, ErrEmptyInput
	}
	for _, v := range xs {
		if len(v) != dim {
			return CostMatrix{}, ErrDimensionMismatch
		}
	}
	for _, v := range ys {
		if len(v) != dim {
			return CostMatrix{}, ErrDimensionMismatch
		}
	}

	c := NewCostMatrix(len(xs), len(ys))
	switch metric {
	case SquaredEuclidean:
		var d float64
		for i, a := range xs {
			for j, b := range ys {
				d = floats.Distance(a, b, 2)
				c.Data[i*c.M+j] = d * d
			}
		}
	case CosineDistance:
		// Wrap once per vector; mat handles the dot/norm kernels.
		vxs := make([]*mat.VecDense, len(xs))
		for i, a := range xs {
			vxs[i] = mat.NewVecDense(dim, a)
		}
		vys := make([]*mat.VecDense, len(ys))
		for j, b := range ys {
			vys[j] = mat.NewVecDense(dim, b)
		}
		for i, va := range vxs {
			for j, vb := range vys {
				c.Data[i*c.M+j] = cosineDistance(va, vb)
			}
		}
	}

	return c, nil
}

// cosineDistance computes sqrt(max(0, 1 − ⟨a,b⟩/(‖a‖·‖b‖))).
// Zero-norm vectors get the maximal cost 1.
func cosineDistance(a, b *mat.VecDense) float64 {
	na := mat.Norm(a, 2)
	nb := mat.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	d := 1 - mat.Dot(a, b)/(na*nb)
	if d < 0 {
		d = 0
	}

	return math.Sqrt(d)
}
