package softdtw

import (
	"math"

	"github.com/katalvlaran/softdp/softmin"
)

// Backward pass — gradient of the Soft-DTW discrepancy.
//
// The alignment table R is an implicit DAG: every interior cell feeds its
// three DP successors (down, right, diagonal). The gradient matrix E is
// obtained by reverse-traversing that DAG from (n,m) back to (1,1),
// distributing each cell's gradient mass to its predecessors with the
// soft-assignment weights the forward soft-min induced there:
//
//	w((i,j) → (i-1,j)) = exp((R[i][j] − D[i][j] − R[i-1][j]) / γ)
//
// (and likewise for the other two predecessors; the three weights are the
// softmax the forward pass computed at cell (i,j), recovered from R and D
// rather than cached — O(1) extra memory). Accumulated the other way
// around, each cell receives:
//
//	E[i][j] = w((i+1,j)→(i,j))·E[i+1][j]
//	        + w((i,j+1)→(i,j))·E[i][j+1]
//	        + w((i+1,j+1)→(i,j))·E[i+1][j+1]
//
// seeded with E[n][m] = 1. Since R[i][j] = D[i][j] + softmin(...), the
// entry E[i][j] is exactly ∂R[n][m]/∂D[i][j].

// Gradient computes the gradient matrix E of the Soft-DTW discrepancy
// with respect to every cost entry, given the alignment table r produced
// by Forward for the same cost matrix and temperature.
//
// The result has D's shape: E.Data[i*m+j] = ∂R[n][m]/∂D[i][j] (0-based).
// Entries are nonnegative; cells the soft alignment never visits get 0.
//
// Errors:
//   - ErrInvalidGamma      — gamma ≤ 0, NaN, or ±Inf.
//   - ErrEmptyInput        — zero rows or columns.
//   - ErrDimensionMismatch — cost buffer or table length inconsistent
//     with the declared shape.
//   - ErrNaNCost           — a NaN or -Inf cost entry.
//
// Complexity: O(n·m) time and memory.
func Gradient(d CostMatrix, r []float64, gamma float64) (CostMatrix, error) {
	if err := softmin.ValidateGamma(gamma); err != nil {
		return CostMatrix{}, ErrInvalidGamma
	}
	if err := d.validate(); err != nil {
		return CostMatrix{}, err
	}

	n, m := d.N, d.M
	w := m + 1
	if len(r) != (n+1)*(m+1) {
		return CostMatrix{}, ErrDimensionMismatch
	}

	// e is indexed like r (1-based cells, stride w); e[i*w+j] carries the
	// gradient mass flowing through alignment cell (i,j).
	e := make([]float64, (n+1)*(m+1))
	e[n*w+m] = 1

	for i := n; i >= 1; i-- {
		for j := m; j >= 1; j-- {
			if i == n && j == m {
				continue
			}
			cur := r[i*w+j]
			var acc float64
			// Successor below: predecessor role (i-1,j) seen from (i+1,j).
			if i < n {
				acc += e[(i+1)*w+j] * edgeWeight(r[(i+1)*w+j], d.Data[i*m+(j-1)], cur, gamma)
			}
			// Successor to the right.
			if j < m {
				acc += e[i*w+(j+1)] * edgeWeight(r[i*w+(j+1)], d.Data[(i-1)*m+j], cur, gamma)
			}
			// Diagonal successor.
			if i < n && j < m {
				acc += e[(i+1)*w+(j+1)] * edgeWeight(r[(i+1)*w+(j+1)], d.Data[i*m+j], cur, gamma)
			}
			e[i*w+j] = acc
		}
	}

	grad := NewCostMatrix(n, m)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			grad.Data[(i-1)*m+(j-1)] = e[i*w+j]
		}
	}

	return grad, nil
}

// edgeWeight is the soft-assignment weight of predecessor cell value
// prev inside successor cell succ (whose local cost is cost):
// exp((succ − cost − prev) / γ). Forbidden (+Inf) cells on either side
// carry no mass; the guard also keeps +Inf−+Inf from producing NaN.
func edgeWeight(succ, cost, prev, gamma float64) float64 {
	if math.IsInf(succ, 1) || math.IsInf(prev, 1) {
		return 0
	}

	return math.Exp((succ - cost - prev) / gamma)
}

// ValueAndGradient runs the forward and backward passes back to back,
// returning the discrepancy and its full cost-matrix gradient.
//
// Errors: same set as Forward.
//
// Complexity: O(n·m) time and memory.
func ValueAndGradient(d CostMatrix, gamma float64) (float64, CostMatrix, error) {
	r, v, err := Forward(d, gamma)
	if err != nil {
		return 0, CostMatrix{}, err
	}
	grad, err := Gradient(d, r, gamma)
	if err != nil {
		return 0, CostMatrix{}, err
	}

	return v, grad, nil
}
