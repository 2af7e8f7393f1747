// Package softdtw computes Soft-DTW — a differentiable relaxation of
// Dynamic Time Warping (Cuturi & Blondel 2017) — together with its
// gradient and the debiased Soft-DTW divergence.
//
// 🚀 What is Soft-DTW?
//
//	Classic DTW finds the cheapest warping path through a pairwise cost
//	matrix D by a min-plus dynamic program. Soft-DTW replaces the hard
//	min at every cell with a smoothed minimum at temperature γ:
//
//		R[i][j] = D[i-1][j-1] + softmin_γ(R[i-1][j], R[i][j-1], R[i-1][j-1])
//
//	with R[0][0]=0 and +Inf on the first row and column. The result
//	R[n][m] is smooth in every cost entry, so it can sit inside a
//	gradient-based pipeline where exact DTW cannot.
//
// ✨ Key features:
//   - forward pass over any caller-built cost matrix (plain []float64)
//   - backward pass: the full gradient ∂R[n][m]/∂D[i][j] by reverse
//     traversal of the alignment table — no autodiff framework needed
//   - debiased divergence: SoftDTW(x,y) − ½(SoftDTW(x,x)+SoftDTW(y,y)),
//     zero on identical inputs for every γ
//   - scalar-sequence convenience (squared distance) and gonum-backed
//     cost builders for vector-valued sequences (squared Euclidean,
//     cosine distance)
//   - γ→0 recovers the exact DTW alignment cost
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/softdp/softdtw"
//
//	// high-level, mirrors classic DTW entry points:
//	opts := softdtw.DefaultOptions()
//	opts.Gamma = 0.5
//	opts.Debiased = true
//	d, err := softdtw.Discrepancy(x, y, &opts)
//
//	// explicit cost matrix + gradient:
//	D := softdtw.FromSequences(x, y)
//	v, E, err := softdtw.ValueAndGradient(D, 0.5)
//
// Performance:
//
//   - Time:   O(N·M) forward, O(N·M) backward
//   - Memory: O(N·M) for the alignment table (owned by one call,
//     discarded on return)
//
// All operators are pure and deterministic: no global state, no RNG,
// safe for concurrent use on independent inputs.
package softdtw
