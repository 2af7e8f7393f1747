// Package softdp provides differentiable relaxations of classic
// discrete-optimization problems — smoothed dynamic programming you can
// put a gradient through.
//
// 🚀 What is softdp?
//
//	A small, deterministic, dependency-light library that replaces the
//	exact min/argmin inside two classic dynamic programs with a
//	log-sum-exp smoothed minimum controlled by a temperature γ:
//		• softmin/  — the numerically stable soft-min primitive (value + gradient weights)
//		• softdtw/  — Soft-DTW alignment cost: forward table, backward gradient,
//		  and the debiased Soft-DTW divergence (zero on identical inputs)
//		• softpath/ — soft shortest path on a topologically ordered DAG,
//		  with per-edge marginals ("DP attention" over edges)
//
// ✨ Why choose softdp?
//
//   - Backend-agnostic – plain []float64 buffers and index-based edge
//     lists; no tensor-framework types anywhere in the public surface
//   - Deterministic – no RNG, no global state; every operator is a pure,
//     reentrant function safe to call from many goroutines at once
//   - Well-conditioned – every log-sum-exp is max-shifted; +Inf is the
//     only special value and acts as the identity for soft-min
//   - Gradient-complete – each forward pass has a matching backward pass
//     (cost-matrix gradient for Soft-DTW, edge marginals for soft paths)
//
// As γ→0 every operator recovers its exact discrete counterpart: Soft-DTW
// converges to the DTW alignment cost, and edge marginals concentrate on
// the shortest path's edges.
//
// Dive into each package's doc.go for formulas, complexity and examples,
// and into examples/ for runnable end-to-end demos.
//
//	go get github.com/katalvlaran/softdp
package softdp
