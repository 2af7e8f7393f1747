// Package softmin implements the numerically stable smoothed minimum —
// the primitive every other softdp operator is built from.
//
// 🚀 What is a soft-min?
//
//	A differentiable relaxation of min(v₁..vₖ) controlled by a
//	temperature γ > 0:
//
//		softmin_γ(v) = −γ·log Σᵢ exp(−vᵢ/γ)
//
//	As γ→0 it converges to the exact minimum; larger γ blurs the
//	minimum across near-optimal entries.  Its gradient is the softmax
//	of −v/γ: a normalized, nonnegative weight per input that tells you
//	how much each entry "is" the minimum.
//
// ✨ Key properties:
//   - max-shifted log-sum-exp — stable for inputs of any magnitude
//   - +Inf entries are additive identities: zero weight, no effect on
//     the value (all-+Inf input yields +Inf and all-zero weights)
//   - ties split evenly by the formula itself; no tie-break rule
//   - SoftMin3 / SoftMin3Weights: fixed-arity, allocation-free fast
//     path for three-way DP recurrences
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/softdp/softmin"
//
//	v, err := softmin.SoftMin([]float64{3, 1, 2}, 0.5)
//	v, w, err := softmin.SoftMinWeights([]float64{3, 1, 2}, 0.5, nil)
//
// Complexity: O(k) time, O(1) extra memory (weights written into a
// caller-supplied buffer when provided).
package softmin
