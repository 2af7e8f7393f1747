// Package softpath computes soft shortest paths on directed acyclic
// graphs — a log-sum-exp relaxation of min-plus dynamic programming —
// together with per-edge marginals ("DP attention" over edges, in the
// Mensch & Blondel 2018 framing).
//
// 🚀 What is a soft shortest path?
//
//	For a DAG with a source s and sink t, the soft value at temperature
//	γ relaxes the minimum over all s→t paths π:
//
//		V_γ = −γ·log Σ_π exp(−C(π)/γ),   C(π) = Σ_{e∈π} w(e)
//
//	computed in one forward scan over a topologically ordered node list:
//	V[s]=0 and V[v] = softmin_γ{V[u]+w(u,v)} over incoming edges. A
//	mirrored backward scan yields B[v], the soft distance from v to t,
//	and the two combine into a Boltzmann weight per edge:
//
//		M(u,v) = exp(−(V[u] + w(u,v) + B[v] − V[t]) / γ)
//
//	M(u,v) is the marginal probability that edge (u,v) lies on a path
//	drawn from the Gibbs distribution over s→t paths — and exactly
//	∂V_γ/∂w(u,v), so the marginals are the operator's gradient.
//
// ✨ Key features:
//   - index-based edge lists over a caller-supplied topological order;
//     the only acyclicity check is that every edge goes forward
//   - forward values, reverse values, and edge marginals as separate,
//     composable passes
//   - conservation by construction: marginals restricted to a node's
//     incident edges reproduce the local softmin weight distribution
//   - γ→0 concentrates the marginals on the unique shortest path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/softdp/softpath"
//
//	edges := []softpath.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 3, Weight: 2},
//	                         {From: 0, To: 2, Weight: 3}, {From: 2, To: 3, Weight: 4}}
//	opts := softpath.DefaultOptions(4) // source 0, sink 3
//	opts.Gamma = 0.5
//	value, marginals, err := softpath.Attention(4, edges, &opts)
//
// Performance:
//
//   - Time:   O(nodes + edges) per pass
//   - Memory: O(nodes + edges); all buffers owned by the call
//
// Deterministic, stateless, reentrant: safe for concurrent use on
// independent inputs.
package softpath
