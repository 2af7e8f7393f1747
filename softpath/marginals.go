package softpath

import (
	"math"

	"github.com/katalvlaran/softdp/softmin"
)

// Edge marginals — the backward pass of the soft shortest-path operator.
//
// Combining the forward values V (source→node) with the reverse values B
// (node→sink) gives each edge a Boltzmann weight relative to the global
// smoothed optimum V[sink]:
//
//	M(u,v) = exp(−(V[u] + w(u,v) + B[v] − V[sink]) / γ)
//
// M(u,v) is the probability that edge (u,v) appears on a path drawn from
// the Gibbs distribution over source→sink paths, and simultaneously
// ∂V[sink]/∂w(u,v). Restricted to one node's incident edges, the
// marginals reproduce the local softmin weights the forward (incoming)
// or reverse (outgoing) recursion computed there, so mass is conserved
// through every node.

// minExpArg is the threshold below which math.Exp underflows to zero;
// guarding it keeps extremely dominated edges at an exact 0.
const minExpArg = -745.0

// EdgeMarginals computes the soft shortest-path value V[sink] and one
// marginal per edge, in edge-list order.
//
// Marginals are finite and nonnegative; edges touching a node that
// cannot lie on any source→sink path get exactly 0. As γ→0 the
// marginals concentrate on the edges of the unique shortest path when
// one exists.
//
// Errors: the Values/ReverseValues validation set, plus ErrNoPath when
// the sink is unreachable from the source.
//
// Complexity: O(nodes + edges) time and memory.
func EdgeMarginals(n int, edges []Edge, source, sink int, gamma float64) (float64, []float64, error) {
	if err := softmin.ValidateGamma(gamma); err != nil {
		return 0, nil, ErrInvalidGamma
	}
	if err := validate(n, edges, source, sink); err != nil {
		return 0, nil, err
	}

	fwd, err := Values(n, edges, source, gamma)
	if err != nil {
		return 0, nil, err
	}

	value := fwd[sink]
	if math.IsInf(value, 1) {
		return 0, nil, ErrNoPath
	}

	bwd, err := ReverseValues(n, edges, sink, gamma)
	if err != nil {
		return 0, nil, err
	}

	marginals := make([]float64, len(edges))
	for k, e := range edges {
		a, b := fwd[e.From], bwd[e.To]
		if math.IsInf(a, 1) || math.IsInf(b, 1) {
			continue // edge off every source→sink path
		}
		if z := -(a + e.Weight + b - value) / gamma; z >= minExpArg {
			marginals[k] = math.Exp(z)
		}
	}

	return value, marginals, nil
}

// Attention is the high-level entry point: soft shortest-path value plus
// edge marginals for the configured source/sink pair. A nil opts selects
// DefaultOptions(n) — source 0, sink n-1, Gamma=DefaultGamma.
//
// Errors: same set as EdgeMarginals.
//
// Example:
//
//	opts := softpath.DefaultOptions(4)
//	opts.Gamma = 0.5
//	value, m, err := softpath.Attention(4, edges, &opts)
func Attention(n int, edges []Edge, opts *Options) (float64, []float64, error) {
	cfg := DefaultOptions(n)
	if opts != nil {
		cfg = *opts
	}

	return EdgeMarginals(n, edges, cfg.Source, cfg.Sink, cfg.Gamma)
}
