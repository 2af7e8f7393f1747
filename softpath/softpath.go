package softpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/softdp/softmin"
)

// Soft shortest path — forward and reverse value functions.
//
// Algorithm Outline (forward):
//  1. Bucket edges by destination (O(edges)).
//  2. Scan nodes in the supplied topological order. V[source] = 0; for
//     every other node v,
//     V[v] = softmin_γ{ V[u] + w(u,v) : (u,v) incoming, V[u] finite }
//     and +Inf when no finite candidate exists (unreachable).
//  3. The reverse pass mirrors this over reversed edges from the sink,
//     scanning in reverse order.
//
// Complexity per pass:
//
//	Time   = O(nodes + edges)
//	Memory = O(nodes + edges)

// Values computes the forward soft value function: the smoothed distance
// from source to every node of a topologically ordered DAG.
//
// Preconditions and validation (in order):
//  1. gamma must be positive and finite (ErrInvalidGamma).
//  2. n must be ≥ 1 (ErrEmptyGraph).
//  3. source must lie in [0, n) (ErrDimensionMismatch).
//  4. Every edge endpoint must lie in [0, n) (ErrDimensionMismatch).
//  5. Every edge must go strictly forward in the order (ErrCycle).
//  6. Every edge weight must be finite (ErrNaNWeight).
//
// Unreachable nodes (including every node before source in the order)
// hold +Inf.
func Values(n int, edges []Edge, source int, gamma float64) ([]float64, error) {
	if err := softmin.ValidateGamma(gamma); err != nil {
		return nil, ErrInvalidGamma
	}
	if err := validate(n, edges, source); err != nil {
		return nil, err
	}

	// Bucket incoming edge indices per destination node.
	incoming := make([][]int, n)
	for k, e := range edges {
		incoming[e.To] = append(incoming[e.To], k)
	}

	values := make([]float64, n)
	for v := range values {
		values[v] = math.Inf(1)
	}
	values[source] = 0

	cands := make([]float64, 0, 8)
	for v := 0; v < n; v++ {
		if v == source {
			continue
		}
		cands = cands[:0]
		for _, k := range incoming[v] {
			e := edges[k]
			if a := values[e.From]; !math.IsInf(a, 1) {
				cands = append(cands, a+e.Weight)
			}
		}
		if len(cands) == 0 {
			continue // stays +Inf
		}
		sm, err := softmin.SoftMin(cands, gamma)
		if err != nil {
			return nil, err // unreachable: inputs pre-validated
		}
		values[v] = sm
	}

	return values, nil
}

// ReverseValues computes the mirrored value function: the smoothed
// distance from every node to sink, scanning nodes in reverse
// topological order over reversed edges.
//
// Validation matches Values with sink in place of source. Nodes that
// cannot reach the sink (including every node after it) hold +Inf.
func ReverseValues(n int, edges []Edge, sink int, gamma float64) ([]float64, error) {
	if err := softmin.ValidateGamma(gamma); err != nil {
		return nil, ErrInvalidGamma
	}
	if err := validate(n, edges, sink); err != nil {
		return nil, err
	}

	// Bucket outgoing edge indices per origin node.
	outgoing := make([][]int, n)
	for k, e := range edges {
		outgoing[e.From] = append(outgoing[e.From], k)
	}

	values := make([]float64, n)
	for v := range values {
		values[v] = math.Inf(1)
	}
	values[sink] = 0

	cands := make([]float64, 0, 8)
	for v := n - 1; v >= 0; v-- {
		if v == sink {
			continue
		}
		cands = cands[:0]
		for _, k := range outgoing[v] {
			e := edges[k]
			if b := values[e.To]; !math.IsInf(b, 1) {
				cands = append(cands, e.Weight+b)
			}
		}
		if len(cands) == 0 {
			continue
		}
		sm, err := softmin.SoftMin(cands, gamma)
		if err != nil {
			return nil, err
		}
		values[v] = sm
	}

	return values, nil
}

// validate enforces the structural contract shared by every operator:
// non-empty graph, in-range node references, forward-only edges, finite
// weights. Edge errors carry the offending edge's context; callers still
// match the sentinel via errors.Is.
func validate(n int, edges []Edge, nodes ...int) error {
	if n == 0 {
		return ErrEmptyGraph
	}
	for _, v := range nodes {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: node %d for n=%d", ErrDimensionMismatch, v, n)
		}
	}
	for k, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d→%d) for n=%d", ErrDimensionMismatch, k, e.From, e.To, n)
		}
		if e.To <= e.From {
			return fmt.Errorf("%w: edge %d (%d→%d)", ErrCycle, k, e.From, e.To)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge %d (%d→%d) weight=%v", ErrNaNWeight, k, e.From, e.To, e.Weight)
		}
	}

	return nil
}
