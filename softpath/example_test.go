package softpath_test

import (
	"fmt"

	"github.com/katalvlaran/softdp/softpath"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAttention
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	"DP = attention" on a tiny DAG: two alternative routes from 0 to 3,
//	0→1→3 (cost 2, cheap) and 0→2→3 (cost 6, dear), at γ=0.5.
//	The edge marginals are the Gibbs probabilities of each route — the
//	cheap route's edges take ≈99.97% of the mass — and are exactly the
//	gradients of the soft value with respect to each edge weight.
//
// Complexity: O(nodes + edges) time.
func ExampleAttention() {
	edges := []softpath.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 0, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 3},
	}
	opts := softpath.DefaultOptions(4)
	opts.Gamma = 0.5

	value, m, err := softpath.Attention(4, edges, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.4f\n", value)
	for k, e := range edges {
		fmt.Printf("edge %d→%d: marginal=%.4f\n", e.From, e.To, m[k])
	}
	// Output:
	// value=1.9998
	// edge 0→1: marginal=0.9997
	// edge 1→3: marginal=0.9997
	// edge 0→2: marginal=0.0003
	// edge 2→3: marginal=0.0003
}
