package softmin_test

import (
	"fmt"

	"github.com/katalvlaran/softdp/softmin"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSoftMin
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three equal candidates at 1.0 with temperature γ=1.
//	The closed form gives 1 − γ·ln(3): the soft-min sits strictly below
//	the exact minimum, by γ·ln(k) for k-way ties.
//
// Complexity: O(k) time, O(1) memory.
func ExampleSoftMin() {
	v, err := softmin.SoftMin([]float64{1, 1, 1}, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("softmin=%.4f\n", v)
	// Output:
	// softmin=-0.0986
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSoftMinWeights
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two candidates 0 and 1 at γ=1. The weights are the softmax of −v/γ:
//	the cheaper entry takes ≈73% of the mass, the dearer ≈27%. These
//	weights are exactly the gradient of the soft-min value.
func ExampleSoftMinWeights() {
	_, w, err := softmin.SoftMinWeights([]float64{0, 1}, 1.0, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("w0=%.4f w1=%.4f\n", w[0], w[1])
	// Output:
	// w0=0.7311 w1=0.2689
}
