package softpath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/softdp/softpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond is the canonical 4-node test DAG: two disjoint routes
// 0→1→3 (cost 3) and 0→2→3 (cost 7).
func diamond() []softpath.Edge {
	return []softpath.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 3, Weight: 2},
		{From: 0, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 4},
	}
}

// TestValues_Diamond verifies the forward value function against the
// hand-derived recursion on the diamond DAG.
func TestValues_Diamond(t *testing.T) {
	gamma := 0.5
	v, err := softpath.Values(4, diamond(), 0, gamma)
	require.NoError(t, err)

	assert.Zero(t, v[0], "V[source] must be 0")
	assert.InDelta(t, 1.0, v[1], 1e-12, "single incoming edge: plain relaxation")
	assert.InDelta(t, 3.0, v[2], 1e-12)

	// V[3] = softmin(V[1]+2, V[2]+4) = −γ·ln(e^{−3/γ} + e^{−7/γ}).
	want := -gamma * math.Log(math.Exp(-3/gamma)+math.Exp(-7/gamma))
	assert.InDelta(t, want, v[3], 1e-12)
}

// TestReverseValues_Diamond verifies the mirrored recursion: B from each
// node to the sink, with B[0] equal to the forward V[3].
func TestReverseValues_Diamond(t *testing.T) {
	gamma := 0.5
	b, err := softpath.ReverseValues(4, diamond(), 3, gamma)
	require.NoError(t, err)

	assert.Zero(t, b[3], "B[sink] must be 0")
	assert.InDelta(t, 2.0, b[1], 1e-12)
	assert.InDelta(t, 4.0, b[2], 1e-12)

	v, err := softpath.Values(4, diamond(), 0, gamma)
	require.NoError(t, err)
	assert.InDelta(t, v[3], b[0], 1e-12, "both recursions smooth the same path ensemble")
}

// TestValues_UnreachableNodesAreInf verifies +Inf on nodes with no route
// from the source, including nodes before it in the order.
func TestValues_UnreachableNodesAreInf(t *testing.T) {
	// Node 0 precedes the source; node 3 has no incoming edges at all.
	edges := []softpath.Edge{{From: 1, To: 2, Weight: 1}}
	v, err := softpath.Values(4, edges, 1, 1.0)
	require.NoError(t, err)

	assert.True(t, math.IsInf(v[0], 1), "node before source is unreachable")
	assert.Zero(t, v[1])
	assert.InDelta(t, 1.0, v[2], 1e-12)
	assert.True(t, math.IsInf(v[3], 1), "node with no incoming edges is unreachable")
}

// TestValues_ValidationLadder covers the structural error set in its
// documented order.
func TestValues_ValidationLadder(t *testing.T) {
	_, err := softpath.Values(3, diamond(), 0, 0)
	assert.ErrorIs(t, err, softpath.ErrInvalidGamma, "gamma=0 must error first")

	_, err = softpath.Values(0, nil, 0, 1.0)
	assert.ErrorIs(t, err, softpath.ErrEmptyGraph)

	_, err = softpath.Values(4, diamond(), 4, 1.0)
	assert.ErrorIs(t, err, softpath.ErrDimensionMismatch, "source out of range")

	_, err = softpath.Values(2, []softpath.Edge{{From: 0, To: 2, Weight: 1}}, 0, 1.0)
	assert.ErrorIs(t, err, softpath.ErrDimensionMismatch, "edge endpoint ≥ n")

	_, err = softpath.Values(3, []softpath.Edge{{From: 2, To: 1, Weight: 1}}, 0, 1.0)
	assert.ErrorIs(t, err, softpath.ErrCycle, "back-edge relative to the order")

	_, err = softpath.Values(3, []softpath.Edge{{From: 1, To: 1, Weight: 1}}, 0, 1.0)
	assert.ErrorIs(t, err, softpath.ErrCycle, "self-loop")

	_, err = softpath.Values(3, []softpath.Edge{{From: 0, To: 1, Weight: math.NaN()}}, 0, 1.0)
	assert.ErrorIs(t, err, softpath.ErrNaNWeight)

	_, err = softpath.Values(3, []softpath.Edge{{From: 0, To: 1, Weight: math.Inf(1)}}, 0, 1.0)
	assert.ErrorIs(t, err, softpath.ErrNaNWeight, "infinite weight: omit the edge instead")
}

// TestValues_Deterministic verifies bitwise repeatability.
func TestValues_Deterministic(t *testing.T) {
	v1, err := softpath.Values(4, diamond(), 0, 0.3)
	require.NoError(t, err)
	v2, err := softpath.Values(4, diamond(), 0, 0.3)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}
