// Package softpath: core types, sentinel errors and configuration
// options for the soft shortest-path operators.
//
// Errors (sentinel):
//
//	– ErrInvalidGamma      if gamma ≤ 0 or non-finite.
//	– ErrEmptyGraph        if the node count is zero.
//	– ErrDimensionMismatch if an edge, source or sink references a node
//	                       index outside [0, n).
//	– ErrCycle             if an edge's target does not come strictly
//	                       after its source in the supplied topological
//	                       order (the sole acyclicity check — the order
//	                       itself is trusted).
//	– ErrNaNWeight         if an edge weight is NaN or ±Inf.
//	– ErrNoPath            if the sink is unreachable from the source.
package softpath

import "errors"

// Sentinel errors returned by the soft shortest-path operators.
var (
	// ErrInvalidGamma indicates the smoothing temperature is not usable:
	// gamma must be strictly positive and finite.
	ErrInvalidGamma = errors.New("softpath: gamma must be positive and finite")

	// ErrEmptyGraph indicates an empty node list.
	ErrEmptyGraph = errors.New("softpath: graph must have at least one node")

	// ErrDimensionMismatch indicates an edge endpoint, source or sink
	// referencing a node index outside the declared node count.
	ErrDimensionMismatch = errors.New("softpath: node index out of range")

	// ErrCycle indicates an edge violating the supplied topological
	// order (target at or before source).
	ErrCycle = errors.New("softpath: edge violates topological order")

	// ErrNaNWeight indicates a NaN or infinite edge weight; edge weights
	// must be finite (unreachability is expressed by omitting the edge).
	ErrNaNWeight = errors.New("softpath: edge weight must be finite")

	// ErrNoPath indicates the sink cannot be reached from the source.
	ErrNoPath = errors.New("softpath: no path exists from source to sink")
)

// DefaultGamma is the smoothing temperature used by DefaultOptions.
const DefaultGamma = 1.0

// Edge is a directed, weighted edge between two node indices of a
// topologically ordered node sequence. From must come strictly before To
// in that order.
type Edge struct {
	From   int     // source node index
	To     int     // destination node index
	Weight float64 // finite edge cost
}

// Options configures the high-level Attention entry point.
//
// Fields:
//   - Gamma  — smoothing temperature; must be positive and finite.
//   - Source — designated source node index.
//   - Sink   — designated sink node index.
type Options struct {
	Gamma  float64
	Source int
	Sink   int
}

// DefaultOptions returns Options initialized with the documented
// defaults for an n-node graph: Gamma=DefaultGamma, Source=0,
// Sink=n-1 (the conventional first/last nodes of a topological order).
func DefaultOptions(n int) Options {
	return Options{Gamma: DefaultGamma, Source: 0, Sink: n - 1}
}
