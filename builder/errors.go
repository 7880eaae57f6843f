// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with %w.
package builder

import "errors"

// ErrTooFewVertices indicates NodeCount is too small to admit the requested
// leaf range at all (spec.md §6 default is 28; degenerate configurations
// such as NodeCount < 4 cannot satisfy degree bounds).
var ErrTooFewVertices = errors.New("builder: node_count too small for leaf_range")

// ErrInvalidLeafRange indicates LeafRange.Min > LeafRange.Max or a bound
// outside [0, NodeCount].
var ErrInvalidLeafRange = errors.New("builder: invalid leaf_range")

// ErrInvalidWeightRange indicates EdgeWeightRange falls outside
// [core.MinEdgeWeight, core.MaxEdgeWeight] or Min > Max.
var ErrInvalidWeightRange = errors.New("builder: invalid edge_weight_range")

// ErrDisconnected is returned when, after the bounded retry budget, no seed
// produced a fully connected layout. Disposition per spec.md §7: bubble to
// the shell, which retries Start with a fresh seed.
var ErrDisconnected = errors.New("builder: could not construct a connected graph")

// ErrUnsatisfiable is returned only when the leaf count cannot be brought
// into range without disconnecting the graph, spec.md §4.2 step 4's
// "Unsatisfiable" condition. In practice BuildGraph never returns this: per
// spec.md §7's LeafCountUnmet disposition ("log + accept nearest feasible,
// proceed"), an unsatisfiable target is logged and the nearest feasible leaf
// count is accepted instead of failing. The sentinel is kept for callers
// that opt into strict mode via WithStrictLeafRange.
var ErrUnsatisfiable = errors.New("builder: leaf count unsatisfiable without disconnecting")
