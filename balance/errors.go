// errors.go — sentinel errors for the balance package, following the same
// fail-fast/errors.Is convention as builder/errors.go.
package balance

import "errors"

// ErrNoPath indicates the BFS seed path between pursuer and runner spawns
// could not be computed because the two spawns are not mutually reachable
// (impossible for a connected Graph; kept defensively).
var ErrNoPath = errors.New("balance: no seed path between pursuer and runner spawn")

// ErrPlateauUnresolved indicates the §4.3 post-condition kept failing after
// the bounded regenerate-then-clamp retry sequence.
var ErrPlateauUnresolved = errors.New("balance: could not satisfy plateau post-condition")
