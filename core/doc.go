// Package core defines the Node/Graph model shared by the builder, balance
// planner, policy kernel, pursuer controller, and session machine.
//
// A Graph is a finite, connected, undirected, weighted graph over small
// integer NodeIDs. Edges carry a positive weight in [1,10] and are always
// mirrored: adding (a,b,w) makes b a neighbour of a and a a neighbour of b
// with the identical weight. Each Node also carries a world position used
// only to derive the default (Euclidean) heuristic, a display label, and a
// frozen per-node scalar pair (heuristic, path cost) written exactly once by
// the balance planner.
//
// Construction is two-phase: the builder mutates a Graph via AddNode/AddEdge
// (and the handful of topology-repair helpers in the builder package), the
// balance planner then writes the heuristic/path-cost landscape, and finally
// Freeze locks the Graph against further mutation. In a session, the
// pursuer/session layers above only ever see a frozen Graph. The split is
// enforced at runtime, not by the type system: the same *Graph type is used
// before and after Freeze, and every mutator returns ErrGraphFrozen once the
// frozen flag is set.
//
//	core/       — this package: Node, Graph, landscape, invariants
//	builder/    — topology construction (ring layout, kNN wiring, repair)
//	balance/    — BFS seed path + landscape assignment
//	policy/     — the seven next-move kernels
//	pursuer/    — cadence, visitation bookkeeping, conditional tracking
//	session/    — the game-session state machine
//	port/       — external event/payload types
//
// Unlike lvlath's core.Graph, this Graph carries no concurrency primitives:
// per spec it is read-only after construction and may be shared by reference
// with a presenter without locking (see DESIGN.md for the rationale).
package core
