package policy

import "github.com/waypointlab/pursuit/core"

// Policy is the closed set of pursuer decision kernels (spec.md §3).
type Policy int

const (
	BFS Policy = iota
	DFS
	UCS
	GreedyMin
	GreedyMax
	AStarMin
	AStarMax
)

// String returns the stable external identifier for p, exactly as listed in
// spec.md §6 for inbound events and outbound telemetry.
func (p Policy) String() string {
	switch p {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case UCS:
		return "UCS"
	case GreedyMin:
		return "Greedy (Local Min)"
	case GreedyMax:
		return "Greedy (Local Max)"
	case AStarMin:
		return "A* (Local Min)"
	case AStarMax:
		return "A* (Local Max)"
	default:
		return "unknown"
	}
}

// UsesLandscapeMutation reports whether the balance planner writes a
// non-trivial heuristic/path-cost landscape for p (every policy but BFS/DFS).
func (p Policy) UsesLandscapeMutation() bool {
	return p != BFS && p != DFS
}

// IsNoBacktrack reports whether p belongs to the Greedy/A* family, which
// never backtracks and uses a plateau test instead of exhaustive traversal.
func (p Policy) IsNoBacktrack() bool {
	switch p {
	case GreedyMin, GreedyMax, AStarMin, AStarMax:
		return true
	default:
		return false
	}
}

// StuckReason is the closed set of terminal pursuer-halt causes (spec.md §3).
type StuckReason int

const (
	LocalMin StuckReason = iota
	LocalMax
	GraphExplored
	DeadEnd
	CombatKO
)

// String returns the outcome-payload reason string (spec.md §6), lower_snake.
func (r StuckReason) String() string {
	switch r {
	case LocalMin:
		return "local_min"
	case LocalMax:
		return "local_max"
	case GraphExplored:
		return "graph_explored"
	case DeadEnd:
		return "dead_end"
	case CombatKO:
		return "combat"
	default:
		return "unknown"
	}
}

// DecisionKind tags which arm of the Decision sum type is populated.
type DecisionKind int

const (
	DecisionStep DecisionKind = iota
	DecisionStuck
)

// Decision is the pursuer kernel's result: Decision{Step(NodeId)} or
// Decision{Stuck(StuckReason)} (spec.md §4.4).
type Decision struct {
	Kind   DecisionKind
	Step   core.NodeID
	Reason StuckReason
}

// StepTo builds a Decision that moves the pursuer to n.
func StepTo(n core.NodeID) Decision {
	return Decision{Kind: DecisionStep, Step: n}
}

// StuckWith builds a Decision that halts the pursuer with reason r.
func StuckWith(r StuckReason) Decision {
	return Decision{Kind: DecisionStuck, Reason: r}
}

// IsStep reports whether d is a Step decision.
func (d Decision) IsStep() bool { return d.Kind == DecisionStep }

// VisitedSets is the Pursuer-owned, monotone-growing bookkeeping threaded
// through every kernel invocation (spec.md §3). Kernels receive it by
// pointer and mutate it in place; ownership lives on the Pursuer.
type VisitedSets struct {
	VisitedNodes    map[core.NodeID]bool
	VisitedLeaves   map[core.NodeID]bool
	BacktrackedFrom map[core.NodeID]bool
}

// NewVisitedSets returns a VisitedSets seeded with start already visited
// (spec.md §4.4's "current is always a member of visited_nodes immediately
// after entry" invariant, applied at Pursuer creation time too).
func NewVisitedSets(g *core.Graph, start core.NodeID) *VisitedSets {
	vs := &VisitedSets{
		VisitedNodes:    map[core.NodeID]bool{start: true},
		VisitedLeaves:   make(map[core.NodeID]bool),
		BacktrackedFrom: make(map[core.NodeID]bool),
	}
	if g.IsLeaf(start) {
		vs.VisitedLeaves[start] = true
	}
	return vs
}

// markVisited records n as visited, and as a visited leaf if g says so.
func (vs *VisitedSets) markVisited(g *core.Graph, n core.NodeID) {
	vs.VisitedNodes[n] = true
	if g.IsLeaf(n) {
		vs.VisitedLeaves[n] = true
	}
}
