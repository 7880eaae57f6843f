package policy

import "github.com/waypointlab/pursuit/core"

// NextMove dispatches to the kernel for policy p: the single shared entry
// point every pursuer controller call goes through (spec.md §4.4).
//
// runnerNode is part of the contract for parity with spec.md's documented
// signature; none of the seven kernels consult it directly — termination by
// contact is a Session-level concern (combat), not a kernel concern.
func NextMove(g *core.Graph, p Policy, vs *VisitedSets, current, runnerNode core.NodeID) Decision {
	switch p {
	case BFS:
		return traversalMove(g, vs, current, frontMost)
	case DFS:
		return traversalMove(g, vs, current, lastMost)
	case UCS:
		return traversalMove(g, vs, current, cheapestFirst)
	case GreedyMin:
		return heuristicMove(g, vs, current, true)
	case GreedyMax:
		return heuristicMove(g, vs, current, false)
	case AStarMin:
		return costMove(g, vs, current, true)
	case AStarMax:
		return costMove(g, vs, current, false)
	default:
		return StuckWith(GraphExplored)
	}
}

// admissibleTraversal returns current's neighbours minus any leaf already in
// visited_leaves, in construction order — the shared admissibility rule for
// BFS/DFS/UCS (spec.md §4.4).
func admissibleTraversal(g *core.Graph, vs *VisitedSets, current core.NodeID) []core.NodeID {
	var out []core.NodeID
	for _, nb := range g.Neighbours(current) {
		if g.IsLeaf(nb.To) && vs.VisitedLeaves[nb.To] {
			continue
		}
		out = append(out, nb.To)
	}
	return out
}

// pick selects the unvisited neighbour to step to, given admissible ids
// already filtered to "not yet visited". Each traversal policy supplies its
// own selection rule.
type unvisitedPicker func(g *core.Graph, current core.NodeID, unvisited []core.NodeID) core.NodeID

func frontMost(_ *core.Graph, _ core.NodeID, unvisited []core.NodeID) core.NodeID {
	return unvisited[0]
}

func lastMost(_ *core.Graph, _ core.NodeID, unvisited []core.NodeID) core.NodeID {
	return unvisited[len(unvisited)-1]
}

func cheapestFirst(g *core.Graph, current core.NodeID, unvisited []core.NodeID) core.NodeID {
	best := unvisited[0]
	bestW, _ := g.Weight(current, best)
	for _, n := range unvisited[1:] {
		w, _ := g.Weight(current, n)
		if w < bestW || (w == bestW && n < best) {
			best, bestW = n, w
		}
	}
	return best
}

// traversalMove implements the shared BFS/DFS/UCS skeleton: partition
// admissible neighbours into unvisited and visited-non-leaf, pick via the
// policy-specific picker when unvisited is non-empty, else backtrack.
func traversalMove(g *core.Graph, vs *VisitedSets, current core.NodeID, pick unvisitedPicker) Decision {
	admissible := admissibleTraversal(g, vs, current)

	var unvisited []core.NodeID
	var visitedNonLeaf []core.NodeID
	for _, n := range admissible {
		if vs.VisitedNodes[n] {
			visitedNonLeaf = append(visitedNonLeaf, n)
		} else {
			unvisited = append(unvisited, n)
		}
	}

	if len(unvisited) > 0 {
		n := pick(g, current, unvisited)
		vs.markVisited(g, n)
		return StepTo(n)
	}

	vs.BacktrackedFrom[current] = true

	var best core.NodeID
	found := false
	for _, n := range visitedNonLeaf {
		if vs.BacktrackedFrom[n] {
			continue
		}
		if !found || n < best {
			best, found = n, true
		}
	}
	if !found {
		return StuckWith(GraphExplored)
	}
	return StepTo(best)
}

// admissibleNoBacktrack returns current's neighbours minus everything in
// visited_nodes, the shared admissibility rule for Greedy/A* (spec.md §4.4).
func admissibleNoBacktrack(g *core.Graph, vs *VisitedSets, current core.NodeID) []core.NodeID {
	var out []core.NodeID
	for _, nb := range g.Neighbours(current) {
		if !vs.VisitedNodes[nb.To] {
			out = append(out, nb.To)
		}
	}
	return out
}

// heuristicMove implements GreedyMin (minimizing=true) and GreedyMax
// (minimizing=false).
func heuristicMove(g *core.Graph, vs *VisitedSets, current core.NodeID, minimizing bool) Decision {
	admissible := admissibleNoBacktrack(g, vs, current)
	if len(admissible) == 0 {
		return StuckWith(DeadEnd)
	}

	best := admissible[0]
	bestH := g.Heuristic(best)
	for _, n := range admissible[1:] {
		h := g.Heuristic(n)
		if betterOrTied(h, bestH, n, best, minimizing) {
			best, bestH = n, h
		}
	}

	currentH := g.Heuristic(current)
	if minimizing && bestH >= currentH {
		return StuckWith(LocalMin)
	}
	if !minimizing && bestH <= currentH {
		return StuckWith(LocalMax)
	}

	vs.markVisited(g, best)
	return StepTo(best)
}

// costMove implements AStarMin and AStarMax, identical to heuristicMove but
// optimizing f(n) = path_cost(n) + h(n) instead of h(n) alone.
func costMove(g *core.Graph, vs *VisitedSets, current core.NodeID, minimizing bool) Decision {
	admissible := admissibleNoBacktrack(g, vs, current)
	if len(admissible) == 0 {
		return StuckWith(DeadEnd)
	}

	f := func(n core.NodeID) float64 { return g.PathCost(n) + g.Heuristic(n) }

	best := admissible[0]
	bestF := f(best)
	for _, n := range admissible[1:] {
		fn := f(n)
		if betterOrTied(fn, bestF, n, best, minimizing) {
			best, bestF = n, fn
		}
	}

	currentF := f(current)
	if minimizing && bestF >= currentF {
		return StuckWith(LocalMin)
	}
	if !minimizing && bestF <= currentF {
		return StuckWith(LocalMax)
	}

	vs.markVisited(g, best)
	return StepTo(best)
}

// betterOrTied reports whether candidate (value v, id nID) should replace
// the current best (value bv, id bID) under the optimisation direction,
// applying the spec's id-tiebreak (smaller id wins on exact ties).
func betterOrTied(v, bv float64, n, best core.NodeID, minimizing bool) bool {
	if minimizing {
		return v < bv || (v == bv && n < best)
	}
	return v > bv || (v == bv && n < best)
}
