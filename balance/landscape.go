package balance

import (
	"math/rand"

	"github.com/waypointlab/pursuit/core"
	"github.com/waypointlab/pursuit/policy"
)

// gapFor returns the along-path step size used by Greedy/A* landscapes:
// min(50, 280/k) where k is the number of edges on the seed path
// (spec.md §4.3).
func gapFor(path []core.NodeID) float64 {
	k := len(path) - 1
	if k <= 0 {
		return 50
	}
	gap := 280.0 / float64(k)
	if gap > 50 {
		gap = 50
	}
	return gap
}

// assignLandscape writes heuristic/path-cost values for every node in g
// according to p's row in spec.md §4.3's landscape table. forcedGap, when
// non-zero, overrides gapFor's computed value (the §7 Plateau-retry "force
// gap=50" fallback).
func assignLandscape(g *core.Graph, p policy.Policy, path []core.NodeID, rng *rand.Rand, forcedGap float64) {
	onPath := make(map[core.NodeID]int, len(path))
	for i, n := range path {
		onPath[n] = i
	}

	switch p {
	case policy.GreedyMin, policy.AStarMin:
		gap := forcedGap
		if gap == 0 {
			gap = gapFor(path)
		}
		for _, id := range g.NodeIDs() {
			if i, ok := onPath[id]; ok {
				h := 300 - float64(i)*gap
				if h < 20 {
					h = 20
				}
				_ = g.SetHeuristic(id, h)
			} else {
				_ = g.SetHeuristic(id, uniform(rng, 50, 350))
			}
		}
		if p == policy.AStarMin {
			assignPathCostCumulative(g, path, rng)
		}
	case policy.GreedyMax, policy.AStarMax:
		gap := forcedGap
		if gap == 0 {
			gap = gapFor(path)
		}
		for _, id := range g.NodeIDs() {
			if i, ok := onPath[id]; ok {
				h := 20 + float64(i)*gap
				if h > 300 {
					h = 300
				}
				_ = g.SetHeuristic(id, h)
			} else {
				_ = g.SetHeuristic(id, uniform(rng, 10, 300))
			}
		}
		if p == policy.AStarMax {
			assignPathCostCumulative(g, path, rng)
		}
	case policy.UCS:
		assignPathCostAlong(g, path, rng, 10, 80, 100, 300)
	case policy.BFS, policy.DFS:
		// No landscape mutation (spec.md §4.3 table).
	}
}

// assignPathCostAlong writes path_cost(p_i) ∈ U[onLo,onHi] for nodes on the
// seed path and U[offLo,offHi] elsewhere — UCS's independent-draw landscape
// (spec.md §4.3's Ucs row). A*'s path_cost is NOT an independent draw; see
// assignPathCostCumulative.
func assignPathCostAlong(g *core.Graph, path []core.NodeID, rng *rand.Rand, onLo, onHi, offLo, offHi float64) {
	onPath := make(map[core.NodeID]bool, len(path))
	for _, n := range path {
		onPath[n] = true
	}
	for _, id := range g.NodeIDs() {
		if onPath[id] {
			_ = g.SetPathCost(id, uniform(rng, onLo, onHi))
		} else {
			_ = g.SetPathCost(id, uniform(rng, offLo, offHi))
		}
	}
}

// assignPathCostCumulative writes path_cost(p_i) as the running sum of real
// edge weights from the pursuer spawn along the seed path (spec.md §3's
// PathCostLandscape: "equals the cumulative weight from pursuer spawn on
// the seed path"), and path_cost ∈ U[10,300] for every node off the path.
// This is A*'s g-term: unlike UCS's independent per-node draw, it must
// track real distance traveled so f = g + h behaves as best-first search
// rather than a noisy re-derivation of Greedy.
func assignPathCostCumulative(g *core.Graph, path []core.NodeID, rng *rand.Rand) {
	onPath := make(map[core.NodeID]bool, len(path))
	cumulative := 0.0
	for i, n := range path {
		if i > 0 {
			w, _ := g.Weight(path[i-1], n)
			cumulative += w
		}
		onPath[n] = true
		_ = g.SetPathCost(n, cumulative)
	}
	for _, id := range g.NodeIDs() {
		if !onPath[id] {
			_ = g.SetPathCost(id, uniform(rng, 10, 300))
		}
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
