// leaves.go — leaf-count repair, per spec.md §4.2 step 4: once the graph is
// connected, nudge the leaf count into leaf_range by trimming or adding
// edges without ever disconnecting the graph.
package builder

import (
	"math/rand"
	"sort"

	"github.com/waypointlab/pursuit/core"
)

// repairLeafCount mutates g in place, attempting to bring its leaf count
// into [cfg.leafRange.Min, cfg.leafRange.Max]. It returns the final leaf
// count; callers compare that against the requested range themselves, since
// a perfect fit is not always reachable (spec.md §7 LeafCountUnmet).
func repairLeafCount(g *core.Graph, cfg builderConfig, rng *rand.Rand) int {
	for g.LeafCount() < cfg.leafRange.Min {
		if !pruneOneLeafProducingEdge(g) {
			break
		}
	}
	for g.LeafCount() > cfg.leafRange.Max {
		if !growOneLeaf(g, cfg, rng) {
			break
		}
	}
	return g.LeafCount()
}

// pruneOneLeafProducingEdge removes the highest-weight edge incident to the
// highest-degree node, provided doing so does not disconnect the graph. The
// near endpoint keeps degree >= 2; a far endpoint of degree 2 drops to 1 and
// becomes a leaf, which is how this pass raises the leaf count. Returns false
// when no such edge exists, so the caller can stop iterating.
func pruneOneLeafProducingEdge(g *core.Graph) bool {
	ids := append([]core.NodeID(nil), g.NodeIDs()...)
	sort.Slice(ids, func(i, j int) bool { return g.Degree(ids[i]) > g.Degree(ids[j]) })

	for _, u := range ids {
		if g.Degree(u) < 3 { // never prune a node down toward leaf-hood itself
			continue
		}
		neighbours := append([]core.Neighbour(nil), g.Neighbours(u)...)
		sort.Slice(neighbours, func(i, j int) bool { return neighbours[i].Weight > neighbours[j].Weight })
		for _, nb := range neighbours {
			if g.Degree(nb.To) < 2 {
				continue // removing would isolate a leaf on the far end
			}
			g.RemoveEdge(u, nb.To)
			if g.Connected() {
				return true
			}
			_ = g.AddEdge(u, nb.To, nb.Weight) // revert, try the next candidate
		}
	}
	return false
}

// growOneLeaf wires one excess leaf to its nearest non-leaf node, turning
// that leaf into a degree-2 node while leaving every other leaf untouched.
func growOneLeaf(g *core.Graph, cfg builderConfig, rng *rand.Rand) bool {
	for _, leaf := range g.Leaves() {
		var best core.NodeID
		bestDist := -1.0
		found := false
		for _, cand := range g.NodeIDs() {
			if cand == leaf || g.IsLeaf(cand) || g.HasEdge(leaf, cand) {
				continue
			}
			d := g.Distance(leaf, cand)
			if !found || d < bestDist {
				found, best, bestDist = true, cand, d
			}
		}
		if found {
			_ = g.AddEdge(leaf, best, randWeight(rng, cfg.edgeWeightRange))
			return true
		}
	}
	return false
}
