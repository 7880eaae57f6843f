package balance

import "github.com/waypointlab/pursuit/core"

// seedPath computes the unweighted shortest path from start to goal via
// plain BFS, returning the node sequence [start, ..., goal] inclusive
// (spec.md §4.3's "BFS seed path"). Returns nil if goal is unreachable,
// which cannot happen for a connected Graph.
func seedPath(g *core.Graph, start, goal core.NodeID) []core.NodeID {
	if start == goal {
		return []core.NodeID{start}
	}

	parent := map[core.NodeID]core.NodeID{start: start}
	queue := []core.NodeID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return reconstruct(parent, start, goal)
		}
		for _, nb := range g.Neighbours(cur) {
			if _, seen := parent[nb.To]; !seen {
				parent[nb.To] = cur
				queue = append(queue, nb.To)
			}
		}
	}
	if _, ok := parent[goal]; ok {
		return reconstruct(parent, start, goal)
	}
	return nil
}

func reconstruct(parent map[core.NodeID]core.NodeID, start, goal core.NodeID) []core.NodeID {
	var rev []core.NodeID
	for n := goal; ; {
		rev = append(rev, n)
		if n == start {
			break
		}
		n = parent[n]
	}
	out := make([]core.NodeID, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}
