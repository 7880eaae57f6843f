// File: validate.go
// Role: Non-mutating invariant checks (connectivity, mirrored weights,
// degree/leaf bounds) — spec.md §3's Graph invariants and §8's P1/P10.
package core

import "fmt"

// Validate checks every invariant spec.md §3 requires of a constructed
// Graph: full connectivity, symmetric mirrored weights, leaf count in
// [leafMin,leafMax], and non-leaf degree in [2,6]. It does not check the
// landscape (heuristic/pathCost) — that's the balance planner's contract.
// Complexity: O(V+E).
func (g *Graph) Validate(leafMin, leafMax int) error {
	if err := g.validateMirrored(); err != nil {
		return err
	}
	if !g.Connected() {
		return fmt.Errorf("core: graph is not connected")
	}
	leaves := g.LeafCount()
	if leaves < leafMin || leaves > leafMax {
		return fmt.Errorf("core: leaf count %d outside [%d,%d]", leaves, leafMin, leafMax)
	}
	for _, id := range g.order {
		n := g.nodes[id]
		if n.IsLeaf() {
			continue
		}
		if d := len(n.neighbours); d < 2 || d > 6 {
			return fmt.Errorf("core: non-leaf %d has degree %d outside [2,6]", id, d)
		}
	}
	return nil
}

// validateMirrored checks that every edge appears identically on both
// endpoints' neighbour lists, with an equal weight.
func (g *Graph) validateMirrored() error {
	for _, id := range g.order {
		n := g.nodes[id]
		for _, nb := range n.neighbours {
			w, ok := g.Weight(nb.To, id)
			if !ok {
				return fmt.Errorf("core: edge %d->%d is not mirrored", id, nb.To)
			}
			if w != nb.Weight {
				return fmt.Errorf("core: edge %d-%d has mismatched weights %g/%g", id, nb.To, nb.Weight, w)
			}
		}
	}
	return nil
}

// Connected reports whether every node is reachable from NodeIDs()[0] via a
// plain BFS over the (undirected) adjacency. An empty graph is vacuously
// connected. Complexity: O(V+E).
func (g *Graph) Connected() bool {
	if len(g.order) == 0 {
		return true
	}
	seen := make(map[NodeID]bool, len(g.nodes))
	queue := []NodeID{g.order[0]}
	seen[g.order[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.nodes[cur].neighbours {
			if !seen[nb.To] {
				seen[nb.To] = true
				queue = append(queue, nb.To)
			}
		}
	}
	return len(seen) == len(g.nodes)
}

// ReachableFrom returns the set of node ids reachable from start (inclusive),
// via a plain BFS over the undirected adjacency. Used by the builder's
// connectivity repair to group nodes into components; the policy kernel does
// not call it, since it treats "component exhausted" identically to "graph
// exhausted".
func (g *Graph) ReachableFrom(start NodeID) map[NodeID]bool {
	seen := make(map[NodeID]bool)
	if _, ok := g.nodes[start]; !ok {
		return seen
	}
	queue := []NodeID{start}
	seen[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.nodes[cur].neighbours {
			if !seen[nb.To] {
				seen[nb.To] = true
				queue = append(queue, nb.To)
			}
		}
	}
	return seen
}
