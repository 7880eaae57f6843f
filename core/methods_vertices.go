// File: methods_vertices.go
// Role: Node lookup and enumeration.
//
// Determinism:
//   - NodeIDs() returns ids in construction (ascending) order,
//     matching the order the builder assigned them in.
package core

// Node returns the node with the given id, or nil and false if absent.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id exists in the graph. Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeIDs returns every node id in construction order. Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)
	return out
}

// NodeCount returns the number of nodes in the graph. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// IsLeaf reports whether id has exactly one neighbour. A missing id is
// reported as not a leaf (total, no panic). Complexity: O(1).
func (g *Graph) IsLeaf(id NodeID) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	return n.IsLeaf()
}

// LeafCount returns the number of nodes with exactly one neighbour.
// Complexity: O(V).
func (g *Graph) LeafCount() int {
	count := 0
	for _, id := range g.order {
		if g.nodes[id].IsLeaf() {
			count++
		}
	}
	return count
}

// Leaves returns the ids of all leaf nodes, in construction order.
// Complexity: O(V).
func (g *Graph) Leaves() []NodeID {
	var out []NodeID
	for _, id := range g.order {
		if g.nodes[id].IsLeaf() {
			out = append(out, id)
		}
	}
	return out
}

// Degree returns the number of neighbours of id. A missing id reports 0.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) int {
	n, ok := g.nodes[id]
	if !ok {
		return 0
	}
	return len(n.neighbours)
}

// Position returns the (x,y) world position of id. A missing id reports
// (0,0). Complexity: O(1).
func (g *Graph) Position(id NodeID) (x, y float64) {
	n, ok := g.nodes[id]
	if !ok {
		return 0, 0
	}
	return n.X, n.Y
}

// Label returns the display label of id, or "" if absent. Complexity: O(1).
func (g *Graph) Label(id NodeID) string {
	n, ok := g.nodes[id]
	if !ok {
		return ""
	}
	return n.Label
}
