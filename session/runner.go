// runner.go — Runner state and intent application (spec.md §3, §4.6 step 2).
package session

import "github.com/waypointlab/pursuit/core"

// Runner is the human-controlled agent (spec.md §3). Combat HP is tracked
// at the Session level alongside the Pursuer's, per spec.md §3's "Session
// owns ... combat HP counters".
type Runner struct {
	Current core.NodeID
	Queue   []core.NodeID

	nodesVisited map[core.NodeID]bool
}

func newRunner(spawn core.NodeID) *Runner {
	return &Runner{
		Current:      spawn,
		nodesVisited: map[core.NodeID]bool{spawn: true},
	}
}

// NodesVisited reports how many distinct nodes the runner has occupied,
// for the Outcome payload's runner.nodes_visited field.
func (r *Runner) NodesVisited() int { return len(r.nodesVisited) }

// applyClick implements spec.md §4.6 step 2's intent-application rule:
//   - node == current: clear the queue.
//   - node adjacent to the queue's tip (or current, if the queue is empty)
//     and the queue has room: append.
//   - node adjacent to current: replace the queue with [node].
//   - otherwise: ignore (TickError::BadIntent, spec.md §7).
func (r *Runner) applyClick(g *core.Graph, node core.NodeID, queueDepth int) {
	if node == r.Current {
		r.Queue = nil
		return
	}

	tip := r.Current
	if len(r.Queue) > 0 {
		tip = r.Queue[len(r.Queue)-1]
	}
	if g.HasEdge(tip, node) && len(r.Queue) < queueDepth {
		r.Queue = append(r.Queue, node)
		return
	}

	if g.HasEdge(r.Current, node) {
		r.Queue = []core.NodeID{node}
	}
	// Otherwise: non-adjacent to both the queue tip and current — ignore.
}

// advance pops the queue's head, if any, and moves Current to it — the
// core's instantaneous, discrete notion of "the runner's logical step
// completes" (spec.md §9 design note: no animation interpolation in core).
// Reports whether Current changed.
func (r *Runner) advance() bool {
	if len(r.Queue) == 0 {
		return false
	}
	next := r.Queue[0]
	r.Queue = r.Queue[1:]
	r.Current = next
	r.nodesVisited[next] = true
	return true
}
