package port

import (
	"sort"

	"github.com/waypointlab/pursuit/core"
)

// OutboundKind tags the arm of the Outbound sum type populated
// (spec.md §4.7). None is the zero value; Apply never emits it — an inbound
// event with nothing to report (such as Pause) yields an empty slice.
type OutboundKind int

const (
	None OutboundKind = iota
	Built
	RunnerMoved
	PursuerMoved
	HeuristicForNode
	OutcomeEvent
)

// BuiltPayload mirrors spec.md §4.7's Built{graph_snapshot}.
type BuiltPayload struct {
	NodeCount int
	EdgeCount int
	LeafCount int
}

// RunnerMovedPayload mirrors spec.md §4.7's RunnerMoved{to, queue}.
type RunnerMovedPayload struct {
	To    core.NodeID
	Queue []core.NodeID
}

// PursuerMovedPayload mirrors spec.md §4.7's
// PursuerMoved{to, visited_sample}. VisitedSample is every visited node id,
// in ascending order, capped at visitedSampleCap for payload size.
type PursuerMovedPayload struct {
	To            core.NodeID
	VisitedSample []core.NodeID
}

const visitedSampleCap = 32

func visitedSample(visited map[core.NodeID]bool) []core.NodeID {
	ids := make([]core.NodeID, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > visitedSampleCap {
		ids = ids[:visitedSampleCap]
	}
	return ids
}

// HeuristicPayload mirrors spec.md §6's Hover payload's h/path_cost fields,
// shown on hover. HasH/HasPCost follow spec.md §6's exact rule: h alone
// for Greedy*, both for A**, neither for BFS/DFS/UCS.
type HeuristicPayload struct {
	ID         core.NodeID
	Label      string
	Neighbours int
	Visited    bool

	H         float64
	HasH      bool
	PathCost  float64
	HasPCost  bool
}

// OutcomePayload mirrors spec.md §6's Outcome payload exactly.
type OutcomePayload struct {
	Outcome   string // "victory" | "defeat"
	Reason    string // "" (emitted as null) for defeats
	HasReason bool
	ElapsedMS int64

	RunnerNodeID     core.NodeID
	RunnerHP         int
	RunnerVisited    int
	PursuerNodeID    core.NodeID
	PursuerHP        int
	PursuerExpanded  int
	PursuerPolicy    string
}

// Outbound is the tagged union of every event the Session can emit
// (spec.md §4.7). Only the field group matching Kind is populated.
type Outbound struct {
	Kind OutboundKind

	BuiltPayload     BuiltPayload
	RunnerMovedPay   RunnerMovedPayload
	PursuerMovedPay  PursuerMovedPayload
	HeuristicPayload HeuristicPayload
	OutcomePayload   OutcomePayload
}
