package port

import (
	"github.com/waypointlab/pursuit/core"
	"github.com/waypointlab/pursuit/policy"
)

// InboundKind tags the arm of the Inbound sum type populated (spec.md §4.7).
type InboundKind int

const (
	Start InboundKind = iota
	Pause
	Resume
	RunnerClick
	Tick
	Hover
	Quit
)

// Inbound is the single typed surface the shell/presenter drives the
// Session with (spec.md §4.7). Exactly one field group is meaningful,
// selected by Kind.
type Inbound struct {
	Kind InboundKind

	// Start
	Policy policy.Policy
	Seed   int64

	// RunnerClick, Hover
	Node core.NodeID

	// Tick
	NowMS int64
	DtMS  int64
}
