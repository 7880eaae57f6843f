// controller.go — the Pursuer controller: persistent state, the
// decision-request gate, and the no-backtrack family's conditional
// tracking predicate.
package pursuer

import (
	"github.com/google/uuid"

	"github.com/waypointlab/pursuit/core"
	"github.com/waypointlab/pursuit/policy"
)

// Controller is the Pursuer (spec.md §3/§4.5): persistent visited sets,
// stuck latch, move cadence, and the cached decision the no-backtrack
// family keeps between re-engagements.
type Controller struct {
	ID uuid.UUID

	Current core.NodeID
	Policy  policy.Policy
	Visited *policy.VisitedSets

	Stuck       bool
	StuckReason policy.StuckReason

	CadenceMS      int64
	lastMoveTimeMS int64
	hasMoved       bool

	hasLastDecision bool
	lastDecision    policy.Decision

	hasPrevRunnerH bool
	prevRunnerH    float64
}

// Option customizes a Controller at construction, mirroring
// builder.Option/session.Option's functional-options shape.
type Option func(c *Controller)

// WithCadenceMS overrides the default per-policy CadenceMS (spec.md §6's
// cadence_ms tunable, "configurable" per spec.md §4.5).
func WithCadenceMS(ms int64) Option {
	return func(c *Controller) { c.CadenceMS = ms }
}

// New creates a Pursuer controller at spawn, with visited_nodes seeded to
// contain spawn (spec.md §4.4's entry invariant). CadenceMS defaults to
// CadenceMS(p) and can be overridden via WithCadenceMS.
func New(g *core.Graph, p policy.Policy, spawn core.NodeID, opts ...Option) *Controller {
	c := &Controller{
		ID:        uuid.New(),
		Current:   spawn,
		Policy:    p,
		Visited:   policy.NewVisitedSets(g, spawn),
		CadenceMS: CadenceMS(p),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tick advances the controller by one session tick. nowMS is the session
// clock; runnerCurrent and runnerMoved describe the Runner's position this
// tick. sessionInProgress gates decisions to the InProgress state
// (spec.md §4.5 condition a).
//
// Tick mutates Current/Visited/Stuck/StuckReason in place and reports
// whether a new Decision was made (for callers that want to emit a
// PursuerMoved event only on actual movement).
func (c *Controller) Tick(g *core.Graph, nowMS int64, sessionInProgress bool, runnerCurrent core.NodeID, runnerMoved bool) (decided bool, d policy.Decision) {
	currentRunnerH := g.Heuristic(runnerCurrent)
	directionEngage := true
	if runnerMoved && c.hasPrevRunnerH {
		directionEngage = runnerMovedTowardObjective(c.Policy, c.prevRunnerH, currentRunnerH)
	}
	c.prevRunnerH = currentRunnerH
	c.hasPrevRunnerH = true

	if c.Stuck || !sessionInProgress {
		return false, policy.Decision{}
	}

	onRunnerNode := c.Current == runnerCurrent
	readyByCadence := !c.hasMoved || nowMS-c.lastMoveTimeMS >= c.CadenceMS
	requested := readyByCadence && (runnerMoved || !onRunnerNode)
	if !requested {
		return false, policy.Decision{}
	}

	if c.Policy.IsNoBacktrack() && c.hasLastDecision && !directionEngage {
		// Keep the previously decided Decision; no new kernel call, no state
		// change (spec.md §4.5's conditional-tracking invariant).
		return false, c.lastDecision
	}

	decision := policy.NextMove(g, c.Policy, c.Visited, c.Current, runnerCurrent)
	c.lastDecision = decision
	c.hasLastDecision = true
	c.lastMoveTimeMS = nowMS
	c.hasMoved = true

	switch decision.Kind {
	case policy.DecisionStep:
		c.Current = decision.Step
	case policy.DecisionStuck:
		c.Stuck = true
		c.StuckReason = decision.Reason
	}
	return true, decision
}

// runnerMovedTowardObjective reports whether the runner's most recent hop
// moved in the direction the pursuer's policy is optimising: strictly
// decreased h for the Min variants, strictly increased h for the Max
// variants (spec.md §4.5).
func runnerMovedTowardObjective(p policy.Policy, prevH, curH float64) bool {
	if p == policy.GreedyMin || p == policy.AStarMin {
		return curH < prevH
	}
	return curH > prevH
}
