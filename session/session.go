// session.go — the Session machine: Start and Tick, implementing spec.md
// §4.6's transition table in the exact documented order (runner intent,
// pursuer decision, combat, outcome resolution).
package session

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/waypointlab/pursuit/balance"
	"github.com/waypointlab/pursuit/builder"
	"github.com/waypointlab/pursuit/core"
	"github.com/waypointlab/pursuit/policy"
	"github.com/waypointlab/pursuit/pursuer"
)

// Session owns Graph, Pursuer, Runner, combat HP counters, elapsed time,
// and Outcome (spec.md §3/§4.6). It is the single mutable object the
// external port drives.
type Session struct {
	ID     uuid.UUID
	Config Config
	Policy policy.Policy

	Graph   *core.Graph
	Pursuer *pursuer.Controller
	Runner  *Runner

	RunnerHP  int
	PursuerHP int

	ElapsedMS int64
	Outcome   Outcome

	started bool
	paused  bool

	hasContact    bool
	lastContactMS int64
}

// New returns an un-started Session with cfg (or DefaultConfig() if no
// options are given).
func New(opts ...Option) *Session {
	return &Session{ID: uuid.New(), Config: newConfig(opts...), Outcome: Outcome{Kind: InProgress}}
}

// Intent is the inbound per-Tick runner action (spec.md §4.7's Tick/
// RunnerClick inbound events, folded together since the Session applies
// them in a fixed per-Tick order).
type Intent struct {
	HasClick bool
	ClickAt  core.NodeID
}

// Start builds the graph, balances the landscape, and spawns Pursuer and
// Runner (spec.md §4.6's Start(policy, seed) transition).
func (s *Session) Start(p policy.Policy, seed int64) error {
	if s.started {
		return ErrAlreadyStarted
	}

	g, err := builder.BuildGraph(
		builder.WithNodeCount(s.Config.NodeCount),
		builder.WithLeafRange(builder.IntRange{Min: s.Config.LeafRange.Min, Max: s.Config.LeafRange.Max}),
		builder.WithEdgeWeightRange(builder.FloatRange{Min: s.Config.EdgeWeightRange.Min, Max: s.Config.EdgeWeightRange.Max}),
		builder.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	result, err := balance.Plan(g, p, rng, s.Config.MinSpawnDistance)
	if err != nil {
		return err
	}

	var pursuerOpts []pursuer.Option
	if ms, ok := s.Config.CadenceOverridesMS[p]; ok {
		pursuerOpts = append(pursuerOpts, pursuer.WithCadenceMS(ms))
	}

	s.Policy = p
	s.Graph = g
	s.Pursuer = pursuer.New(g, p, result.PursuerSpawn, pursuerOpts...)
	s.Runner = newRunner(result.RunnerSpawn)
	s.RunnerHP = s.Config.RunnerHP
	s.PursuerHP = s.Config.PursuerHP
	s.ElapsedMS = 0
	s.Outcome = Outcome{Kind: InProgress}
	s.started = true
	s.paused = false
	s.hasContact = false

	return nil
}

// Pause suspends time advancement; only hover/tooltip-style reads remain
// live (spec.md §4.6 step 1).
func (s *Session) Pause() error {
	if !s.started || s.Outcome.Kind != InProgress {
		return ErrNotInProgress
	}
	s.paused = true
	return nil
}

// Resume un-pauses the Session. Per spec.md §5, paused duration is never
// backfilled into ElapsedMS — cadence timers do not burst on resume.
func (s *Session) Resume() error {
	if !s.started || s.Outcome.Kind != InProgress {
		return ErrNotInProgress
	}
	s.paused = false
	return nil
}

// Paused reports whether the Session is currently paused.
func (s *Session) Paused() bool { return s.paused }

// TickReport summarizes what happened during one Tick, so a caller (the
// port package, or a direct embedder) can decide which outbound events to
// emit without re-deriving them from before/after Session snapshots.
type TickReport struct {
	RunnerMoved     bool
	PursuerDecided  bool
	PursuerDecision policy.Decision
	CombatHit       bool
	OutcomeChanged  bool
}

// Tick advances the Session by one step (spec.md §4.6). nowMS is the
// caller's monotonic session clock (matching Pursuer cadence comparisons);
// dtMS is added to ElapsedMS unless paused.
func (s *Session) Tick(nowMS, dtMS int64, intent Intent) TickReport {
	if !s.started || s.Outcome.Kind != InProgress {
		return TickReport{}
	}
	if s.paused {
		return TickReport{} // step 1: pass-through only, no time advance, no decisions
	}
	s.ElapsedMS += dtMS
	prevOutcome := s.Outcome

	// Step 2: apply runner intent, then advance one logical hop.
	if intent.HasClick {
		s.Runner.applyClick(s.Graph, intent.ClickAt, s.Config.QueueDepth)
	}
	runnerMoved := s.Runner.advance()

	// Step 3/4: pursuer re-evaluation and cadence-gated decision.
	prevPursuerNode := s.Pursuer.Current
	decided, decision := s.Pursuer.Tick(s.Graph, nowMS, true, s.Runner.Current, runnerMoved)
	if decided && decision.IsStep() && !s.Graph.HasEdge(prevPursuerNode, decision.Step) {
		log.WithFields(map[string]interface{}{
			"from": prevPursuerNode,
			"to":   decision.Step,
		}).Error("policy kernel returned a non-neighbour; aborting session")
		s.Outcome = Outcome{Kind: Defeat}
		return TickReport{RunnerMoved: runnerMoved, OutcomeChanged: true}
	}

	// Step 5: combat.
	combatHit := false
	if s.Pursuer.Current == s.Runner.Current {
		onCooldown := s.hasContact && nowMS-s.lastContactMS < s.Config.ContactCooldownMS
		if !onCooldown {
			s.RunnerHP -= s.Config.ContactDamage
			s.PursuerHP -= s.Config.ContactDamage
			s.hasContact = true
			s.lastContactMS = nowMS
			combatHit = true
		}
	}

	// Step 6: resolution.
	switch {
	case s.RunnerHP <= 0:
		s.Outcome = Outcome{Kind: Defeat}
	case s.PursuerHP <= 0:
		s.Outcome = Outcome{Kind: Victory, Reason: policy.CombatKO}
	case s.Pursuer.Stuck:
		s.Outcome = Outcome{Kind: Victory, Reason: s.Pursuer.StuckReason}
	}

	return TickReport{
		RunnerMoved:     runnerMoved,
		PursuerDecided:  decided,
		PursuerDecision: decision,
		CombatHit:       combatHit,
		OutcomeChanged:  s.Outcome != prevOutcome,
	}
}
