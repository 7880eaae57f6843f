// apply.go — drives a session.Session from Inbound events and projects the
// resulting state changes into Outbound events (spec.md §4.7).
package port

import (
	"github.com/waypointlab/pursuit/core"
	"github.com/waypointlab/pursuit/policy"
	"github.com/waypointlab/pursuit/session"
)

// Apply dispatches in to s and returns every Outbound event the Session
// produced. Inbound events never block; a malformed RunnerClick (non-
// adjacent node) is silently absorbed by session.Runner.applyClick and
// yields no RunnerMoved event that tick (spec.md §7 TickError::BadIntent).
func Apply(s *session.Session, in Inbound) []Outbound {
	switch in.Kind {
	case Start:
		if err := s.Start(in.Policy, in.Seed); err != nil {
			return nil
		}
		return []Outbound{builtEvent(s)}

	case Pause:
		_ = s.Pause()
		return nil

	case Resume:
		_ = s.Resume()
		return nil

	case RunnerClick:
		return tick(s, session.Intent{HasClick: true, ClickAt: in.Node}, 0, 0)

	case Tick:
		return tick(s, session.Intent{}, in.NowMS, in.DtMS)

	case Hover:
		return []Outbound{hoverEvent(s, in.Node)}

	case Quit:
		*s = session.Session{}
		return nil

	default:
		return nil
	}
}

func builtEvent(s *session.Session) Outbound {
	stats := s.Graph.Stats()
	return Outbound{
		Kind: Built,
		BuiltPayload: BuiltPayload{
			NodeCount: stats.NodeCount,
			EdgeCount: stats.EdgeCount,
			LeafCount: stats.LeafCount,
		},
	}
}

func tick(s *session.Session, intent session.Intent, nowMS, dtMS int64) []Outbound {
	report := s.Tick(nowMS, dtMS, intent)

	var out []Outbound
	if report.RunnerMoved {
		out = append(out, Outbound{
			Kind: RunnerMoved,
			RunnerMovedPay: RunnerMovedPayload{
				To:    s.Runner.Current,
				Queue: append([]core.NodeID(nil), s.Runner.Queue...),
			},
		})
	}
	if report.PursuerDecided && report.PursuerDecision.IsStep() {
		out = append(out, Outbound{
			Kind: PursuerMoved,
			PursuerMovedPay: PursuerMovedPayload{
				To:            s.Pursuer.Current,
				VisitedSample: visitedSample(s.Pursuer.Visited.VisitedNodes),
			},
		})
	}
	if report.OutcomeChanged {
		out = append(out, outcomeEvent(s))
	}
	return out
}

func outcomeEvent(s *session.Session) Outbound {
	payload := OutcomePayload{
		ElapsedMS:       s.ElapsedMS,
		RunnerNodeID:    s.Runner.Current,
		RunnerHP:        s.RunnerHP,
		RunnerVisited:   s.Runner.NodesVisited(),
		PursuerNodeID:   s.Pursuer.Current,
		PursuerHP:       s.PursuerHP,
		PursuerExpanded: len(s.Pursuer.Visited.VisitedNodes),
		PursuerPolicy:   s.Policy.String(),
	}
	if s.Outcome.Kind == session.Victory {
		payload.Outcome = "victory"
		payload.Reason = s.Outcome.Reason.String()
		payload.HasReason = true
	} else {
		payload.Outcome = "defeat"
	}
	return Outbound{Kind: OutcomeEvent, OutcomePayload: payload}
}

func hoverEvent(s *session.Session, id core.NodeID) Outbound {
	payload := HeuristicPayload{
		ID:         id,
		Label:      s.Graph.Label(id),
		Neighbours: s.Graph.Degree(id),
		Visited:    s.Pursuer.Visited.VisitedNodes[id],
	}
	switch s.Policy {
	case policy.GreedyMin, policy.GreedyMax:
		payload.H = s.Graph.Heuristic(id)
		payload.HasH = true
	case policy.AStarMin, policy.AStarMax:
		payload.H = s.Graph.Heuristic(id)
		payload.HasH = true
		payload.PathCost = s.Graph.PathCost(id)
		payload.HasPCost = true
	}
	return Outbound{Kind: HeuristicForNode, HeuristicPayload: payload}
}
