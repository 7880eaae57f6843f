package port_test

import (
	"testing"

	"github.com/waypointlab/pursuit/policy"
	"github.com/waypointlab/pursuit/port"
	"github.com/waypointlab/pursuit/session"
)

func TestApply_StartEmitsBuilt(t *testing.T) {
	s := session.New()
	out := port.Apply(s, port.Inbound{Kind: port.Start, Policy: policy.BFS, Seed: 11})
	if len(out) != 1 || out[0].Kind != port.Built {
		t.Fatalf("Start -> %+v, want exactly one Built event", out)
	}
	if out[0].BuiltPayload.NodeCount != 28 {
		t.Fatalf("node count = %d, want 28", out[0].BuiltPayload.NodeCount)
	}
}

func TestApply_TickEmitsOutcomeEvent(t *testing.T) {
	s := session.New()
	port.Apply(s, port.Inbound{Kind: port.Start, Policy: policy.GreedyMin, Seed: 5})

	// Run enough ticks, respecting cadence, for GreedyMin to either plateau
	// (Victory) or reach the stationary runner and win on contact (Defeat);
	// either way the tick that ends the session must emit an Outcome event.
	var sawEvent, sawOutcome bool
	for i := int64(0); i < 120; i++ {
		now := i * 700
		out := port.Apply(s, port.Inbound{Kind: port.Tick, NowMS: now, DtMS: 700})
		if len(out) > 0 {
			sawEvent = true
		}
		for _, ev := range out {
			if ev.Kind == port.OutcomeEvent {
				sawOutcome = true
			}
		}
		if s.Outcome.Kind != session.InProgress {
			break
		}
	}
	if !sawEvent {
		t.Fatal("no outbound events observed across 120 ticks")
	}
	if !sawOutcome {
		t.Fatalf("no Outcome event observed across 120 ticks (outcome = %v)", s.Outcome.Kind)
	}
}

func TestApply_HoverReportsFieldsPerPolicy(t *testing.T) {
	s := session.New()
	port.Apply(s, port.Inbound{Kind: port.Start, Policy: policy.UCS, Seed: 2})
	node := s.Graph.NodeIDs()[0]
	out := port.Apply(s, port.Inbound{Kind: port.Hover, Node: node})
	if len(out) != 1 || out[0].Kind != port.HeuristicForNode {
		t.Fatalf("Hover -> %+v, want exactly one HeuristicForNode event", out)
	}
	if out[0].HeuristicPayload.HasH || out[0].HeuristicPayload.HasPCost {
		t.Fatal("UCS hover payload must not carry h or path_cost")
	}
}
