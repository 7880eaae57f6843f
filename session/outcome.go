package session

import "github.com/waypointlab/pursuit/policy"

// OutcomeKind is the Session's terminal-state tag (spec.md §3/§4.6).
type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Victory
	Defeat
)

// String matches the outbound payload's "outcome" field (spec.md §6).
func (k OutcomeKind) String() string {
	switch k {
	case InProgress:
		return "in_progress"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Outcome is the Session's terminal state. Reason is only meaningful when
// Kind == Victory; the outbound payload emits null for Defeat (spec.md §6).
type Outcome struct {
	Kind   OutcomeKind
	Reason policy.StuckReason
}
