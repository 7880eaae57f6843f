// Package pursuer implements the Pursuer controller (spec.md §4.5): the
// persistent VisitedSets, stuck latch, move cadence, and the decision-
// request gate that decides when the session should invoke the policy
// kernel. The controller owns no algorithmic logic itself — that lives in
// policy.NextMove — it owns timing and the "conditional tracking" predicate
// for the no-backtrack family.
package pursuer
