package pursuer

import "github.com/waypointlab/pursuit/policy"

// CadenceMS returns the default per-policy minimum interval, in
// milliseconds, between pursuer decisions (spec.md §4.5 design values).
func CadenceMS(p policy.Policy) int64 {
	switch p {
	case policy.BFS, policy.DFS:
		return 800
	case policy.UCS, policy.AStarMin, policy.AStarMax:
		return 700
	case policy.GreedyMin, policy.GreedyMax:
		return 600
	default:
		return 800
	}
}
