package balance

import "github.com/waypointlab/pursuit/core"

// chooseSpawns picks two distinct nodes whose world distance is at least
// minDistance; if no such pair exists, it falls back to the single pair
// with the maximum distance (spec.md §4.3 spawn rule, §7
// BalanceError::SpawnTooClose disposition: "pick max-distance pair,
// proceed" — never an error).
func chooseSpawns(g *core.Graph, minDistance float64) (pursuer, runner core.NodeID) {
	ids := g.NodeIDs()

	bestA, bestB := ids[0], ids[1]
	bestDist := g.Distance(bestA, bestB)

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			d := g.Distance(ids[i], ids[j])
			if d >= minDistance {
				return ids[i], ids[j]
			}
			if d > bestDist {
				bestA, bestB, bestDist = ids[i], ids[j], d
			}
		}
	}
	return bestA, bestB
}
