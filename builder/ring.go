// ring.go — the construction pipeline's first three steps: jittered-ring
// layout, k-nearest-neighbour wiring, and BFS connectivity repair, per
// spec.md §4.2 steps 1-3. Step 4, leaf-count repair, lives in leaves.go.
package builder

import (
	"math"
	"math/rand"
	"sort"

	"github.com/waypointlab/pursuit/core"
)

// layout places cfg.nodeCount node centres on a jittered ring:
// angle_i = 2π·i/n, r_i ∈ [ringRadiusMin,ringRadiusMax], plus 2-D jitter.
func layout(g *core.Graph, cfg builderConfig, rng *rand.Rand) error {
	n := cfg.nodeCount
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		radius := cfg.ringRadiusMin + rng.Float64()*(cfg.ringRadiusMax-cfg.ringRadiusMin)
		x := radius*math.Cos(angle) + (rng.Float64()*2-1)*cfg.jitter
		y := radius*math.Sin(angle) + (rng.Float64()*2-1)*cfg.jitter
		if err := g.AddNode(core.NodeID(i), x, y, nodeLabel(i)); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(i int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if i < len(alphabet) {
		return string(alphabet[i])
	}
	return string(alphabet[i%len(alphabet)]) + itoa(i/len(alphabet))
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

// wireKNN connects every node to k (sampled per-node within cfg.kRange)
// nearest neighbours, mirroring each edge with a random weight in
// cfg.edgeWeightRange. Already-present edges (added while wiring an earlier
// node) are skipped rather than duplicated.
func wireKNN(g *core.Graph, cfg builderConfig, rng *rand.Rand) error {
	ids := g.NodeIDs()
	for _, a := range ids {
		k := cfg.kRange.Min
		if span := cfg.kRange.Max - cfg.kRange.Min; span > 0 {
			k += rng.Intn(span + 1)
		}

		byDistance := make([]core.NodeID, 0, len(ids)-1)
		for _, b := range ids {
			if b != a {
				byDistance = append(byDistance, b)
			}
		}
		sort.Slice(byDistance, func(i, j int) bool {
			return g.Distance(a, byDistance[i]) < g.Distance(a, byDistance[j])
		})

		connected := 0
		for _, b := range byDistance {
			if connected >= k {
				break
			}
			if g.HasEdge(a, b) {
				connected++ // already wired from b's own pass; counts toward a's k
				continue
			}
			w := randWeight(rng, cfg.edgeWeightRange)
			if err := g.AddEdge(a, b, w); err != nil {
				continue // duplicate/self races are impossible here, but stay defensive
			}
			connected++
		}
	}
	return nil
}

func randWeight(rng *rand.Rand, r FloatRange) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// repairConnectivity adds the shortest cross-component edge, repeatedly,
// until the graph is fully connected (spec.md §4.2 step 3).
func repairConnectivity(g *core.Graph, cfg builderConfig, rng *rand.Rand) {
	for !g.Connected() {
		comps := components(g)
		if len(comps) < 2 {
			return
		}
		// Connect the shortest edge between the first component and every
		// other; merging one pair per pass keeps this O(components) passes.
		a := comps[0]
		var bestB core.NodeID
		bestU, bestDist := core.NodeID(-1), math.Inf(1)
		for _, comp := range comps[1:] {
			for _, u := range a {
				for _, v := range comp {
					if d := g.Distance(u, v); d < bestDist {
						bestDist, bestU, bestB = d, u, v
					}
				}
			}
		}
		if bestU < 0 {
			return
		}
		_ = g.AddEdge(bestU, bestB, randWeight(rng, cfg.edgeWeightRange))
	}
}

// components returns the graph's connected components as node-id groups.
func components(g *core.Graph) [][]core.NodeID {
	seen := make(map[core.NodeID]bool)
	var comps [][]core.NodeID
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		reach := g.ReachableFrom(id)
		group := make([]core.NodeID, 0, len(reach))
		for n := range reach {
			group = append(group, n)
			seen[n] = true
		}
		sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })
		comps = append(comps, group)
	}
	return comps
}
