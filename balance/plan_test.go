package balance_test

import (
	"math/rand"
	"testing"

	"github.com/waypointlab/pursuit/balance"
	"github.com/waypointlab/pursuit/builder"
	"github.com/waypointlab/pursuit/policy"
)

// TestPlan_GreedyMinSatisfiesPostCondition asserts P7: after Plan, the
// pursuer's spawn has a neighbour with strictly smaller h.
func TestPlan_GreedyMinSatisfiesPostCondition(t *testing.T) {
	g, err := builder.BuildGraph(builder.WithSeed(42))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	res, err := balance.Plan(g, policy.GreedyMin, rng, 400)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	spawnH := g.Heuristic(res.PursuerSpawn)
	found := false
	for _, nb := range g.Neighbours(res.PursuerSpawn) {
		if g.Heuristic(nb.To) < spawnH {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no neighbour of pursuer spawn has smaller h than %v", spawnH)
	}
}

// TestPlan_GreedyMaxSatisfiesPostCondition mirrors the Min case for Max.
func TestPlan_GreedyMaxSatisfiesPostCondition(t *testing.T) {
	g, err := builder.BuildGraph(builder.WithSeed(7))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	res, err := balance.Plan(g, policy.GreedyMax, rng, 400)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	spawnH := g.Heuristic(res.PursuerSpawn)
	found := false
	for _, nb := range g.Neighbours(res.PursuerSpawn) {
		if g.Heuristic(nb.To) > spawnH {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no neighbour of pursuer spawn has larger h than %v", spawnH)
	}
}

// TestPlan_BFSLeavesLandscapeAtZero asserts BFS/DFS perform no mutation.
func TestPlan_BFSLeavesLandscapeAtZero(t *testing.T) {
	g, err := builder.BuildGraph(builder.WithSeed(1))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	if _, err := balance.Plan(g, policy.BFS, rng, 400); err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for _, id := range g.NodeIDs() {
		if g.Heuristic(id) != 0 || g.PathCost(id) != 0 {
			t.Fatalf("node %d landscape mutated for BFS: h=%v pc=%v", id, g.Heuristic(id), g.PathCost(id))
		}
	}
}

// TestPlan_FreezesGraph asserts Plan freezes the graph so no further
// mutation is possible afterward.
func TestPlan_FreezesGraph(t *testing.T) {
	g, err := builder.BuildGraph(builder.WithSeed(9))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	rng := rand.New(rand.NewSource(9))
	if _, err := balance.Plan(g, policy.UCS, rng, 400); err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !g.Frozen() {
		t.Fatal("Plan did not freeze the graph")
	}
}

// TestPlan_SpawnsAreDistinctAndFarApartWhenPossible asserts the spawn rule:
// distance >= 400 when such a pair exists.
func TestPlan_SpawnsAreDistinctAndFarApartWhenPossible(t *testing.T) {
	g, err := builder.BuildGraph(builder.WithSeed(3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	rng := rand.New(rand.NewSource(3))
	res, err := balance.Plan(g, policy.DFS, rng, 400)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if res.PursuerSpawn == res.RunnerSpawn {
		t.Fatal("pursuer and runner spawn must be distinct")
	}

	farPairExists := false
	ids := g.NodeIDs()
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if g.Distance(ids[i], ids[j]) >= 400 {
				farPairExists = true
			}
		}
	}
	if d := g.Distance(res.PursuerSpawn, res.RunnerSpawn); farPairExists && d < 400 {
		t.Fatalf("spawn distance = %v, want >= 400 since such a pair exists", d)
	}
}

// TestPlan_AStarPathCostIsCumulativeEdgeWeight asserts spec.md §3's
// PathCostLandscape definition: on the seed path, path_cost(p_i) is the
// running sum of real edge weights from the pursuer spawn, not an
// independent random draw (UCS's convention).
func TestPlan_AStarPathCostIsCumulativeEdgeWeight(t *testing.T) {
	g, err := builder.BuildGraph(builder.WithSeed(5))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	rng := rand.New(rand.NewSource(5))
	res, err := balance.Plan(g, policy.AStarMin, rng, 400)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if g.PathCost(res.PursuerSpawn) != 0 {
		t.Fatalf("path_cost(pursuer spawn) = %v, want 0", g.PathCost(res.PursuerSpawn))
	}

	cumulative := 0.0
	for i := 1; i < len(res.SeedPath); i++ {
		w, ok := g.Weight(res.SeedPath[i-1], res.SeedPath[i])
		if !ok {
			t.Fatalf("seed path edge %d-%d missing weight", res.SeedPath[i-1], res.SeedPath[i])
		}
		cumulative += w
		got := g.PathCost(res.SeedPath[i])
		if got != cumulative {
			t.Fatalf("path_cost(%d) = %v, want cumulative sum %v", res.SeedPath[i], got, cumulative)
		}
	}
}
