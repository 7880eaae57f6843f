package core_test

import (
	"errors"
	"testing"

	"github.com/waypointlab/pursuit/core"
)

func smallGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := core.NodeID(0); i < 4; i++ {
		if err := g.AddNode(i, float64(i), 0, ""); err != nil {
			t.Fatalf("AddNode(%d): %v", i, err)
		}
	}
	// 0-1-2-3 path plus a 0-2 chord.
	mustEdge(t, g, 0, 1, 3)
	mustEdge(t, g, 1, 2, 4)
	mustEdge(t, g, 2, 3, 5)
	mustEdge(t, g, 0, 2, 7)
	return g
}

func mustEdge(t *testing.T, g *core.Graph, a, b core.NodeID, w float64) {
	t.Helper()
	if err := g.AddEdge(a, b, w); err != nil {
		t.Fatalf("AddEdge(%d,%d,%g): %v", a, b, w, err)
	}
}

func TestAddNode_DuplicateRejected(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddNode(0, 0, 0, "root"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddNode(0, 1, 1, "dup"); !errors.Is(err, core.ErrDuplicateNode) {
		t.Errorf("want ErrDuplicateNode, got %v", err)
	}
}

func TestAddEdge_MirroredAndValidated(t *testing.T) {
	g := smallGraph(t)

	w, ok := g.Weight(1, 0)
	if !ok || w != 3 {
		t.Errorf("Weight(1,0) = %v,%v; want 3,true", w, ok)
	}

	if err := g.AddEdge(0, 0, 5); !errors.Is(err, core.ErrSelfEdge) {
		t.Errorf("self-edge: want ErrSelfEdge, got %v", err)
	}
	if err := g.AddEdge(0, 1, 0); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("zero weight: want ErrBadWeight, got %v", err)
	}
	if err := g.AddEdge(0, 1, 11); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("overweight: want ErrBadWeight, got %v", err)
	}
	if err := g.AddEdge(0, 1, 2); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("duplicate: want ErrDuplicateEdge, got %v", err)
	}
	if err := g.AddEdge(0, 99, 2); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("missing node: want ErrNodeNotFound, got %v", err)
	}
}

func TestIsLeafAndDegree(t *testing.T) {
	g := smallGraph(t)
	if g.IsLeaf(3) == false {
		t.Errorf("node 3 should be a leaf (degree 1)")
	}
	if g.IsLeaf(0) {
		t.Errorf("node 0 has degree 2, should not be a leaf")
	}
	if d := g.Degree(0); d != 2 {
		t.Errorf("Degree(0) = %d, want 2", d)
	}
	if g.IsLeaf(99) {
		t.Errorf("missing node must not be reported as a leaf")
	}
}

func TestFreeze_RejectsMutation(t *testing.T) {
	g := smallGraph(t)
	for _, id := range g.NodeIDs() {
		_ = g.SetHeuristic(id, 50)
		_ = g.SetPathCost(id, 10)
	}
	g.Freeze()

	if err := g.AddNode(9, 0, 0, ""); !errors.Is(err, core.ErrGraphFrozen) {
		t.Errorf("AddNode after freeze: want ErrGraphFrozen, got %v", err)
	}
	if err := g.AddEdge(0, 3, 2); !errors.Is(err, core.ErrGraphFrozen) {
		t.Errorf("AddEdge after freeze: want ErrGraphFrozen, got %v", err)
	}
	if err := g.SetHeuristic(0, 1); !errors.Is(err, core.ErrGraphFrozen) {
		t.Errorf("SetHeuristic after freeze: want ErrGraphFrozen, got %v", err)
	}
}

func TestValidate_ConnectivityAndLeafBounds(t *testing.T) {
	g := smallGraph(t)
	if err := g.Validate(0, 4); err != nil {
		t.Errorf("unexpected Validate error: %v", err)
	}
	if err := g.Validate(3, 4); err == nil {
		t.Errorf("expected leaf-count violation for [3,4] (only 1 leaf present)")
	}

	disconnected := core.NewGraph()
	_ = disconnected.AddNode(0, 0, 0, "")
	_ = disconnected.AddNode(1, 1, 1, "")
	if disconnected.Connected() {
		t.Errorf("two isolated nodes must not be reported connected")
	}
}
