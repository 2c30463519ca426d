package resolve

import (
	"slices"
	"testing"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/extract"
)

type known map[string]bool

func (k known) Known(name string) bool { return k[name] }

func ord(name, via string) extract.Candidate {
	return extract.Candidate{Name: name, Kind: dag.EdgeOrdinary, Via: via}
}

func TestResolve(t *testing.T) {
	reg := known{"OrderService": true, "OrderRepository": true, "Order": true, "BaseService": true}

	cands := []extract.Candidate{
		ord("OrderRepository", extract.NameRequiredArgs),
		ord("OrderRepository", extract.NameConstructorParams),
		ord("Clock", extract.NameAutowiredField),
		ord("com.shop", extract.NameComponentScan),
		ord("", extract.NameAllArgs),
		{Name: "BaseService", Kind: dag.EdgeInheritance, Via: extract.NameInheritance},
		{Name: "Order", Kind: dag.EdgeOrdinary, Reverse: true, Via: extract.NameRepositoryEntity},
	}

	set := Resolve(reg, "OrderService", cands, Options{})

	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3: %+v", set.Len(), set.Edges())
	}
	if set.Unresolved != 3 {
		t.Errorf("Unresolved = %d, want 3", set.Unresolved)
	}
	if !set.Has("OrderService", "OrderRepository", dag.EdgeOrdinary) {
		t.Error("missing OrderService -> OrderRepository")
	}
	if !set.Has("OrderService", "BaseService", dag.EdgeInheritance) {
		t.Error("missing inheritance edge")
	}
	if set.Has("OrderService", "BaseService", dag.EdgeOrdinary) {
		t.Error("inheritance must not produce an ordinary edge")
	}
	if !set.Has("Order", "OrderService", dag.EdgeOrdinary) {
		t.Error("reversed candidate should produce Order -> OrderService")
	}

	e := set.Edges()[0]
	want := []string{extract.NameConstructorParams, extract.NameRequiredArgs}
	if !slices.Equal(e.Via, want) {
		t.Errorf("Via = %v, want %v", e.Via, want)
	}

	if got := set.Targets(dag.EdgeOrdinary); !slices.Equal(got, []string{"OrderRepository"}) {
		t.Errorf("Targets(ordinary) = %v", got)
	}
}

func TestResolveSelfEdges(t *testing.T) {
	reg := known{"TreeNode": true}
	cands := []extract.Candidate{ord("TreeNode", extract.NameAllArgs)}

	dropped := Resolve(reg, "TreeNode", cands, Options{})
	if dropped.Len() != 0 || len(dropped.SelfEdges) != 1 {
		t.Errorf("default: Len() = %d, SelfEdges = %v", dropped.Len(), dropped.SelfEdges)
	}

	kept := Resolve(reg, "TreeNode", cands, Options{SelfEdges: true})
	if !kept.Has("TreeNode", "TreeNode", dag.EdgeOrdinary) {
		t.Error("SelfEdges option should keep TreeNode -> TreeNode")
	}
}

func TestResolveTargetsAreKnown(t *testing.T) {
	reg := known{"A": true, "B": true}
	cands := []extract.Candidate{ord("B", "x"), ord("C", "x"), ord("java.util.List", "x"), ord("A", "x")}

	set := Resolve(reg, "A", cands, Options{})
	for _, e := range set.Edges() {
		if !reg.Known(e.From) || !reg.Known(e.To) {
			t.Errorf("edge %s -> %s has an unknown endpoint", e.From, e.To)
		}
	}
}
