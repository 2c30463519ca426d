package transform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/matzehuels/injectgraph/pkg/dag"
)

func TestTopologicalOrder(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  []string
	}{
		{
			name:  "chain",
			nodes: []string{"c", "b", "a"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "isolated nodes sorted by id",
			nodes: []string{"z", "m", "a"},
			want:  []string{"a", "m", "z"},
		},
		{
			name:  "diamond",
			nodes: []string{"d", "c", "b", "a"},
			edges: [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			want:  []string{"a", "b", "c", "d"},
		},
		{
			name:  "late ready node keeps lexicographic tie-break",
			nodes: []string{"a", "b", "x"},
			edges: [][2]string{{"x", "a"}},
			want:  []string{"b", "x", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.nodes, tt.edges)
			got, err := TopologicalOrder(g)
			if err != nil {
				t.Fatalf("TopologicalOrder() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopologicalOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	g := build(t, []string{"A", "B", "Root"}, [][2]string{{"Root", "A"}, {"A", "B"}, {"B", "A"}})

	order, err := TopologicalOrder(g)
	if order != nil {
		t.Errorf("TopologicalOrder() order = %v, want nil", order)
	}
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("TopologicalOrder() error = %v, want *CycleError", err)
	}
	if want := [][]string{{"A", "B"}}; !reflect.DeepEqual(cycleErr.Cycles, want) {
		t.Errorf("Cycles = %v, want %v", cycleErr.Cycles, want)
	}
}

func TestAssignRanks_ConsistentWithEdges(t *testing.T) {
	g := build(t,
		[]string{"Controller", "Service", "Repo", "Entity", "Util"},
		[][2]string{{"Controller", "Service"}, {"Service", "Repo"}, {"Entity", "Repo"}})

	if err := AssignRanks(g); err != nil {
		t.Fatalf("AssignRanks() error = %v", err)
	}
	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		if from.Rank >= to.Rank {
			t.Errorf("edge %s->%s: rank %d >= %d", e.From, e.To, from.Rank, to.Rank)
		}
	}
	seen := map[int]bool{}
	for _, n := range g.Nodes() {
		if seen[n.Rank] {
			t.Errorf("rank %d assigned twice", n.Rank)
		}
		seen[n.Rank] = true
	}
}

func TestAssignRanks_CycleLeavesRanksUntouched(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"C", "A"}, {"A", "B"}, {"B", "A"}})

	err := AssignRanks(g)
	if !errors.Is(err, dag.ErrGraphHasCycle) {
		t.Fatalf("AssignRanks() error = %v, want ErrGraphHasCycle", err)
	}
	for _, n := range g.Nodes() {
		if n.Rank != 0 {
			t.Errorf("node %s rank = %d, want 0", n.ID, n.Rank)
		}
	}
}

func TestAssignLayers(t *testing.T) {
	g := build(t,
		[]string{"app", "auth", "cache", "db"},
		[][2]string{{"app", "auth"}, {"app", "cache"}, {"app", "db"}, {"auth", "db"}})

	if err := AssignLayers(g); err != nil {
		t.Fatalf("AssignLayers() error = %v", err)
	}

	want := map[string]int{"app": 0, "auth": 1, "cache": 1, "db": 2}
	for id, row := range want {
		n, _ := g.Node(id)
		if n.Row != row {
			t.Errorf("%s.Row = %d, want %d", id, n.Row, row)
		}
	}
	if g.MaxRow() != 2 {
		t.Errorf("MaxRow() = %d, want 2", g.MaxRow())
	}
}

func TestLayer_Cycle(t *testing.T) {
	g := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}, {"B", "A"}})

	var cycleErr *CycleError
	if err := Layer(g); !errors.As(err, &cycleErr) {
		t.Fatalf("Layer() error = %v, want *CycleError", err)
	}
}
