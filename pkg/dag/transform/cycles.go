package transform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/injectgraph/pkg/dag"
)

// CycleError reports that a graph has no topological order.
// Each entry of Cycles is one strongly connected component that contains a
// cycle, with its member IDs sorted. Components are sorted by first member.
//
// CycleError matches [dag.ErrGraphHasCycle] under errors.Is.
type CycleError struct {
	Cycles [][]string
}

// Error lists every cycle, e.g. "graph contains a cycle: [A B], [C]".
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = "[" + strings.Join(c, " ") + "]"
	}
	return fmt.Sprintf("%s: %s", dag.ErrGraphHasCycle, strings.Join(parts, ", "))
}

// Unwrap returns [dag.ErrGraphHasCycle].
func (e *CycleError) Unwrap() error { return dag.ErrGraphHasCycle }

// Nodes returns every node participating in some cycle, sorted.
func (e *CycleError) Nodes() []string {
	var all []string
	for _, c := range e.Cycles {
		all = append(all, c...)
	}
	slices.Sort(all)
	return all
}

// FindCycles returns the strongly connected components of g that contain a
// cycle: components with more than one node, and single nodes with a
// self-edge. It returns nil for an acyclic graph.
//
// FindCycles uses Tarjan's algorithm and runs in O(V + E). Roots are visited
// in insertion order and each component is sorted, so the result is
// deterministic for a given graph.
func FindCycles(g *dag.DAG) [][]string {
	var (
		index   = 0
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		stack   []string
		cycles  [][]string
	)

	var strongConnect func(id string)
	strongConnect = func(id string) {
		indices[id] = index
		lowlink[id] = index
		index++
		stack = append(stack, id)
		onStack[id] = true

		for _, child := range g.Children(id) {
			if _, seen := indices[child]; !seen {
				strongConnect(child)
				lowlink[id] = min(lowlink[id], lowlink[child])
			} else if onStack[child] {
				lowlink[id] = min(lowlink[id], indices[child])
			}
		}

		if lowlink[id] != indices[id] {
			return
		}
		var component []string
		for {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[top] = false
			component = append(component, top)
			if top == id {
				break
			}
		}
		if len(component) > 1 || slices.Contains(g.Children(id), id) {
			slices.Sort(component)
			cycles = append(cycles, component)
		}
	}

	for _, n := range g.Nodes() {
		if _, seen := indices[n.ID]; !seen {
			strongConnect(n.ID)
		}
	}

	slices.SortFunc(cycles, func(a, b []string) int { return strings.Compare(a[0], b[0]) })
	return cycles
}
