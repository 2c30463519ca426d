package transform

import (
	"slices"

	"github.com/matzehuels/injectgraph/pkg/dag"
)

// TopologicalOrder returns the node IDs of g in an order consistent with
// every edge: for each edge A→B, A comes before B. Dependents therefore
// precede their dependencies, matching a top-down layout.
//
// Among nodes that are ready at the same time the lexicographically smallest
// ID is taken first, so the order is a pure function of the node and edge
// sets.
//
// If g contains a cycle, TopologicalOrder returns a [*CycleError] naming the
// participating nodes and no order.
func TopologicalOrder(g *dag.DAG) ([]string, error) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	var ready []string

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			ready = append(ready, n.ID)
		}
	}
	slices.Sort(ready)

	order := make([]string, 0, len(nodes))
	for len(ready) > 0 {
		curr := ready[0]
		ready = ready[1:]
		order = append(order, curr)

		for _, child := range g.Children(curr) {
			inDegree[child]--
			if inDegree[child] == 0 {
				i, _ := slices.BinarySearch(ready, child)
				ready = slices.Insert(ready, i, child)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, &CycleError{Cycles: FindCycles(g)}
	}
	return order, nil
}

// AssignRanks sets each node's Rank to its index in [TopologicalOrder].
// On a cyclic graph it returns the [*CycleError] and leaves every rank
// untouched.
func AssignRanks(g *dag.DAG) error {
	order, err := TopologicalOrder(g)
	if err != nil {
		return err
	}
	ranks := make(map[string]int, len(order))
	for i, id := range order {
		ranks[id] = i
	}
	g.SetRanks(ranks)
	return nil
}

// AssignLayers assigns nodes to horizontal rows based on their depth in the
// graph, using a longest-path pass over the topological order. Each node is
// placed one row below the deepest of its parents, so:
//   - Source nodes (no incoming edges) are at row 0
//   - All parents are strictly above their children
//
// Existing row assignments are overwritten. On a cyclic graph AssignLayers
// returns the [*CycleError] and leaves every row untouched.
//
// Time complexity is O(V + E).
func AssignLayers(g *dag.DAG) error {
	order, err := TopologicalOrder(g)
	if err != nil {
		return err
	}
	rows := make(map[string]int, len(order))
	for _, curr := range order {
		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
		}
	}
	g.SetRows(rows)
	return nil
}
