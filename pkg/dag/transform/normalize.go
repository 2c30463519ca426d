package transform

import "github.com/matzehuels/injectgraph/pkg/dag"

// Layer prepares g for rendering by assigning ranks and then rows.
// The first failure is returned and later steps are skipped, so a cyclic
// graph never carries a partial ranking.
func Layer(g *dag.DAG) error {
	if err := AssignRanks(g); err != nil {
		return err
	}
	return AssignLayers(g)
}
