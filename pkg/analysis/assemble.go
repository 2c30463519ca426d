package analysis

import (
	"slices"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/extract"
	"github.com/matzehuels/injectgraph/pkg/registry"
	"github.com/matzehuels/injectgraph/pkg/resolve"
)

// Graph and node metadata keys.
const (
	MetaRoot           = "root"
	MetaRunID          = "run_id"
	MetaComponentScans = "component_scans"

	MetaPath        = "path"
	MetaAnnotations = "annotations"
	MetaVia         = "via"
)

// Assemble builds the dependency graph from the registered classes and
// their resolved edge sets. Every class becomes a node, including classes
// without edges. Edge endpoints missing from classes are added as plain
// class nodes so no edge dangles.
func Assemble(classes []*registry.SourceUnit, edges []*resolve.EdgeSet, meta dag.Metadata) (*dag.DAG, error) {
	g := dag.New(meta)

	for _, u := range classes {
		_, err := g.EnsureNode(dag.Node{
			ID:   u.Name,
			Kind: u.Kind,
			Meta: dag.Metadata{
				MetaPath:        u.Rel,
				MetaAnnotations: sortedKeys(extract.AnnotationSet(u.Decl)),
			},
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add node %q", u.Name)
		}
	}

	for _, set := range edges {
		if set == nil {
			continue
		}
		for _, e := range set.Edges() {
			for _, id := range []string{e.From, e.To} {
				if _, err := g.EnsureNode(dag.Node{ID: id}); err != nil {
					return nil, errors.Wrap(errors.ErrCodeInternal, err, "add node %q", id)
				}
			}
			if err := g.AddEdge(dag.Edge{
				From: e.From,
				To:   e.To,
				Kind: e.Kind,
				Meta: dag.Metadata{MetaVia: mergeVia(g, e)},
			}); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "add edge %s -> %s", e.From, e.To)
			}
		}
	}
	return g, nil
}

// mergeVia combines the provenance of e with that of an identical edge
// already in g. Reversed repository edges can be proposed by two classes.
func mergeVia(g *dag.DAG, e resolve.Edge) []string {
	existing, ok := g.Edge(e.Key())
	if !ok {
		return e.Via
	}
	prev, _ := existing.Meta[MetaVia].([]string)
	out := append([]string(nil), prev...)
	for _, v := range e.Via {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}
