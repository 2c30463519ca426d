package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/injectgraph/pkg/dag"
)

var nodeKinds = map[string]dag.NodeKind{
	"":          dag.NodeKindClass,
	"class":     dag.NodeKindClass,
	"interface": dag.NodeKindInterface,
}

var edgeKinds = map[string]dag.EdgeKind{
	"":            dag.EdgeOrdinary,
	"ordinary":    dag.EdgeOrdinary,
	"inheritance": dag.EdgeInheritance,
}

// ToDAG rebuilds a graph from its serialized form. It fails on unknown
// kinds, duplicate nodes, dangling edges and cycles.
func (data Graph) ToDAG() (*dag.DAG, error) {
	g := dag.New(normalize(data.Meta))
	for _, n := range data.Nodes {
		kind, ok := nodeKinds[n.Kind]
		if !ok {
			return nil, fmt.Errorf("node %s: unknown kind %q", n.ID, n.Kind)
		}
		nd := dag.Node{ID: n.ID, Kind: kind, Rank: n.Rank, Row: n.Row, Meta: normalize(n.Meta)}
		if err := g.AddNode(nd); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		kind, ok := edgeKinds[e.Kind]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: unknown kind %q", e.From, e.To, e.Kind)
		}
		if err := g.AddEdge(dag.Edge{From: e.From, To: e.To, Kind: kind, Meta: normalize(e.Meta)}); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadJSON decodes a JSON graph from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dag.DAG, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.ToDAG()
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
func ImportJSON(path string) (*dag.DAG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// normalize turns decoded string arrays back into []string, the type the
// analysis stores for provenance and annotation lists.
func normalize(m dag.Metadata) dag.Metadata {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case []any:
		strs := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return v
			}
			strs = append(strs, s)
		}
		return strs
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeValue(e)
		}
		return t
	}
	return v
}
