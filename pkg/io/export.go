package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/injectgraph/pkg/dag"
)

// Graph is the serialized form of a dependency graph.
type Graph struct {
	Meta  dag.Metadata `json:"meta,omitempty" bson:"meta,omitempty"`
	Nodes []Node       `json:"nodes" bson:"nodes"`
	Edges []Edge       `json:"edges" bson:"edges"`
}

// Node is a serialized graph node.
type Node struct {
	ID   string       `json:"id" bson:"id"`
	Kind string       `json:"kind,omitempty" bson:"kind,omitempty"`
	Rank int          `json:"rank" bson:"rank"`
	Row  int          `json:"row" bson:"row"`
	Meta dag.Metadata `json:"meta,omitempty" bson:"meta,omitempty"`
}

// Edge is a serialized graph edge.
type Edge struct {
	From string       `json:"from" bson:"from"`
	To   string       `json:"to" bson:"to"`
	Kind string       `json:"kind,omitempty" bson:"kind,omitempty"`
	Meta dag.Metadata `json:"meta,omitempty" bson:"meta,omitempty"`
}

// FromDAG converts g to its serialized form in deterministic order.
func FromDAG(g *dag.DAG) Graph {
	nodes := g.SortedNodes()
	edges := g.SortedEdges()
	out := Graph{
		Meta:  g.Meta(),
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = Node{ID: n.ID, Kind: n.Kind.String(), Rank: n.Rank, Row: n.Row, Meta: nonEmpty(n.Meta)}
	}
	for i, e := range edges {
		out.Edges[i] = Edge{From: e.From, To: e.To, Kind: e.Kind.String(), Meta: nonEmpty(e.Meta)}
	}
	if len(out.Meta) == 0 {
		out.Meta = nil
	}
	return out
}

func nonEmpty(m dag.Metadata) dag.Metadata {
	if len(m) == 0 {
		return nil
	}
	return m
}

// WriteJSON encodes g as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *dag.DAG, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDAG(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *dag.DAG, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
