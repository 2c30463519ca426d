// Package dag provides the dependency graph produced by an injectgraph run.
//
// # Overview
//
// Nodes are project types (classes and interfaces). A directed edge A→B
// means "A depends on B". Every edge carries an [EdgeKind]: ordinary edges
// come from injection, import and scan idioms, inheritance edges from
// extends/implements clauses. Edges are deduplicated on (From, To, Kind), so
// the same pair may be connected once per kind.
//
// # Basic Usage
//
//	g := dag.New(nil)
//	_ = g.AddNode(dag.Node{ID: "OrderService"})
//	_ = g.AddNode(dag.Node{ID: "OrderRepository", Kind: dag.NodeKindInterface})
//	_ = g.AddEdge(dag.Edge{From: "OrderService", To: "OrderRepository"})
//
// [DAG.EnsureNode] adds a node only when it is missing, which is how edge
// targets that were never analyzed as sources are materialized.
//
// # Ranks and Rows
//
// [Node.Rank] is the node's index in a topological order and [Node.Row] its
// layer. Both are assigned by the [transform] subpackage. A graph with a cycle
// has no topological order; layering reports it instead of guessing.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. The analysis pipeline builds
// one graph per run on a single goroutine and hands it on read-only.
//
// [transform]: github.com/matzehuels/injectgraph/pkg/dag/transform
package dag
