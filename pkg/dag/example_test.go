package dag_test

import (
	"fmt"

	"github.com/matzehuels/injectgraph/pkg/dag"
)

func ExampleDAG_basic() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "OrderService"})
	_ = g.AddNode(dag.Node{ID: "OrderRepository", Kind: dag.NodeKindInterface})
	_ = g.AddEdge(dag.Edge{From: "OrderService", To: "OrderRepository"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Nodes: 2
	// Edges: 1
}

func ExampleDAG_AddEdge_dedup() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "Derived"})
	_ = g.AddNode(dag.Node{ID: "Base"})

	// The same pair once per kind; repeats collapse.
	_ = g.AddEdge(dag.Edge{From: "Derived", To: "Base", Kind: dag.EdgeInheritance})
	_ = g.AddEdge(dag.Edge{From: "Derived", To: "Base", Kind: dag.EdgeInheritance})
	_ = g.AddEdge(dag.Edge{From: "Derived", To: "Base", Kind: dag.EdgeOrdinary})

	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Edges: 2
}

func ExampleDAG_traversal() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "App"})
	_ = g.AddNode(dag.Node{ID: "Auth"})
	_ = g.AddNode(dag.Node{ID: "Cache"})
	_ = g.AddEdge(dag.Edge{From: "App", To: "Auth"})
	_ = g.AddEdge(dag.Edge{From: "App", To: "Cache"})

	fmt.Println("Children of App:", g.Children("App"))
	fmt.Println("Parents of Auth:", g.Parents("Auth"))
	fmt.Println("Sinks:", dag.NodeIDs(g.Sinks()))
	// Output:
	// Children of App: [Auth Cache]
	// Parents of Auth: [App]
	// Sinks: [Auth Cache]
}
