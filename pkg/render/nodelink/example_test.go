package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "OrderService"})
	_ = g.AddNode(dag.Node{ID: "OrderRepository", Kind: dag.NodeKindInterface})
	_ = g.AddNode(dag.Node{ID: "Base"})
	_ = g.AddEdge(dag.Edge{From: "OrderService", To: "OrderRepository"})
	_ = g.AddEdge(dag.Edge{From: "OrderService", To: "Base", Kind: dag.EdgeInheritance})

	fmt.Print(nodelink.ToDOT(g, nodelink.Options{RankDir: "LR"}))
	// Output:
	// digraph G {
	//   rankdir=LR;
	//   bgcolor="transparent";
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontname="Helvetica", fontsize=14, margin="0.2,0.1"];
	//   edge [color="#555555"];
	//   ranksep=0.5;
	//   nodesep=0.3;
	//
	//   "Base" [label="Base"];
	//   "OrderRepository" [label="OrderRepository", shape=ellipse, style=filled, fillcolor="#eef3fb"];
	//   "OrderService" [label="OrderService"];
	//
	//   "OrderService" -> "Base" [style=dashed, arrowhead=empty];
	//   "OrderService" -> "OrderRepository";
	// }
}
