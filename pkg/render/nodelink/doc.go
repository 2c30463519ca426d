// Package nodelink serializes dependency graphs as Graphviz diagrams.
//
// # Overview
//
// [ToDOT] turns a ranked [dag.DAG] into DOT source. The output is a pure
// function of the graph and [Options]: nodes are written by rank then
// name, edges by endpoints then kind, so two runs over the same sources
// produce byte-identical files.
//
// Visual conventions:
//
//   - classes are rounded boxes, interfaces are ellipses
//   - ordinary dependencies are solid arrows
//   - inheritance edges are dashed with a hollow arrowhead
//   - isolated classes are still emitted as standalone nodes
//   - with SameRank, nodes sharing a layer row are pinned to one rank
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{RankDir: "LR"})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz, so
// no external dot binary is needed.
package nodelink
