// Package pkg provides the core libraries for injectgraph, a dependency
// graph analyzer for dependency-injection wiring in Java sources.
//
// # Overview
//
// Injectgraph reads a source tree, finds the types it declares and infers
// which types depend on which through constructor, setter, field and
// configuration-level injection idioms. The result is a layered graph:
// every class gets a rank in a topological order, dependents first, and
// cyclic wiring is an error.
//
// # Architecture
//
// The data flow through injectgraph:
//
//	Source tree
//	     ↓
//	[source]    enumerate files (extensions, .gitignore, excludes)
//	     ↓
//	[javaast]   parse each file with tree-sitter
//	     ↓
//	[registry]  map declared type names to source units
//	     ↓
//	[extract]   collect dependency candidates per class
//	     ↓
//	[resolve]   keep candidates naming known types
//	     ↓
//	[analysis]  assemble the graph, then [dag/transform] ranks and layers it
//	     ↓
//	[io] JSON · [render/nodelink] DOT/SVG/PNG · [sink] file/Redis/MongoDB
//
// # Quick Start
//
//	res, err := analysis.NewRunner(nil).Run(ctx, analysis.DefaultOptions("./src/main/java"))
//	if err != nil {
//	    return err // errors.Is(err, dag.ErrGraphHasCycle) for cyclic wiring
//	}
//	dot := nodelink.ToDOT(res.Graph, nodelink.Options{})
//
// # Support packages
//
// [errors] defines coded errors and exit statuses, [observability] exposes
// hooks for stage timing, [config] loads injectgraph.toml and [buildinfo]
// carries version information set at build time.
package pkg
