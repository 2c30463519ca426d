// Package analysis runs the dependency-graph pipeline over a source tree.
//
// A run is a staged, stateless pass:
//
//  1. Enumerate: select source files under the root ([source.Enumerate])
//  2. Parse: read and parse every file, in parallel
//  3. Register: index primary declarations ([registry.Build])
//  4. Extract and resolve: per known class, run the extractors and keep
//     candidates naming known types ([resolve.Resolve])
//  5. Assemble: build the graph, materializing isolated classes ([Assemble])
//  6. Layer: assign topological ranks and rows ([transform.Layer])
//
// Stage 4 starts only after the registry is complete; the registry is
// read-only from then on and the graph is only handed out once layered.
//
// Per-file problems never abort a run. Unreadable files, files that fail
// to parse and files without a class or interface are reported in
// [Result.Skipped]. A cyclic graph does abort it: [Runner.Run] returns an
// error coded CYCLE_DETECTED that wraps a [*transform.CycleError] listing
// the participating classes, and no partial result.
//
// # Usage
//
//	runner := analysis.NewRunner(logger)
//	res, err := runner.Run(ctx, analysis.DefaultOptions("src/main/java"))
//	if err != nil {
//	    var cycle *transform.CycleError
//	    if errors.As(err, &cycle) { ... }
//	}
//	dot := nodelink.ToDOT(res.Graph, nodelink.Options{})
package analysis
