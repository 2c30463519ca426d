// Package transform computes the topological layering of a dependency graph.
//
// # Ranks
//
// [TopologicalOrder] runs Kahn's algorithm. An edge A→B ("A depends on B")
// puts A before B, so dependents come first and leaf dependencies last. Ties
// are broken by node ID, which makes the order, and the ranks derived from
// it by [AssignRanks], deterministic.
//
// # Rows
//
// [AssignLayers] places every node one row below its deepest parent. Rows
// group nodes into the horizontal bands of a top-down drawing.
//
// # Cycles
//
// A cyclic graph has no topological order. Instead of breaking cycles
// arbitrarily, every function here returns a [*CycleError] listing the
// strongly connected components involved (see [FindCycles]) and leaves the
// graph unmodified.
//
// # Usage
//
//	if err := transform.Layer(g); err != nil {
//	    var cycles *transform.CycleError
//	    if errors.As(err, &cycles) {
//	        // report cycles.Cycles
//	    }
//	}
package transform
