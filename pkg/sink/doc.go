// Package sink publishes finished dependency graphs to external backends.
//
// Publication is an output step: it runs after analysis succeeded and
// nothing is ever read back by later runs. A [Document] bundles the
// serialized graph with the run ID, the analyzed root, component-scan
// literals and skipped files.
//
// # Targets
//
// [Open] selects a backend from a target string:
//
//	graph.json                       file (a directory gets <run-id>.json)
//	file:///tmp/graphs               file
//	redis://localhost:6379/0         Redis SET (+ optional PUBLISH)
//	mongodb://localhost:27017/shop   MongoDB InsertOne
//
// Redis targets accept ?channel=name to also publish the document on a
// pub/sub channel and ?ttl=1h to expire the stored key. MongoDB targets
// take the database from the URI path (default "injectgraph") and the
// collection from ?collection= (default "graphs").
//
// Every publication reports to [observability.SinkHooks].
package sink
