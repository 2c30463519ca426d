// Package io provides JSON import and export for dependency graphs.
//
// # JSON Format
//
//	{
//	  "meta":  {"root": "/src/shop", "run_id": "6f1c..."},
//	  "nodes": [
//	    {"id": "OrderService", "kind": "class", "rank": 0, "row": 0,
//	     "meta": {"path": "shop/OrderService.java", "annotations": ["Service"]}},
//	    {"id": "OrderRepository", "kind": "interface", "rank": 1, "row": 1}
//	  ],
//	  "edges": [
//	    {"from": "OrderService", "to": "OrderRepository", "kind": "ordinary",
//	     "meta": {"via": ["required-args"]}}
//	  ]
//	}
//
// Nodes are written by rank then ID and edges by endpoints then kind, so
// the export of an unchanged graph is byte-identical across runs (apart
// from the run_id metadata).
//
// Node kind defaults to "class" and edge kind to "ordinary" when omitted
// on import. [ReadJSON] rejects duplicate nodes, dangling edges and cyclic
// graphs.
//
// The [Graph] type carries both json and bson tags so publication sinks
// can store the same document shape in any backend.
package io
