package dag

import (
	"cmp"
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	// All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph. Use [DAG.EnsureNode] for
	// idempotent insertion.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [DAG.Validate] when an edge
	// references a node that doesn't exist. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrGraphHasCycle is returned by [DAG.Validate] when a cycle is detected.
	// Layering wraps it in a richer error naming the participating nodes.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes or the graph.
// It carries provenance (source path, extractors) and render options.
// Metadata maps are never nil once stored in a DAG.
type Metadata map[string]any

// NodeKind records which declaration form produced a node.
type NodeKind int

const (
	// NodeKindClass is a node declared by a class declaration.
	NodeKindClass NodeKind = iota
	// NodeKindInterface is a node declared by an interface declaration.
	NodeKindInterface
)

// String returns the lowercase kind name used in serialized output.
func (k NodeKind) String() string {
	if k == NodeKindInterface {
		return "interface"
	}
	return "class"
}

// EdgeKind distinguishes ordinary dependency edges from inheritance edges.
type EdgeKind int

const (
	// EdgeOrdinary is a dependency produced by injection, import or scan idioms.
	EdgeOrdinary EdgeKind = iota
	// EdgeInheritance is a dependency produced by extends/implements clauses.
	EdgeInheritance
)

// String returns the lowercase kind name used in serialized output.
func (k EdgeKind) String() string {
	if k == EdgeInheritance {
		return "inheritance"
	}
	return "ordinary"
}

// Node is a vertex of the dependency graph: one known project type.
//
// Rank is the node's position in a topological order and Row its layer
// (longest path from a source). Both are zero until layering runs.
type Node struct {
	ID   string   // Type name (also used as display label)
	Kind NodeKind // Declaration form
	Rank int      // Position in topological order
	Row  int      // Layer assignment (0 = top)
	Meta Metadata // Arbitrary key-value metadata (never nil after AddNode)
}

// IsInterface reports whether the node was declared as an interface.
func (n Node) IsInterface() bool { return n.Kind == NodeKindInterface }

// Edge is a directed dependency: From depends on To.
// Edges are unique per (From, To, Kind).
type Edge struct {
	From string   // Dependent type
	To   string   // Dependency type
	Kind EdgeKind // Provenance class
	Meta Metadata // Arbitrary key-value metadata (never nil after AddEdge)
}

// Key returns the deduplication key of the edge.
func (e Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To, Kind: e.Kind} }

// EdgeKey identifies an edge independent of its metadata.
type EdgeKey struct {
	From string
	To   string
	Kind EdgeKind
}

// DAG is a directed dependency graph between project types.
// Despite the name it may transiently hold cycles; [DAG.Validate] and the
// layering transforms report them.
//
// The zero value is not usable - use New to create a valid DAG instance.
// DAG is not safe for concurrent use without external synchronization.
type DAG struct {
	nodes    map[string]*Node
	order    []string // insertion order of node IDs
	edges    []Edge
	index    map[EdgeKey]int     // edge key -> position in edges
	outgoing map[string][]string // nodeID -> children IDs (one entry per edge)
	incoming map[string][]string // nodeID -> parent IDs (one entry per edge)
	meta     Metadata
}

// New creates an empty DAG with optional graph-level metadata.
// The metadata parameter can be nil, in which case an empty map is created.
func New(meta Metadata) *DAG {
	if meta == nil {
		meta = Metadata{}
	}
	return &DAG{
		nodes:    make(map[string]*Node),
		index:    make(map[EdgeKey]int),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map.
// The returned map is never nil and can be safely modified.
func (d *DAG) Meta() Metadata { return d.meta }

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the node ID is empty, or ErrDuplicateNodeID
// if a node with the same ID already exists.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	return nil
}

// EnsureNode returns the node with n.ID, adding n first if it is missing.
// It is the idempotent form of AddNode used when materializing edge targets.
func (d *DAG) EnsureNode(n Node) (*Node, error) {
	if existing, ok := d.nodes[n.ID]; ok {
		return existing, nil
	}
	if err := d.AddNode(n); err != nil {
		return nil, err
	}
	return d.nodes[n.ID], nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode if the From node doesn't exist, or
// ErrUnknownTargetNode if the To node doesn't exist.
//
// Adding an edge whose (From, To, Kind) already exists is not an error:
// the metadata of the new edge is merged into the stored one and the
// edge count is unchanged.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if i, ok := d.index[e.Key()]; ok {
		for k, v := range e.Meta {
			d.edges[i].Meta[k] = v
		}
		return nil
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	d.index[e.Key()] = len(d.edges)
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// HasEdge reports whether the edge from→to of the given kind exists.
func (d *DAG) HasEdge(from, to string, kind EdgeKind) bool {
	_, ok := d.index[EdgeKey{From: from, To: to, Kind: kind}]
	return ok
}

// Edge returns the stored edge for key and true, or a zero Edge and false.
func (d *DAG) Edge(key EdgeKey) (Edge, bool) {
	i, ok := d.index[key]
	if !ok {
		return Edge{}, false
	}
	return d.edges[i], true
}

// Nodes returns all nodes in insertion order. The returned slice contains
// pointers to the actual node structs, so modifications affect the graph.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, 0, len(d.order))
	for _, id := range d.order {
		nodes = append(nodes, d.nodes[id])
	}
	return nodes
}

// SortedNodes returns all nodes ordered by rank, then ID.
// Before layering every rank is zero, so the order is by ID.
func (d *DAG) SortedNodes() []*Node {
	nodes := d.Nodes()
	slices.SortFunc(nodes, func(a, b *Node) int {
		if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// SortedEdges returns all edges ordered by (From, To, Kind).
func (d *DAG) SortedEdges() []Edge {
	edges := d.Edges()
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		if c := cmp.Compare(a.To, b.To); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the IDs of nodes that this node has edges to (dependencies).
// A child appears once per edge kind connecting the pair. The returned slice
// should not be modified.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the IDs of nodes that have edges to this node (dependents).
// The returned slice should not be modified.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (d *DAG) OutDegree(id string) int { return len(d.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (d *DAG) InDegree(id string) int { return len(d.incoming[id]) }

// Node returns the node with the given ID and true, or nil and false if not found.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// OutEdges returns the edges leaving id, in insertion order.
func (d *DAG) OutEdges(id string) []Edge {
	var out []Edge
	for _, e := range d.edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// InEdges returns the edges entering id, in insertion order.
func (d *DAG) InEdges(id string) []Edge {
	var in []Edge
	for _, e := range d.edges {
		if e.To == id {
			in = append(in, e)
		}
	}
	return in
}

// SetRanks updates the rank of every node present in ranks.
func (d *DAG) SetRanks(ranks map[string]int) {
	for id, r := range ranks {
		if n, ok := d.nodes[id]; ok {
			n.Rank = r
		}
	}
}

// SetRows updates the row (layer) of every node present in rows.
func (d *DAG) SetRows(rows map[string]int) {
	for id, r := range rows {
		if n, ok := d.nodes[id]; ok {
			n.Row = r
		}
	}
}

// NodesInRow returns the nodes assigned to row, ordered by rank then ID.
func (d *DAG) NodesInRow(row int) []*Node {
	var out []*Node
	for _, n := range d.SortedNodes() {
		if n.Row == row {
			out = append(out, n)
		}
	}
	return out
}

// MaxRow returns the highest row index, or 0 if the graph is empty.
func (d *DAG) MaxRow() int {
	maxRow := 0
	for _, n := range d.nodes {
		maxRow = max(maxRow, n.Row)
	}
	return maxRow
}

// Sources returns nodes with no incoming edges, in insertion order.
// These are the types nothing else in the project depends on.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, n := range d.Nodes() {
		if len(d.incoming[n.ID]) == 0 {
			sources = append(sources, n)
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in insertion order.
// These are leaf dependencies and isolated types.
func (d *DAG) Sinks() []*Node {
	var sinks []*Node
	for _, n := range d.Nodes() {
		if len(d.outgoing[n.ID]) == 0 {
			sinks = append(sinks, n)
		}
	}
	return sinks
}

// Validate checks graph integrity and returns nil if valid.
// It verifies that every edge connects existing nodes and that the graph
// is acyclic. Returns ErrInvalidEdgeEndpoint or ErrGraphHasCycle.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (d *DAG) Validate() error {
	for _, e := range d.edges {
		_, okS := d.nodes[e.From]
		_, okD := d.nodes[e.To]
		if !okS || !okD {
			return ErrInvalidEdgeEndpoint
		}
	}
	return d.detectCycles()
}

func (d *DAG) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, id := range d.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// NodeIDs extracts the ID from each node in a slice.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
