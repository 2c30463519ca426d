// Package resolve filters candidate dependencies down to graph edges.
//
// A candidate survives only if its name is a known project type. Unknown
// names (framework classes, JDK types, scanned package names) are dropped
// silently. Surviving candidates are collapsed into one edge per
// (from, to, kind); the extractors that proposed an edge are kept as its
// provenance.
package resolve

import (
	"slices"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/extract"
)

// Registry is the lookup Resolve needs from the class registry.
type Registry interface {
	Known(name string) bool
}

// Options tunes resolution.
type Options struct {
	// SelfEdges keeps edges from a class to itself. They are dropped by
	// default: a self-edge carries no ordering information and turns every
	// recursive type into a cycle.
	SelfEdges bool
}

// Edge is a resolved dependency with the extractors that produced it.
type Edge struct {
	From string
	To   string
	Kind dag.EdgeKind
	Via  []string // sorted, unique
}

// Key returns the edge's deduplication key.
func (e Edge) Key() dag.EdgeKey { return dag.EdgeKey{From: e.From, To: e.To, Kind: e.Kind} }

// EdgeSet holds the resolved edges of one class.
type EdgeSet struct {
	Class string

	edges []Edge
	index map[dag.EdgeKey]int

	// Unresolved counts candidates whose name was not a known type.
	Unresolved int
	// SelfEdges lists the candidates dropped because they pointed back at
	// the class itself.
	SelfEdges []extract.Candidate
}

// Resolve keeps the candidates of class that name a known type and returns
// them as a deduplicated edge set. Reversed candidates become edges from
// the candidate to class.
func Resolve(reg Registry, class string, candidates []extract.Candidate, opts Options) *EdgeSet {
	set := &EdgeSet{Class: class, index: map[dag.EdgeKey]int{}}
	for _, c := range candidates {
		if c.Name == "" || !reg.Known(c.Name) {
			set.Unresolved++
			continue
		}
		if c.Name == class && !opts.SelfEdges {
			set.SelfEdges = append(set.SelfEdges, c)
			continue
		}
		e := Edge{From: class, To: c.Name, Kind: c.Kind}
		if c.Reverse {
			e.From, e.To = c.Name, class
		}
		set.add(e, c.Via)
	}
	return set
}

func (s *EdgeSet) add(e Edge, via string) {
	if i, ok := s.index[e.Key()]; ok {
		if via != "" && !slices.Contains(s.edges[i].Via, via) {
			s.edges[i].Via = append(s.edges[i].Via, via)
			slices.Sort(s.edges[i].Via)
		}
		return
	}
	if via != "" {
		e.Via = []string{via}
	}
	s.index[e.Key()] = len(s.edges)
	s.edges = append(s.edges, e)
}

// Edges returns the resolved edges in first-seen order.
func (s *EdgeSet) Edges() []Edge { return slices.Clone(s.edges) }

// Len returns the number of distinct edges.
func (s *EdgeSet) Len() int { return len(s.edges) }

// Targets returns the sorted dependency names of edges of kind that leave
// the class.
func (s *EdgeSet) Targets(kind dag.EdgeKind) []string {
	var out []string
	for _, e := range s.edges {
		if e.Kind == kind && e.From == s.Class {
			out = append(out, e.To)
		}
	}
	slices.Sort(out)
	return out
}

// Has reports whether the set contains from -> to of the given kind.
func (s *EdgeSet) Has(from, to string, kind dag.EdgeKind) bool {
	_, ok := s.index[dag.EdgeKey{From: from, To: to, Kind: kind}]
	return ok
}
