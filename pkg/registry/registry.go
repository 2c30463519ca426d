package registry

import (
	"slices"

	"github.com/charmbracelet/log"
)

// OutcomeKind classifies what happened when a unit was registered.
type OutcomeKind int

const (
	// Registered means the unit's name was new.
	Registered OutcomeKind = iota
	// DuplicateConflict means the name was already taken by an earlier
	// unit, which the new one replaced.
	DuplicateConflict
)

func (k OutcomeKind) String() string {
	if k == DuplicateConflict {
		return "duplicate-conflict"
	}
	return "registered"
}

// Outcome records the registration of one unit.
type Outcome struct {
	Kind OutcomeKind
	Name string
	Path string // the registered unit
	// Replaced is the path of the unit that lost the name on conflict.
	Replaced string
}

// Registry maps declared type names to their source units.
// It is read-only once [Build] returns.
type Registry struct {
	units map[string]*SourceUnit
	names []string
}

// Build indexes every declared unit by name. Units without a declaration
// are ignored. On a name collision the later unit wins and the collision
// is returned as a [DuplicateConflict] outcome. A nil logger uses
// log.Default().
func Build(units []*SourceUnit, logger *log.Logger) (*Registry, []Outcome) {
	if logger == nil {
		logger = log.Default()
	}

	r := &Registry{units: make(map[string]*SourceUnit, len(units))}
	outcomes := make([]Outcome, 0, len(units))

	for _, u := range units {
		if u == nil || !u.Declared() {
			continue
		}
		out := Outcome{Kind: Registered, Name: u.Name, Path: u.Path}
		if prev, ok := r.units[u.Name]; ok {
			out.Kind = DuplicateConflict
			out.Replaced = prev.Path
			logger.Warn("duplicate type declaration, later file wins",
				"type", u.Name, "kept", u.Rel, "dropped", prev.Rel)
		} else {
			r.names = append(r.names, u.Name)
		}
		r.units[u.Name] = u
		outcomes = append(outcomes, out)
	}

	slices.Sort(r.names)
	return r, outcomes
}

// Lookup returns the unit declaring name.
func (r *Registry) Lookup(name string) (*SourceUnit, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Known reports whether name is a project type.
func (r *Registry) Known(name string) bool {
	_, ok := r.units[name]
	return ok
}

// Names returns all known type names in sorted order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

// Units returns the registered units ordered by name.
func (r *Registry) Units() []*SourceUnit {
	out := make([]*SourceUnit, len(r.names))
	for i, n := range r.names {
		out[i] = r.units[n]
	}
	return out
}

// Len returns the number of known types.
func (r *Registry) Len() int { return len(r.names) }

// Conflicts filters outcomes down to duplicate conflicts.
func Conflicts(outcomes []Outcome) []Outcome {
	var out []Outcome
	for _, o := range outcomes {
		if o.Kind == DuplicateConflict {
			out = append(out, o)
		}
	}
	return out
}
