package extract

import (
	"fmt"
	"slices"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/registry"
)

// Extractor names.
const (
	NameRequiredArgs      = "required-args"
	NameAllArgs           = "all-args"
	NameSetter            = "setter"
	NameAutowiredField    = "autowired-field"
	NameAutowiredSetter   = "autowired-setter"
	NameConstructorParams = "constructor-params"
	NameImport            = "import"
	NameComponentScan     = "component-scan"
	NameRepositoryEntity  = "repository-entity"
	NameInheritance       = "inheritance"
)

// Candidate is an unresolved dependency proposed by an extractor.
type Candidate struct {
	Name string       // referenced type name (or scanned package literal)
	Kind dag.EdgeKind // ordinary or inheritance
	// Reverse makes the edge point from Name to the analyzed class.
	Reverse bool
	Via     string // name of the extractor that produced it
}

// Extractor proposes candidates for one source unit.
// Implementations must not retain the unit.
type Extractor interface {
	Name() string
	Extract(u *registry.SourceUnit) []Candidate
}

// Set is an ordered list of extractors.
type Set []Extractor

// Default returns every extractor, configured with m, in a fixed order.
func Default(m Markers) Set {
	return Set{
		RequiredArgs{Markers: m},
		AllArgs{Markers: m},
		Setter{Markers: m},
		AutowiredField{Markers: m},
		AutowiredSetter{Markers: m},
		ConstructorParams{},
		Import{Markers: m},
		ComponentScan{Markers: m},
		RepositoryEntity{Markers: m},
		Inheritance{Markers: m},
	}
}

// Names lists every extractor name [Default] knows.
func Names() []string {
	return []string{
		NameRequiredArgs, NameAllArgs, NameSetter, NameAutowiredField,
		NameAutowiredSetter, NameConstructorParams, NameImport,
		NameComponentScan, NameRepositoryEntity, NameInheritance,
	}
}

// ValidateNames returns an error naming the first unknown extractor.
func ValidateNames(names []string) error {
	known := Names()
	for _, n := range names {
		if !slices.Contains(known, n) {
			return fmt.Errorf("unknown extractor %q (known: %v)", n, known)
		}
	}
	return nil
}

// Without returns a copy of s minus the named extractors.
func (s Set) Without(names ...string) Set {
	out := make(Set, 0, len(s))
	for _, e := range s {
		if !slices.Contains(names, e.Name()) {
			out = append(out, e)
		}
	}
	return out
}

// Names returns the names of the extractors in s.
func (s Set) Names() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.Name()
	}
	return out
}

// Extract runs every extractor in s against u and concatenates the
// results. Units without a declaration yield nothing.
func (s Set) Extract(u *registry.SourceUnit) []Candidate {
	if u == nil || !u.Declared() {
		return nil
	}
	var out []Candidate
	for _, e := range s {
		out = append(out, e.Extract(u)...)
	}
	return out
}

func ordinary(via string, names ...string) []Candidate {
	var out []Candidate
	for _, n := range names {
		if n != "" {
			out = append(out, Candidate{Name: n, Kind: dag.EdgeOrdinary, Via: via})
		}
	}
	return out
}
