package extract

import (
	"strings"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/javaast"
	"github.com/matzehuels/injectgraph/pkg/registry"
)

// Import emits the arguments of the class-level import annotation.
// Both string literals and class literals are accepted:
//
//	@Import("PaymentConfig")
//	@Import({PaymentConfig.class, MailConfig.class})
type Import struct{ Markers Markers }

func (Import) Name() string { return NameImport }

func (e Import) Extract(u *registry.SourceUnit) []Candidate {
	strs, classes := markerArguments(u.Decl, e.Markers.Import)
	return ordinary(NameImport, append(strs, classes...)...)
}

// ComponentScan emits the string arguments of the class-level
// component-scan annotation. They are usually package names and rarely
// resolve to a known type; callers also record them separately.
type ComponentScan struct{ Markers Markers }

func (ComponentScan) Name() string { return NameComponentScan }

func (e ComponentScan) Extract(u *registry.SourceUnit) []Candidate {
	strs, _ := markerArguments(u.Decl, e.Markers.ComponentScan)
	return ordinary(NameComponentScan, strs...)
}

// IsRepository reports whether u declares a repository interface: an
// interface whose name ends in the repository suffix or that carries the
// repository marker.
func IsRepository(u *registry.SourceUnit, m Markers) bool {
	if u == nil || u.Kind != dag.NodeKindInterface {
		return false
	}
	if m.RepositorySuffix != "" && strings.HasSuffix(u.Name, m.RepositorySuffix) {
		return true
	}
	return hasMarker(u.Decl, m.Repository)
}

// RepositoryEntity binds a repository to the entities it stores. Every
// generic argument of the repository's supertypes becomes a reversed
// candidate, so the edge reads entity -> repository.
//
//	interface OrderRepository extends JpaRepository<Order, Long>
//	    => Order -> OrderRepository (Long is dropped later as unknown)
type RepositoryEntity struct{ Markers Markers }

func (RepositoryEntity) Name() string { return NameRepositoryEntity }

func (e RepositoryEntity) Extract(u *registry.SourceUnit) []Candidate {
	if !IsRepository(u, e.Markers) {
		return nil
	}
	var out []Candidate
	for _, t := range supertypes(u.Decl) {
		for _, arg := range typeArguments(t) {
			out = append(out, Candidate{Name: arg, Kind: dag.EdgeOrdinary, Reverse: true, Via: NameRepositoryEntity})
		}
	}
	return out
}

// Inheritance emits the supertypes named in extends and implements
// clauses as inheritance candidates. Repositories are skipped: their
// supertype is framework plumbing and is handled by [RepositoryEntity].
type Inheritance struct{ Markers Markers }

func (Inheritance) Name() string { return NameInheritance }

func (e Inheritance) Extract(u *registry.SourceUnit) []Candidate {
	if IsRepository(u, e.Markers) {
		return nil
	}
	var out []Candidate
	for _, t := range supertypes(u.Decl) {
		if name := typeName(t); name != "" {
			out = append(out, Candidate{Name: name, Kind: dag.EdgeInheritance, Via: NameInheritance})
		}
	}
	return out
}

// supertypes returns the type nodes of decl's superclass, implemented
// interfaces, and (for interfaces) extended interfaces, in source order.
func supertypes(decl javaast.Node) []javaast.Node {
	var out []javaast.Node
	if sc := decl.Field("superclass"); !sc.IsNull() {
		out = append(out, sc.NamedChildren()...)
	}
	for _, clause := range []javaast.Node{
		decl.Field("interfaces"),
		decl.FirstChildOfType("extends_interfaces"),
	} {
		out = append(out, clause.FirstChildOfType("type_list").NamedChildren()...)
	}
	return out
}
