package registry

import (
	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/javaast"
)

// SourceUnit is one analyzed file and its primary declaration.
type SourceUnit struct {
	Path string        // absolute path
	Rel  string        // path relative to the analysis root, slash-separated
	Tree *javaast.Tree // parsed tree; owned by the analysis run

	Name string       // declared type name, empty when none was found
	Decl javaast.Node // class_declaration or interface_declaration node
	Kind dag.NodeKind
}

// NewUnit wraps a parsed file and locates its primary declaration.
func NewUnit(path, rel string, tree *javaast.Tree) *SourceUnit {
	u := &SourceUnit{Path: path, Rel: rel, Tree: tree}
	if d, ok := Declare(tree.Root()); ok {
		u.Name, u.Decl, u.Kind = d.Name, d.Node, d.Kind
	}
	return u
}

// Declared reports whether the unit has a recognizable declaration.
func (u *SourceUnit) Declared() bool { return u.Name != "" }

// Text returns the unit's source text.
func (u *SourceUnit) Text() []byte { return u.Tree.Source() }

// Declaration is a file's primary type declaration.
type Declaration struct {
	Name string
	Node javaast.Node
	Kind dag.NodeKind
}

// Declare finds the primary declaration under root. Class declarations take
// precedence over interface declarations regardless of their position.
func Declare(root javaast.Node) (Declaration, bool) {
	if n := root.FirstDescendantOfType("class_declaration"); !n.IsNull() {
		if name := n.Field("name").Text(); name != "" {
			return Declaration{Name: name, Node: n, Kind: dag.NodeKindClass}, true
		}
	}
	if n := root.FirstDescendantOfType("interface_declaration"); !n.IsNull() {
		if name := n.Field("name").Text(); name != "" {
			return Declaration{Name: name, Node: n, Kind: dag.NodeKindInterface}, true
		}
	}
	return Declaration{}, false
}

// DeclaredName returns the primary declared type name under root, or "".
func DeclaredName(root javaast.Node) string {
	d, _ := Declare(root)
	return d.Name
}
