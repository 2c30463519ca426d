package javaast

import (
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Node is a syntax node bound to the source it was parsed from.
// The zero Node is null: every query on it returns empty results.
type Node struct {
	n   *sitter.Node
	src []byte
}

// IsNull reports whether the node is absent.
func (n Node) IsNull() bool { return n.n == nil || n.n.IsNull() }

// Kind returns the grammar node type, e.g. "class_declaration".
func (n Node) Kind() string {
	if n.IsNull() {
		return ""
	}
	return n.n.Type()
}

// Text returns the source text spanned by the node.
func (n Node) Text() string {
	if n.IsNull() {
		return ""
	}
	return slice(n.src, int(n.n.StartByte()), int(n.n.EndByte()))
}

// StartByte returns the node's start offset in the source.
func (n Node) StartByte() int {
	if n.IsNull() {
		return 0
	}
	return int(n.n.StartByte())
}

// EndByte returns the node's end offset in the source.
func (n Node) EndByte() int {
	if n.IsNull() {
		return 0
	}
	return int(n.n.EndByte())
}

// Line returns the 1-based line the node starts on.
func (n Node) Line() int {
	if n.IsNull() {
		return 0
	}
	return int(n.n.StartPoint().Row) + 1
}

// Field returns the child stored under a grammar field name such as
// "name", "type" or "superclass". The result is null if the field is absent.
func (n Node) Field(name string) Node {
	if n.IsNull() {
		return Node{}
	}
	return n.wrap(n.n.ChildByFieldName(name))
}

// NamedChildren returns the node's named children in order.
func (n Node) NamedChildren() []Node {
	if n.IsNull() {
		return nil
	}
	count := int(n.n.NamedChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.wrap(n.n.NamedChild(i)))
	}
	return out
}

// ChildrenOfType returns the direct named children whose kind is one of kinds.
func (n Node) ChildrenOfType(kinds ...string) []Node {
	var out []Node
	for _, c := range n.NamedChildren() {
		if slices.Contains(kinds, c.Kind()) {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildOfType returns the first direct named child of one of kinds.
func (n Node) FirstChildOfType(kinds ...string) Node {
	for _, c := range n.NamedChildren() {
		if slices.Contains(kinds, c.Kind()) {
			return c
		}
	}
	return Node{}
}

// DescendantsOfType returns every descendant (excluding n itself) whose kind
// is one of kinds, in document order.
func (n Node) DescendantsOfType(kinds ...string) []Node {
	var out []Node
	var walk func(Node)
	walk = func(parent Node) {
		for _, c := range parent.NamedChildren() {
			if slices.Contains(kinds, c.Kind()) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// FirstDescendantOfType returns the first node DescendantsOfType would
// return, or a null node.
func (n Node) FirstDescendantOfType(kinds ...string) Node {
	var found Node
	var walk func(Node) bool
	walk = func(parent Node) bool {
		for _, c := range parent.NamedChildren() {
			if slices.Contains(kinds, c.Kind()) {
				found = c
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	return found
}

// StringContent returns the contents of a string_literal without its quotes.
// For other nodes it returns the raw text.
func (n Node) StringContent() string {
	text := n.Text()
	if n.Kind() != "string_literal" || len(text) < 2 {
		return text
	}
	if strings.HasPrefix(text, `"""`) && strings.HasSuffix(text, `"""`) && len(text) >= 6 {
		return slice(n.src, n.StartByte()+3, n.EndByte()-3)
	}
	return slice(n.src, n.StartByte()+1, n.EndByte()-1)
}

func (n Node) wrap(c *sitter.Node) Node {
	if c == nil {
		return Node{}
	}
	return Node{n: c, src: n.src}
}
