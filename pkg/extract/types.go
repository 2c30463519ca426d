package extract

import (
	"strings"

	"github.com/matzehuels/injectgraph/pkg/javaast"
)

// typeName reduces a type node to the simple name of its outermost type.
// Primitive and void types yield "".
//
//	OrderRepository          -> OrderRepository
//	List<Order>              -> List
//	com.shop.Order           -> Order
//	Order[]                  -> Order
func typeName(n javaast.Node) string {
	switch n.Kind() {
	case "type_identifier":
		return n.Text()
	case "scoped_type_identifier":
		text := n.Text()
		if i := strings.LastIndexByte(text, '.'); i >= 0 {
			text = text[i+1:]
		}
		return strings.TrimSpace(text)
	case "generic_type":
		return typeName(n.FirstChildOfType("type_identifier", "scoped_type_identifier"))
	case "array_type":
		return typeName(n.Field("element"))
	case "annotated_type":
		children := n.NamedChildren()
		if len(children) > 0 {
			return typeName(children[len(children)-1])
		}
	}
	return ""
}

// typeArguments returns the simple names of a generic type's arguments.
func typeArguments(n javaast.Node) []string {
	if n.Kind() != "generic_type" {
		return nil
	}
	var out []string
	for _, arg := range n.FirstChildOfType("type_arguments").NamedChildren() {
		if name := typeName(arg); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// body returns the member list of a class or interface declaration.
func body(decl javaast.Node) javaast.Node { return decl.Field("body") }

// members returns the direct body members of decl of the given kinds.
// Members of nested types are excluded.
func members(decl javaast.Node, kinds ...string) []javaast.Node {
	return body(decl).ChildrenOfType(kinds...)
}

// fieldType returns the declared type name of a field_declaration.
func fieldType(field javaast.Node) string { return typeName(field.Field("type")) }

// parameterTypes returns the declared types of a method's or constructor's
// formal parameters, including a trailing varargs parameter.
func parameterTypes(method javaast.Node) []string {
	var out []string
	for _, p := range method.Field("parameters").ChildrenOfType("formal_parameter", "spread_parameter") {
		var t javaast.Node
		if p.Kind() == "formal_parameter" {
			t = p.Field("type")
		} else {
			for _, c := range p.NamedChildren() {
				if c.Kind() != "modifiers" {
					t = c
					break
				}
			}
		}
		if name := typeName(t); name != "" {
			out = append(out, name)
		}
	}
	return out
}
