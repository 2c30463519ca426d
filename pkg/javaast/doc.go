// Package javaast parses Java source into a queryable syntax tree.
//
// It adapts the tree-sitter Java grammar to the three queries the analysis
// needs: all descendants of given node kinds in document order
// ([Node.DescendantsOfType]), named-field access ([Node.Field]) and raw
// source slicing ([Node.Text], [Tree.Slice]).
//
// A [Parser] is safe for concurrent use: every Parse call creates its own
// tree-sitter parser. A [Tree] owns native memory and must be closed.
package javaast
