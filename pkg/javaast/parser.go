package javaast

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

var (
	// ErrInvalidContent is returned when the source is not valid UTF-8.
	ErrInvalidContent = errors.New("content is not valid UTF-8")

	// ErrSyntax is returned in strict mode when the tree contains error nodes.
	ErrSyntax = errors.New("source contains syntax errors")
)

// Parser turns Java source text into a [Tree].
type Parser struct {
	// Strict rejects sources whose tree contains ERROR or MISSING nodes.
	// Tree-sitter recovers from most syntax errors, so by default such
	// trees are returned as-is.
	Strict bool
}

// NewParser returns a lenient Java parser.
func NewParser() *Parser { return &Parser{} }

// Parse parses src. The returned tree must be closed by the caller.
func (p *Parser) Parse(ctx context.Context, src []byte) (*Tree, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidContent
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, errors.New("tree-sitter returned nil root node")
	}
	if p.Strict && root.HasError() {
		tree.Close()
		return nil, ErrSyntax
	}
	return &Tree{tree: tree, src: src}, nil
}

// Tree is a parsed source file.
type Tree struct {
	tree *sitter.Tree
	src  []byte
}

// Root returns the tree's root node (kind "program").
func (t *Tree) Root() Node { return Node{n: t.tree.RootNode(), src: t.src} }

// Source returns the text the tree was parsed from.
func (t *Tree) Source() []byte { return t.src }

// HasError reports whether tree-sitter had to recover from syntax errors.
func (t *Tree) HasError() bool { return t.tree.RootNode().HasError() }

// Slice returns the source text between two byte offsets.
// Offsets are clamped to the source bounds.
func (t *Tree) Slice(start, end int) string { return slice(t.src, start, end) }

// Close releases the native tree. It is safe to call more than once.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

func slice(src []byte, start, end int) string {
	start = max(0, min(start, len(src)))
	end = max(start, min(end, len(src)))
	return string(src[start:end])
}
