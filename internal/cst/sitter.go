package cst

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// sitterNode adapts *sitter.Node to the Node interface. It is the production
// path: cmd/hdlfacts parses real source files through go-tree-sitter and
// wraps the resulting tree with FromSitter before handing it to Stage 1.
type sitterNode struct {
	n      *sitter.Node
	parent *sitter.Node
	index  int
}

// FromSitter wraps a tree-sitter root or subtree node as a cst.Node.
func FromSitter(n *sitter.Node) Node {
	if n == nil {
		return nil
	}
	return &sitterNode{n: n, index: -1}
}

func (s *sitterNode) Kind() string { return s.n.Type() }

func (s *sitterNode) FieldName() string {
	if s.parent == nil || s.index < 0 {
		return ""
	}
	return s.parent.FieldNameForChild(s.index)
}

func (s *sitterNode) StartByte() uint32 { return s.n.StartByte() }
func (s *sitterNode) EndByte() uint32   { return s.n.EndByte() }

func (s *sitterNode) Text(source []byte) string { return s.n.Content(source) }

func (s *sitterNode) ChildCount() int { return int(s.n.ChildCount()) }

func (s *sitterNode) Child(i int) Node {
	c := s.n.Child(i)
	if c == nil {
		return nil
	}
	return &sitterNode{n: c, parent: s.n, index: i}
}

func (s *sitterNode) ChildByFieldName(name string) Node {
	c := s.n.ChildByFieldName(name)
	if c == nil {
		return nil
	}
	for i := 0; i < int(s.n.ChildCount()); i++ {
		if s.n.Child(i) == c {
			return &sitterNode{n: c, parent: s.n, index: i}
		}
	}
	return &sitterNode{n: c, parent: s.n, index: -1}
}

// Parse runs a tree-sitter parse of source under lang and returns the root
// as a cst.Node. Callers must keep source alive for as long as they read
// anchor text out of the returned tree.
func Parse(ctx context.Context, source []byte, lang *sitter.Language) (Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("cst: parse: %w", err)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("cst: parse produced no root node")
	}
	return FromSitter(root), nil
}
