// Package cst is the read-only CST adapter Stage 1 consumes. The parser and
// grammar that produce the tree are external collaborators (spec §1); this
// package only defines the shape Stage 1 depends on and one production
// adapter over github.com/smacker/go-tree-sitter.
package cst

// Node is a single position in a concrete syntax tree, exposed by
// nonterminal tag (Kind) or, for leaves, by token category. Grammars differ
// in what strings Kind returns; internal/extractor's dialect layer projects
// a concrete grammar's vocabulary onto the canonical construct tags Stage 1
// switches on.
type Node interface {
	// Kind is the grammar's node-type string (a nonterminal tag for interior
	// nodes, a token category for leaves).
	Kind() string

	// FieldName is the name this node is bound to in its parent's grammar
	// rule ("name", "entity", "label", ...), or "" if the grammar assigns
	// none.
	FieldName() string

	// StartByte and EndByte give the node's byte span within the source
	// buffer passed to Text.
	StartByte() uint32
	EndByte() uint32

	// Text returns the node's source slice given the full file contents.
	Text(source []byte) string

	ChildCount() int
	Child(i int) Node

	// ChildByFieldName returns the first child bound to the given field
	// name, or nil if none matches.
	ChildByFieldName(name string) Node
}

// Children returns all of n's children as a slice, for callers that prefer
// range over index-based access.
func Children(n Node) []Node {
	out := make([]Node, n.ChildCount())
	for i := range out {
		out[i] = n.Child(i)
	}
	return out
}
