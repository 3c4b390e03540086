// Package cstfake builds cst.Node trees by hand for tests, the way
// indexing_facts_tree_extractor_test.cc hand-builds expected fact trees
// instead of driving a real parser. It lets internal/extractor and
// internal/kythe tests pin down exact byte offsets without depending on a
// concrete grammar's node-type vocabulary.
package cstfake

import "github.com/hdlxref/hdlfacts/internal/cst"

// Node is a fake cst.Node built directly from field values, with children
// attached via Add.
type Node struct {
	kind     string
	field    string
	start    uint32
	end      uint32
	text     string
	children []*Node
}

// New creates a leaf or interior fake node. A non-empty text is what
// Text(source) will return regardless of what the byte range actually
// contains; with an empty text, Text returns source[start:end].
func New(kind string, start, end uint32, text string) *Node {
	return &Node{kind: kind, start: start, end: end, text: text}
}

// Field sets the field name this node is bound to under its parent, and
// returns n for chaining.
func (n *Node) Field(name string) *Node {
	n.field = name
	return n
}

// Add appends children and returns n for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

func (n *Node) Kind() string      { return n.kind }
func (n *Node) FieldName() string { return n.field }
func (n *Node) StartByte() uint32 { return n.start }
func (n *Node) EndByte() uint32   { return n.end }

func (n *Node) Text(source []byte) string {
	if n.text != "" {
		return n.text
	}
	return string(source[n.start:n.end])
}

func (n *Node) ChildCount() int { return len(n.children) }

func (n *Node) Child(i int) cst.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) ChildByFieldName(name string) cst.Node {
	for _, c := range n.children {
		if c.field == name {
			return c
		}
	}
	return nil
}
