// Package factnode defines the language-neutral indexing-facts tree that
// Stage 1 (internal/extractor) produces and Stage 2 (internal/kythe)
// consumes. It has no dependency on the CST or on Kythe's wire format.
package factnode

import "github.com/hdlxref/hdlfacts/internal/anchor"

// Type is the closed set of recognized fact kinds (spec §3).
type Type int

const (
	File Type = iota
	Module
	ModuleInstance
	ModuleNamedPort
	VariableDefinition
	VariableReference
	DataTypeReference
	FunctionOrTask
	FunctionCall
	Class
	ClassInstance
	Package
	PackageImport
	Macro
	MacroCall
	MemberReference
)

func (t Type) String() string {
	switch t {
	case File:
		return "File"
	case Module:
		return "Module"
	case ModuleInstance:
		return "ModuleInstance"
	case ModuleNamedPort:
		return "ModuleNamedPort"
	case VariableDefinition:
		return "VariableDefinition"
	case VariableReference:
		return "VariableReference"
	case DataTypeReference:
		return "DataTypeReference"
	case FunctionOrTask:
		return "FunctionOrTask"
	case FunctionCall:
		return "FunctionCall"
	case Class:
		return "Class"
	case ClassInstance:
		return "ClassInstance"
	case Package:
		return "Package"
	case PackageImport:
		return "PackageImport"
	case Macro:
		return "Macro"
	case MacroCall:
		return "MacroCall"
	case MemberReference:
		return "MemberReference"
	default:
		return "Unknown"
	}
}

// Data is the payload carried by every Node: a kind tag plus its ordered
// anchors. The meaning of each anchor position is fixed per kind (spec §3
// Table 1) and is documented on the constructors in internal/extractor and
// consumed positionally in internal/kythe.
type Data struct {
	Kind    Type
	Anchors []anchor.Anchor
}

// Node is a tree node owned by its parent; the root has no parent. Children
// represent structural containment (a module's instances, a package's
// members, ...).
type Node struct {
	Data     Data
	Parent   *Node
	Children []*Node
}

// NewRoot builds the File root required by spec §3: anchors[0] is the
// filename, anchors[1] is the entire file contents.
func NewRoot(filename string, source []byte) *Node {
	return &Node{Data: Data{
		Kind: File,
		Anchors: []anchor.Anchor{
			anchor.New(filename, 0, 0),
			anchor.New(string(source), 0, uint32(len(source))),
		},
	}}
}

// AddChild appends a new fact node under n and returns it.
func (n *Node) AddChild(kind Type, anchors ...anchor.Anchor) *Node {
	child := &Node{Data: Data{Kind: kind, Anchors: anchors}, Parent: n}
	n.Children = append(n.Children, child)
	return child
}

// FirstAnchor returns Anchors[0], panicking if the node has none. Every fact
// kind in Table 1 defines at least one anchor, so a call site holding a Node
// producing zero anchors is a builder bug.
func (n *Node) FirstAnchor() anchor.Anchor {
	if len(n.Data.Anchors) == 0 {
		panic("factnode: " + n.Data.Kind.String() + " has no anchors")
	}
	return n.Data.Anchors[0]
}

// Walk visits n and every descendant, pre-order, calling visit(node) before
// descending into its children — the traversal order Stage 2 relies on
// (spec §5 "a node's own vertex facts... are emitted before its children are
// visited").
func Walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
