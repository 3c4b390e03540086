// Package extractor implements Stage 1 (spec §4.1): projecting a CST into
// the language-neutral indexing-facts tree defined by internal/factnode.
package extractor

import (
	"github.com/hdlxref/hdlfacts/internal/anchor"
	"github.com/hdlxref/hdlfacts/internal/cst"
	"github.com/hdlxref/hdlfacts/internal/factnode"
)

// Builder walks a cst.Node tree and produces a factnode.Node tree. It holds
// no per-call state beyond the dialect table, so one Builder is safe to
// reuse across files.
type Builder struct {
	Dialect Dialect
}

// New returns a Builder for the given dialect.
func New(dialect Dialect) *Builder {
	return &Builder{Dialect: dialect}
}

// Build projects root into a File-rooted fact tree. On any well-formed CST
// this runs to completion — there is nothing fallible to report (spec
// §4.1 "Contract").
func (b *Builder) Build(root cst.Node, source []byte, filename string) *factnode.Node {
	file := factnode.NewRoot(filename, source)
	ancestors := []*factnode.Node{file}
	b.visitChildren(root, source, &ancestors)
	return file
}

func top(ancestors *[]*factnode.Node) *factnode.Node {
	a := *ancestors
	return a[len(a)-1]
}

func push(ancestors *[]*factnode.Node, n *factnode.Node) {
	*ancestors = append(*ancestors, n)
}

func pop(ancestors *[]*factnode.Node) {
	a := *ancestors
	*ancestors = a[:len(a)-1]
}

func textAnchor(n cst.Node, source []byte) anchor.Anchor {
	return anchor.New(n.Text(source), n.StartByte(), n.EndByte())
}

// fieldAnchor returns the anchor for the child bound to fieldName, and
// whether that child exists.
func fieldAnchor(n cst.Node, fieldName string, source []byte) (anchor.Anchor, bool) {
	c := n.ChildByFieldName(fieldName)
	if c == nil {
		return anchor.Anchor{}, false
	}
	return textAnchor(c, source), true
}

func (b *Builder) visitChildren(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	if n == nil {
		return
	}
	for i := 0; i < n.ChildCount(); i++ {
		b.visit(n.Child(i), source, ancestors)
	}
}

// visitChildrenExcept recurses into every child of n except those bound to
// one of the given field names — used once a construct's own recognizer has
// already consumed those fields as anchors, so they are not re-visited as
// generic identifier references.
func (b *Builder) visitChildrenExcept(n cst.Node, source []byte, ancestors *[]*factnode.Node, skipFields ...string) {
	if n == nil {
		return
	}
	skip := make(map[string]bool, len(skipFields))
	for _, f := range skipFields {
		skip[f] = true
	}
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && skip[c.FieldName()] {
			continue
		}
		b.visit(c, source, ancestors)
	}
}

func (b *Builder) visit(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	if n == nil {
		return
	}
	switch b.Dialect.Canonical(n.Kind()) {
	case kindModuleDecl:
		b.buildModule(n, source, ancestors)
	case kindModuleInstantiation:
		b.buildInstantiation(n, source, ancestors)
	case kindPackageDecl:
		b.buildScoping(n, source, ancestors, factnode.Package)
	case kindClassDecl:
		b.buildScoping(n, source, ancestors, factnode.Class)
	case kindFunctionDecl, kindTaskDecl:
		b.buildFunctionOrTask(n, source, ancestors)
	case kindVariableDecl:
		b.buildVariableDecl(n, source, ancestors)
	case kindMacroDef:
		b.buildMacroDef(n, source, ancestors)
	case kindMacroCall:
		top(ancestors).AddChild(factnode.MacroCall, textAnchor(n, source))
	case kindImportDecl:
		b.buildImport(n, source, ancestors)
	case kindQualifiedRef:
		b.buildMemberReference(n, source, ancestors)
	case kindFunctionCall:
		b.buildFunctionCall(n, source, ancestors)
	case kindIdentifierRef:
		top(ancestors).AddChild(factnode.VariableReference, textAnchor(n, source))
	default:
		b.visitChildren(n, source, ancestors)
	}
}

// buildModule recognizes a module (or class-of-module dialect construct,
// see VHDLDialect) declaration. Missing end labels reduce the anchor count
// by one (spec's edge-case policy) rather than emitting a spurious anchor.
func (b *Builder) buildModule(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	name, ok := fieldAnchor(n, "name", source)
	if !ok {
		// No recognizable name: nothing to project, but still walk children
		// transparently so nested constructs are not lost.
		b.visitChildren(n, source, ancestors)
		return
	}
	anchors := []anchor.Anchor{name}
	if end, ok := fieldAnchor(n, "end_label", source); ok {
		anchors = append(anchors, end)
	}
	module := top(ancestors).AddChild(factnode.Module, anchors...)
	push(ancestors, module)
	b.visitChildrenExcept(n, source, ancestors, "name", "end_label")
	pop(ancestors)
}

func (b *Builder) buildScoping(n cst.Node, source []byte, ancestors *[]*factnode.Node, kind factnode.Type) {
	name, ok := fieldAnchor(n, "name", source)
	if !ok {
		b.visitChildren(n, source, ancestors)
		return
	}
	anchors := []anchor.Anchor{name}
	if end, ok := fieldAnchor(n, "end_label", source); ok {
		anchors = append(anchors, end)
	}
	node := top(ancestors).AddChild(kind, anchors...)
	push(ancestors, node)
	b.visitChildrenExcept(n, source, ancestors, "name", "end_label")
	pop(ancestors)
}

// buildFunctionOrTask recognizes a function or task declaration. Unlike
// Module/Class/Package, no end-label handling is required (spec §4.2).
func (b *Builder) buildFunctionOrTask(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	name, ok := fieldAnchor(n, "name", source)
	if !ok {
		b.visitChildren(n, source, ancestors)
		return
	}
	fn := top(ancestors).AddChild(factnode.FunctionOrTask, name)
	push(ancestors, fn)
	b.visitChildrenExcept(n, source, ancestors, "name")
	pop(ancestors)
}

// buildVariableDecl recognizes a variable/signal/constant declaration. If
// the declaration has a "type" field, that type reference is
// projected as a DataTypeReference sibling before the VariableDefinition(s)
// it types; one VariableDefinition is emitted per declared identifier.
func (b *Builder) buildVariableDecl(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	if typ, ok := fieldAnchor(n, "type", source); ok {
		top(ancestors).AddChild(factnode.DataTypeReference, typ)
	}
	names := declaredNames(n)
	if len(names) == 0 {
		b.visitChildrenExcept(n, source, ancestors, "type")
		return
	}
	for _, id := range names {
		top(ancestors).AddChild(factnode.VariableDefinition, textAnchor(id, source))
	}
	b.visitChildrenExcept(n, source, ancestors, "type", "name")
}

// declaredNames collects every child bound to the "name" field: VHDL and
// Verilog-family grammars alike allow a comma-separated declarator list
// ("a, b : std_logic;"), which surfaces as repeated same-named fields.
func declaredNames(n cst.Node) []cst.Node {
	var out []cst.Node
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.FieldName() == "name" {
			out = append(out, c)
		}
	}
	return out
}

// buildMacroDef recognizes a macro definition. The bare name (no leading
// backtick) is what CreateSignature keys off of at emission time.
func (b *Builder) buildMacroDef(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	name, ok := fieldAnchor(n, "name", source)
	if !ok {
		return
	}
	top(ancestors).AddChild(factnode.Macro, name)
}

// buildImport recognizes `import pkg::item;` and `import pkg::*;`. A
// wildcard import produces a PackageImport with exactly one anchor.
func (b *Builder) buildImport(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	pkg, ok := fieldAnchor(n, "package", source)
	if !ok {
		return
	}
	if item, ok := fieldAnchor(n, "item", source); ok {
		top(ancestors).AddChild(factnode.PackageImport, pkg, item)
		return
	}
	top(ancestors).AddChild(factnode.PackageImport, pkg)
}

// buildInstantiation recognizes a module instantiation: always a
// DataTypeReference fact (the instantiated type) whose children are one
// ModuleInstance per declared instance name, each carrying its named-port
// connections as ModuleNamedPort children.
func (b *Builder) buildInstantiation(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	typ, ok := fieldAnchor(n, "type", source)
	if !ok {
		b.visitChildren(n, source, ancestors)
		return
	}
	dtRef := top(ancestors).AddChild(factnode.DataTypeReference, typ)
	push(ancestors, dtRef)
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.FieldName() != "instance" {
			continue
		}
		b.buildInstanceDeclarator(c, source, ancestors)
	}
	pop(ancestors)
}

func (b *Builder) buildInstanceDeclarator(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	name, ok := fieldAnchor(n, "name", source)
	if !ok {
		return
	}
	anchors := []anchor.Anchor{name}
	var namedPorts []cst.Node
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch c.FieldName() {
		case "positional_port":
			anchors = append(anchors, textAnchor(c, source))
		case "named_port":
			namedPorts = append(namedPorts, c)
		}
	}
	instance := top(ancestors).AddChild(factnode.ModuleInstance, anchors...)
	for _, p := range namedPorts {
		b.buildNamedPort(p, source, instance)
	}
}

func (b *Builder) buildNamedPort(n cst.Node, source []byte, instance *factnode.Node) {
	portName, ok := fieldAnchor(n, "port", source)
	if !ok {
		return
	}
	named := instance.AddChild(factnode.ModuleNamedPort, portName)
	if actual := n.ChildByFieldName("actual"); actual != nil {
		named.AddChild(factnode.VariableReference, textAnchor(actual, source))
	}
}

// buildFunctionCall recognizes name(...) and pkg::cls::name(...) calls. A
// single-anchor call resolves directly; a qualified callee is carried as
// one FunctionCall fact with the full chain of anchors (spec Table 1
// "name ∣ qualifier chain"), which the emitter forwards to MemberReference
// handling with is_call = true.
func (b *Builder) buildFunctionCall(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	callee := n.ChildByFieldName("callee")
	if callee == nil {
		b.visitChildren(n, source, ancestors)
		return
	}
	var anchors []anchor.Anchor
	if b.Dialect.Canonical(callee.Kind()) == kindQualifiedRef {
		anchors = qualifiedChain(callee, source)
	} else {
		anchors = []anchor.Anchor{textAnchor(callee, source)}
	}
	if len(anchors) == 0 {
		return
	}
	top(ancestors).AddChild(factnode.FunctionCall, anchors...)
	b.visitChildrenExcept(n, source, ancestors, "callee")
}

// buildMemberReference recognizes an arbitrary-depth qualified reference
// (pkg::cls::member, a.b.c, ...) as a single fully-consumed MemberReference
// fact; it has no structurally relevant children left to descend into.
func (b *Builder) buildMemberReference(n cst.Node, source []byte, ancestors *[]*factnode.Node) {
	anchors := qualifiedChain(n, source)
	if len(anchors) == 0 {
		return
	}
	top(ancestors).AddChild(factnode.MemberReference, anchors...)
}

// qualifiedChain flattens a qualified-reference node into its ordered
// segment anchors, outermost first.
func qualifiedChain(n cst.Node, source []byte) []anchor.Anchor {
	var anchors []anchor.Anchor
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.FieldName() == "segment" {
			anchors = append(anchors, textAnchor(c, source))
		}
	}
	return anchors
}
