package extractor

import (
	"testing"

	"github.com/hdlxref/hdlfacts/internal/cst/cstfake"
	"github.com/hdlxref/hdlfacts/internal/factnode"
)

// testDialect maps a small vocabulary directly onto canonical kinds, letting
// these tests stay independent of any concrete grammar (spec §8's seed
// scenarios are grammar-neutral).
var testDialect = MapDialect{
	"module":        kindModuleDecl,
	"instantiation": kindModuleInstantiation,
	"instance":      kindNone, // consumed via the "instance" field, not visited generically
	"package":       kindPackageDecl,
	"import":        kindImportDecl,
	"vardecl":       kindVariableDecl,
	"macrodef":      kindMacroDef,
	"macrocall":     kindMacroCall,
	"ref":           kindIdentifierRef,
	"qualified":     kindQualifiedRef,
}

func wantAnchor(t *testing.T, n *factnode.Node, i int, value string, start, end uint32) {
	t.Helper()
	if i >= len(n.Data.Anchors) {
		t.Fatalf("%s: anchor %d missing (have %d)", n.Data.Kind, i, len(n.Data.Anchors))
	}
	a := n.Data.Anchors[i]
	if a.Value != value || a.Start != start || a.End != end {
		t.Errorf("%s anchor %d = %q@%d:%d, want %q@%d:%d", n.Data.Kind, i, a.Value, a.Start, a.End, value, start, end)
	}
}

// scenario 1: empty file.
func TestBuild_EmptyFile(t *testing.T) {
	source := []byte("")
	root := cstfake.New("source_file", 0, 0, "")
	b := New(testDialect)
	tree := b.Build(root, source, "v.v")

	if tree.Data.Kind != factnode.File {
		t.Fatalf("root kind = %v, want File", tree.Data.Kind)
	}
	wantAnchor(t, tree, 0, "v.v", 0, 0)
	wantAnchor(t, tree, 1, "", 0, 0)
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
}

// scenario 2: `module foo; endmodule: foo`.
func TestBuild_EmptyModule(t *testing.T) {
	source := []byte("module foo; endmodule: foo")
	name := cstfake.New("ident", 7, 10, "").Field("name")
	end := cstfake.New("ident", 23, 26, "").Field("end_label")
	mod := cstfake.New("module", 0, 27, "").Add(name, end)
	root := cstfake.New("source_file", 0, 27, "").Add(mod)

	tree := New(testDialect).Build(root, source, "v.v")

	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	m := tree.Children[0]
	if m.Data.Kind != factnode.Module {
		t.Fatalf("child kind = %v, want Module", m.Data.Kind)
	}
	if len(m.Data.Anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(m.Data.Anchors))
	}
	wantAnchor(t, m, 0, "foo", 7, 10)
	wantAnchor(t, m, 1, "foo", 23, 26)
}

// module with no end label: anchor count reduces by one rather than
// emitting a spurious second anchor.
func TestBuild_ModuleWithoutEndLabel(t *testing.T) {
	source := []byte("module foo; endmodule")
	name := cstfake.New("ident", 7, 10, "").Field("name")
	mod := cstfake.New("module", 0, 21, "").Add(name)
	root := cstfake.New("source_file", 0, 21, "").Add(mod)

	tree := New(testDialect).Build(root, source, "v.v")
	m := tree.Children[0]
	if len(m.Data.Anchors) != 1 {
		t.Fatalf("expected 1 anchor, got %d", len(m.Data.Anchors))
	}
}

// scenario 3: one instance.
// `module bar; endmodule: bar module foo; bar b1(); endmodule: foo`
func TestBuild_OneInstance(t *testing.T) {
	source := []byte("module bar; endmodule: bar module foo; bar b1(); endmodule: foo")

	barName := cstfake.New("ident", 7, 10, "").Field("name")
	barEnd := cstfake.New("ident", 23, 26, "").Field("end_label")
	barMod := cstfake.New("module", 0, 27, "").Add(barName, barEnd)

	fooName := cstfake.New("ident", 34, 37, "").Field("name")
	fooEnd := cstfake.New("ident", 60, 63, "").Field("end_label")

	instType := cstfake.New("ident", 39, 42, "").Field("type")
	instName := cstfake.New("ident", 43, 45, "").Field("name")
	instDecl := cstfake.New("instance", 39, 48, "").Field("instance").Add(instType, instName)
	inst := cstfake.New("instantiation", 39, 48, "").Add(instType, instDecl)

	fooMod := cstfake.New("module", 27, 65, "").Add(fooName, fooEnd, inst)

	root := cstfake.New("source_file", 0, 65, "").Add(barMod, fooMod)

	tree := New(testDialect).Build(root, source, "v.v")
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 top-level modules, got %d", len(tree.Children))
	}
	foo := tree.Children[1]
	if len(foo.Children) != 1 {
		t.Fatalf("expected foo to have 1 child (DataTypeReference), got %d", len(foo.Children))
	}
	dtRef := foo.Children[0]
	if dtRef.Data.Kind != factnode.DataTypeReference {
		t.Fatalf("kind = %v, want DataTypeReference", dtRef.Data.Kind)
	}
	wantAnchor(t, dtRef, 0, "bar", 39, 42)
	if len(dtRef.Children) != 1 {
		t.Fatalf("expected 1 ModuleInstance, got %d", len(dtRef.Children))
	}
	mi := dtRef.Children[0]
	if mi.Data.Kind != factnode.ModuleInstance {
		t.Fatalf("kind = %v, want ModuleInstance", mi.Data.Kind)
	}
	wantAnchor(t, mi, 0, "b1", 43, 45)
}

// named-port connections nest under their ModuleInstance.
func TestBuild_InstanceWithNamedPort(t *testing.T) {
	source := []byte("module foo; bar b1(.clk(c)); endmodule: foo")

	instType := cstfake.New("ident", 12, 15, "").Field("type")
	instName := cstfake.New("ident", 16, 18, "").Field("name")
	port := cstfake.New("ident", 20, 23, "").Field("port")
	actual := cstfake.New("ident", 24, 25, "").Field("actual")
	namedPort := cstfake.New("port_conn", 19, 27, "").Field("named_port").Add(port, actual)
	instDecl := cstfake.New("instance", 16, 28, "").Field("instance").Add(instType, instName, namedPort)
	inst := cstfake.New("instantiation", 12, 28, "").Add(instType, instDecl)

	fooName := cstfake.New("ident", 7, 10, "").Field("name")
	fooEnd := cstfake.New("ident", 40, 43, "").Field("end_label")
	mod := cstfake.New("module", 0, 44, "").Add(fooName, fooEnd, inst)
	root := cstfake.New("source_file", 0, 44, "").Add(mod)

	tree := New(testDialect).Build(root, source, "v.v")
	mi := tree.Children[0].Children[0].Children[0]
	if len(mi.Children) != 1 {
		t.Fatalf("expected 1 named port, got %d", len(mi.Children))
	}
	np := mi.Children[0]
	if np.Data.Kind != factnode.ModuleNamedPort {
		t.Fatalf("kind = %v, want ModuleNamedPort", np.Data.Kind)
	}
	wantAnchor(t, np, 0, "clk", 20, 23)
	if len(np.Children) != 1 || np.Children[0].Data.Kind != factnode.VariableReference {
		t.Fatalf("expected a VariableReference child for the actual, got %v", np.Children)
	}
}

// scenario 4: package import with item.
func TestBuild_PackageImportWithItem(t *testing.T) {
	source := []byte("import p::x;")

	pkg := cstfake.New("ident", 7, 8, "").Field("package")
	item := cstfake.New("ident", 10, 11, "").Field("item")
	imp := cstfake.New("import", 0, 12, "").Add(pkg, item)
	root := cstfake.New("source_file", 0, 12, "").Add(imp)

	tree := New(testDialect).Build(root, source, "v.v")
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	pi := tree.Children[0]
	if pi.Data.Kind != factnode.PackageImport {
		t.Fatalf("kind = %v, want PackageImport", pi.Data.Kind)
	}
	if len(pi.Data.Anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(pi.Data.Anchors))
	}
	wantAnchor(t, pi, 0, "p", 7, 8)
	wantAnchor(t, pi, 1, "x", 10, 11)
}

// scenario 5: wildcard import produces exactly one anchor.
func TestBuild_WildcardImport(t *testing.T) {
	source := []byte("import p::*;")

	pkg := cstfake.New("ident", 7, 8, "").Field("package")
	imp := cstfake.New("import", 0, 12, "").Add(pkg)
	root := cstfake.New("source_file", 0, 12, "").Add(imp)

	tree := New(testDialect).Build(root, source, "v.v")
	pi := tree.Children[0]
	if len(pi.Data.Anchors) != 1 {
		t.Fatalf("expected 1 anchor, got %d", len(pi.Data.Anchors))
	}
	wantAnchor(t, pi, 0, "p", 7, 8)
}

// scenario 6: macro definition and call.
// `\`define TEN 10  module m;  \`TEN  endmodule`
func TestBuild_Macro(t *testing.T) {
	source := []byte("`define TEN 10  module m;  `TEN  endmodule")

	macroName := cstfake.New("ident", 8, 11, "").Field("name")
	macroDef := cstfake.New("macrodef", 0, 14, "").Add(macroName)

	modName := cstfake.New("ident", 23, 24, "").Field("name")
	macroCall := cstfake.New("macrocall", 27, 31, "`TEN")
	mod := cstfake.New("module", 17, 43, "").Add(modName, macroCall)

	root := cstfake.New("source_file", 0, 43, "").Add(macroDef, mod)

	tree := New(testDialect).Build(root, source, "v.v")
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 top-level children, got %d", len(tree.Children))
	}
	m := tree.Children[0]
	if m.Data.Kind != factnode.Macro {
		t.Fatalf("kind = %v, want Macro", m.Data.Kind)
	}
	wantAnchor(t, m, 0, "TEN", 8, 11)

	mod1 := tree.Children[1]
	if len(mod1.Children) != 1 {
		t.Fatalf("expected 1 child under module, got %d", len(mod1.Children))
	}
	mc := mod1.Children[0]
	if mc.Data.Kind != factnode.MacroCall {
		t.Fatalf("kind = %v, want MacroCall", mc.Data.Kind)
	}
	wantAnchor(t, mc, 0, "`TEN", 27, 31)
}

// a typed, comma-declared variable decl yields a DataTypeReference sibling
// plus one VariableDefinition per declared name.
func TestBuild_VariableDeclTypedMultiName(t *testing.T) {
	source := []byte("std_logic a, b;")

	typ := cstfake.New("ident", 0, 9, "").Field("type")
	n1 := cstfake.New("ident", 10, 11, "").Field("name")
	n2 := cstfake.New("ident", 13, 14, "").Field("name")
	decl := cstfake.New("vardecl", 0, 15, "").Add(typ, n1, n2)
	root := cstfake.New("source_file", 0, 15, "").Add(decl)

	tree := New(testDialect).Build(root, source, "v.v")
	if len(tree.Children) != 3 {
		t.Fatalf("expected 3 children (1 type ref + 2 defs), got %d", len(tree.Children))
	}
	if tree.Children[0].Data.Kind != factnode.DataTypeReference {
		t.Fatalf("children[0] kind = %v, want DataTypeReference", tree.Children[0].Data.Kind)
	}
	wantAnchor(t, tree.Children[0], 0, "std_logic", 0, 9)
	if tree.Children[1].Data.Kind != factnode.VariableDefinition || tree.Children[2].Data.Kind != factnode.VariableDefinition {
		t.Fatalf("expected 2 VariableDefinition children, got %v, %v", tree.Children[1].Data.Kind, tree.Children[2].Data.Kind)
	}
	wantAnchor(t, tree.Children[1], 0, "a", 10, 11)
	wantAnchor(t, tree.Children[2], 0, "b", 13, 14)
}

// qualified reference chains are fully consumed as a single MemberReference.
func TestBuild_MemberReference(t *testing.T) {
	source := []byte("p::cls::member")

	seg1 := cstfake.New("ident", 0, 1, "").Field("segment")
	seg2 := cstfake.New("ident", 3, 6, "").Field("segment")
	seg3 := cstfake.New("ident", 8, 14, "").Field("segment")
	qual := cstfake.New("qualified", 0, 14, "").Add(seg1, seg2, seg3)
	root := cstfake.New("source_file", 0, 14, "").Add(qual)

	tree := New(testDialect).Build(root, source, "v.v")
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	mr := tree.Children[0]
	if mr.Data.Kind != factnode.MemberReference {
		t.Fatalf("kind = %v, want MemberReference", mr.Data.Kind)
	}
	if len(mr.Data.Anchors) != 3 {
		t.Fatalf("expected 3 anchors, got %d", len(mr.Data.Anchors))
	}
	wantAnchor(t, mr, 0, "p", 0, 1)
	wantAnchor(t, mr, 1, "cls", 3, 6)
	wantAnchor(t, mr, 2, "member", 8, 14)
}
