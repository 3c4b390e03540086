package kythe

import (
	"testing"

	"github.com/hdlxref/hdlfacts/internal/anchor"
	"github.com/hdlxref/hdlfacts/internal/factnode"
	"github.com/hdlxref/hdlfacts/internal/sink"
)

// recordingSink captures every record Emit writes, in emission order, for
// direct assertion without involving a real Sink implementation.
type recordingSink struct {
	facts []sink.Fact
	edges []sink.Edge
}

func (s *recordingSink) WriteFact(f sink.Fact) error {
	s.facts = append(s.facts, f)
	return nil
}

func (s *recordingSink) WriteEdge(e sink.Edge) error {
	s.edges = append(s.edges, e)
	return nil
}

func (s *recordingSink) edgesOfKind(kind string) []sink.Edge {
	var out []sink.Edge
	for _, e := range s.edges {
		if e.EdgeKind == kind {
			out = append(out, e)
		}
	}
	return out
}

func newEmitter(s *recordingSink) *Emitter {
	return &Emitter{FilePath: "test.vhd", Language: "vhdl", Sink: s}
}

func a(value string, start, end uint32) anchor.Anchor {
	return anchor.New(value, start, end)
}

func TestEmit_EmptyFile(t *testing.T) {
	root := factnode.NewRoot("empty.vhd", []byte(""))
	s := &recordingSink{}
	if err := newEmitter(s).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	var sawKind, sawText bool
	for _, f := range s.facts {
		switch f.FactName {
		case FactNodeKind:
			sawKind = true
		case FactText:
			sawText = true
		}
	}
	if !sawKind || !sawText {
		t.Errorf("expected file kind and text facts, got %+v", s.facts)
	}
	if len(s.edges) != 0 {
		t.Errorf("expected no edges for an empty file, got %+v", s.edges)
	}
}

func TestEmit_EmptyModule(t *testing.T) {
	source := []byte("entity foo is end foo;")
	root := factnode.NewRoot("m.vhd", source)
	root.AddChild(factnode.Module, a("foo", 7, 10), a("foo", 18, 21))

	s := &recordingSink{}
	if err := newEmitter(s).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	defines := s.edgesOfKind(EdgeDefinesBind)
	if len(defines) != 1 {
		t.Fatalf("expected 1 defines/binding edge, got %d", len(defines))
	}

	refs := s.edgesOfKind(EdgeRef)
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref edge for the end label, got %d", len(refs))
	}

	childOfs := s.edgesOfKind(EdgeChildOf)
	if len(childOfs) != 1 {
		t.Fatalf("expected the module to emit one childof edge to its enclosing file, got %d", len(childOfs))
	}
}

func TestEmit_ModuleInstanceResolvesDataTypeReference(t *testing.T) {
	source := []byte("entity foo is end; entity top is end; component_instantiation")
	root := factnode.NewRoot("top.vhd", source)

	foo := root.AddChild(factnode.Module, a("foo", 7, 10))
	_ = foo

	top := root.AddChild(factnode.Module, a("top", 27, 30))
	ref := top.AddChild(factnode.DataTypeReference, a("foo", 50, 53))
	ref.AddChild(factnode.ModuleInstance, a("inst0", 54, 59))

	s := &recordingSink{}
	if err := newEmitter(s).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	refs := s.edgesOfKind(EdgeRef)
	if len(refs) != 1 {
		t.Fatalf("expected the DataTypeReference to resolve to foo's definition, got %d ref edges", len(refs))
	}

	childOfs := s.edgesOfKind(EdgeChildOf)
	var instChildOf bool
	for _, e := range childOfs {
		if e.Source.Signature == "inst0#top#" && e.Target.Signature == "top#" {
			instChildOf = true
		}
	}
	if !instChildOf {
		t.Errorf("expected ModuleInstance to emit a childof edge to its enclosing module")
	}
}

func TestEmit_MacroDefinitionAndCall(t *testing.T) {
	source := []byte("`define FOO 1 `FOO")
	root := factnode.NewRoot("m.vhd", source)
	root.AddChild(factnode.Macro, a("FOO", 8, 11))
	root.AddChild(factnode.MacroCall, a("`FOO", 15, 19))

	s := &recordingSink{}
	if err := newEmitter(s).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	expands := s.edgesOfKind(EdgeRefExpands)
	if len(expands) != 1 {
		t.Fatalf("expected 1 ref/expands edge, got %d", len(expands))
	}
	if expands[0].Target.Signature != CreateSignature("FOO") {
		t.Errorf("expands target signature = %q, want %q", expands[0].Target.Signature, CreateSignature("FOO"))
	}
}

func TestEmit_PackageNeverEmitsChildOf(t *testing.T) {
	source := []byte("package pkg is constant x : integer; end pkg;")
	root := factnode.NewRoot("p.vhd", source)
	pkg := root.AddChild(factnode.Package, a("pkg", 8, 11), a("pkg", 41, 44))
	pkg.AddChild(factnode.VariableDefinition, a("x", 24, 25))

	s := &recordingSink{}
	if err := newEmitter(s).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	pkgSig := CreateSignature("pkg")
	for _, e := range s.edgesOfKind(EdgeChildOf) {
		if e.Source.Signature == pkgSig {
			t.Errorf("file-level Package node must never emit a childof edge for itself, got one: %+v", e)
		}
	}
}

func TestEmit_WildcardPackageImportCopiesMembers(t *testing.T) {
	source := []byte("package pkg is constant x : integer; end pkg; import pkg::*;")
	root := factnode.NewRoot("p.vhd", source)
	pkg := root.AddChild(factnode.Package, a("pkg", 8, 11))
	pkg.AddChild(factnode.VariableDefinition, a("x", 25, 26))

	top := root.AddChild(factnode.Module, a("top", 55, 58))
	top.AddChild(factnode.PackageImport, a("pkg", 62, 65))
	top.AddChild(factnode.VariableReference, a("x", 66, 67))

	s := &recordingSink{}
	if err := newEmitter(s).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	imports := s.edgesOfKind(EdgeRefImports)
	if len(imports) != 1 {
		t.Fatalf("expected 1 ref/imports edge, got %d", len(imports))
	}

	wantSig := CreateSignature("x") + CreateSignature("pkg")
	refs := s.edgesOfKind(EdgeRef)
	var resolvedX bool
	for _, e := range refs {
		if e.Target.Signature == wantSig {
			resolvedX = true
		}
	}
	if !resolvedX {
		t.Errorf("expected the VariableReference to x to resolve to %q after a wildcard import, got refs=%+v", wantSig, refs)
	}
}

func TestEmit_VariableReferenceNeverDrops(t *testing.T) {
	source := []byte("entity top is end; signal_ref unresolved_name")
	root := factnode.NewRoot("top.vhd", source)
	top := root.AddChild(factnode.Module, a("top", 7, 10))
	top.AddChild(factnode.VariableReference, a("unresolved_name", 30, 45))

	s := &recordingSink{}
	if err := newEmitter(s).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	refs := s.edgesOfKind(EdgeRef)
	if len(refs) != 1 {
		t.Fatalf("an unresolved VariableReference must still emit exactly one ref edge, got %d", len(refs))
	}
}
