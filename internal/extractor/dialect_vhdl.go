package extractor

// VHDLDialect maps github.com/tree-sitter/tree-sitter-vhdl's node-type
// vocabulary onto the canonical construct set. VHDL has no class or textual
// macro constructs, so class_declaration/macro_definition/macro_call never
// appear in a raw VHDL parse tree — their recognizers in builder.go exist
// (the macro ones are covered by cstfake fixtures, see TestBuild_Macro in
// builder_test.go), they are simply unreachable through this particular
// dialect. This mirrors the real system
// this schema is modeled on (Verilog/SystemVerilog), which does have both.
//
// VHDL splits a design unit into a separate entity_declaration (ports) and
// architecture_body (implementation); this dialect projects an
// architecture_body onto the same module_declaration construct as its
// entity, so the resulting Module fact node's children are the
// architecture's instances/signals — a deliberate simplification of the
// entity/architecture split, since the two are linked by name rather than
// CST nesting and spec's Module fact only has one shape.
var VHDLDialect = MapDialect{
	"entity_declaration":       kindModuleDecl,
	"architecture_body":        kindModuleDecl,
	"package_declaration":      kindPackageDecl,
	"package_body":             kindPackageDecl,
	"use_clause":               kindImportDecl,
	"component_instantiation":  kindModuleInstantiation,
	"signal_declaration":       kindVariableDecl,
	"variable_declaration":     kindVariableDecl,
	"constant_declaration":     kindVariableDecl,
	"function_declaration":     kindFunctionDecl,
	"function_body":            kindFunctionDecl,
	"procedure_declaration":    kindTaskDecl,
	"procedure_body":           kindTaskDecl,
	"selected_name":            kindQualifiedRef,
	"function_call":            kindFunctionCall,
	"identifier":               kindIdentifierRef,
	"simple_name":              kindIdentifierRef,
}
