package extractor

// canonicalKind is the fixed vocabulary Stage 1's builder switches on (spec
// §4.1 "Constructs recognized"). A concrete grammar's own node-type strings
// are translated into this vocabulary by a Dialect before the builder ever
// sees them, so the builder itself has no grammar-specific knowledge.
type canonicalKind string

const (
	kindModuleDecl          canonicalKind = "module_declaration"
	kindModuleInstantiation canonicalKind = "module_instantiation"
	kindPackageDecl         canonicalKind = "package_declaration"
	kindClassDecl           canonicalKind = "class_declaration"
	kindFunctionDecl        canonicalKind = "function_declaration"
	kindTaskDecl            canonicalKind = "task_declaration"
	kindVariableDecl        canonicalKind = "variable_declaration"
	kindMacroDef            canonicalKind = "macro_definition"
	kindMacroCall           canonicalKind = "macro_call"
	kindImportDecl          canonicalKind = "import_declaration"
	kindQualifiedRef        canonicalKind = "qualified_reference"
	kindFunctionCall        canonicalKind = "function_call"
	kindIdentifierRef       canonicalKind = "reference_identifier"

	kindNone canonicalKind = ""
)

// Dialect maps a concrete grammar's node-type strings onto canonicalKind.
// A grammar with no surface form for a given construct simply never
// produces a raw kind that maps to it; the builder's recognizer for that
// construct still exists and is exercised directly via cstfake fixtures.
type Dialect interface {
	Canonical(rawKind string) canonicalKind
}

// MapDialect is a Dialect backed by a plain lookup table, the shape every
// dialect mapping in this package uses.
type MapDialect map[string]canonicalKind

func (m MapDialect) Canonical(rawKind string) canonicalKind {
	if k, ok := m[rawKind]; ok {
		return k
	}
	return kindNone
}
