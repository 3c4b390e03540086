package extractor

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tree_sitter_vhdl "github.com/tree-sitter/tree-sitter-vhdl"
)

// Registered pairs a Dialect with the tree-sitter grammar it was written
// against, so a dialect name out of config resolves to everything the
// pipeline needs to turn source bytes into a cst.Node tree.
type Registered struct {
	Name     string
	Dialect  Dialect
	Language *sitter.Language
}

// registry is intentionally small: VHDL is the only dialect with a real
// grammar in this tree. Adding a second means adding its MapDialect next to
// VHDLDialect and a second entry here, same shape as
// github.com/smacker/go-tree-sitter's own per-language subpackages.
var registry = map[string]Registered{
	"vhdl": {
		Name:     "vhdl",
		Dialect:  VHDLDialect,
		Language: sitter.NewLanguage(tree_sitter_vhdl.Language()),
	},
}

// Lookup resolves a dialect name (typically Config.Dialect) to its Dialect
// and grammar.
func Lookup(name string) (Registered, error) {
	r, ok := registry[name]
	if !ok {
		return Registered{}, fmt.Errorf("extractor: unknown dialect %q", name)
	}
	return r, nil
}
