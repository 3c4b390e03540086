package kythe

// VName identifies an emitted vertex. Only Signature and Path are ever
// populated by this core; Language, Root and Corpus are carried through
// from configuration so a downstream consumer can disambiguate across
// repositories (spec §6's vname shape).
type VName struct {
	Signature string
	Path      string
	Language  string
	Root      string
	Corpus    string
}

// CreateSignature renders the inner-most signature fragment for name: a
// trailing "#" separator, no parent qualification.
func CreateSignature(name string) string {
	return name + "#"
}
