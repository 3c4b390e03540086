package kythe

// Fact and edge name constants (spec §6, "fixed strings").
const (
	FactNodeKind = "/kythe/node/kind"
	FactSubkind  = "/kythe/subkind"
	FactComplete = "/kythe/complete"
	FactText     = "/kythe/text"
	FactLocStart = "/kythe/loc/start"
	FactLocEnd   = "/kythe/loc/end"
)

const (
	EdgeChildOf     = "/kythe/edge/childof"
	EdgeDefinesBind = "/kythe/edge/defines/binding"
	EdgeRef         = "/kythe/edge/ref"
	EdgeRefCall     = "/kythe/edge/ref/call"
	EdgeRefExpands  = "/kythe/edge/ref/expands"
	EdgeRefImports  = "/kythe/edge/ref/imports"
)

// node/kind and subkind fact values (spec §6).
const (
	NodeFile     = "file"
	NodeRecord   = "record"
	NodeVariable = "variable"
	NodeFunction = "function"
	NodeMacro    = "macro"
	NodePackage  = "package"
	NodeAnchor   = "anchor"

	SubkindModule = "module"

	CompleteDefinition = "definition"
)
