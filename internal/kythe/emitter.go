// Package kythe implements Stage 2 (spec §4.2, §5): walking the facts tree
// produced by internal/extractor and emitting Kythe-shaped fact/edge
// records to a sink. VName synthesis, scope bookkeeping and edge emission
// policy are grounded bit-for-bit on verilog/tools/kythe/kythe_facts_extractor.cc,
// the original implementation this schema was distilled from.
package kythe

import (
	"encoding/base64"
	"strconv"

	"github.com/agnivade/levenshtein"
	"github.com/sirupsen/logrus"

	"github.com/hdlxref/hdlfacts/internal/anchor"
	"github.com/hdlxref/hdlfacts/internal/factnode"
	"github.com/hdlxref/hdlfacts/internal/metrics"
	"github.com/hdlxref/hdlfacts/internal/scope"
	"github.com/hdlxref/hdlfacts/internal/sink"
)

// Emitter walks one file's facts tree and writes records to Sink. Not safe
// for concurrent use by multiple goroutines on the same tree; the pipeline
// creates one Emitter per file.
type Emitter struct {
	FilePath string
	Language string
	Root     string
	Corpus   string
	Sink     sink.Sink
	Metrics  *metrics.Metrics
	Log      *logrus.Entry

	ancestors scope.Ancestors
	vertical  scope.Vertical
	flattened scope.Flattened
}

// Emit runs the package pre-pass (spec §4.2, §9 "package pre-pass") and
// then the main traversal starting at the File root.
func (e *Emitter) Emit(root *factnode.Node) error {
	if e.flattened == nil {
		e.flattened = scope.Flattened{}
	}
	if err := e.createPackageScopes(root); err != nil {
		return err
	}
	return e.visitTagged(root)
}

// createPackageScopes processes every direct File-level Package child before
// the main pass touches any of its non-package siblings (spec §9 "the
// package pre-pass only processes packages at the direct file level").
func (e *Emitter) createPackageScopes(root *factnode.Node) error {
	for _, child := range root.Children {
		if child.Data.Kind != factnode.Package {
			continue
		}
		vn, err := e.extractPackageDeclaration(child)
		if err != nil {
			return err
		}
		if err := e.visitScoped(child, vn); err != nil {
			return err
		}
	}
	return nil
}

// visitTagged is the per-node dispatch: compute this node's VName (if any),
// fold it into the enclosing vertical scope, emit its childof edge, then
// recurse. A Package directly under the File root is a no-op here — it was
// already fully processed by createPackageScopes. A nested Package is
// handled like any other scoping definition.
func (e *Emitter) visitTagged(n *factnode.Node) error {
	if n.Data.Kind == factnode.Package && n.Parent != nil && n.Parent.Data.Kind == factnode.File {
		return nil
	}
	vn, err := e.dispatch(n)
	if err != nil {
		return err
	}
	e.addToVerticalScope(n.Data.Kind, vn)
	if err := e.maybeChildOf(n.Data.Kind, vn); err != nil {
		return err
	}
	return e.visitScoped(n, vn)
}

func (e *Emitter) dispatch(n *factnode.Node) (VName, error) {
	switch n.Data.Kind {
	case factnode.File:
		return e.extractFile(n)
	case factnode.Module:
		return e.extractModule(n)
	case factnode.ModuleInstance:
		return e.extractModuleInstance(n)
	case factnode.VariableDefinition:
		return e.extractVariableDefinition(n)
	case factnode.Macro:
		return e.extractMacroDefinition(n)
	case factnode.Class:
		return e.extractClass(n)
	case factnode.ClassInstance:
		return e.extractClassInstance(n)
	case factnode.FunctionOrTask:
		return e.extractFunctionOrTask(n)
	case factnode.Package:
		return e.extractPackageDeclaration(n)
	case factnode.DataTypeReference:
		return VName{}, e.extractDataTypeReference(n)
	case factnode.ModuleNamedPort:
		return VName{}, e.extractModuleNamedPort(n)
	case factnode.VariableReference:
		return VName{}, e.extractVariableReference(n)
	case factnode.FunctionCall:
		return VName{}, e.extractFunctionCall(n)
	case factnode.PackageImport:
		return VName{}, e.extractPackageImport(n)
	case factnode.MacroCall:
		return VName{}, e.extractMacroCall(n)
	case factnode.MemberReference:
		return VName{}, e.extractMemberReference(n, false)
	default:
		return VName{}, nil
	}
}

func addsToVerticalScope(kind factnode.Type) bool {
	switch kind {
	case factnode.Module, factnode.ModuleInstance, factnode.VariableDefinition,
		factnode.Macro, factnode.Class, factnode.ClassInstance, factnode.FunctionOrTask:
		return true
	}
	return false
}

func (e *Emitter) addToVerticalScope(kind factnode.Type, vn VName) {
	if addsToVerticalScope(kind) {
		e.vertical.Add(toMember(vn))
	}
}

func exemptFromChildOf(kind factnode.Type) bool {
	switch kind {
	case factnode.File, factnode.PackageImport, factnode.VariableReference,
		factnode.DataTypeReference, factnode.MacroCall, factnode.FunctionCall,
		factnode.Macro, factnode.ModuleNamedPort, factnode.MemberReference:
		return true
	}
	return false
}

func (e *Emitter) maybeChildOf(kind factnode.Type, vn VName) error {
	if exemptFromChildOf(kind) {
		return nil
	}
	if e.ancestors.Empty() {
		return nil
	}
	return e.edge(vn, EdgeChildOf, fromMember(e.ancestors.Top()))
}

func opensScope(kind factnode.Type) bool {
	switch kind {
	case factnode.File, factnode.Module, factnode.FunctionOrTask, factnode.Class,
		factnode.Macro, factnode.Package:
		return true
	}
	return false
}

// visitScoped recurses into n's children, opening a fresh lexical frame
// (and pushing vn as the new ancestor) first if n's kind opens a scope, then
// freezes whatever scope was built into the flattened-scope map. The pop
// must happen before ConstructFlattenedScope runs, matching the original's
// Visit(node,vname,current_scope) / ConstructFlattenedScope split.
func (e *Emitter) visitScoped(n *factnode.Node, vn VName) error {
	var frame *scope.Frame
	var popVert, popAnc func()
	if opensScope(n.Data.Kind) {
		frame = &scope.Frame{}
		popVert = e.vertical.Push(frame)
		popAnc = e.ancestors.Push(toMember(vn))
	}
	err := e.visitChildren(n)
	if popVert != nil {
		popVert()
		popAnc()
	}
	if err != nil {
		return err
	}
	return e.constructFlattenedScope(n, vn, frame)
}

func (e *Emitter) visitChildren(n *factnode.Node) error {
	for _, c := range n.Children {
		if err := e.visitTagged(c); err != nil {
			return err
		}
	}
	return nil
}

// constructFlattenedScope freezes n's member list for later qualified
// lookups. Module/Class/Macro/Package/File take the frame just built by
// visitScoped; ModuleInstance/ClassInstance instead copy the flattened
// scope of the definition they instantiate, found via their parent
// DataTypeReference's type anchor, so an instance's ports resolve exactly
// like the module/class it instantiates.
func (e *Emitter) constructFlattenedScope(n *factnode.Node, vn VName, frame *scope.Frame) error {
	switch n.Data.Kind {
	case factnode.File, factnode.Module, factnode.Class, factnode.Macro, factnode.Package:
		var members []scope.Member
		if frame != nil {
			members = frame.Members
		}
		e.flattened.Set(vn.Signature, members)
	case factnode.ModuleInstance, factnode.ClassInstance:
		if n.Parent == nil || len(n.Parent.Data.Anchors) == 0 {
			return nil
		}
		typeName := n.Parent.Data.Anchors[0].Value
		found, ok := e.vertical.Find(CreateSignature(typeName))
		if !ok {
			return nil
		}
		members, _ := e.flattened.Get(fromMember(found).Signature)
		e.flattened.Set(vn.Signature, members)
	}
	return nil
}

// --- construct-level extraction, one method per factnode.Type ---

func (e *Emitter) extractFile(n *factnode.Node) (VName, error) {
	vn := e.vname("")
	codeText := n.Data.Anchors[1].Value
	if err := e.fact(vn, FactNodeKind, NodeFile); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactText, codeText); err != nil {
		return vn, err
	}
	return vn, nil
}

func (e *Emitter) extractModule(n *factnode.Node) (VName, error) {
	anchors := n.Data.Anchors
	name := anchors[0]
	vn := e.vname(e.scopeRelativeSignature(name.Value))
	nameAnchor, err := e.anchorVName(name)
	if err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactNodeKind, NodeRecord); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactSubkind, SubkindModule); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactComplete, CompleteDefinition); err != nil {
		return vn, err
	}
	if err := e.edge(nameAnchor, EdgeDefinesBind, vn); err != nil {
		return vn, err
	}
	if len(anchors) > 1 {
		endAnchor, err := e.anchorVName(anchors[1])
		if err != nil {
			return vn, err
		}
		if err := e.edge(endAnchor, EdgeRef, vn); err != nil {
			return vn, err
		}
	}
	return vn, nil
}

func (e *Emitter) extractClass(n *factnode.Node) (VName, error) {
	anchors := n.Data.Anchors
	name := anchors[0]
	vn := e.vname(e.scopeRelativeSignature(name.Value))
	nameAnchor, err := e.anchorVName(name)
	if err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactNodeKind, NodeRecord); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactComplete, CompleteDefinition); err != nil {
		return vn, err
	}
	if err := e.edge(nameAnchor, EdgeDefinesBind, vn); err != nil {
		return vn, err
	}
	if len(anchors) > 1 {
		endAnchor, err := e.anchorVName(anchors[1])
		if err != nil {
			return vn, err
		}
		if err := e.edge(endAnchor, EdgeRef, vn); err != nil {
			return vn, err
		}
	}
	return vn, nil
}

func (e *Emitter) extractClassInstance(n *factnode.Node) (VName, error) {
	return e.extractDefinitionLike(n, NodeVariable)
}

func (e *Emitter) extractModuleInstance(n *factnode.Node) (VName, error) {
	anchors := n.Data.Anchors
	instanceName := anchors[0]
	vn := e.vname(e.scopeRelativeSignature(instanceName.Value))
	instAnchor, err := e.anchorVName(instanceName)
	if err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactNodeKind, NodeVariable); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactComplete, CompleteDefinition); err != nil {
		return vn, err
	}
	if err := e.edge(instAnchor, EdgeDefinesBind, vn); err != nil {
		return vn, err
	}

	// Trailing anchors are positional-port connections (spec §9's
	// "conflates instance name and port names" open question: newer
	// callers should prefer the ModuleNamedPort child representation).
	for _, a := range anchors[1:] {
		defVName, ok := e.vertical.Find(CreateSignature(a.Value))
		if !ok {
			e.noteUnresolved(a.Value)
			continue
		}
		portAnchor, err := e.anchorVName(a)
		if err != nil {
			return vn, err
		}
		if err := e.edge(portAnchor, EdgeRef, fromMember(defVName)); err != nil {
			return vn, err
		}
	}
	return vn, nil
}

func (e *Emitter) extractDataTypeReference(n *factnode.Node) error {
	typeAnchor := n.Data.Anchors[0]
	defVName, ok := e.vertical.Find(CreateSignature(typeAnchor.Value))
	if !ok {
		e.noteUnresolved(typeAnchor.Value)
		return nil
	}
	typeAnchorVName, err := e.anchorVName(typeAnchor)
	if err != nil {
		return err
	}
	return e.edge(typeAnchorVName, EdgeRef, fromMember(defVName))
}

func (e *Emitter) extractModuleNamedPort(n *factnode.Node) error {
	portName := n.Data.Anchors[0]
	if n.Parent == nil || n.Parent.Parent == nil || len(n.Parent.Parent.Data.Anchors) == 0 {
		return nil
	}
	moduleType := n.Parent.Parent.Data.Anchors[0]

	portAnchor, err := e.anchorVName(portName)
	if err != nil {
		return err
	}

	if moduleVName, ok := e.vertical.Find(CreateSignature(moduleType.Value)); ok {
		if actual, ok := e.flattened.SearchPrefix(fromMember(moduleVName).Signature, portName.Value); ok {
			if err := e.edge(portAnchor, EdgeRef, fromMember(actual)); err != nil {
				return err
			}
		}
	}

	if len(n.Children) == 0 {
		if defVName, ok := e.vertical.Find(CreateSignature(portName.Value)); ok {
			if err := e.edge(portAnchor, EdgeRef, fromMember(defVName)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Emitter) extractVariableDefinition(n *factnode.Node) (VName, error) {
	return e.extractDefinitionLike(n, NodeVariable)
}

// extractDefinitionLike covers VariableDefinition and ClassInstance, which
// share the exact same fact/edge shape: one definition VName, one
// defines/binding edge, no end-label handling.
func (e *Emitter) extractDefinitionLike(n *factnode.Node, nodeKind string) (VName, error) {
	a := n.Data.Anchors[0]
	vn := e.vname(e.scopeRelativeSignature(a.Value))
	anchorVName, err := e.anchorVName(a)
	if err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactNodeKind, nodeKind); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactComplete, CompleteDefinition); err != nil {
		return vn, err
	}
	if err := e.edge(anchorVName, EdgeDefinesBind, vn); err != nil {
		return vn, err
	}
	return vn, nil
}

// extractVariableReference is the one reference kind with no silent-drop
// policy (spec §7): on a miss it synthesizes a scope-relative target VName
// instead of dropping the ref edge, so every VariableReference always
// emits exactly one ref edge.
func (e *Emitter) extractVariableReference(n *factnode.Node) error {
	a := n.Data.Anchors[0]
	anchorVName, err := e.anchorVName(a)
	if err != nil {
		return err
	}
	if defVName, ok := e.vertical.Find(CreateSignature(a.Value)); ok {
		return e.edge(anchorVName, EdgeRef, fromMember(defVName))
	}
	e.noteUnresolved(a.Value)
	synthetic := e.vname(e.scopeRelativeSignature(a.Value))
	return e.edge(anchorVName, EdgeRef, synthetic)
}

func (e *Emitter) extractPackageDeclaration(n *factnode.Node) (VName, error) {
	anchors := n.Data.Anchors
	name := anchors[0]
	vn := e.vname(e.scopeRelativeSignature(name.Value))
	nameAnchor, err := e.anchorVName(name)
	if err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactNodeKind, NodePackage); err != nil {
		return vn, err
	}
	if err := e.edge(nameAnchor, EdgeDefinesBind, vn); err != nil {
		return vn, err
	}
	if len(anchors) > 1 {
		endAnchor, err := e.anchorVName(anchors[1])
		if err != nil {
			return vn, err
		}
		if err := e.edge(endAnchor, EdgeRef, vn); err != nil {
			return vn, err
		}
	}
	return vn, nil
}

func (e *Emitter) extractMacroDefinition(n *factnode.Node) (VName, error) {
	name := n.Data.Anchors[0]
	vn := e.vname(CreateSignature(name.Value))
	nameAnchor, err := e.anchorVName(name)
	if err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactNodeKind, NodeMacro); err != nil {
		return vn, err
	}
	if err := e.edge(nameAnchor, EdgeDefinesBind, vn); err != nil {
		return vn, err
	}
	return vn, nil
}

// extractMacroCall strips the leading backtick before resolving, since the
// definition's signature never carries one (spec scenario 6).
func (e *Emitter) extractMacroCall(n *factnode.Node) error {
	a := n.Data.Anchors[0]
	callAnchor, err := e.anchorVName(a)
	if err != nil {
		return err
	}
	bare := a.Value
	if len(bare) > 0 && bare[0] == '`' {
		bare = bare[1:]
	}
	target := e.vname(CreateSignature(bare))
	return e.edge(callAnchor, EdgeRefExpands, target)
}

func (e *Emitter) extractFunctionOrTask(n *factnode.Node) (VName, error) {
	name := n.Data.Anchors[0]
	vn := e.vname(e.scopeRelativeSignature(name.Value))
	nameAnchor, err := e.anchorVName(name)
	if err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactNodeKind, NodeFunction); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactComplete, CompleteDefinition); err != nil {
		return vn, err
	}
	if err := e.edge(nameAnchor, EdgeDefinesBind, vn); err != nil {
		return vn, err
	}
	return vn, nil
}

// extractFunctionCall: a bare name() resolves directly and emits both ref
// and ref/call; a qualified chain re-enters member-reference resolution
// with isCall=true (spec §9 open question: the ref/call anchor in that case
// is whichever anchor in the chain resolved last).
func (e *Emitter) extractFunctionCall(n *factnode.Node) error {
	anchors := n.Data.Anchors
	if len(anchors) == 1 {
		name := anchors[0]
		defVName, ok := e.vertical.Find(CreateSignature(name.Value))
		if !ok {
			e.noteUnresolved(name.Value)
			return nil
		}
		nameAnchor, err := e.anchorVName(name)
		if err != nil {
			return err
		}
		if err := e.edge(nameAnchor, EdgeRef, fromMember(defVName)); err != nil {
			return err
		}
		return e.edge(nameAnchor, EdgeRefCall, fromMember(defVName))
	}
	synthetic := &factnode.Node{Data: factnode.Data{Kind: factnode.MemberReference, Anchors: anchors}}
	return e.extractMemberReference(synthetic, true)
}

// extractPackageImport covers both `import pkg::item;` and `import pkg::*;`
// (spec scenarios 4-5). Either form makes the imported symbol(s) visible in
// the importing scope without qualification, by copying them straight into
// the current vertical frame.
func (e *Emitter) extractPackageImport(n *factnode.Node) error {
	anchors := n.Data.Anchors
	pkgName := anchors[0]
	pkgVName := e.vname(CreateSignature(pkgName.Value))
	pkgAnchor, err := e.anchorVName(pkgName)
	if err != nil {
		return err
	}
	if err := e.edge(pkgAnchor, EdgeRefImports, pkgVName); err != nil {
		return err
	}

	if len(anchors) > 1 {
		itemName := anchors[1]
		defVName, ok := e.flattened.SearchPrefix(pkgVName.Signature, CreateSignature(itemName.Value))
		if !ok {
			e.noteUnresolved(itemName.Value)
			return nil
		}
		itemAnchor, err := e.anchorVName(itemName)
		if err != nil {
			return err
		}
		if err := e.edge(itemAnchor, EdgeRef, fromMember(defVName)); err != nil {
			return err
		}
		e.vertical.Add(defVName)
		return nil
	}

	members, ok := e.flattened.Get(pkgVName.Signature)
	if !ok {
		return nil
	}
	e.vertical.Add(toMember(pkgVName))
	for _, m := range members {
		e.vertical.Add(m)
	}
	return nil
}

// extractMemberReference walks an arbitrary-depth qualified chain
// (pkg::item, pkg::cls::member, ...). The first segment resolves either as
// a package member (via the flattened scope) or, failing that, as a class
// instance found in the active lexical scope. Each subsequent segment
// resolves against the previous segment's flattened scope.
//
// Per spec §9's documented open question: once a later segment fails to
// resolve, definitionSignature is NOT reset, so the next segment's lookup
// reuses the last successfully resolved owner rather than failing outright.
// This is reproduced exactly as observed rather than "fixed".
func (e *Emitter) extractMemberReference(n *factnode.Node, isCall bool) error {
	anchors := n.Data.Anchors
	containingBlock := anchors[0]
	member := anchors[1]

	definitionSignature := ""
	if _, ok := e.flattened.SearchPrefix(CreateSignature(containingBlock.Value), CreateSignature(member.Value)); ok {
		pkgVName := e.vname(CreateSignature(containingBlock.Value))
		pkgAnchor, err := e.anchorVName(containingBlock)
		if err != nil {
			return err
		}
		if err := e.edge(pkgAnchor, EdgeRef, pkgVName); err != nil {
			return err
		}
		definitionSignature = pkgVName.Signature
	} else {
		classVName, ok := e.vertical.Find(CreateSignature(containingBlock.Value))
		if !ok {
			e.noteUnresolved(containingBlock.Value)
			return nil
		}
		classAnchor, err := e.anchorVName(containingBlock)
		if err != nil {
			return err
		}
		if err := e.edge(classAnchor, EdgeRef, fromMember(classVName)); err != nil {
			return err
		}
		definitionSignature = fromMember(classVName).Signature
	}

	var lastResolved VName
	var lastAnchor VName
	haveResolved := false
	for _, a := range anchors[1:] {
		defVName, ok := e.flattened.SearchPrefix(definitionSignature, CreateSignature(a.Value))
		if !ok {
			e.noteUnresolved(a.Value)
			continue
		}
		refAnchor, err := e.anchorVName(a)
		if err != nil {
			return err
		}
		if err := e.edge(refAnchor, EdgeRef, fromMember(defVName)); err != nil {
			return err
		}
		definitionSignature = fromMember(defVName).Signature
		lastResolved = fromMember(defVName)
		lastAnchor = refAnchor
		haveResolved = true
	}

	if isCall && haveResolved {
		return e.edge(lastAnchor, EdgeRefCall, lastResolved)
	}
	return nil
}

// --- VName / fact / edge plumbing ---

func (e *Emitter) vname(signature string) VName {
	return VName{Signature: signature, Path: e.FilePath, Language: e.Language, Root: e.Root, Corpus: e.Corpus}
}

// scopeRelativeSignature appends the enclosing ancestor's signature so
// sibling definitions in different scopes never collide (spec's inner-first
// signature grammar). With no enclosing ancestor it degrades to a bare
// CreateSignature.
func (e *Emitter) scopeRelativeSignature(name string) string {
	if e.ancestors.Empty() {
		return CreateSignature(name)
	}
	return CreateSignature(name) + e.ancestors.Top().Signature
}

func (e *Emitter) anchorVName(a anchor.Anchor) (VName, error) {
	vn := e.vname(a.Signature())
	if err := e.fact(vn, FactNodeKind, NodeAnchor); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactLocStart, strconv.FormatUint(uint64(a.Start), 10)); err != nil {
		return vn, err
	}
	if err := e.fact(vn, FactLocEnd, strconv.FormatUint(uint64(a.End), 10)); err != nil {
		return vn, err
	}
	return vn, nil
}

func (e *Emitter) fact(vn VName, name, value string) error {
	if err := e.Sink.WriteFact(sink.Fact{
		Source:    toSinkVName(vn),
		FactName:  name,
		FactValue: base64.StdEncoding.EncodeToString([]byte(value)),
	}); err != nil {
		return err
	}
	e.Metrics.IncFactsEmitted()
	return nil
}

func (e *Emitter) edge(src VName, kind string, dst VName) error {
	if err := e.Sink.WriteEdge(sink.Edge{
		Source:   toSinkVName(src),
		EdgeKind: kind,
		Target:   toSinkVName(dst),
		FactName: "/",
	}); err != nil {
		return err
	}
	e.Metrics.IncEdgesEmitted()
	return nil
}

func toSinkVName(vn VName) sink.VName {
	return sink.VName{Signature: vn.Signature, Path: vn.Path, Language: vn.Language, Root: vn.Root, Corpus: vn.Corpus}
}

func toMember(vn VName) scope.Member {
	return scope.Member{Signature: vn.Signature, Value: vn}
}

func fromMember(m scope.Member) VName {
	return m.Value.(VName)
}

// noteUnresolved counts a reference that resolved to nothing and, at debug
// level, suggests the closest in-scope candidate by edit distance — purely
// diagnostic, never affects emission.
func (e *Emitter) noteUnresolved(name string) {
	e.Metrics.IncUnresolvedReferences()
	if e.Log == nil || !e.Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	best, bestDist := "", -1
	for _, m := range e.vertical.AllMembers() {
		d := levenshtein.ComputeDistance(name, m.Signature)
		if bestDist == -1 || d < bestDist {
			best, bestDist = m.Signature, d
		}
	}
	if best == "" {
		e.Log.WithField("name", name).Debug("unresolved reference, no candidates in scope")
		return
	}
	e.Log.WithFields(logrus.Fields{"name": name, "closest": best}).Debug("unresolved reference")
}
