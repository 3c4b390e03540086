// Package scope holds the three stacks/maps the emitter consults while
// walking the facts tree: an ancestor VName stack (for childof edges and
// scope-relative signatures), a vertical scope stack (for lexical lookup),
// and a flattened scope map (for qualified pkg::item lookup). This mirrors
// VNameContext/ScopeContext/scope_context_ from the system this schema is
// modeled on; RAII auto-pop stacks become push calls returning a plain pop
// closure, which the caller invokes once the subtree is done (spec §9).
package scope

import "strings"

// Member is the minimal shape scope lookups need: a signature to match
// against and an opaque value the caller treats as a handle. Kept generic
// (not importing internal/kythe) so internal/kythe can import scope without
// a cycle; internal/kythe instantiates Member with its own VName.
type Member struct {
	Signature string
	Value     interface{}
}

// Frame is one lexical scope's member list, built up during a single
// subtree's traversal and frozen into Flattened once that subtree finishes.
type Frame struct {
	Members []Member
}

// Add appends a member to the frame.
func (f *Frame) Add(m Member) {
	f.Members = append(f.Members, m)
}

// Vertical is the stack of open lexical scopes (innermost last).
type Vertical struct {
	frames []*Frame
}

// Push opens a new frame and returns a func that closes it. Callers invoke
// the returned func once the traversal of one subtree is done, so the
// frame's lifetime is scoped to that subtree.
func (v *Vertical) Push(f *Frame) func() {
	v.frames = append(v.frames, f)
	return func() {
		v.frames = v.frames[:len(v.frames)-1]
	}
}

// Top returns the innermost open frame. Panics if called with no open
// frame, which would be a caller bug (the emitter opens a frame, the File's
// or, during the package pre-pass, the Package's, before adding anything).
func (v *Vertical) Top() *Frame {
	return v.frames[len(v.frames)-1]
}

// Add records m in the innermost open frame.
func (v *Vertical) Add(m Member) {
	v.Top().Add(m)
}

// Find scans open frames from innermost to outermost, and within a frame
// from most-recently-added to least, returning the first member whose
// signature *contains* prefix as a substring. This is deliberately
// substring containment, not a prefix match: CreateSignature("x") = "x#" is
// a substring of "x#foo#", which is what makes inner-first resolution work
// without the caller tracking scope depth explicitly.
func (v *Vertical) Find(prefix string) (Member, bool) {
	for i := len(v.frames) - 1; i >= 0; i-- {
		members := v.frames[i].Members
		for j := len(members) - 1; j >= 0; j-- {
			if strings.Contains(members[j].Signature, prefix) {
				return members[j], true
			}
		}
	}
	return Member{}, false
}

// AllMembers returns every member visible in the currently open frames,
// innermost first. Used only for diagnostics (e.g. suggesting a near-match
// on an unresolved reference), never for resolution itself.
func (v *Vertical) AllMembers() []Member {
	var all []Member
	for i := len(v.frames) - 1; i >= 0; i-- {
		all = append(all, v.frames[i].Members...)
	}
	return all
}

// Ancestors is the stack of VName handles for nodes currently being
// visited, innermost (closest enclosing) last. Used both to build
// childof edges and to compute scope-relative signatures.
type Ancestors struct {
	frames []Member
}

// Push records m as the current innermost ancestor and returns a pop func.
func (a *Ancestors) Push(m Member) func() {
	a.frames = append(a.frames, m)
	return func() {
		a.frames = a.frames[:len(a.frames)-1]
	}
}

// Empty reports whether there is no enclosing ancestor (true at the File
// root before it pushes itself, and for a file-level Package in the package
// pre-pass before it pushes itself).
func (a *Ancestors) Empty() bool {
	return len(a.frames) == 0
}

// Top returns the innermost ancestor. Panics if Empty.
func (a *Ancestors) Top() Member {
	return a.frames[len(a.frames)-1]
}

// Flattened maps a definition's signature to the member list declared
// directly within it, enabling qualified (pkg::item) lookups that don't
// depend on the current lexical position.
type Flattened map[string][]Member

// Set freezes owner's member list. Called once, after owner's subtree has
// finished traversal and its Vertical frame is fully populated.
func (f Flattened) Set(owner string, members []Member) {
	f[owner] = members
}

// Get returns owner's frozen member list, if any.
func (f Flattened) Get(owner string) ([]Member, bool) {
	m, ok := f[owner]
	return m, ok
}

// SearchPrefix finds the first member of owner's flattened scope whose
// signature starts with prefix. Unlike Vertical.Find this is a true prefix
// match, not substring containment — the two lookup rules are distinct by
// design in the system this mirrors.
func (f Flattened) SearchPrefix(owner, prefix string) (Member, bool) {
	members, ok := f[owner]
	if !ok {
		return Member{}, false
	}
	for _, m := range members {
		if strings.HasPrefix(m.Signature, prefix) {
			return m, true
		}
	}
	return Member{}, false
}
