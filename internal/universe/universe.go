// Package universe models the current compilation universe: the
// post-name-resolution item tree a real verification front end would
// expose.
//
// It is a deliberately small stand-in for the host compiler — just enough
// structure that DefID, CanonicalPath, Children, Imports, and crate roots
// behave the way a real compiler's item tree would, so the resolver and
// collector can be built and tested without a real compiler attached.
package universe

import (
	"fmt"
	"sync"

	"github.com/vericore/stubgen/internal/ir"
)

// DefID is an opaque per-Universe handle, valid for the lifetime of a
// single Universe value.
type DefID int

// InvalidDefID never names a real definition.
const InvalidDefID DefID = -1

// CanonicalPath is the compiler-printed fully-qualified name of a
// definition; equality on this string is the resolver's success
// criterion and the stub map's key.
type CanonicalPath string

// ItemKind classifies a child of a module, including the import
// declarations the resolver must reason about.
type ItemKind int

const (
	KindFunction ItemKind = iota
	KindModule
	KindImportFunction
	KindImportModule
	KindImportGlob
)

func (k ItemKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindModule:
		return "module"
	case KindImportFunction:
		return "import(function)"
	case KindImportModule:
		return "import(module)"
	case KindImportGlob:
		return "import(glob)"
	default:
		return "other"
	}
}

// Item is one direct child of a module as the resolver scans it: a
// locally defined function or module, or an import declaration. Name is
// the identifier the resolver matches against — the function/module's own
// last segment for a definition, or the local alias for an import.
type Item struct {
	Kind   ItemKind
	Name   string
	Target DefID // itself for Function/Module; the imported definition for imports
}

type defInfo struct {
	id        DefID
	kind      ItemKind // KindFunction or KindModule only
	canonical CanonicalPath
	crate     string
	parent    DefID
	hasParent bool

	// module-only fields
	children []Item
	exported map[string]bool
}

// Universe holds the local crate plus zero or more foreign crates.
type Universe struct {
	mu       sync.RWMutex
	local    string
	defs     map[DefID]*defInfo
	roots    map[string]DefID // crate name -> root module DefID
	bodies   map[DefID]ir.Body
	nextID   DefID
}

// NewUniverse creates an empty universe whose local crate is named
// localCrate.
func NewUniverse(localCrate string) *Universe {
	return &Universe{
		local:  localCrate,
		defs:   make(map[DefID]*defInfo),
		roots:  make(map[string]DefID),
		bodies: make(map[DefID]ir.Body),
	}
}

// LocalCrate returns the name of the crate being compiled.
func (u *Universe) LocalCrate() string { return u.local }

// LocalDefs returns every definition (function or module) belonging to
// the local crate, in allocation order.
func (u *Universe) LocalDefs() []DefID {
	u.mu.RLock()
	defer u.mu.RUnlock()
	ids := make([]DefID, 0, len(u.defs))
	for id := 1; id <= int(u.nextID); id++ {
		if d, ok := u.defs[DefID(id)]; ok && d.crate == u.local {
			ids = append(ids, d.id)
		}
	}
	return ids
}

// Children returns the direct children of a module, in declaration
// order, including import declarations.
func (u *Universe) Children(mod DefID) []Item {
	u.mu.RLock()
	defer u.mu.RUnlock()
	d, ok := u.defs[mod]
	if !ok || d.kind != KindModule {
		return nil
	}
	out := make([]Item, len(d.children))
	copy(out, d.children)
	return out
}

// ExportedChildren returns only the publicly visible function/module
// children of a module, used by foreign-module search.
func (u *Universe) ExportedChildren(mod DefID) []Item {
	u.mu.RLock()
	defer u.mu.RUnlock()
	d, ok := u.defs[mod]
	if !ok || d.kind != KindModule {
		return nil
	}
	var out []Item
	for _, it := range d.children {
		if it.Kind != KindFunction && it.Kind != KindModule {
			continue
		}
		if d.exported[it.Name] {
			out = append(out, it)
		}
	}
	return out
}

// Kind reports whether id denotes a function or a module.
func (u *Universe) Kind(id DefID) (ItemKind, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	d, ok := u.defs[id]
	if !ok {
		return 0, false
	}
	return d.kind, true
}

// CanonicalPathOf prints the canonical path of a definition.
func (u *Universe) CanonicalPathOf(id DefID) CanonicalPath {
	u.mu.RLock()
	defer u.mu.RUnlock()
	d, ok := u.defs[id]
	if !ok {
		return ""
	}
	return d.canonical
}

// Parent returns the enclosing module of id, if any (the crate root has
// no parent).
func (u *Universe) Parent(id DefID) (DefID, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	d, ok := u.defs[id]
	if !ok || !d.hasParent {
		return InvalidDefID, false
	}
	return d.parent, true
}

// IsRoot reports whether id is a crate root (empty canonical path).
func (u *Universe) IsRoot(id DefID) bool {
	return u.CanonicalPathOf(id) == ""
}

// CrateRoot resolves a crate name (as named after {{root}} in a user
// path) to that crate's root module.
func (u *Universe) CrateRoot(name string) (DefID, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	id, ok := u.roots[name]
	return id, ok
}

// IsLocal reports whether id belongs to the crate currently being
// compiled.
func (u *Universe) IsLocal(id DefID) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	d, ok := u.defs[id]
	return ok && d.crate == u.local
}

// FindLocalByCanonicalPath does the linear scan the stubbing pass needs:
// a replacement is only usable if some local definition's canonical path
// equals it exactly.
func (u *Universe) FindLocalByCanonicalPath(path CanonicalPath) (DefID, bool) {
	for _, id := range u.LocalDefs() {
		if u.CanonicalPathOf(id) == path {
			return id, true
		}
	}
	return InvalidDefID, false
}

// Body returns the base (unstubbed) IR body of a function definition.
func (u *Universe) Body(id DefID) (ir.Body, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	b, ok := u.bodies[id]
	return b, ok
}

// SetBody installs the base IR body for a function definition.
func (u *Universe) SetBody(id DefID, b ir.Body) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.bodies[id] = b
}

// LastSegment returns the final "::"-separated component of a canonical
// path (the empty path, i.e. a crate root, has no last segment).
func LastSegment(path CanonicalPath) string {
	s := string(path)
	if s == "" {
		return ""
	}
	if i := lastIndexSep(s); i >= 0 {
		return s[i+2:]
	}
	return s
}

func lastIndexSep(s string) int {
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == ':' && s[i+1] == ':' {
			return i
		}
	}
	return -1
}

func (u *Universe) describe(id DefID) string {
	if d, ok := u.defs[id]; ok {
		return fmt.Sprintf("%s(%s)", d.kind, d.canonical)
	}
	return "<invalid>"
}
