package universe

import "github.com/vericore/stubgen/internal/ir"

// Builder assembles a Universe from declarative in-memory descriptions of
// crates, modules, functions, and imports — a stand-in for driving a real
// front end to its post-analysis stage, for a module that owns no real
// parser or name-resolver of its own.
type Builder struct {
	u *Universe
}

// NewBuilder starts building a universe whose local (currently compiled)
// crate is named localCrate.
func NewBuilder(localCrate string) *Builder {
	return &Builder{u: NewUniverse(localCrate)}
}

func (b *Builder) alloc(kind ItemKind, canonical CanonicalPath, crate string, parent DefID, hasParent bool) DefID {
	b.u.nextID++
	id := b.u.nextID
	b.u.defs[id] = &defInfo{
		id:        id,
		kind:      kind,
		canonical: canonical,
		crate:     crate,
		parent:    parent,
		hasParent: hasParent,
		exported:  make(map[string]bool),
	}
	return id
}

func qualify(parent CanonicalPath, name string) CanonicalPath {
	if parent == "" {
		return CanonicalPath(name)
	}
	return parent + "::" + CanonicalPath(name)
}

// CrateRoot returns the root module of the named crate, creating it on
// first use. The crate root has the empty canonical path.
func (b *Builder) CrateRoot(crate string) DefID {
	if id, ok := b.u.roots[crate]; ok {
		return id
	}
	id := b.alloc(KindModule, "", crate, InvalidDefID, false)
	b.u.roots[crate] = id
	return id
}

// LocalRoot is shorthand for CrateRoot(the local crate).
func (b *Builder) LocalRoot() DefID {
	return b.CrateRoot(b.u.local)
}

// Module declares a nested module under parent and returns its DefID.
func (b *Builder) Module(parent DefID, name string, exported bool) DefID {
	p := b.u.defs[parent]
	id := b.alloc(KindModule, qualify(p.canonical, name), p.crate, parent, true)
	p.children = append(p.children, Item{Kind: KindModule, Name: name, Target: id})
	if exported {
		p.exported[name] = true
	}
	return id
}

// Function declares a function under parent and returns its DefID.
func (b *Builder) Function(parent DefID, name string, exported bool) DefID {
	p := b.u.defs[parent]
	id := b.alloc(KindFunction, qualify(p.canonical, name), p.crate, parent, true)
	p.children = append(p.children, Item{Kind: KindFunction, Name: name, Target: id})
	if exported {
		p.exported[name] = true
	}
	return id
}

// ImportFunction declares `use <target's path> as localAlias` (or an
// unaliased single-segment import, where localAlias equals the target's
// own name) resolving directly to a function.
func (b *Builder) ImportFunction(parent DefID, localAlias string, target DefID) {
	p := b.u.defs[parent]
	p.children = append(p.children, Item{Kind: KindImportFunction, Name: localAlias, Target: target})
}

// ImportModule declares a single-item import of a module, aliased to
// localAlias (which may equal the target module's own last segment for
// an unaliased import).
func (b *Builder) ImportModule(parent DefID, localAlias string, target DefID) {
	p := b.u.defs[parent]
	p.children = append(p.children, Item{Kind: KindImportModule, Name: localAlias, Target: target})
}

// ImportGlob declares `use <target>::*`.
func (b *Builder) ImportGlob(parent DefID, target DefID) {
	p := b.u.defs[parent]
	p.children = append(p.children, Item{Kind: KindImportGlob, Target: target})
}

// SetBody installs the base (unstubbed) IR body for a function.
func (b *Builder) SetBody(fn DefID, body ir.Body) {
	b.u.SetBody(fn, body)
}

// Build finalizes and returns the assembled Universe.
func (b *Builder) Build() *Universe {
	return b.u
}
