// Package pathresolve turns a user-written module path into a canonical
// definition path by walking the in-memory universe.Universe the way the
// host compiler's own post-resolution item tree would be walked, without
// re-implementing the host compiler's visibility/import machinery.
package pathresolve

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vericore/stubgen/internal/direrrors"
	"github.com/vericore/stubgen/internal/universe"
)

const (
	kwSelf  = "self"
	kwSuper = "super"
	kwCrate = "crate"
	kwRoot  = "{{root}}"
)

// resolution carries the per-call search trace, surfaced on failure as
// structured diagnostic data rather than prose alone.
type resolution struct {
	u     *universe.Universe
	trace []string
}

// Resolve resolves a user-written path against the module it was written
// from, returning the canonical path of the function it names, or a
// diagnostic.
func Resolve(u *universe.Universe, current universe.DefID, userPath string, span universe.Span) (universe.CanonicalPath, *direrrors.Report) {
	r := &resolution{u: u}

	normalized := norm.NFC.String(userPath)
	if normalized == "" {
		return "", direrrors.KeywordMisuse(span, "empty path")
	}
	segments := strings.Split(normalized, "::")
	for _, s := range segments {
		if s == "" {
			return "", direrrors.KeywordMisuse(span, "path has an empty segment: "+userPath)
		}
	}

	var path universe.CanonicalPath
	var ok bool
	var misuse string

	switch segments[0] {
	case kwSelf, kwSuper, kwCrate, kwRoot:
		path, ok, misuse = r.absolute(current, segments)
	default:
		path, ok = r.relative(current, segments)
	}

	if misuse != "" {
		return "", direrrors.KeywordMisuse(span, misuse)
	}
	if !ok {
		return "", direrrors.Unresolved("resolve", userPath, span, r.trace)
	}
	return path, nil
}

// absolute dispatches on the leading keyword. The bool result is false on
// failure; misuse is non-empty only for the keyword-specific error cases
// (super past the crate root, an empty tail, too few segments after
// {{root}}).
func (r *resolution) absolute(current universe.DefID, segments []string) (universe.CanonicalPath, bool, string) {
	head, tail := segments[0], segments[1:]

	switch head {
	case kwSelf:
		path, ok := r.relative(current, tail)
		return path, ok, ""

	case kwSuper:
		if r.u.IsRoot(current) {
			return "", false, "super used at the crate root"
		}
		if len(tail) == 0 {
			return "", false, "super with no trailing path segment"
		}
		parent, ok := r.u.Parent(current)
		if !ok {
			return "", false, "super used at the crate root"
		}
		path, ok := r.relative(parent, tail)
		return path, ok, ""

	case kwCrate:
		root := current
		for !r.u.IsRoot(root) {
			p, ok := r.u.Parent(root)
			if !ok {
				break
			}
			root = p
		}
		path, ok := r.relative(root, tail)
		return path, ok, ""

	case kwRoot:
		if len(tail) < 2 {
			return "", false, "{{root}} requires a crate name and at least one more path segment"
		}
		crateName, rest := tail[0], tail[1:]
		r.trace = append(r.trace, "{{root}}::"+crateName)
		croot, ok := r.u.CrateRoot(crateName)
		if !ok {
			return "", false, ""
		}
		path, ok := r.foreign(croot, rest)
		return path, ok, ""
	}
	return "", false, ""
}

// relative performs relative search: module M is scanned for a direct
// child matching path segments P. Functions and function imports are
// matched during the scan, in declaration order; module-shaped children
// (submodules, module imports and glob imports) are deferred to a second
// drain pass, so a match made in M itself wins over anything reachable
// through a submodule or a module/glob import.
func (r *resolution) relative(m universe.DefID, p []string) (universe.CanonicalPath, bool) {
	if len(p) == 0 {
		return "", false
	}

	mPath := r.u.CanonicalPathOf(m)
	var qualified string
	if mPath == "" {
		qualified = strings.Join(p, "::")
	} else {
		qualified = string(mPath) + "::" + strings.Join(p, "::")
	}
	r.trace = append(r.trace, qualified)

	type pending struct {
		mod  universe.DefID
		tail []string
	}
	var scratch []pending

	for _, item := range r.u.Children(m) {
		switch item.Kind {
		case universe.KindFunction:
			if string(r.u.CanonicalPathOf(item.Target)) == qualified {
				return r.u.CanonicalPathOf(item.Target), true
			}

		case universe.KindImportFunction:
			if item.Name == strings.Join(p, "::") {
				return r.u.CanonicalPathOf(item.Target), true
			}

		case universe.KindModule:
			// A plain nested submodule behaves, for lookup purposes, like
			// an unaliased single-item import of itself: it is only
			// worth descending into when its own name is the next
			// segment of the path being searched.
			if item.Name == p[0] {
				scratch = append(scratch, pending{mod: item.Target, tail: p[1:]})
			}

		case universe.KindImportModule:
			last := universe.LastSegment(r.u.CanonicalPathOf(item.Target))
			renamed := item.Name != last
			if item.Name == p[0] {
				scratch = append(scratch, pending{mod: item.Target, tail: p[1:]})
			} else if !renamed {
				// Unaliased import whose name doesn't match the next
				// segment can't be the path we're after; nothing to
				// enqueue.
				continue
			}

		case universe.KindImportGlob:
			scratch = append(scratch, pending{mod: item.Target, tail: p})
		}
	}

	for _, pend := range scratch {
		var path universe.CanonicalPath
		var ok bool
		if r.u.IsLocal(pend.mod) {
			path, ok = r.relative(pend.mod, pend.tail)
		} else {
			path, ok = r.foreign(pend.mod, pend.tail)
		}
		if ok {
			return path, true
		}
	}

	return "", false
}

// foreign searches module M's exported children only, for paths that
// cross a crate boundary.
func (r *resolution) foreign(m universe.DefID, p []string) (universe.CanonicalPath, bool) {
	if len(p) == 0 {
		return "", false
	}
	r.trace = append(r.trace, string(r.u.CanonicalPathOf(m))+" (foreign)::"+strings.Join(p, "::"))

	for _, item := range r.u.ExportedChildren(m) {
		if item.Name != p[0] {
			continue
		}
		switch item.Kind {
		case universe.KindFunction:
			if len(p) == 1 {
				return r.u.CanonicalPathOf(item.Target), true
			}
		case universe.KindModule:
			if len(p) > 1 {
				if path, ok := r.foreign(item.Target, p[1:]); ok {
					return path, true
				}
			}
		}
	}
	return "", false
}
