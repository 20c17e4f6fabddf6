// Package collect implements the collection phase: walking every proof
// harness in the local crate, resolving its stub_by arguments, and
// assembling the outer mapping, one harness's set of which gets installed
// into internal/stubmap before generation begins.
//
// The walk-and-accumulate shape, plus the duplicate-key detection, mirror
// how a module linker walks declared exports looking for duplicate
// symbols across modules before linking proceeds.
package collect

import (
	"sort"

	"github.com/vericore/stubgen/internal/attrs"
	"github.com/vericore/stubgen/internal/direrrors"
	"github.com/vericore/stubgen/internal/pathresolve"
	"github.com/vericore/stubgen/internal/universe"
)

// StubSet is one harness's own pair set: ORIGINAL canonical path ->
// REPLACEMENT canonical path, gathered from that harness's stub_by
// attributes alone.
type StubSet map[universe.CanonicalPath]universe.CanonicalPath

// OuterMapping is the outer mapping: harness canonical path -> that
// harness's StubSet. Generation installs exactly one harness's StubSet at
// a time; two harnesses are free to stub the same original to different
// replacements.
type OuterMapping map[universe.CanonicalPath]StubSet

// Result is everything the collection phase produces. Diagnostics may be
// non-empty even when Mapping is populated — warnings don't block
// installation, but every SeverityError entry does.
type Result struct {
	Mapping     OuterMapping
	HarnessDefs []universe.DefID
	Diagnostics []*direrrors.Report
}

// HasFatal reports whether any diagnostic is fatal: the collector must
// abort before installing a map built from a crate with fatal
// diagnostics.
func (r Result) HasFatal() bool {
	for _, d := range r.Diagnostics {
		if d.IsFatal() {
			return true
		}
	}
	return false
}

// Collect walks every local definition, finds proof harnesses (items
// carrying a bare "proof" attribute), resolves every stub_by(ORIGINAL,
// REPLACEMENT) attribute on them, and assembles the outer mapping, one
// StubSet per harness. Duplicate-mapping detection is scoped to a single
// harness: two different harnesses stubbing the same original to
// different replacements is legal, since only one harness's set is ever
// installed for a given generation run.
func Collect(u *universe.Universe, ext attrs.Extractor) Result {
	res := Result{Mapping: OuterMapping{}}

	for _, id := range u.LocalDefs() {
		kind, ok := u.Kind(id)
		if !ok || kind != universe.KindFunction {
			continue
		}
		proof, other := ext.Attrs(id)
		if len(proof) == 0 {
			continue
		}
		res.HarnessDefs = append(res.HarnessDefs, id)

		parent, hasParent := u.Parent(id)
		if !hasParent {
			parent = id
		}

		harnessPath := u.CanonicalPathOf(id)
		set := StubSet{}

		for _, a := range other {
			if a.Name != "stub_by" {
				continue
			}
			if len(a.Args) != 2 {
				res.Diagnostics = append(res.Diagnostics, direrrors.MalformedStubBy(a.Span, len(a.Args)))
				continue
			}

			originalArg, replacementArg := a.Args[0], a.Args[1]

			originalPath, diag := pathresolve.Resolve(u, parent, originalArg, a.Span)
			if diag != nil {
				res.Diagnostics = append(res.Diagnostics, diag)
				continue
			}
			replacementPath, diag := pathresolve.Resolve(u, parent, replacementArg, a.Span)
			if diag != nil {
				res.Diagnostics = append(res.Diagnostics, diag)
				continue
			}

			if prior, ok := set[originalPath]; ok {
				res.Diagnostics = append(res.Diagnostics, direrrors.DuplicateMapping(a.Span, string(originalPath), string(prior), string(replacementPath)))
				continue
			}
			set[originalPath] = replacementPath
		}

		res.Mapping[harnessPath] = set
	}

	return res
}

// Suggest returns the closest local canonical path to an unresolved one,
// by Levenshtein edit distance (ties broken by the lexically smaller
// path). The resolve REPL's ":suggest" command calls it; Collect does not,
// so RES001 diagnostics from collection carry no Fix.
func Suggest(u *universe.Universe, attempted string) (string, bool) {
	best := ""
	bestDist := -1
	for _, id := range u.LocalDefs() {
		candidate := string(u.CanonicalPathOf(id))
		if candidate == "" {
			continue
		}
		d := levenshtein(attempted, candidate)
		if bestDist == -1 || d < bestDist || (d == bestDist && candidate < best) {
			bestDist = d
			best = candidate
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			cur[j] = min3(del, ins, sub)
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// SortedOriginals returns a StubSet's keys sorted, for deterministic CLI
// output.
func (s StubSet) SortedOriginals() []universe.CanonicalPath {
	out := make([]universe.CanonicalPath, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SortedHarnesses returns an OuterMapping's harness keys sorted, for
// deterministic CLI output.
func (m OuterMapping) SortedHarnesses() []universe.CanonicalPath {
	out := make([]universe.CanonicalPath, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
