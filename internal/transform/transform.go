// Package transform implements the generation-phase query driver:
// intercept the query for the optimized body of a definition, clone the
// base body, run an ordered list of passes over it, and return a stable
// result.
//
// The pass-list shape — a slice of named, independently testable steps
// applied in sequence to a mutable clone — keeps each transformation
// concern isolated and testable on its own; here the pipeline is exactly
// two passes deep, and the ordering between them is load-bearing.
package transform

import (
	"github.com/vericore/stubgen/internal/direrrors"
	"github.com/vericore/stubgen/internal/ir"
	"github.com/vericore/stubgen/internal/stubmap"
	"github.com/vericore/stubgen/internal/universe"
)

// Pass transforms a Body in place (or returns a replacement). Query is
// the definition the body is being generated for, which StubbingPass
// needs to look itself up in the active stub map; IdentityPass ignores
// it.
type Pass interface {
	Name() string
	Apply(ctx *Context, body ir.Body) ir.Body
}

// Context carries what a pass needs: the universe to look up bodies and
// canonical paths in, the frozen stub map, and the definition the query
// was originally made for.
type Context struct {
	U     *universe.Universe
	Stubs *stubmap.Store
	Query universe.DefID

	Diagnostics []*direrrors.Report
}

func (c *Context) report(r *direrrors.Report) {
	c.Diagnostics = append(c.Diagnostics, r)
}

// Driver runs the ordered pass list: Identity, then Stubbing.
type Driver struct {
	passes []Pass
}

// NewDriver builds the standard two-pass driver.
func NewDriver() *Driver {
	return &Driver{passes: []Pass{IdentityPass{}, StubbingPass{}}}
}

// Generate answers "give me the optimized body for def D": it clones D's
// base body, threads it through every configured pass in order, and
// returns the final, stable result plus any diagnostics passes emitted
// along the way.
func (d *Driver) Generate(u *universe.Universe, stubs *stubmap.Store, def universe.DefID) (ir.Body, []*direrrors.Report) {
	base, ok := u.Body(def)
	if !ok {
		return ir.Body{}, nil
	}
	ctx := &Context{U: u, Stubs: stubs, Query: def}
	body := base.Clone()
	for _, p := range d.passes {
		body = p.Apply(ctx, body)
	}
	return body, ctx.Diagnostics
}

// IdentityPass returns its input unchanged. It exists so the pipeline's
// ordering is explicit and the Stubbing pass is never accidentally first,
// and so a future pass can be inserted between the two without
// renumbering anything.
type IdentityPass struct{}

func (IdentityPass) Name() string { return "identity" }

func (IdentityPass) Apply(_ *Context, body ir.Body) ir.Body {
	return body
}

// StubbingPass substitutes the replacement's body for the original's when
// the queried definition has an entry in the active stub map, following a
// chain of stub mappings until it stops moving, bottoms out at a
// definition with no mapping, or a cycle is detected — in which case it
// reports GEN003 and keeps the original body for every member of the
// cycle.
type StubbingPass struct{}

func (StubbingPass) Name() string { return "stubbing" }

func (s StubbingPass) Apply(ctx *Context, body ir.Body) ir.Body {
	if !ctx.Stubs.Installed() {
		ctx.report(direrrors.StubMapNotInstalled())
		return body
	}

	originalPath := ctx.U.CanonicalPathOf(ctx.Query)
	replacementPath, ok := ctx.Stubs.Lookup(originalPath)
	if !ok {
		return body
	}

	chain := []string{string(originalPath)}
	visited := map[universe.CanonicalPath]bool{originalPath: true}
	current := replacementPath

	for {
		if visited[current] {
			chain = append(chain, string(current))
			ctx.report(direrrors.StubChainCycle(chain))
			return body
		}
		visited[current] = true
		chain = append(chain, string(current))

		next, ok := ctx.Stubs.Lookup(current)
		if !ok {
			break
		}
		current = next
	}

	replacementDef, ok := ctx.U.FindLocalByCanonicalPath(current)
	if !ok {
		ctx.report(direrrors.MissingReplacementBody(string(originalPath), string(current)))
		return body
	}

	replacementBody, ok := ctx.U.Body(replacementDef)
	if !ok {
		ctx.report(direrrors.MissingReplacementBody(string(originalPath), string(current)))
		return body
	}

	return replacementBody.Clone()
}
