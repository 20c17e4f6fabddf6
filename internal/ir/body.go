package ir

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Body is the optimized IR body of a single function definition: the unit
// the generation-phase query hands back, and the unit the stubbing pass
// overwrites.
type Body struct {
	Origin string // canonical path of the definition this body belongs to, for debug output only
	Root   Expr
}

// Clone returns a deep, independent copy. The transform driver clones the
// base body before any pass may mutate it in place.
func (b Body) Clone() Body {
	c := Body{Origin: b.Origin}
	if b.Root != nil {
		c.Root = b.Root.Clone()
	}
	return c
}

// Equal reports structural equality, ignoring node identity (NodeID) and
// origin — two bodies are "the same program" even if one was cloned from
// the other and renumbered.
func (b Body) Equal(other Body) bool {
	return cmp.Equal(b.Root, other.Root, cmpopts.IgnoreFields(Node{}, "NodeID"))
}

func (b Body) String() string {
	if b.Root == nil {
		return "<empty>"
	}
	return b.Root.String()
}
