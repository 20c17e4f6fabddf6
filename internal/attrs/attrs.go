// Package attrs models the attribute surface this facility reads: the
// "proof" harness marker and the "stub_by(ORIGINAL, REPLACEMENT)"
// directive. Real attribute extraction is external to the core —
// Extractor is that boundary, and StaticExtractor is a reference
// implementation used by the CLI demo and tests so the rest of the module
// can be exercised end to end.
package attrs

import "github.com/vericore/stubgen/internal/universe"

// Attr is one item-level attribute as the extractor reports it: a name
// and its raw path-argument strings, in source order.
type Attr struct {
	Name string
	Args []string
	Span universe.Span
}

// Extractor yields, for a given item, its "proof" attributes (if any) and
// every other attribute, pre-split so the collection phase never has to
// scan for the proof marker itself.
type Extractor interface {
	Attrs(id universe.DefID) (proof []Attr, other []Attr)
}

// StaticExtractor is a map-backed Extractor: attributes are registered up
// front (as a real extractor's output would already look, once the
// out-of-scope extraction utility has run).
type StaticExtractor struct {
	byItem map[universe.DefID]entry
}

type entry struct {
	proof []Attr
	other []Attr
}

// NewStaticExtractor returns an empty extractor ready for registration.
func NewStaticExtractor() *StaticExtractor {
	return &StaticExtractor{byItem: make(map[universe.DefID]entry)}
}

// MarkProof registers a bare "proof" marker on id.
func (s *StaticExtractor) MarkProof(id universe.DefID, span universe.Span) {
	e := s.byItem[id]
	e.proof = append(e.proof, Attr{Name: "proof", Span: span})
	s.byItem[id] = e
}

// AddStubBy registers a "stub_by" attribute with its raw path arguments on
// id. Arity is not validated here — arity checking is the collection
// orchestrator's job, since a real extractor would hand back whatever
// arguments were actually written, malformed or not.
func (s *StaticExtractor) AddStubBy(id universe.DefID, span universe.Span, args ...string) {
	e := s.byItem[id]
	e.other = append(e.other, Attr{Name: "stub_by", Args: args, Span: span})
	s.byItem[id] = e
}

// AddOther registers an attribute unrelated to stubbing, present only so
// that Attrs' "other" slice plausibly mixes stub_by with unrelated
// annotations the way a real item's attribute list would.
func (s *StaticExtractor) AddOther(id universe.DefID, name string, span universe.Span, args ...string) {
	e := s.byItem[id]
	e.other = append(e.other, Attr{Name: name, Args: args, Span: span})
	s.byItem[id] = e
}

// Attrs implements Extractor.
func (s *StaticExtractor) Attrs(id universe.DefID) ([]Attr, []Attr) {
	e := s.byItem[id]
	return e.proof, e.other
}
