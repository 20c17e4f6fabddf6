package direrrors

import (
	"fmt"
	"sort"

	"github.com/vericore/stubgen/internal/universe"
)

const schema = "stubgen.diagnostic/v1"

// Unresolved builds RES001: a user path did not resolve. trace records
// every module path the resolver attempted before giving up.
func Unresolved(phase, userPath string, span universe.Span, trace []string) *Report {
	sorted := append([]string(nil), trace...)
	sort.Strings(sorted)
	return &Report{
		Schema:  schema,
		Code:    RES001,
		Phase:   phase,
		Message: fmt.Sprintf("unable to resolve %s", userPath),
		Span:    &span,
		Data: map[string]any{
			"path":         userPath,
			"search_trace": sorted,
		},
		Severity: SeverityError,
	}
}

// MalformedStubBy builds RES002: stub_by had an arity other than two.
func MalformedStubBy(span universe.Span, argc int) *Report {
	return &Report{
		Schema:  schema,
		Code:    RES002,
		Phase:   "collect",
		Message: fmt.Sprintf("stub_by expects exactly 2 path arguments, got %d", argc),
		Span:    &span,
		Data:    map[string]any{"argument_count": argc},
		Severity: SeverityError,
	}
}

// DuplicateMapping builds RES003: two stub_by attributes on one harness
// targeted the same original.
func DuplicateMapping(span universe.Span, original, first, second string) *Report {
	return &Report{
		Schema:  schema,
		Code:    RES003,
		Phase:   "collect",
		Message: fmt.Sprintf("duplicate stub mapping: %s mapped to %s AND %s", original, first, second),
		Span:    &span,
		Data: map[string]any{
			"original":  original,
			"first":     first,
			"second":    second,
		},
		Fix: &Fix{
			Suggestion: "remove one of the conflicting stub_by attributes",
			Confidence: 0.95,
		},
		Severity: SeverityError,
	}
}

// KeywordMisuse builds RES004: super past the crate root, super with no
// tail, or {{root}} with fewer than two remaining segments. The resolver
// also reports an empty path and a path with an empty segment under it.
func KeywordMisuse(span universe.Span, reason string) *Report {
	return &Report{
		Schema:  schema,
		Code:    RES004,
		Phase:   "resolve",
		Message: reason,
		Span:    &span,
		Severity: SeverityError,
	}
}

// MissingReplacementBody builds GEN001: a warning, not fatal.
func MissingReplacementBody(original, replacement string) *Report {
	return &Report{
		Schema:  schema,
		Code:    GEN001,
		Phase:   "generate",
		Message: fmt.Sprintf("replacement %s for %s has no local definition in this build; body left unchanged", replacement, original),
		Data: map[string]any{
			"original":    original,
			"replacement": replacement,
		},
		Severity: SeverityWarning,
	}
}

// StubMapNotInstalled builds GEN002: fatal internal error.
func StubMapNotInstalled() *Report {
	return &Report{
		Schema:   schema,
		Code:     GEN002,
		Phase:    "generate",
		Message:  "active stub map read before being installed",
		Severity: SeverityError,
	}
}

// StubChainCycle builds GEN003: a chained stub formed a cycle.
func StubChainCycle(chain []string) *Report {
	return &Report{
		Schema:  schema,
		Code:    GEN003,
		Phase:   "generate",
		Message: fmt.Sprintf("stub chain cycle detected: %v", chain),
		Data:    map[string]any{"chain": chain},
		Severity: SeverityWarning,
	}
}

// LegacyLineMalformed builds LEG001.
func LegacyLineMalformed(lineNo int, line string) *Report {
	return &Report{
		Schema:  schema,
		Code:    LEG001,
		Phase:   "legacy",
		Message: fmt.Sprintf("line %d: expected exactly 2 whitespace-separated tokens", lineNo),
		Data: map[string]any{
			"line_number": lineNo,
			"line":        line,
		},
		Severity: SeverityError,
	}
}
