// Package direrrors provides centralized structured diagnostics for
// stubgen: a Report/ReportError shape, sorted-key JSON encoding, and
// errors.As-friendly wrapping over this module's own diagnostic taxonomy.
package direrrors

// Error code constants, grouped by phase.
const (
	// ============================================================
	// Path resolver (RES###)
	// ============================================================

	// RES001 indicates a user path did not resolve to any definition.
	RES001 = "RES001"

	// RES002 indicates a stub_by attribute had an argument count other
	// than two.
	RES002 = "RES002"

	// RES003 indicates a duplicate stub mapping within one harness.
	RES003 = "RES003"

	// RES004 indicates misuse of the super/{{root}} keywords (super
	// with no tail, super past the crate root, {{root}} with fewer
	// than two remaining segments), or a path that is empty or has an
	// empty segment.
	RES004 = "RES004"

	// ============================================================
	// Generation phase (GEN###)
	// ============================================================

	// GEN001 indicates a replacement resolved during collection but no
	// definition with that canonical path exists at generation time.
	// Logged as a warning, not fatal.
	GEN001 = "GEN001"

	// GEN002 indicates the active stub map was read before being
	// installed: a precondition bug, fatal.
	GEN002 = "GEN002"

	// GEN003 indicates a chained stub (A -> B -> ... -> A) formed a
	// cycle; the original body is retained for every member.
	GEN003 = "GEN003"

	// ============================================================
	// Legacy file format (LEG###)
	// ============================================================

	// LEG001 indicates a legacy stub-mapping line did not have exactly
	// two whitespace-separated tokens.
	LEG001 = "LEG001"
)
