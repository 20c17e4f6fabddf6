package direrrors

import (
	"encoding/json"
	"errors"

	"github.com/vericore/stubgen/internal/universe"
)

// Report is the canonical structured diagnostic type for stubgen. All
// error builders return *Report; WrapReport wraps one as a ReportError so
// structured data survives ordinary Go error wrapping.
type Report struct {
	Schema  string             `json:"schema"`
	Code    string             `json:"code"`
	Phase   string             `json:"phase"` // "resolve", "collect", "generate", "legacy"
	Message string             `json:"message"`
	Span    *universe.Span     `json:"span,omitempty"`
	Data    map[string]any     `json:"data,omitempty"`
	Fix     *Fix               `json:"fix,omitempty"`
	Severity Severity          `json:"severity"`
}

// Severity distinguishes diagnostics that abort a session from ones that
// are merely logged — the taxonomy mixes both.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Fix is an optional suggested remedy (DuplicateMapping sets one).
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// ReportError wraps a Report as an error.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown stubgen error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as an error.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders the report as deterministic JSON (map keys sorted by
// encoding/json by default for map[string]any).
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// IsFatal reports whether the session should abort on this report. Every
// taxonomy item is fatal except "missing replacement body" and "stub
// chain cycle", which are warnings.
func (r *Report) IsFatal() bool {
	return r.Severity == SeverityError
}
