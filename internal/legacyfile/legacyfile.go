// Package legacyfile reads and writes the legacy stub-mapping file format:
// one mapping per line, two whitespace-separated canonical paths, ORIGINAL
// then REPLACEMENT, "#"-prefixed lines and blank lines ignored. This
// predates the attribute-based workflow and is kept for migration via the
// legacy-convert command.
package legacyfile

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vericore/stubgen/internal/direrrors"
	"github.com/vericore/stubgen/internal/universe"
)

// Mapping is ORIGINAL canonical path -> REPLACEMENT canonical path, as
// read from or written to the legacy format.
type Mapping map[universe.CanonicalPath]universe.CanonicalPath

// Parse reads the legacy format from r. Malformed lines produce LEG001
// diagnostics but do not stop the scan — every well-formed line is still
// collected, and every malformed line is reported, not just the first.
func Parse(r io.Reader) (Mapping, []*direrrors.Report) {
	out := Mapping{}
	var diags []*direrrors.Report

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			diags = append(diags, direrrors.LegacyLineMalformed(lineNo, line))
			continue
		}
		out[universe.CanonicalPath(fields[0])] = universe.CanonicalPath(fields[1])
	}

	return out, diags
}

// Write renders a Mapping in the legacy format, one line per entry,
// sorted by original path for deterministic output.
func Write(w io.Writer, m Mapping) error {
	keys := make([]universe.CanonicalPath, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s %s\n", k, m[k]); err != nil {
			return err
		}
	}
	return nil
}
