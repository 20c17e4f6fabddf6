package main

import (
	"encoding/json"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// jsonEncoder returns a function that writes v to w as indented JSON
// followed by a newline, used by every --json flag across subcommands.
func jsonEncoder(w io.Writer) func(v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode
}

// dumpDebug renders v with go-spew, for the --debug flag on generate: an
// internal tree structure like an IR body is much easier to eyeball as a
// spew dump than as default %+v formatting.
func dumpDebug(w io.Writer, label string, v interface{}) {
	io.WriteString(w, label+":\n")
	spew.Fdump(w, v)
}
