// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK signals that --examples was handled and the app
// should exit 0 without running anything.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples frames a tool-specific quickstart body with the shared
// header and the closing help tip.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
