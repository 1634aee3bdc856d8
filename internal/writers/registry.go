// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"keggblast/pkg/api"
)

// HitWriters maps format name → handler. Handlers drain args.In completely
// even on error paths, so producers never block on a dead writer.
var HitWriters = map[string]func(w io.Writer, args HitArgs) error{}

// HitArgs carries per-run presentation options into a handler.
type HitArgs struct {
	Sort   bool
	Header bool
	In     <-chan api.HitV1
}

// RegisterHit installs a handler (idempotent, last wins).
func RegisterHit(format string, fn func(io.Writer, HitArgs) error) { HitWriters[format] = fn }

// WriteHits dispatches to the registered handler for format.
func WriteHits(format string, w io.Writer, args HitArgs) error {
	fn, ok := HitWriters[format]
	if !ok {
		go func() {
			for range args.In {
			}
		}()
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, args)
}
