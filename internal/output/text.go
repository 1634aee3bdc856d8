// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"keggblast/pkg/api"
)

// WriteText prints one TSV line per hit.
func WriteText(w io.Writer, list []api.HitV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText writes hits as they arrive, without buffering the run.
func StreamText(w io.Writer, in <-chan api.HitV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for h := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
			return err
		}
	}
	return nil
}
