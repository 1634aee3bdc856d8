// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"

	"keggblast/pkg/api"
)

// WriteCSV writes hits as an RFC 4180 table, mirroring the text columns.
// Extra fields from structured reports are not flattened into columns; use
// json/jsonl when they matter.
func WriteCSV(w io.Writer, list []api.HitV1, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if err := cw.Write(RowCSV(h)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
