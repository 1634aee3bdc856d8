// internal/output/json.go
package output

import (
	"io"

	"keggblast/internal/jsonutil"
	"keggblast/pkg/api"
)

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteJSON(w io.Writer, list []api.HitV1) error {
	if list == nil {
		list = []api.HitV1{}
	}
	return jsonutil.EncodePretty(w, list)
}
