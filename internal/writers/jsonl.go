// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"keggblast/internal/jsonlutil"
	"keggblast/pkg/api"
)

// StartHitJSONLWriter streams each hit as one JSON line (v1).
func StartHitJSONLWriter(out io.Writer, bufSize int) (chan<- api.HitV1, <-chan error) {
	return jsonlutil.Start[api.HitV1](out, bufSize,
		func(enc *json.Encoder, h api.HitV1) error {
			return enc.Encode(h)
		},
		IsBrokenPipe,
	)
}
