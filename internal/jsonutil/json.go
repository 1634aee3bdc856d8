// internal/jsonutil/json.go
package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DecodeNumber decodes data into v keeping numbers as json.Number, so
// "2e-31" survives with its literal spelling instead of a float round trip.
func DecodeNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
