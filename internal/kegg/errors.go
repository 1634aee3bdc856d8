// internal/kegg/errors.go
package kegg

import (
	"errors"
	"fmt"
)

// TransportError is a network-level failure reaching KEGG. The request never
// produced a usable response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("kegg: request %s: %v", e.URL, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// NotFoundError means the server answered but holds no usable record for the
// id: non-2xx status, empty body, an error page, or a body without an ENTRY
// line. All four look the same to callers.
type NotFoundError struct {
	ID     string
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("kegg: entry %q not found (%s)", e.ID, e.Reason)
}

// MalformedRecordError means a record was fetched but a labeled block inside
// it violates the flat-file layout.
type MalformedRecordError struct {
	Block  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("kegg: malformed %s block: %s", e.Block, e.Reason)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError. Useful for
// callers deciding whether a retry can help.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
