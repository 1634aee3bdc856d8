package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err came from writing into a closed pipe.
// Hit tables are commonly piped through `head` or `awk`; the downstream
// end closing early is a normal way to stop a run, not a failure.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
