// internal/jsonlutil/jsonlutil.go

// Package jsonlutil runs line-delimited JSON encoding on its own goroutine
// so producers never block on output formatting.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Writers share pooled 64 KiB buffers; the encoder itself is cheap and
// rebuilt per writer since it binds to the output.
var bufPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start launches a JSONL encoder goroutine for values of type T. Each value
// goes through encode; the error channel reports the first failure, or nil
// after a clean flush. Broken-pipe errors recognized by isBroken are
// swallowed so a downstream `head` does not read as a failure.
//
// The goroutine keeps receiving until the channel closes even after a
// failed encode, so a producer blocked on send always gets unstuck.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			// Drop the reference to out before pooling the buffer.
			bw.Reset(io.Discard)
			bufPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var encErr error
		for v := range in {
			if encErr != nil {
				continue // dead output; drain so the producer can finish
			}
			encErr = encode(enc, v)
		}
		if encErr != nil {
			if isBroken(encErr) {
				encErr = nil
			}
			done <- encErr
			return
		}
		if err := bw.Flush(); err != nil && !isBroken(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
