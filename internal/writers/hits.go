// internal/writers/hits.go
package writers

import (
	"io"

	"keggblast/internal/common"
	"keggblast/internal/output"
	"keggblast/pkg/api"
)

func drainHits(ch <-chan api.HitV1) []api.HitV1 {
	list := make([]api.HitV1, 0, 128)
	for h := range ch {
		list = append(list, h)
	}
	return list
}

func init() {
	// JSON array (buffered by nature)
	RegisterHit(output.FormatJSON, func(w io.Writer, args HitArgs) error {
		list := drainHits(args.In)
		if args.Sort {
			common.SortHits(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming
	RegisterHit(output.FormatJSONL, func(w io.Writer, args HitArgs) error {
		pipe, done := StartHitJSONLWriter(w, 64)
		for h := range args.In {
			pipe <- h
		}
		close(pipe)
		return <-done
	})

	// CSV (buffered when sorting, else streamed row by row)
	RegisterHit(output.FormatCSV, func(w io.Writer, args HitArgs) error {
		list := drainHits(args.In)
		if args.Sort {
			common.SortHits(list)
		}
		return output.WriteCSV(w, list, args.Header)
	})

	// TEXT/TSV
	RegisterHit(output.FormatText, func(w io.Writer, args HitArgs) error {
		if args.Sort {
			list := drainHits(args.In)
			common.SortHits(list)
			return output.WriteText(w, list, args.Header)
		}
		err := output.StreamText(w, args.In, args.Header)
		if err != nil {
			for range args.In {
			}
		}
		return err
	})
}

// StartHitWriter spins up a writer goroutine for hit rows.
func StartHitWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- api.HitV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.HitV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WriteHits(format, out, HitArgs{Sort: sort, Header: header, In: in})
	}()
	return in, errCh
}
