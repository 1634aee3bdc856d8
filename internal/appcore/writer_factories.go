package appcore

import (
	"io"

	"keggblast/internal/writers"
	"keggblast/pkg/api"
)

// HitWriterFactory binds the output flags to a writer goroutine.
type HitWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewHitWriterFactory(format string, sort, header bool) HitWriterFactory {
	return HitWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.HitV1, <-chan error) {
	return writers.StartHitWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
