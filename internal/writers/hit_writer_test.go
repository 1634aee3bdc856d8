package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"syscall"
	"testing"
	"time"

	"keggblast/internal/output"
	"keggblast/pkg/api"
)

func feed(t *testing.T, format string, sort, header bool, hits ...api.HitV1) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, format, sort, header, 4)
	for _, h := range hits {
		in <- h
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	return buf.String()
}

func TestStartHitWriterJSON(t *testing.T) {
	got := feed(t, output.FormatJSON, true, false,
		api.HitV1{Species: "hsa", SourceGene: "g2", SubjectTitle: "b", BitScore: "10"},
		api.HitV1{Species: "hsa", SourceGene: "g1", SubjectTitle: "a", BitScore: "20"},
	)
	var hits []api.HitV1
	if err := json.Unmarshal([]byte(got), &hits); err != nil || len(hits) != 2 {
		t.Fatalf("json roundtrip: %v len=%d", err, len(hits))
	}
	if hits[0].SourceGene != "g1" {
		t.Fatalf("sort not applied: %+v", hits)
	}
}

func TestStartHitWriterJSONL(t *testing.T) {
	got := feed(t, output.FormatJSONL, false, false,
		api.HitV1{SubjectTitle: "a"},
		api.HitV1{SubjectTitle: "b"},
	)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 JSONL lines, got %d:\n%s", len(lines), got)
	}
	for _, ln := range lines {
		var h api.HitV1
		if err := json.Unmarshal([]byte(ln), &h); err != nil {
			t.Fatalf("line %q: %v", ln, err)
		}
	}
}

func TestStartHitWriterTextStreamsHeader(t *testing.T) {
	got := feed(t, output.FormatText, false, true,
		api.HitV1{Species: "hsa", SourceGene: "g", SeqType: "amino", SubjectTitle: "t", BitScore: "1", EValue: "2"},
	)
	if !strings.HasPrefix(got, output.TSVHeader+"\n") {
		t.Fatalf("missing header:\n%s", got)
	}
}

// errWriter fails every write with a fixed error.
type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

// feedDead pushes hits at a writer whose output is already gone and fails
// the test if any send or the final error read stalls.
func feedDead(t *testing.T, format string, w errWriter, n int) error {
	t.Helper()
	in := make(chan api.HitV1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WriteHits(format, w, HitArgs{In: in})
	}()
	// Big enough payloads that the run overflows any internal buffering.
	pad := strings.Repeat("x", 2048)
	for i := 0; i < n; i++ {
		select {
		case in <- api.HitV1{SubjectTitle: pad}:
		case <-time.After(5 * time.Second):
			t.Fatalf("send %d blocked; handler stopped draining", i)
		}
	}
	close(in)
	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("handler never returned after close")
		return nil
	}
}

func TestStartHitWriterJSONLDrainsAfterBrokenPipe(t *testing.T) {
	err := feedDead(t, output.FormatJSONL, errWriter{err: syscall.EPIPE}, 300)
	if err != nil {
		t.Fatalf("broken pipe should read as a clean close, got %v", err)
	}
}

func TestStartHitWriterJSONLDrainsAfterWriteError(t *testing.T) {
	boom := errors.New("device full")
	err := feedDead(t, output.FormatJSONL, errWriter{err: boom}, 300)
	if !errors.Is(err, boom) {
		t.Fatalf("want the write error surfaced, got %v", err)
	}
}

func TestStartHitWriterTextDrainsAfterWriteError(t *testing.T) {
	boom := errors.New("device full")
	err := feedDead(t, output.FormatText, errWriter{err: boom}, 300)
	if !errors.Is(err, boom) {
		t.Fatalf("want the write error surfaced, got %v", err)
	}
}

func TestStartHitWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, "xml", false, false, 1)
	in <- api.HitV1{} // must not deadlock even though the format is bad
	close(in)
	if err := <-done; err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
