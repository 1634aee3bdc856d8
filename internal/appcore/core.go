// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"keggblast/internal/pipeline"
	"keggblast/internal/pretty"
	"keggblast/internal/writers"
	"keggblast/pkg/api"
)

// Options is the presentation slice shared by the pipeline apps.
type Options struct {
	Output         string
	Sort           bool
	Header         bool
	Quiet          bool
	NoHitsExitCode int
}

// VisitorFunc filters or transforms a hit before it reaches the writer.
type VisitorFunc func(api.HitV1) (keep bool, out api.HitV1, err error)

// RunFunc drives the pipeline and emits hits via send. It returns the run
// summary; per-item failures belong in the summary, not the error.
type RunFunc func(ctx context.Context, send func(api.HitV1) error) (pipeline.Summary, error)

// Run wires writer goroutine, visitor, and pipeline together, prints the
// end-of-run summary to stderr, and maps the outcome to an exit code:
// 0 ok, NoHitsExitCode when nothing survived, 3 runtime error, 130 cancelled.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, visit VisitorFunc, run RunFunc) int {
	outw := bufio.NewWriter(stdout)

	inCh, writeErr := NewHitWriterFactory(o.Output, o.Sort, o.Header).Start(outw, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total := 0
	sum, perr := run(ctx, func(h api.HitV1) error {
		keep, out, err := visit(h)
		if err != nil {
			return err
		}
		if !keep {
			return nil
		}
		select {
		case inCh <- out:
			total++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	printSummary(stderr, sum)

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.NoHitsExitCode
	}
	return 0
}

// printSummary reports attempted-versus-succeeded counts. It goes to stderr
// unconditionally; --quiet silences warnings, not accounting.
func printSummary(stderr io.Writer, sum pipeline.Summary) {
	lines := make([]string, 0, len(sum.Failures))
	for _, f := range sum.Failures {
		id := f.Species
		if f.Gene != "" {
			id += ":" + f.Gene
		}
		if f.Kind != "" {
			id += " " + string(f.Kind)
		}
		lines = append(lines, id+": "+f.Reason)
	}
	fmt.Fprint(stderr, pretty.RenderSummary(api.SummaryV1{
		Targets:   sum.Targets,
		Attempted: sum.Attempted,
		Succeeded: sum.Succeeded,
		Skipped:   sum.Skipped,
		Failed:    sum.Failed,
	}, lines))
}
