// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"keggblast/internal/appcore"
	"keggblast/internal/cli"
	"keggblast/internal/clibase"
	"keggblast/internal/cmdutil"
	"keggblast/internal/output"
	"keggblast/internal/pipeline"
	"keggblast/internal/pretty"
	"keggblast/internal/species"
	"keggblast/internal/version"
	"keggblast/internal/visitors"
	"keggblast/internal/writers"
	"keggblast/pkg/api"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("keggblast")
	fs.SetOutput(io.Discard)

	usage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage()
		}
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
			if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "keggblast version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	kc := appcore.KeggClient(opts.Common)
	cache := species.NewCache(appcore.CacheConfig(opts.Common), kc)
	records, err := appcore.LoadRecords(parent, cache, opts.Offline)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	resolver := species.NewResolver(records)

	pick := species.FirstSelector
	if !opts.Auto {
		pick = promptSelector(opts.Species, os.Stdin, stderr)
	}

	target := pipeline.Target{Input: opts.Species}
	rec, err := resolver.Resolve(opts.Species, pick)
	switch {
	case err == nil:
		target.Species = rec
		target.Resolved = true
	default:
		var noMatch *species.NoMatchError
		if !errors.As(err, &noMatch) {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		// No candidate: the run proceeds and reports one skipped species.
		cmdutil.Warnf(stderr, opts.Quiet, "species %q: no match in the organism list", opts.Species)
	}

	fastaDir, err := appcore.FastaDir(opts.Common)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	bc := appcore.BlastClient(opts.Common)
	cfg := appcore.PipelineConfig(opts.Common, fastaDir, func(format string, a ...any) {
		cmdutil.Warnf(stderr, opts.Quiet, format, a...)
	})

	limit := &visitors.Limit{N: opts.Limit}
	return appcore.Run(parent, stdout, stderr,
		appcore.Options{
			Output:         opts.Output,
			Sort:           opts.Sort,
			Header:         opts.Header,
			Quiet:          opts.Quiet,
			NoHitsExitCode: opts.NoHitsExitCode,
		},
		limit.Visit,
		func(ctx context.Context, send func(api.HitV1) error) (pipeline.Summary, error) {
			return pipeline.Run(ctx, cfg, kc, bc, opts.KO, []pipeline.Target{target},
				func(row pipeline.HitRow) error {
					return send(output.ToAPIHit(row.Species, row.Gene, row.SeqType.String(), row.File, row.Hit))
				})
		})
}

// promptSelector renders the ranked candidates on prompt and reads a 1-based
// choice from in. An empty line takes the top candidate.
func promptSelector(input string, in io.Reader, prompt io.Writer) species.SelectFunc {
	return func(cands []species.Candidate) (species.Candidate, error) {
		_, _ = fmt.Fprint(prompt, pretty.RenderCandidates(input, cands))
		_, _ = fmt.Fprintf(prompt, "pick [1-%d, empty=1]: ", len(cands))
		sc := bufio.NewScanner(in)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return species.Candidate{}, err
			}
			return cands[0], nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return cands[0], nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(cands) {
			return species.Candidate{}, fmt.Errorf("invalid choice %q", line)
		}
		return cands[n-1], nil
	}
}
