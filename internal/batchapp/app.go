// internal/batchapp/app.go
package batchapp

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	pb "gopkg.in/cheggaaa/pb.v1"

	"keggblast/internal/appcore"
	"keggblast/internal/batchcli"
	"keggblast/internal/clibase"
	"keggblast/internal/cmdutil"
	"keggblast/internal/common"
	"keggblast/internal/output"
	"keggblast/internal/pipeline"
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

	fs := batchcli.NewFlagSet("keggblast-batch")
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
		_, _ = batchcli.ParseArgs(fs, []string{"-h"})
		return usage()
	}

	opts, err := batchcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage()
		}
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			batchcli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "keggblast-batch version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	inputs, err := collectInputs(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if len(inputs) == 0 {
		_, _ = fmt.Fprintln(stderr, "no species inputs found")
		return 2
	}

	kc := appcore.KeggClient(opts.Common)
	cache := species.NewCache(appcore.CacheConfig(opts.Common), kc)
	records, err := appcore.LoadRecords(parent, cache, opts.Offline)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	resolver := species.NewResolver(records)

	// Non-interactive resolution: unmatched rows flow through as skips.
	targets := make([]pipeline.Target, 0, len(inputs))
	for _, m := range resolver.ResolveBatch(inputs) {
		t := pipeline.Target{Input: m.Input}
		if m.Matched {
			t.Species = m.Record
			t.Resolved = true
		} else {
			cmdutil.Warnf(stderr, opts.Quiet, "species %q: %s", m.Input, species.NoMatchLabel)
		}
		targets = append(targets, t)
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

	var bar *pb.ProgressBar
	if opts.Progress {
		cfg.OnPlan = func(jobs int) {
			bar = pb.New(jobs)
			bar.Output = stderr
			bar.ShowTimeLeft = false
			bar.Start()
		}
		cfg.OnDone = func(string) {
			if bar != nil {
				bar.Increment()
			}
		}
		defer func() {
			if bar != nil {
				bar.Finish()
			}
		}()
	}

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
			return pipeline.Run(ctx, cfg, kc, bc, opts.KO, targets,
				func(row pipeline.HitRow) error {
					return send(output.ToAPIHit(row.Species, row.Gene, row.SeqType.String(), row.File, row.Hit))
				})
		})
}

// collectInputs merges CSV rows and inline --species values, de-duplicated
// case-insensitively in input order.
func collectInputs(opts batchcli.Options) ([]string, error) {
	var inputs []string
	for _, file := range opts.SpeciesFiles {
		rows, err := readSpeciesCSV(file)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, rows...)
	}
	inputs = append(inputs, opts.Species...)
	return common.UniqueFold(inputs), nil
}

// readSpeciesCSV takes the first column of each row. A leading header cell
// named "species" (any case) is skipped.
func readSpeciesCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var out []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := strings.TrimSpace(row[0])
		if cell == "" {
			continue
		}
		if i == 0 && strings.EqualFold(cell, "species") {
			continue
		}
		out = append(out, cell)
	}
	return out, nil
}
