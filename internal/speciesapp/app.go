// internal/speciesapp/app.go
package speciesapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"keggblast/internal/cmdutil"
	"keggblast/internal/jsonutil"
	"keggblast/internal/kegg"
	"keggblast/internal/pretty"
	"keggblast/internal/species"
	"keggblast/internal/speciescli"
	"keggblast/internal/version"
	"keggblast/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := speciescli.NewFlagSet("keggblast-species")
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
		_, _ = speciescli.ParseArgs(fs, []string{"-h"})
		return usage()
	}

	opts, err := speciescli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "keggblast-species version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	kc := kegg.NewClient()
	if opts.KeggURL != "" {
		kc.BaseURL = opts.KeggURL
	}
	dir := opts.CacheDir
	if dir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(base, "keggblast")
		} else {
			dir = "."
		}
	}
	cfg := species.DefaultConfig(dir)
	cfg.MaxAge = time.Duration(opts.CacheMaxAge) * 24 * time.Hour
	cache := species.NewCache(cfg, kc)

	code := run(parent, opts, cache, outw, stderr)
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func run(ctx context.Context, opts speciescli.Options, cache *species.Cache, out, stderr io.Writer) int {
	load := func() ([]species.Record, error) {
		if opts.Offline {
			return cache.LoadStale()
		}
		return cache.Load(ctx)
	}

	switch {
	case opts.Refresh:
		recs, err := cache.Refresh(ctx)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		cmdutil.Infof(stderr, opts.Quiet, "cached %d organisms", len(recs))
		return 0

	case opts.Resolve != "":
		recs, err := load()
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		resolver := species.NewResolver(recs)
		if rec, ok := resolver.Lookup(opts.Resolve); ok {
			return printRecords(out, opts, []species.Record{rec})
		}
		cands, err := resolver.Search(opts.Resolve)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if opts.Output == "json" {
			return printJSON(out, stderr, cands)
		}
		_, _ = fmt.Fprint(out, pretty.RenderCandidates(opts.Resolve, cands))
		return 0

	case opts.List:
		recs, err := load()
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return printRecords(out, opts, recs)
	}
	return 2 // unreachable; ParseArgs enforces one action
}

func printRecords(out io.Writer, opts speciescli.Options, recs []species.Record) int {
	if opts.Output == "json" {
		return printJSON(out, io.Discard, recs)
	}
	if opts.Header {
		_, _ = fmt.Fprintln(out, "tax_id\tcode\tlatin\tcommon")
	}
	for _, r := range recs {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", r.TaxID, r.Code, r.Latin, r.Common)
	}
	return 0
}

func printJSON(out, stderr io.Writer, v any) int {
	if err := jsonutil.EncodePretty(out, v); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
