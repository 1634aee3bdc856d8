// internal/batchcli/options.go
package batchcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"keggblast/internal/clibase"
	"keggblast/internal/cliutil"
)

// Options holds all flags and arguments of the batch tool.
type Options struct {
	clibase.Common

	KO           string
	SpeciesFiles []string // CSV files, one species name per row
	Species      []string // inline --species values
	Progress     bool
	Examples     bool
}

// sliceValue appends each value to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --ko K00001 species.csv [more.csv ...]\n", name)

		_, _ = fmt.Fprintln(out, "\nBatch:")
		_, _ = fmt.Fprintln(out, "  -S, --species string        Species name (repeatable, adds to the CSV rows)")
		_, _ = fmt.Fprintf(out, "      --progress              Progress bar over gene jobs (stderr) [%s]\n", def("progress"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for keggblast-batch.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "keggblast-batch", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Resolve every species in a CSV without prompting and BLAST")
		_, _ = fmt.Fprintln(w, "their genes for one KEGG Orthology id. Unmatched rows are")
		_, _ = fmt.Fprintln(w, "counted and skipped, never fatal.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  keggblast-batch --ko K00001 --output jsonl --progress herd.csv")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&o.KO, "ko", "", "KEGG Orthology id [*]")
	sv := &sliceValue{dst: &o.Species}
	fs.Var(sv, "species", "species name (repeatable)")
	fs.Var(sv, "S", "alias of --species")
	fs.BoolVar(&o.Progress, "progress", false, "progress bar over gene jobs (stderr) [false]")
	fs.BoolVar(&o.Examples, "examples", false, "print usage examples and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if o.Version {
		return o, nil
	}

	files, err := cliutil.ExpandGlobs(posArgs)
	if err != nil {
		return o, err
	}
	o.SpeciesFiles = files

	if err := clibase.AfterParse(&o.Common, noHeader); err != nil {
		return o, err
	}
	if strings.TrimSpace(o.KO) == "" {
		return o, errors.New("--ko is required")
	}
	if len(o.SpeciesFiles) == 0 && len(o.Species) == 0 {
		return o, errors.New("provide a species CSV or at least one --species")
	}
	return o, nil
}
