// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"keggblast/internal/clibase"
	"keggblast/internal/cliutil"
)

// Options holds all flags and arguments of the single-species tool.
type Options struct {
	clibase.Common

	// Single-species specifics
	KO       string // positional or --ko
	Species  string
	Auto     bool
	Examples bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --species NAME K00001\n", name)

		_, _ = fmt.Fprintln(out, "\nSpecies:")
		_, _ = fmt.Fprintln(out, "  -S, --species string        Species code or free-text name [*]")
		_, _ = fmt.Fprintf(out, "      --auto                  Take the top fuzzy candidate without prompting [%s]\n", def("auto"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for keggblast.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "keggblast", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Resolve a species, pull its genes for one KEGG Orthology id,")
		_, _ = fmt.Fprintln(w, "and BLAST every sequence.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  keggblast \\")
		_, _ = fmt.Fprintln(w, "    --species \"homo sapiens\" \\")
		_, _ = fmt.Fprintln(w, "    --seq-type amino \\")
		_, _ = fmt.Fprintln(w, "    --output csv \\")
		_, _ = fmt.Fprintln(w, "    K00001")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&o.KO, "ko", "", "KEGG Orthology id (or pass it as the positional argument)")
	fs.StringVar(&o.Species, "species", "", "species code or free-text name")
	fs.StringVar(&o.Species, "S", "", "alias of --species")
	fs.BoolVar(&o.Auto, "auto", false, "take the top fuzzy candidate without prompting [false]")
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

	if len(posArgs) > 0 {
		if o.KO != "" {
			return o, errors.New("--ko conflicts with a positional KO id")
		}
		o.KO = posArgs[0]
		if len(posArgs) > 1 {
			return o, fmt.Errorf("unexpected arguments after the KO id: %v", posArgs[1:])
		}
	}

	if err := clibase.AfterParse(&o.Common, noHeader); err != nil {
		return o, err
	}
	if strings.TrimSpace(o.KO) == "" {
		return o, errors.New("a KEGG Orthology id is required (positional or --ko)")
	}
	if strings.TrimSpace(o.Species) == "" {
		return o, errors.New("--species is required")
	}
	return o, nil
}
