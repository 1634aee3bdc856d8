// internal/speciescli/options.go
package speciescli

import (
	"errors"
	"flag"
	"fmt"

	"keggblast/internal/cliutil"
	"keggblast/internal/version"
)

// Options holds the cache utility's flags. Exactly one action flag must be
// chosen.
type Options struct {
	// Actions
	Refresh bool
	Resolve string // free-text name to rank
	List    bool

	// Cache
	KeggURL     string
	CacheDir    string
	CacheMaxAge int // days
	Offline     bool

	// Output
	Output string // text | json
	Header bool

	Quiet   bool
	Version bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, "%s – organism cache utility\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --refresh\n", name)
		fmt.Fprintf(out, "  %s --resolve \"house mouse\"\n", name)
		fmt.Fprintf(out, "  %s --list --output json\n", name)

		fmt.Fprintln(out, "\nActions (pick one):")
		fmt.Fprintln(out, "      --refresh               Re-download the organism table now")
		fmt.Fprintln(out, "      --resolve string        Rank cache candidates for a free-text name")
		fmt.Fprintln(out, "      --list                  Print every cached organism")

		fmt.Fprintln(out, "\nCache:")
		fmt.Fprintln(out, "      --kegg-url string       KEGG REST base URL (default: public endpoint)")
		fmt.Fprintln(out, "      --cache-dir string      Species cache directory (default: user cache dir)")
		fmt.Fprintf(out, "      --cache-max-age int     Cache max age in days [%s]\n", def("cache-max-age"))
		fmt.Fprintf(out, "      --offline               Use the on-disk cache even when stale [%s]\n", def("offline"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	fs.BoolVar(&o.Refresh, "refresh", false, "re-download the organism table now [false]")
	fs.StringVar(&o.Resolve, "resolve", "", "rank cache candidates for a free-text name")
	fs.BoolVar(&o.List, "list", false, "print every cached organism [false]")

	fs.StringVar(&o.KeggURL, "kegg-url", "", "KEGG REST base URL (default: public endpoint)")
	fs.StringVar(&o.CacheDir, "cache-dir", "", "species cache directory (default: user cache dir)")
	fs.IntVar(&o.CacheMaxAge, "cache-max-age", 7, "cache max age in days [7]")
	fs.BoolVar(&o.Offline, "offline", false, "use the on-disk cache even when stale [false]")

	fs.StringVar(&o.Output, "output", "text", "output: text | json [text]")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	o.Header = !noHeader

	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", posArgs)
	}
	actions := 0
	if o.Refresh {
		actions++
	}
	if o.Resolve != "" {
		actions++
	}
	if o.List {
		actions++
	}
	if actions != 1 {
		return o, errors.New("pick exactly one of --refresh, --resolve, --list")
	}
	if o.Output != "text" && o.Output != "json" {
		return o, fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.CacheMaxAge < 0 {
		return o, errors.New("--cache-max-age must be ≥ 0")
	}
	return o, nil
}
