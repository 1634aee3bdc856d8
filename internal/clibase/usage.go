// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"keggblast/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, batch blocks, etc.).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – KEGG orthology to BLAST hit tables\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage examples, extra sections)
		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nServices:")
		fmt.Fprintln(out, "      --kegg-url string       KEGG REST base URL (default: public endpoint)")
		fmt.Fprintln(out, "      --blast-url string      BLAST URL API endpoint (default: NCBI)")

		fmt.Fprintln(out, "\nSpecies cache:")
		fmt.Fprintln(out, "      --cache-dir string      Species cache directory (default: user cache dir)")
		fmt.Fprintf(out, "      --cache-max-age int     Cache max age in days [%s]\n", def("cache-max-age"))
		fmt.Fprintf(out, "      --offline               Use the on-disk cache even when stale [%s]\n", def("offline"))

		fmt.Fprintln(out, "\nBLAST job:")
		fmt.Fprintf(out, "      --program string        BLAST program (opaque, passed through) [%s]\n", def("program"))
		fmt.Fprintf(out, "  -d, --database string       BLAST database (opaque, passed through) [%s]\n", def("database"))
		fmt.Fprintln(out, "      --entrez-query string   Optional ENTREZ_QUERY filter, e.g. 'txid9606[ORGN]'")
		fmt.Fprintf(out, "      --seq-type string       Sequence kind: amino | gene | both [%s]\n", def("seq-type"))
		fmt.Fprintf(out, "      --poll-interval int     Seconds between job status checks [%s]\n", def("poll-interval"))
		fmt.Fprintf(out, "      --initial-margin int    Seconds added to the server estimate before the first poll [%s]\n", def("initial-margin"))
		fmt.Fprintf(out, "      --max-polls int         Status checks per job before giving up (0=unbounded) [%s]\n", def("max-polls"))
		fmt.Fprintf(out, "      --skip-blast            Write FASTA artifacts only, submit nothing [%s]\n", def("skip-blast"))

		fmt.Fprintln(out, "\nPipeline:")
		fmt.Fprintf(out, "  -w, --workers int           Concurrent gene jobs (0=default 2) [%s]\n", def("workers"))
		fmt.Fprintf(out, "      --fetch-retries int     Extra attempts per gene record fetch [%s]\n", def("fetch-retries"))
		fmt.Fprintln(out, "      --fasta-dir string      Directory for per-gene FASTA artifacts (default: temp dir)")
		fmt.Fprintf(out, "      --limit int             Keep at most N hits per gene and kind (0=all) [%s]\n", def("limit"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | csv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Sort hits deterministically [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-hits-exit-code int Exit code when no hits survive [%s]\n", def("no-hits-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
