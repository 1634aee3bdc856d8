// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
)

// Sequence kind vocabulary shared by the tools ("gene" selects NTSEQ).
const (
	SeqTypeAmino = "amino"
	SeqTypeGene  = "gene"
	SeqTypeBoth  = "both"
)

// Common holds CLI fields shared by keggblast and keggblast-batch.
type Common struct {
	// Services
	KeggURL  string
	BlastURL string

	// Species cache
	CacheDir    string
	CacheMaxAge int // days
	Offline     bool

	// BLAST job
	Program     string
	Database    string
	EntrezQuery string
	SeqType     string // amino | gene | both
	PollSecs    int
	MarginSecs  int
	MaxPolls    int
	SkipBlast   bool

	// Pipeline
	Workers      int
	FetchRetries int
	FastaDir     string
	Limit        int

	// Output
	Output         string // text | csv | json | jsonl
	Sort           bool
	Header         bool
	NoHitsExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool the caller uses to set Common.Header after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Services
	fs.StringVar(&c.KeggURL, "kegg-url", "", "KEGG REST base URL (default: public endpoint)")
	fs.StringVar(&c.BlastURL, "blast-url", "", "BLAST URL API endpoint (default: NCBI)")

	// Species cache
	fs.StringVar(&c.CacheDir, "cache-dir", "", "species cache directory (default: user cache dir)")
	fs.IntVar(&c.CacheMaxAge, "cache-max-age", 7, "species cache max age in days [7]")
	fs.BoolVar(&c.Offline, "offline", false, "use the on-disk species cache even when stale [false]")

	// BLAST job
	fs.StringVar(&c.Program, "program", "blastp", "BLAST program (opaque, passed through) [blastp]")
	fs.StringVar(&c.Database, "database", "nr", "BLAST database (opaque, passed through) [nr]")
	fs.StringVar(&c.Database, "d", "nr", "alias of --database")
	fs.StringVar(&c.EntrezQuery, "entrez-query", "", "optional ENTREZ_QUERY filter, e.g. 'txid9606[ORGN]'")
	fs.StringVar(&c.SeqType, "seq-type", SeqTypeAmino, "sequence kind: amino | gene | both [amino]")
	fs.IntVar(&c.PollSecs, "poll-interval", 30, "seconds between job status checks [30]")
	fs.IntVar(&c.MarginSecs, "initial-margin", 5, "seconds added to the server's completion estimate before the first poll [5]")
	fs.IntVar(&c.MaxPolls, "max-polls", 120, "status checks per job before giving up (0=unbounded) [120]")
	fs.BoolVar(&c.SkipBlast, "skip-blast", false, "write FASTA artifacts only, submit nothing [false]")

	// Pipeline
	fs.IntVar(&c.Workers, "workers", 0, "concurrent gene jobs (0=default 2) [0]")
	fs.IntVar(&c.Workers, "w", 0, "alias of --workers")
	fs.IntVar(&c.FetchRetries, "fetch-retries", 3, "extra attempts per gene record fetch [3]")
	fs.StringVar(&c.FastaDir, "fasta-dir", "", "directory for per-gene FASTA artifacts (default: temp dir)")
	fs.IntVar(&c.Limit, "limit", 0, "keep at most N hits per gene and kind (0=all) [0]")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | csv | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "sort hits deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoHitsExitCode, "no-hits-exit-code", 1, "exit code when no hits survive [1]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes the header toggle and runs shared validation.
func AfterParse(c *Common, noHeader *bool) error {
	c.Header = !*noHeader
	return Validate(c)
}

// Validate applies shared CLI invariants used by both pipeline tools.
func Validate(c *Common) error {
	switch c.SeqType {
	case SeqTypeAmino, SeqTypeGene, SeqTypeBoth:
	default:
		return fmt.Errorf("invalid --seq-type %q (want amino, gene, or both)", c.SeqType)
	}
	switch c.Output {
	case "text", "csv", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if c.FetchRetries < 0 {
		return errors.New("--fetch-retries must be ≥ 0")
	}
	if c.CacheMaxAge < 0 {
		return errors.New("--cache-max-age must be ≥ 0")
	}
	if c.PollSecs < 1 {
		return errors.New("--poll-interval must be ≥ 1")
	}
	if c.MarginSecs < 0 {
		return errors.New("--initial-margin must be ≥ 0")
	}
	if c.MaxPolls < 0 {
		return errors.New("--max-polls must be ≥ 0")
	}
	if c.Limit < 0 {
		return errors.New("--limit must be ≥ 0")
	}
	if c.NoHitsExitCode < 0 || c.NoHitsExitCode > 255 {
		return errors.New("--no-hits-exit-code must be between 0 and 255")
	}
	return nil
}
