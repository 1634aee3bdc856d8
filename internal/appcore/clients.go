// internal/appcore/clients.go
package appcore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"keggblast/internal/blast"
	"keggblast/internal/clibase"
	"keggblast/internal/kegg"
	"keggblast/internal/pipeline"
	"keggblast/internal/species"
)

// KeggClient builds the KEGG client from shared flags.
func KeggClient(c clibase.Common) *kegg.Client {
	kc := kegg.NewClient()
	if c.KeggURL != "" {
		kc.BaseURL = c.KeggURL
	}
	return kc
}

// BlastClient builds the BLAST job client from shared flags.
func BlastClient(c clibase.Common) *blast.Client {
	bc := blast.NewClient()
	if c.BlastURL != "" {
		bc.BaseURL = c.BlastURL
	}
	bc.PollInterval = time.Duration(c.PollSecs) * time.Second
	if c.MarginSecs > 0 {
		bc.InitialMargin = time.Duration(c.MarginSecs) * time.Second
	} else {
		bc.InitialMargin = -1
	}
	if c.MaxPolls > 0 {
		bc.MaxPolls = c.MaxPolls
	} else {
		bc.MaxPolls = -1 // 0 keeps the legacy unbounded poll loop
	}
	return bc
}

// CacheConfig locates the species cache, defaulting to the user cache dir.
func CacheConfig(c clibase.Common) species.Config {
	dir := c.CacheDir
	if dir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(base, "keggblast")
		} else {
			dir = "."
		}
	}
	cfg := species.DefaultConfig(dir)
	cfg.MaxAge = time.Duration(c.CacheMaxAge) * 24 * time.Hour
	return cfg
}

// LoadRecords loads the organism snapshot, honoring --offline.
func LoadRecords(ctx context.Context, cache *species.Cache, offline bool) ([]species.Record, error) {
	if offline {
		return cache.LoadStale()
	}
	return cache.Load(ctx)
}

// FastaDir returns the artifact directory, creating a temp one when the
// flag is empty. The caller owns cleanup decisions; temp dirs are left in
// place so artifacts survive the run.
func FastaDir(c clibase.Common) (string, error) {
	if c.FastaDir != "" {
		return c.FastaDir, os.MkdirAll(c.FastaDir, 0o755)
	}
	return os.MkdirTemp("", "keggblast-*")
}

// Kinds maps the --seq-type vocabulary onto sequence kinds.
func Kinds(seqType string) []kegg.SequenceKind {
	switch seqType {
	case clibase.SeqTypeGene:
		return []kegg.SequenceKind{kegg.Nucleotide}
	case clibase.SeqTypeBoth:
		return []kegg.SequenceKind{kegg.Amino, kegg.Nucleotide}
	default:
		return []kegg.SequenceKind{kegg.Amino}
	}
}

// PipelineConfig assembles the orchestrator config from shared flags.
func PipelineConfig(c clibase.Common, fastaDir string, logf func(string, ...any)) pipeline.Config {
	return pipeline.Config{
		Workers:      c.Workers,
		Kinds:        Kinds(c.SeqType),
		Program:      c.Program,
		Database:     c.Database,
		EntrezQuery:  c.EntrezQuery,
		FastaDir:     fastaDir,
		SkipBlast:    c.SkipBlast,
		FetchRetries: uint64(c.FetchRetries),
		Logf:         logf,
	}
}
