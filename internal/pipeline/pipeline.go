// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cenkalti/backoff/v4"

	"keggblast/internal/blast"
	"keggblast/internal/fasta"
	"keggblast/internal/kegg"
	"keggblast/internal/species"
)

// DefaultWorkers bounds concurrent gene jobs. The remote ends rate-limit
// aggressively, so the default stays small.
const DefaultWorkers = 2

// Config controls one pipeline run.
type Config struct {
	Workers      int                 // worker goroutines (>=1); 0 means DefaultWorkers
	Kinds        []kegg.SequenceKind // sequence kinds to extract; empty means both
	Program      string              // BLAST program, e.g. "blastn"
	Database     string              // BLAST database, e.g. "nt"
	EntrezQuery  string              // optional taxonomy filter
	FastaDir     string              // artifact root; one subdirectory per species
	SkipBlast    bool                // write artifacts only, no job submission
	FetchRetries uint64              // extra fetch attempts per gene record

	Logf   func(format string, args ...any) // per-item warnings; nil silences them
	OnPlan func(jobs int)                   // called once with the planned job count
	OnDone func(gene string)                // called as each gene job completes
}

// Target is one species to process. Unresolved targets flow through so the
// summary counts them instead of losing them.
type Target struct {
	Input    string
	Species  species.Record
	Resolved bool
}

// HitRow binds one BLAST hit to the gene and artifact it came from.
type HitRow struct {
	Species string
	Gene    string
	SeqType kegg.SequenceKind
	File    string
	Hit     blast.Hit
}

// Failure records one skipped-with-error item. Kind is empty for failures
// that sink the whole gene, like a fetch error.
type Failure struct {
	Species string
	Gene    string
	Kind    kegg.SequenceKind
	Reason  string
}

// Summary is the attempted-versus-succeeded accounting of a run. Targets
// counts requested species. Attempted, Succeeded, and Failed count gene
// jobs. Skipped mixes two granularities: species dropped before gene work
// (unresolved, no row in the GENES table) and genes none of whose requested
// blocks exist.
type Summary struct {
	Targets   int
	Attempted int
	Succeeded int
	Skipped   int
	Failed    int
	Failures  []Failure
}

type geneJob struct {
	targetIdx int
	geneIdx   int
	species   species.Record
	gene      string
}

type geneResult struct {
	targetIdx int
	geneIdx   int
	species   string
	gene      string
	rows      []HitRow
	failures  []Failure
	artifacts int
}

// Run drives the whole pipeline for one orthology id and calls visit once
// per hit row, grouped by target order, then gene order, then kind order.
// Per-item failures land in the summary; only the orthology fetch itself,
// context cancellation, and visit errors abort the run.
func Run(ctx context.Context, cfg Config, kc Fetcher, bc Runner, koID string, targets []Target, visit func(HitRow) error) (Summary, error) {
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = []kegg.SequenceKind{kegg.Amino, kegg.Nucleotide}
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	sum := Summary{Targets: len(targets)}

	entry, err := kc.FetchOrthology(ctx, koID)
	if err != nil {
		return sum, err
	}
	table, err := kegg.ParseGeneTable(entry.Text)
	if err != nil {
		return sum, err
	}

	// Plan: one job per gene of each resolvable target.
	var queue []geneJob
	for ti, t := range targets {
		if !t.Resolved {
			sum.Skipped++
			logf("species %q: no match", t.Input)
			continue
		}
		code := t.Species.Code
		row, ok := table.Row(code)
		if !ok {
			sum.Skipped++
			logf("species %s: no row in GENES table of %s", code, koID)
			continue
		}
		if err := os.MkdirAll(filepath.Join(cfg.FastaDir, code), 0o755); err != nil {
			sum.Failed++
			sum.Failures = append(sum.Failures, Failure{Species: code, Reason: fmt.Sprintf("mkdir: %v", err)})
			continue
		}
		for gi, gene := range kegg.CanonicalGenes(row) {
			queue = append(queue, geneJob{targetIdx: ti, geneIdx: gi, species: t.Species, gene: gene})
		}
	}
	if cfg.OnPlan != nil {
		cfg.OnPlan(len(queue))
	}

	jobs := make(chan geneJob, cfg.Workers*2)
	results := make(chan geneResult, cfg.Workers*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case jb, ok := <-jobs:
					if !ok {
						return
					}
					res := processGene(ctx, cfg, kc, bc, jb)
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector keeps results until all workers finish, so emission order
	// never depends on scheduling.
	var (
		collected []geneResult
		cwg       sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for res := range results {
			collected = append(collected, res)
			if cfg.OnDone != nil {
				cfg.OnDone(res.gene)
			}
		}
	}()

feed:
	for _, jb := range queue {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- jb:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	sort.Slice(collected, func(i, j int) bool {
		if collected[i].targetIdx != collected[j].targetIdx {
			return collected[i].targetIdx < collected[j].targetIdx
		}
		return collected[i].geneIdx < collected[j].geneIdx
	})

	var verr error
	for _, res := range collected {
		sum.Attempted++
		switch {
		case len(res.failures) > 0:
			sum.Failed++
			sum.Failures = append(sum.Failures, res.failures...)
			for _, f := range res.failures {
				item := f.Species + ":" + f.Gene
				if f.Kind != "" {
					item += " " + string(f.Kind)
				}
				logf("%s: %s", item, f.Reason)
			}
		case res.artifacts > 0:
			sum.Succeeded++
		default:
			sum.Skipped++
			logf("%s:%s: no usable sequence blocks", res.species, res.gene)
		}
		if verr != nil {
			continue
		}
		for _, row := range res.rows {
			if err := visit(row); err != nil {
				verr = err
				break
			}
		}
	}

	if ctx.Err() != nil {
		return sum, ctx.Err()
	}
	return sum, verr
}

// processGene runs one gene end to end: fetch, then per kind extract,
// write, and (unless skipped) BLAST. Every error is recorded rather than
// returned so one gene never sinks another.
func processGene(ctx context.Context, cfg Config, kc Fetcher, bc Runner, jb geneJob) geneResult {
	res := geneResult{targetIdx: jb.targetIdx, geneIdx: jb.geneIdx, species: jb.species.Code, gene: jb.gene}
	code := jb.species.Code
	geneID := kegg.JoinGeneID(code, jb.gene)

	entry, err := fetchGene(ctx, kc, geneID, cfg.FetchRetries)
	if err != nil {
		res.failures = append(res.failures, Failure{Species: code, Gene: jb.gene, Reason: fmt.Sprintf("fetch: %v", err)})
		return res
	}

	for _, kind := range cfg.Kinds {
		seq, err := kegg.ExtractSequence(entry.Text, kind)
		if err != nil {
			res.failures = append(res.failures, Failure{Species: code, Gene: jb.gene, Kind: kind, Reason: err.Error()})
			continue
		}
		if seq == "" {
			continue // record has no block of this kind
		}
		path := filepath.Join(cfg.FastaDir, code, fmt.Sprintf("%s_%s", jb.gene, kind))
		written, err := fasta.Write(path, jb.gene, seq)
		if err != nil {
			res.failures = append(res.failures, Failure{Species: code, Gene: jb.gene, Kind: kind, Reason: err.Error()})
			continue
		}
		res.artifacts++
		if cfg.SkipBlast {
			continue
		}
		hits, err := bc.Run(ctx, blast.Query{
			Program:     cfg.Program,
			Database:    cfg.Database,
			Sequence:    seq,
			EntrezQuery: cfg.EntrezQuery,
		})
		if err != nil {
			res.failures = append(res.failures, Failure{Species: code, Gene: jb.gene, Kind: kind, Reason: err.Error()})
			continue
		}
		for _, h := range hits {
			res.rows = append(res.rows, HitRow{Species: code, Gene: jb.gene, SeqType: kind, File: written, Hit: h})
		}
	}
	return res
}

// fetchGene retries transient failures with exponential backoff; a KEGG
// not-found is permanent and returns immediately.
func fetchGene(ctx context.Context, kc Fetcher, geneID string, retries uint64) (kegg.Entry, error) {
	var entry kegg.Entry
	op := func() error {
		var err error
		entry, err = kc.FetchGene(ctx, geneID)
		if err != nil {
			if kegg.IsNotFound(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return kegg.Entry{}, err
	}
	return entry, nil
}
