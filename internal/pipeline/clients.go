// internal/pipeline/clients.go
package pipeline

import (
	"context"

	"keggblast/internal/blast"
	"keggblast/internal/kegg"
)

// Fetcher is the KEGG surface the pipeline needs.
// Any client (including fakes in tests) can satisfy this.
type Fetcher interface {
	FetchOrthology(ctx context.Context, koID string) (kegg.Entry, error)
	FetchGene(ctx context.Context, geneID string) (kegg.Entry, error)
}

// Runner takes one query through the whole submit/poll/fetch/parse cycle.
type Runner interface {
	Run(ctx context.Context, q blast.Query) ([]blast.Hit, error)
}
