// internal/common/sort.go
package common

import (
	"sort"

	"keggblast/pkg/api"
)

// LessHit defines a stable order for hits (for --sort): species, then
// source gene, then bit score descending, then subject title.
func LessHit(a, b api.HitV1) bool {
	if a.Species != b.Species {
		return a.Species < b.Species
	}
	if a.SourceGene != b.SourceGene {
		return a.SourceGene < b.SourceGene
	}
	if a.BitScore != b.BitScore {
		return ScoreGreater(a.BitScore, b.BitScore)
	}
	return a.SubjectTitle < b.SubjectTitle
}

func SortHits(hs []api.HitV1) {
	sort.SliceStable(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}
