// internal/output/rows.go
package output

import (
	"fmt"

	"keggblast/internal/blast"
	"keggblast/pkg/api"
)

// ToAPIHit binds one parsed hit to its provenance and converts it to the
// stable wire schema (v1). Extra fields are copied so later hits never
// alias the parser's map.
func ToAPIHit(species, gene, seqType, file string, h blast.Hit) api.HitV1 {
	v := api.HitV1{
		SubjectTitle: h.SubjectTitle,
		BitScore:     h.BitScore,
		EValue:       h.EValue,
		SourceGene:   gene,
		SourceFile:   file,
		Species:      species,
		SeqType:      seqType,
	}
	if len(h.Extra) > 0 {
		v.Extra = make(map[string]string, len(h.Extra))
		for k, val := range h.Extra {
			v.Extra[k] = val
		}
	}
	return v
}

// FormatRowTSV returns the 7 base columns (no trailing newline).
func FormatRowTSV(h api.HitV1) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s",
		h.Species, h.SourceGene, h.SeqType, h.SourceFile,
		h.SubjectTitle, h.BitScore, h.EValue,
	)
}

// RowCSV returns the same columns as a record for encoding/csv.
func RowCSV(h api.HitV1) []string {
	return []string{h.Species, h.SourceGene, h.SeqType, h.SourceFile, h.SubjectTitle, h.BitScore, h.EValue}
}
