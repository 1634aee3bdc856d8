// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for BLAST hits.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Score values are strings on purpose: they are carried verbatim from the
// upstream report, never recomputed.
type HitV1 struct {
	SubjectTitle string            `json:"subject_title"`
	BitScore     string            `json:"bit_score"`
	EValue       string            `json:"evalue"`
	SourceGene   string            `json:"source_gene,omitempty"`
	SourceFile   string            `json:"source_file,omitempty"`
	Species      string            `json:"species,omitempty"`
	SeqType      string            `json:"seq_type,omitempty"` // "amino" | "gene"
	Extra        map[string]string `json:"extra,omitempty"`
}

// SummaryV1 is the stable schema for end-of-run accounting.
type SummaryV1 struct {
	Targets   int `json:"targets"`
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}
