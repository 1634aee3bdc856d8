package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "species\tsource_gene\tseq_type\tsource_file\tsubject_title\tbit_score\tevalue"

// CSVHeader lists the same columns for encoding/csv writers.
var CSVHeader = []string{"species", "source_gene", "seq_type", "source_file", "subject_title", "bit_score", "evalue"}
