// internal/kegg/record.go
package kegg

import (
	"fmt"
	"strings"
)

// Entry is a raw KEGG flat-file record.
type Entry struct {
	ID   string
	Text string
}

// SequenceKind selects which sequence block of a gene record to extract.
// The values double as the user-facing vocabulary ("amino", "gene").
type SequenceKind string

const (
	Amino      SequenceKind = "amino"
	Nucleotide SequenceKind = "gene"
)

// Keyword returns the flat-file block keyword for the kind.
func (k SequenceKind) Keyword() string {
	if k == Nucleotide {
		return "NTSEQ"
	}
	return "AASEQ"
}

func (k SequenceKind) String() string { return string(k) }

// Flat-file blocks continue on lines indented by exactly this many spaces.
const indentWidth = 12

// GeneRow is one species line of a GENES block.
type GeneRow struct {
	Code  string   // species code as printed, e.g. "HSA"
	Genes []string // gene groups in block order
}

// GeneTable is a parsed GENES block, one row per species, block order kept.
type GeneTable []GeneRow

// Row returns the row whose species code equals code, case-insensitively.
func (t GeneTable) Row(code string) (GeneRow, bool) {
	for _, r := range t {
		if strings.EqualFold(r.Code, code) {
			return r, true
		}
	}
	return GeneRow{}, false
}

// Codes lists the table's species codes in block order.
func (t GeneTable) Codes() []string {
	out := make([]string, len(t))
	for i, r := range t {
		out[i] = r.Code
	}
	return out
}

// ParseGeneTable extracts the GENES block of an orthology record. A record
// without the block yields a nil table and no error. A block that is present
// but unusable (no rows with genes, a line without the species separator, or
// a duplicated species code) is a MalformedRecordError.
func ParseGeneTable(text string) (GeneTable, error) {
	lines, found := collectBlock(text, "GENES", true)
	if !found {
		return nil, nil
	}
	var table GeneTable
	seen := make(map[string]struct{}, len(lines))
	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" {
			continue
		}
		code, rest, ok := strings.Cut(trimmed, ":")
		if !ok {
			return nil, &MalformedRecordError{Block: "GENES", Reason: fmt.Sprintf("line %q has no species separator", trimmed)}
		}
		code = strings.TrimSpace(code)
		key := strings.ToLower(code)
		if _, dup := seen[key]; dup {
			return nil, &MalformedRecordError{Block: "GENES", Reason: fmt.Sprintf("duplicate species code %q", code)}
		}
		genes := strings.Fields(rest)
		if len(genes) == 0 {
			continue
		}
		seen[key] = struct{}{}
		table = append(table, GeneRow{Code: code, Genes: genes})
	}
	if len(table) == 0 {
		return nil, &MalformedRecordError{Block: "GENES", Reason: "block present but has no usable rows"}
	}
	return table, nil
}

// CanonicalGenes reproduces the historical gene-symbol selection: the row's
// groups are joined with single spaces, re-split on single spaces, and the
// last whitespace field of each group wins. Alias prefixes inside a group
// are dropped. Downstream ids depend on this exact behavior.
func CanonicalGenes(row GeneRow) []string {
	groups := strings.Split(strings.Join(row.Genes, " "), " ")
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		fields := strings.Fields(g)
		if len(fields) == 0 {
			continue
		}
		out = append(out, fields[len(fields)-1])
	}
	return out
}

// ExtractSequence pulls the AASEQ or NTSEQ block of a gene record as one
// uppercase string. A record without the block yields "" and no error; a
// keyword with no sequence lines under it is a MalformedRecordError. The
// keyword line itself only carries the length and is discarded.
func ExtractSequence(text string, kind SequenceKind) (string, error) {
	lines, found := collectBlock(text, kind.Keyword(), false)
	if !found {
		return "", nil
	}
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(strings.TrimSpace(ln))
	}
	if b.Len() == 0 {
		return "", &MalformedRecordError{Block: kind.Keyword(), Reason: "block present but empty"}
	}
	return strings.ToUpper(b.String()), nil
}

// collectBlock gathers a labeled block's lines: the block starts at the line
// beginning with keyword and runs while lines keep the 12-space continuation
// indent. found distinguishes an absent keyword from an empty block. With
// keywordPayload the keyword line's own text past the indent is included.
func collectBlock(text, keyword string, keywordPayload bool) (lines []string, found bool) {
	indent := strings.Repeat(" ", indentWidth)
	for _, line := range strings.Split(text, "\n") {
		if !found {
			if strings.HasPrefix(line, keyword) {
				found = true
				if keywordPayload && len(line) > indentWidth {
					lines = append(lines, line[indentWidth:])
				}
			}
			continue
		}
		if strings.HasPrefix(line, indent) {
			lines = append(lines, line[indentWidth:])
			continue
		}
		break
	}
	return lines, found
}
