// internal/blast/hits.go
package blast

import (
	"encoding/json"
	"fmt"
	"strings"

	"keggblast/internal/jsonutil"
)

// Hit is one alignment subject. Score values stay strings: the text report
// prints composite forms like "123 bits (316)" and structured reports may
// use scientific notation that must survive a round trip untouched.
type Hit struct {
	SubjectTitle string
	BitScore     string
	EValue       string
	// Extra holds structured-report fields beyond the three standard ones.
	Extra map[string]string
}

// ParseText extracts hits from a plain-text alignment report. A ">" line
// opens a hit with the rest of the line as subject title; each "Score ="
// line fills bit score and, past the first comma, the expect value. Later
// score lines overwrite earlier ones within the same hit, so a multi-HSP
// alignment reports its last HSP.
func ParseText(text string) []Hit {
	var hits []Hit
	var cur *Hit
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, ">"):
			if cur != nil {
				hits = append(hits, *cur)
			}
			cur = &Hit{SubjectTitle: strings.TrimSpace(line[1:])}
		case strings.Contains(line, "Score ="):
			if cur == nil {
				cur = &Hit{}
			}
			parts := strings.Split(line, ",")
			cur.BitScore = valueAfterEquals(parts[0])
			if len(parts) > 1 {
				cur.EValue = valueAfterEquals(parts[1])
			}
		}
	}
	if cur != nil {
		hits = append(hits, *cur)
	}
	return hits
}

// valueAfterEquals trims everything through the last equals sign. "Expect =
// 4e-12" becomes "4e-12"; a segment without one is returned whole.
func valueAfterEquals(s string) string {
	if i := strings.LastIndexByte(s, '='); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// ParseJSON reads a structured hit list: a top-level array of flat objects.
// The three standard fields map onto Hit directly and every other key lands
// in Extra, stringified but otherwise verbatim. Any other top-level shape,
// including a full BlastOutput2 report, is an UnsupportedFormatError.
func ParseJSON(data []byte) ([]Hit, error) {
	var raw any
	if err := jsonutil.DecodeNumber(data, &raw); err != nil {
		return nil, fmt.Errorf("blast: decode hit list: %w", err)
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, &UnsupportedFormatError{Shape: describeShape(raw)}
	}
	hits := make([]Hit, 0, len(arr))
	for i, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("blast: hit list element %d is not an object", i)
		}
		var h Hit
		for k, v := range obj {
			switch k {
			case "subject_title":
				h.SubjectTitle = stringifyJSONValue(v)
			case "bit_score":
				h.BitScore = stringifyJSONValue(v)
			case "evalue":
				h.EValue = stringifyJSONValue(v)
			default:
				if h.Extra == nil {
					h.Extra = make(map[string]string)
				}
				h.Extra[k] = stringifyJSONValue(v)
			}
		}
		hits = append(hits, h)
	}
	return hits, nil
}

func describeShape(v any) string {
	switch t := v.(type) {
	case map[string]any:
		if _, ok := t["BlastOutput2"]; ok {
			return "BlastOutput2 report"
		}
		return "JSON object"
	case string:
		return "JSON string"
	case json.Number:
		return "JSON number"
	case bool:
		return "JSON boolean"
	case nil:
		return "JSON null"
	}
	return fmt.Sprintf("%T", v)
}

func stringifyJSONValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
