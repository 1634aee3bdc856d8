// internal/blast/hits_test.go
package blast

import (
	"errors"
	"testing"
)

const textReport = `BLASTN 2.14.1+
Query= hsa:124

Sequences producing significant alignments:

>XM_016943.2 Homo sapiens alcohol dehydrogenase 1A
Length=1503

 Score =  2450 bits (1327),  Expect = 0.0
 Identities = 1327/1327 (100%), Gaps = 0/1327 (0%)

TGCAGCTGCA...

>NM_203460.3 Pan troglodytes alcohol dehydrogenase
Length=1489

 Score =  144 bits (77),  Expect = 4e-31,  Method: Compositional matrix adjust.
`

func TestParseTextGroupsHits(t *testing.T) {
	hits := ParseText(textReport)
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	want := []Hit{
		{SubjectTitle: "XM_016943.2 Homo sapiens alcohol dehydrogenase 1A", BitScore: "2450 bits (1327)", EValue: "0.0"},
		{SubjectTitle: "NM_203460.3 Pan troglodytes alcohol dehydrogenase", BitScore: "144 bits (77)", EValue: "4e-31"},
	}
	for i := range want {
		if hits[i].SubjectTitle != want[i].SubjectTitle {
			t.Errorf("hit %d title = %q, want %q", i, hits[i].SubjectTitle, want[i].SubjectTitle)
		}
		if hits[i].BitScore != want[i].BitScore {
			t.Errorf("hit %d bit score = %q, want %q", i, hits[i].BitScore, want[i].BitScore)
		}
		if hits[i].EValue != want[i].EValue {
			t.Errorf("hit %d evalue = %q, want %q", i, hits[i].EValue, want[i].EValue)
		}
	}
}

// Multiple HSPs under one subject collapse to the last score line seen.
func TestParseTextLastScoreWins(t *testing.T) {
	hits := ParseText(`>subject one
 Score =  100 bits (52),  Expect = 1e-20
 Score =  80 bits (41),  Expect = 3e-12
`)
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if hits[0].BitScore != "80 bits (41)" || hits[0].EValue != "3e-12" {
		t.Errorf("kept first HSP instead of last: %+v", hits[0])
	}
}

func TestParseTextScoreWithoutExpect(t *testing.T) {
	hits := ParseText(">lonely\n Score = 55 bits (28)\n")
	if len(hits) != 1 || hits[0].BitScore != "55 bits (28)" || hits[0].EValue != "" {
		t.Fatalf("hits = %+v", hits)
	}
}

// A score line before any subject header still opens a (title-less) hit.
func TestParseTextScoreBeforeHeader(t *testing.T) {
	hits := ParseText(" Score = 9 bits (4),  Expect = 7.1\n>late subject\n Score = 12 bits (6),  Expect = 2.0\n")
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].SubjectTitle != "" || hits[0].BitScore != "9 bits (4)" {
		t.Errorf("anonymous hit = %+v", hits[0])
	}
	if hits[1].SubjectTitle != "late subject" {
		t.Errorf("second hit = %+v", hits[1])
	}
}

func TestParseTextNoHits(t *testing.T) {
	if hits := ParseText("BLASTN 2.14.1+\n\n***** No hits found *****\n"); len(hits) != 0 {
		t.Fatalf("hits = %+v, want none", hits)
	}
	if hits := ParseText(""); len(hits) != 0 {
		t.Fatalf("hits from empty text = %+v", hits)
	}
}

func TestParseJSONKeepsValuesVerbatim(t *testing.T) {
	hits, err := ParseJSON([]byte(`[{"subject_title":"X","bit_score":"100","evalue":"1e-20"}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	h := hits[0]
	if h.SubjectTitle != "X" || h.BitScore != "100" || h.EValue != "1e-20" {
		t.Errorf("hit = %+v", h)
	}
	if len(h.Extra) != 0 {
		t.Errorf("unexpected extras: %v", h.Extra)
	}
}

// Numeric fields keep their literal spelling, and unknown keys land in Extra.
func TestParseJSONExtrasAndNumbers(t *testing.T) {
	hits, err := ParseJSON([]byte(`[{"subject_title":"Y","bit_score":98.6,"evalue":2e-31,"pct_identity":99.5,"aligned":true}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	h := hits[0]
	if h.BitScore != "98.6" {
		t.Errorf("bit score = %q", h.BitScore)
	}
	if h.EValue != "2e-31" {
		t.Errorf("evalue = %q", h.EValue)
	}
	if h.Extra["pct_identity"] != "99.5" || h.Extra["aligned"] != "true" {
		t.Errorf("extras = %v", h.Extra)
	}
}

func TestParseJSONUnsupportedShapes(t *testing.T) {
	cases := []struct {
		name  string
		data  string
		shape string
	}{
		{"blastoutput2 report", `{"BlastOutput2":[{"report":{}}]}`, "BlastOutput2 report"},
		{"bare object", `{"hits":[]}`, "JSON object"},
		{"scalar", `42`, "JSON number"},
		{"string", `"done"`, "JSON string"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tc.data))
			var uf *UnsupportedFormatError
			if !errors.As(err, &uf) {
				t.Fatalf("want UnsupportedFormatError, got %v", err)
			}
			if uf.Shape != tc.shape {
				t.Errorf("shape = %q, want %q", uf.Shape, tc.shape)
			}
		})
	}
}

func TestParseJSONBadElement(t *testing.T) {
	_, err := ParseJSON([]byte(`[1, 2]`))
	if err == nil {
		t.Fatalf("want error for non-object elements")
	}
	var uf *UnsupportedFormatError
	if errors.As(err, &uf) {
		t.Fatalf("bad element must not read as a format error: %v", err)
	}
}

func TestParseJSONGarbage(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Fatalf("want decode error")
	}
}
