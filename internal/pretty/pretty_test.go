package pretty

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"keggblast/internal/species"
	"keggblast/pkg/api"
)

func TestRenderCandidatesNumbersFromOne(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	out := RenderCandidates("human", []species.Candidate{
		{Record: species.Record{Code: "hsa"}, Name: "homo sapiens (human)", Score: 95},
		{Record: species.Record{Code: "ptr"}, Name: "pan troglodytes", Score: 81},
	})
	if !strings.Contains(out, "1) hsa") || !strings.Contains(out, "2) ptr") {
		t.Fatalf("numbering wrong:\n%s", out)
	}
	if !strings.Contains(out, "score 95") {
		t.Fatalf("score missing:\n%s", out)
	}
}

func TestRenderCandidatesTruncatesLongNames(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	long := strings.Repeat("x", 100)
	out := RenderCandidatesWithOptions("q", []species.Candidate{
		{Record: species.Record{Code: "abc"}, Name: long, Score: 90},
	}, Options{MaxNameWidth: 20})
	if strings.Contains(out, long) {
		t.Fatalf("name not truncated:\n%s", out)
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("no ellipsis marker:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	out := RenderSummary(api.SummaryV1{Targets: 3, Attempted: 5, Succeeded: 4, Skipped: 1, Failed: 1},
		[]string{"hsa:124 amino: job ABC failed"})
	if !strings.Contains(out, "3 species") || !strings.Contains(out, "5 gene jobs attempted") {
		t.Fatalf("counts missing:\n%s", out)
	}
	if !strings.Contains(out, "failed: hsa:124 amino") {
		t.Fatalf("failure line missing:\n%s", out)
	}
}
