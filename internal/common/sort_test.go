package common

import (
	"testing"

	"keggblast/pkg/api"
)

func TestSortHitsBestScoreFirstWithinGene(t *testing.T) {
	hs := []api.HitV1{
		{Species: "hsa", SourceGene: "ADH1A", BitScore: "98.1", SubjectTitle: "b"},
		{Species: "hsa", SourceGene: "ADH1A", BitScore: "745 bits (1924)", SubjectTitle: "a"},
		{Species: "eco", SourceGene: "b0356", BitScore: "120", SubjectTitle: "c"},
	}
	SortHits(hs)
	if hs[0].Species != "eco" {
		t.Fatalf("species order: got %q first", hs[0].Species)
	}
	if hs[1].BitScore != "745 bits (1924)" || hs[2].BitScore != "98.1" {
		t.Fatalf("scores not descending within gene: %q then %q", hs[1].BitScore, hs[2].BitScore)
	}
}

func TestScoreGreater(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"745 bits (1924)", "98.1", true},
		{"98.1", "745 bits (1924)", false},
		{"2e3", "100", true},        // scientific notation parses
		{"100", "garbage", true},    // parseable beats unparseable
		{"garbage", "100", false},
		{"zzz", "aaa", true},        // lexical fallback stays total
	}
	for _, c := range cases {
		if got := ScoreGreater(c.a, c.b); got != c.want {
			t.Errorf("ScoreGreater(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestUniqueFold(t *testing.T) {
	got := UniqueFold([]string{" hsa ", "HSA", "", "mouse", "Mouse", "ptr"})
	want := []string{"hsa", "mouse", "ptr"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
