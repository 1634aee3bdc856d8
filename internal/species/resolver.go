// internal/species/resolver.go
package species

import (
	"math"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Scoring cutoffs on the historical 0–100 scale.
const (
	SearchCutoff  = 80 // single-input search
	BatchCutoff   = 85 // batch resolution, stricter because nobody reviews it
	MaxCandidates = 3
)

// NoMatchLabel marks unresolved rows in batch output.
const NoMatchLabel = "no match"

// Candidate is one ranked fuzzy match. Name is the cache name (Latin or
// common) that produced the score.
type Candidate struct {
	Record Record
	Name   string
	Score  int
}

// SelectFunc picks one candidate from a non-empty ranked list. The resolver
// itself never talks to a terminal; interactive choice is the caller's.
type SelectFunc func([]Candidate) (Candidate, error)

// FirstSelector picks the top-ranked candidate.
func FirstSelector(cands []Candidate) (Candidate, error) { return cands[0], nil }

// Resolver maps free-text species input onto cache records. An exact
// species-code hit bypasses scoring entirely; everything else is ranked
// fuzzy search over Latin and common names.
type Resolver struct {
	records []Record
	byCode  map[string]Record
	dice    *metrics.SorensenDice
	overlap *metrics.OverlapCoefficient
}

func NewResolver(records []Record) *Resolver {
	byCode := make(map[string]Record, len(records))
	for _, r := range records {
		code := strings.ToLower(strings.TrimSpace(r.Code))
		if _, dup := byCode[code]; !dup {
			byCode[code] = r
		}
	}
	return &Resolver{
		records: records,
		byCode:  byCode,
		dice:    metrics.NewSorensenDice(),
		overlap: metrics.NewOverlapCoefficient(),
	}
}

// Len returns the number of records behind the resolver.
func (r *Resolver) Len() int { return len(r.records) }

// Records exposes the backing snapshot in cache order.
func (r *Resolver) Records() []Record { return r.records }

// Lookup resolves an exact species code, case-insensitively.
func (r *Resolver) Lookup(code string) (Record, bool) {
	rec, ok := r.byCode[strings.ToLower(strings.TrimSpace(code))]
	return rec, ok
}

// Search ranks all names against input and returns at most MaxCandidates
// scoring at least SearchCutoff, best first; ties keep cache order. No
// survivors is a NoMatchError.
func (r *Resolver) Search(input string) ([]Candidate, error) {
	return r.search(input, SearchCutoff, MaxCandidates)
}

// Resolve is the single-input entry point: exact code hit, else ranked
// search with pick choosing among the candidates.
func (r *Resolver) Resolve(input string, pick SelectFunc) (Record, error) {
	if rec, ok := r.Lookup(input); ok {
		return rec, nil
	}
	cands, err := r.Search(input)
	if err != nil {
		return Record{}, err
	}
	chosen, err := pick(cands)
	if err != nil {
		return Record{}, err
	}
	return chosen.Record, nil
}

// BatchMatch is one row of a batch resolution. Unresolved inputs carry
// Matched=false; they are reported, never raised.
type BatchMatch struct {
	Input   string
	Matched bool
	Record  Record
	Score   int
}

// ResolveBatch resolves each input independently at the stricter batch
// cutoff, keeping only the best candidate per input.
func (r *Resolver) ResolveBatch(inputs []string) []BatchMatch {
	out := make([]BatchMatch, 0, len(inputs))
	for _, in := range inputs {
		if rec, ok := r.Lookup(in); ok {
			out = append(out, BatchMatch{Input: in, Matched: true, Record: rec, Score: 100})
			continue
		}
		cands, err := r.search(in, BatchCutoff, 1)
		if err != nil {
			out = append(out, BatchMatch{Input: in})
			continue
		}
		out = append(out, BatchMatch{Input: in, Matched: true, Record: cands[0].Record, Score: cands[0].Score})
	}
	return out
}

func (r *Resolver) search(input string, cutoff, limit int) ([]Candidate, error) {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return nil, &NoMatchError{Input: input}
	}
	var cands []Candidate
	for _, rec := range r.records {
		for _, name := range []string{rec.Latin, rec.Common} {
			if name == "" {
				continue
			}
			if s := r.score(q, name); s >= cutoff {
				cands = append(cands, Candidate{Record: rec, Name: name, Score: s})
			}
		}
	}
	if len(cands) == 0 {
		return nil, &NoMatchError{Input: input}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score > cands[j].Score })
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	return cands, nil
}

// score maps bigram similarity onto the 0–100 scale the cutoffs are
// calibrated against. The overlap coefficient keeps partial inputs
// ("musculus" against "mus musculus") scoring the way the cutoffs expect;
// Sørensen–Dice covers whole-name typos.
func (r *Resolver) score(a, b string) int {
	s := strutil.Similarity(a, b, r.dice)
	if o := strutil.Similarity(a, b, r.overlap); o > s {
		s = o
	}
	return int(math.Round(s * 100))
}
