// internal/visitors/limit.go
package visitors

import "keggblast/pkg/api"

// Limit keeps at most N hits per (species, gene, sequence kind), in report
// order. The report already lists its best alignments first, so this is a
// top-N cut, not a re-ranking. N <= 0 keeps everything.
//
// Not safe for concurrent use; the app applies it on the single emit path.
type Limit struct {
	N      int
	counts map[[3]string]int
}

func (l *Limit) Visit(h api.HitV1) (keep bool, out api.HitV1, err error) {
	if l.N <= 0 {
		return true, h, nil
	}
	if l.counts == nil {
		l.counts = make(map[[3]string]int)
	}
	key := [3]string{h.Species, h.SourceGene, h.SeqType}
	if l.counts[key] >= l.N {
		return false, h, nil
	}
	l.counts[key]++
	return true, h, nil
}
