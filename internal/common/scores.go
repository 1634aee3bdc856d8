// internal/common/scores.go
package common

import (
	"strconv"
	"strings"
)

// ScoreValue extracts the leading numeric part of a report score. Text
// reports print composite forms like "745 bits (1924)"; the first
// whitespace field is the comparable number.
func ScoreValue(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ScoreGreater orders scores best-first: numerically when both sides
// parse, falling back to reverse lexical order so sorting stays total.
func ScoreGreater(a, b string) bool {
	av, aok := ScoreValue(a)
	bv, bok := ScoreValue(b)
	if aok && bok {
		return av > bv
	}
	if aok != bok {
		return aok // parseable beats unparseable
	}
	return a > b
}
