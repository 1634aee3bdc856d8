package pretty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"keggblast/internal/species"
	"keggblast/pkg/api"
)

// Options control the terminal rendering.
type Options struct {
	// MaxNameWidth truncates long organism names for readability.
	// If <=0, use default (60).
	MaxNameWidth int
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{MaxNameWidth: 60}

var (
	headerPaint = color.New(color.FgCyan, color.Bold)
	scorePaint  = color.New(color.FgGreen)
	failPaint   = color.New(color.FgRed)
)

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

// RenderCandidates formats a ranked candidate list as a numbered table for
// the species prompt. Numbering starts at 1 to match what the selector
// reads back.
func RenderCandidates(input string, cands []species.Candidate) string {
	return RenderCandidatesWithOptions(input, cands, DefaultOptions)
}

func RenderCandidatesWithOptions(input string, cands []species.Candidate, opt Options) string {
	width := opt.MaxNameWidth
	if width <= 0 {
		width = DefaultOptions.MaxNameWidth
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerPaint.Sprintf("candidates for %q:", input))
	for i, c := range cands {
		name := truncate(c.Name, width)
		fmt.Fprintf(&b, "  %d) %-5s %-*s %s\n",
			i+1, c.Record.Code, width, name, scorePaint.Sprintf("score %d", c.Score))
	}
	return b.String()
}

// RenderSummary formats the end-of-run accounting block. Failures are
// pre-formatted "identifier: reason" lines from the orchestrator.
func RenderSummary(s api.SummaryV1, failures []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d species, %d gene jobs attempted, %d succeeded, %d skipped, %d failed\n",
		headerPaint.Sprint("summary:"), s.Targets, s.Attempted, s.Succeeded, s.Skipped, s.Failed)
	for _, f := range failures {
		fmt.Fprintf(&b, "  %s %s\n", failPaint.Sprint("failed:"), f)
	}
	return b.String()
}
