package cli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"keggblast/internal/clibase"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("keggblast")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParsePositionalKO(t *testing.T) {
	o, err := parse(t, "--species", "hsa", "K00001")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.KO != "K00001" || o.Species != "hsa" {
		t.Fatalf("got %+v", o)
	}
	if !o.Header {
		t.Fatalf("header should default on")
	}
	if o.SeqType != clibase.SeqTypeAmino {
		t.Fatalf("seq-type default = %q", o.SeqType)
	}
}

func TestParseKOFlagConflictsWithPositional(t *testing.T) {
	if _, err := parse(t, "--ko", "K00001", "--species", "hsa", "K00002"); err == nil {
		t.Fatalf("expected conflict error")
	}
}

func TestParseRequiresSpecies(t *testing.T) {
	if _, err := parse(t, "K00001"); err == nil {
		t.Fatalf("expected missing --species error")
	}
}

func TestParseRejectsBadSeqType(t *testing.T) {
	if _, err := parse(t, "--species", "hsa", "--seq-type", "rna", "K00001"); err == nil {
		t.Fatalf("expected invalid seq-type error")
	}
}

func TestParseRejectsBadOutput(t *testing.T) {
	if _, err := parse(t, "--species", "hsa", "--output", "xml", "K00001"); err == nil {
		t.Fatalf("expected invalid output error")
	}
}

func TestParseHelp(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
}

func TestParseNoHeader(t *testing.T) {
	o, err := parse(t, "--species", "hsa", "--no-header", "K00001")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.Header {
		t.Fatalf("--no-header ignored")
	}
}
