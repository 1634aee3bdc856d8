package speciescli

import (
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("keggblast-species")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseExactlyOneAction(t *testing.T) {
	if _, err := parse(t); err == nil {
		t.Fatalf("no action should be an error")
	}
	if _, err := parse(t, "--refresh", "--list"); err == nil {
		t.Fatalf("two actions should be an error")
	}
	if o, err := parse(t, "--resolve", "house mouse"); err != nil || o.Resolve != "house mouse" {
		t.Fatalf("resolve action: %+v, %v", o, err)
	}
}

func TestParseRejectsPositionals(t *testing.T) {
	if _, err := parse(t, "--list", "stray"); err == nil {
		t.Fatalf("expected error for stray positional")
	}
}

func TestParseOutputValidation(t *testing.T) {
	if _, err := parse(t, "--list", "--output", "jsonl"); err == nil {
		t.Fatalf("jsonl is not a species-tool format")
	}
}
