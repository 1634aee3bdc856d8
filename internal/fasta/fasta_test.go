// internal/fasta/fasta_test.go
package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteWrapsAt70(t *testing.T) {
	dir := t.TempDir()
	seq := strings.Repeat("A", 70) + strings.Repeat("C", 70) + strings.Repeat("G", 10)
	path, err := Write(filepath.Join(dir, "adh1a_gene"), "hsa:124", seq)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasSuffix(path, "adh1a_gene.fasta") {
		t.Errorf("extension not appended: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header + 3 sequence lines", len(lines))
	}
	if lines[0] != ">hsa:124" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines[1]) != 70 || len(lines[2]) != 70 || len(lines[3]) != 10 {
		t.Errorf("wrap widths = %d/%d/%d, want 70/70/10", len(lines[1]), len(lines[2]), len(lines[3]))
	}
}

func TestWriteKeepsExistingExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"x.fasta", "y.FASTA"} {
		path, err := Write(filepath.Join(dir, name), "h", "ATG")
		if err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if filepath.Base(path) != name {
			t.Errorf("path = %s, want name %s kept as-is", path, name)
		}
	}
}

func TestWriteRejectsEmptyInputs(t *testing.T) {
	dir := t.TempDir()
	if _, err := Write(filepath.Join(dir, "a"), "  ", "ATG"); err == nil {
		t.Errorf("want error for blank header")
	}
	if _, err := Write(filepath.Join(dir, "b"), "h", ""); err == nil {
		t.Errorf("want error for empty sequence")
	}
}

func TestReadSequenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	seq := strings.Repeat("ATGC", 40)
	path, err := Write(filepath.Join(dir, "roundtrip"), "eco:b0356", seq)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadSequence(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != seq {
		t.Errorf("sequence changed across round trip: %d chars vs %d", len(got), len(seq))
	}
}

// Headers are dropped wherever they appear, so a multi-record file reads as
// one concatenated sequence.
func TestReadSequenceMultiRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.fasta")
	content := ">one\nAAA\nCCC\n>two\nGGG\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadSequence(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "AAACCCGGG" {
		t.Errorf("sequence = %q", got)
	}
}

func TestReadSequenceMissingFile(t *testing.T) {
	if _, err := ReadSequence(filepath.Join(t.TempDir(), "absent.fasta")); err == nil {
		t.Fatalf("want error for missing file")
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "hsa")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		filepath.Join(dir, "b.fasta"),
		filepath.Join(sub, "a.fasta"),
		filepath.Join(sub, ".hidden.fasta"),
		filepath.Join(sub, "notes.txt"),
	} {
		if err := os.WriteFile(name, []byte(">h\nATG\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := Collect(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want the two visible artifacts", files)
	}
	if filepath.Base(files[0]) != "b.fasta" || filepath.Base(files[1]) != "a.fasta" {
		t.Errorf("walk order changed: %v", files)
	}
}

func TestCollectMissingRoot(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("want error for missing root")
	}
}
