// internal/fasta/fasta.go

// Package fasta writes and reads the plain-text sequence artifacts the
// pipeline leaves on disk, one sequence per file.
package fasta

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// WrapWidth is the residues-per-line wrap applied on write.
const WrapWidth = 70

// Ext is the artifact extension. Write enforces it case-insensitively;
// Collect matches it exactly.
const Ext = ".fasta"

// Write stores one sequence under path, appending Ext when missing, and
// returns the path actually written. The header goes out after ">" with no
// further escaping.
func Write(path, header, sequence string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", fmt.Errorf("fasta: empty header")
	}
	if sequence == "" {
		return "", fmt.Errorf("fasta: empty sequence")
	}
	if !strings.HasSuffix(strings.ToLower(path), Ext) {
		path += Ext
	}
	var b strings.Builder
	b.WriteString(">")
	b.WriteString(header)
	b.WriteByte('\n')
	for i := 0; i < len(sequence); i += WrapWidth {
		end := i + WrapWidth
		if end > len(sequence) {
			end = len(sequence)
		}
		b.WriteString(sequence[i:end])
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("fasta: write: %w", err)
	}
	return path, nil
}

// ReadSequence returns the concatenated sequence lines of a FASTA file with
// headers dropped and per-line whitespace trimmed. A multi-record file
// yields all its records' residues joined together.
func ReadSequence(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fasta: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	sc := bufio.NewScanner(f)
	// Unwrapped single-line bodies can exceed the default scanner buffer.
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("fasta: read %s: %w", path, err)
	}
	return b.String(), nil
}

// Collect lists every artifact under root, walking subdirectories in
// lexical order. Dotfiles and files without the exact extension are
// skipped.
func Collect(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, Ext) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fasta: collect %s: %w", root, err)
	}
	return files, nil
}
