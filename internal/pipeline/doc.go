// Package pipeline fans one KEGG Orthology entry out over species targets:
// per gene it fetches the record, extracts the requested sequence kinds,
// writes FASTA artifacts, runs BLAST jobs, and calls a visit callback with
// ordered hit rows.
//
// The only contracts to implement are Fetcher and Runner. This keeps the
// remote ends swappable and testable.
package pipeline
