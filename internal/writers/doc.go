// Package writers turns hit rows into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, CSV, JSON, JSONL).
//   - The pipeline stays orchestration-only; apps just pick a format.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
