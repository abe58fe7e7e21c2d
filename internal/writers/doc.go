// Package writers turns analysis plans into serialized outputs.
//
// Design:
//   • Writers own the format dispatch (CSV/TSV/JSON/JSONL); output owns the encodings.
//   • plan stays domain-only; report stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
