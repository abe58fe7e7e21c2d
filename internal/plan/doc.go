// Package plan builds the structural analysis plan from the isoform catalog.
// It never imports app, writers, output or report; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for the stable wire type (JSON/JSONL v1).
package plan
