// Package report prints the analysis plan to the console and persists it
// under the results directory.
//
// Files are written via a temp file and an atomic rename, so a failed or
// interrupted run never leaves a truncated plan behind and a rerun simply
// replaces the previous file.
package report
