package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"isoplan/internal/output"
	"isoplan/internal/plan"
	"isoplan/internal/pretty"
	"isoplan/internal/writers"
)

// DefaultOutDir is the results directory used when none is given.
const DefaultOutDir = "./structure_analysis_results"

// Options configure a Reporter.
type Options struct {
	OutDir   string // results directory; DefaultOutDir if empty
	Format   string // output.Format*; csv if empty
	Manifest bool   // also write ManifestName next to the plan
	Quiet    bool   // drop banner, progress and guidance; the table is always printed
}

// Reporter renders a plan to the console and persists it to disk.
type Reporter struct {
	out io.Writer
	opt Options
}

func New(out io.Writer, opt Options) *Reporter {
	if opt.OutDir == "" {
		opt.OutDir = DefaultOutDir
	}
	if opt.Format == "" {
		opt.Format = output.FormatCSV
	}
	return &Reporter{out: out, opt: opt}
}

// PlanPath is where Persist writes the plan.
func (r *Reporter) PlanPath() string {
	return filepath.Join(r.opt.OutDir, output.FileName(r.opt.Format))
}

// Progress is the writer handed to plan.Build; nil when quiet.
func (r *Reporter) Progress() io.Writer {
	if r.opt.Quiet {
		return nil
	}
	return r.out
}

// Begin prints the run banner for n proteins.
func (r *Reporter) Begin(n int) {
	if r.opt.Quiet {
		return
	}
	fmt.Fprintln(r.out, "\n=== Protein Structure Analysis Pipeline ===")
	fmt.Fprintf(r.out, "\nAnalyzing %d proteins with alternative splicing...\n\n", n)
}

// Persist creates the results directory if needed and writes the plan,
// replacing any previous file. It returns the plan path.
//
// A manifest left by an earlier run is removed before the plan is replaced,
// then rewritten only when requested. A manifest on disk therefore always
// describes the plan beside it; if writing it fails, none is left.
func (r *Reporter) Persist(ctx context.Context, list []plan.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := writers.WritePlan(r.opt.Format, &buf, list); err != nil {
		return "", err
	}

	if err := mkdirAll(r.opt.OutDir); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	mpath := filepath.Join(r.opt.OutDir, ManifestName)
	if err := removeIfExists(mpath); err != nil {
		return "", fmt.Errorf("removing previous manifest %s: %w", mpath, err)
	}

	path := r.PlanPath()
	if err := writeFile(path, buf.Bytes(), filePerm); err != nil {
		return "", fmt.Errorf("writing plan %s: %w", path, err)
	}

	if r.opt.Manifest {
		m := NewManifest(filepath.Base(path), r.opt.Format, list, buf.Bytes())
		data, err := marshalManifest(m)
		if err != nil {
			return "", fmt.Errorf("encoding manifest: %w", err)
		}
		if err := writeFile(mpath, data, filePerm); err != nil {
			return "", fmt.Errorf("writing manifest %s: %w", mpath, err)
		}
	}

	return path, nil
}

// Summary prints the rendered plan followed by the manual follow-up steps.
func (r *Reporter) Summary(list []plan.Record) {
	fmt.Fprintln(r.out, "\n=== Structural Analysis Plan ===")
	fmt.Fprint(r.out, pretty.RenderTable(list))
	if r.opt.Quiet {
		return
	}

	fmt.Fprintln(r.out, "\n[PyMOL Integration]")
	fmt.Fprintln(r.out, "  - RMSD calculation: MSA-based superposition")
	fmt.Fprintln(r.out, "  - TM-score: Template modeling score (>0.5 = similar fold)")
	fmt.Fprintln(r.out, "  - Surface area changes: Solvent-accessible surface calculation")
	fmt.Fprintln(r.out, "  - Domain disruption mapping: InterPro/Pfam domain analysis")

	fmt.Fprintf(r.out, "\nResults saved to: %s\n", filepath.Clean(r.opt.OutDir))
	fmt.Fprintln(r.out, "\nNext Steps:")
	fmt.Fprintln(r.out, "  1. Run AlphaFold2 predictions for alternative isoforms")
	fmt.Fprintln(r.out, "  2. PyMOL: pymol -c script_compare_structures.pml")
	fmt.Fprintln(r.out, "  3. Calculate RMSD and TM-scores")
	fmt.Fprintln(r.out, "  4. Generate publication figures")
	fmt.Fprintln(r.out)
}
