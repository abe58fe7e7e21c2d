// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"isoplan/internal/app"
)

const planFile = "structure_analysis_results/protein_structures_analysis_plan.csv"

func runZeroArgs(t *testing.T) string {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run([]string{}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if out.Len() == 0 {
		t.Fatalf("expected console output")
	}
	return out.String()
}

func readPlan(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(planFile)
	if err != nil {
		t.Fatalf("read plan: %v", err)
	}
	return string(b)
}

func TestEndToEnd_ZeroArgs(t *testing.T) {
	chdir(t, t.TempDir())

	out := runZeroArgs(t)
	got := readPlan(t)

	want := "Protein,PDB_ID,Mutation_Type,Domain_Affected,Analysis_Status\n" +
		"CCNB1,4Y72,exon_skip_3,NES,Ready for RMSD/TM-score analysis\n" +
		"ENO2,2AKZ,exon_skip_3,active_site,Ready for RMSD/TM-score analysis\n" +
		"CDK5RAP3,8OJ5,intron_retention,LXXLL_motif,Ready for RMSD/TM-score analysis\n" +
		"LUC7L,,exon_skip_2,RS_domain,Pending AlphaFold2 prediction\n"
	if got != want {
		t.Fatalf("plan mismatch:\n got: %q\nwant: %q", got, want)
	}
	for _, p := range []string{"CCNB1", "ENO2", "CDK5RAP3", "LUC7L"} {
		if !strings.Contains(out, "Processing "+p+"...\n") {
			t.Fatalf("missing progress line for %s", p)
		}
	}
	if !strings.Contains(out, "Results saved to: structure_analysis_results\n") {
		t.Fatalf("missing results location:\n%s", out)
	}
}

func TestRerunIsByteIdentical(t *testing.T) {
	chdir(t, t.TempDir())

	runZeroArgs(t)
	first := readPlan(t)
	runZeroArgs(t)
	second := readPlan(t)

	if first != second {
		t.Fatalf("rerun output differs\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestExistingDirectoryAndFileAreReused(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll(filepath.Dir(planFile), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(planFile, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	runZeroArgs(t)
	if got := readPlan(t); strings.HasPrefix(got, "old") {
		t.Fatalf("plan was not overwritten: %q", got)
	}
}

func TestCustomCatalog(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "iso.yaml")
	yaml := "version: \"1\"\nisoforms:\n" +
		"  - {protein: LUC7L, ref_pdb: null, mutation: exon_skip_2, domain: RS_domain}\n" +
		"  - {protein: CCNB1, ref_pdb: 4Y72, mutation: exon_skip_3, domain: NES}\n"
	if err := os.WriteFile(cfg, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--config", cfg, "--outdir", dir, "-q"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	b, err := os.ReadFile(filepath.Join(dir, "protein_structures_analysis_plan.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d: %q", len(lines), b)
	}
	if lines[1] != "LUC7L,,exon_skip_2,RS_domain,Pending AlphaFold2 prediction" ||
		lines[2] != "CCNB1,4Y72,exon_skip_3,NES,Ready for RMSD/TM-score analysis" {
		t.Fatalf("rows out of catalog order: %q", lines[1:])
	}
}
