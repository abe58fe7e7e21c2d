// pkg/api/plan_v1.go
package api

// PlanRowV1 is the stable JSON/JSONL schema for one analysis plan row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PlanRowV1 struct {
	Protein        string `json:"protein"`
	PDBID          string `json:"pdb_id"` // "" when no reference structure
	MutationType   string `json:"mutation_type"`
	DomainAffected string `json:"domain_affected"`
	AnalysisStatus string `json:"analysis_status"`
}

// ManifestV1 describes a written plan file so downstream stages can verify it.
type ManifestV1 struct {
	PlanFile string `json:"plan_file"`
	Format   string `json:"format"`
	Records  int    `json:"records"`
	Ready    int    `json:"ready"`
	Pending  int    `json:"pending"`
	BLAKE2b  string `json:"blake2b_256"`
	Tool     string `json:"tool,omitempty"`
}
