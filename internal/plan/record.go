// internal/plan/record.go
package plan

// Analysis status values. Downstream stages match these literally.
const (
	StatusReady   = "Ready for RMSD/TM-score analysis"
	StatusPending = "Pending AlphaFold2 prediction"
)

// Record is one row of the analysis plan.
type Record struct {
	Protein        string
	PDBID          string // empty when no reference structure exists
	MutationType   string
	DomainAffected string
	Status         string
}

// StatusFor derives the analysis status from the reference structure id.
func StatusFor(pdbID string) string {
	if pdbID != "" {
		return StatusReady
	}
	return StatusPending
}

// Ready reports whether the record can go straight to structural comparison.
func (r Record) Ready() bool { return r.Status == StatusReady }

// Counts summarizes a plan.
type Counts struct {
	Total   int
	Ready   int
	Pending int
}

func Summarize(records []Record) Counts {
	c := Counts{Total: len(records)}
	for _, r := range records {
		if r.Ready() {
			c.Ready++
		} else {
			c.Pending++
		}
	}
	return c
}
