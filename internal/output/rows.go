// internal/output/rows.go
package output

import "isoplan/internal/plan"

// Row returns the record's cells in Columns order.
func Row(r plan.Record) []string {
	return []string{r.Protein, r.PDBID, r.MutationType, r.DomainAffected, r.Status}
}
