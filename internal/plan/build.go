// internal/plan/build.go
package plan

import (
	"fmt"
	"io"

	"isoplan/internal/catalog"
)

// Build turns catalog entries into plan records, one per entry and in the
// same order. A progress block is written per entry when progress is non-nil.
func Build(entries []catalog.Entry, progress io.Writer) []Record {
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		if progress != nil {
			_, _ = fmt.Fprintf(progress, "Processing %s...\n", e.Protein)
		}
		out = append(out, Record{
			Protein:        e.Protein,
			PDBID:          e.RefPDB,
			MutationType:   e.Mutation,
			DomainAffected: e.Domain,
			Status:         StatusFor(e.RefPDB),
		})
		if progress != nil {
			_, _ = fmt.Fprintf(progress, "  ✓ %s: %s affecting %s\n", e.Protein, e.Mutation, e.Domain)
		}
	}
	return out
}
