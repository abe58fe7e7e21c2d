// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"isoplan/internal/jsonlutil"
	"isoplan/internal/jsonutil"
	"isoplan/internal/plan"
	"isoplan/pkg/api"
)

// ToAPIRow converts a plan record to the stable wire schema (v1).
func ToAPIRow(r plan.Record) api.PlanRowV1 {
	return api.PlanRowV1{
		Protein:        r.Protein,
		PDBID:          r.PDBID,
		MutationType:   r.MutationType,
		DomainAffected: r.DomainAffected,
		AnalysisStatus: r.Status,
	}
}

func toAPIRows(list []plan.Record) []api.PlanRowV1 {
	out := make([]api.PlanRowV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRow(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 rows (pretty-indented).
func WriteJSON(w io.Writer, list []plan.Record) error {
	return jsonutil.EncodePretty(w, toAPIRows(list))
}

// WriteJSONL writes one v1 row per line.
func WriteJSONL(w io.Writer, list []plan.Record) error {
	return jsonlutil.Encode(w, list, func(enc *json.Encoder, r plan.Record) error {
		return enc.Encode(ToAPIRow(r))
	})
}
