// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"isoplan/internal/output"
	"isoplan/internal/plan"
)

// PlanWriter serializes a whole plan to w.
type PlanWriter func(w io.Writer, list []plan.Record) error

// PlanWriters is the format → handler registry. Built-in formats register in init().
var PlanWriters = map[string]PlanWriter{}

func init() {
	RegisterPlan(output.FormatCSV, output.WriteCSV)
	RegisterPlan(output.FormatTSV, output.WriteTSV)
	RegisterPlan(output.FormatJSON, output.WriteJSON)
	RegisterPlan(output.FormatJSONL, output.WriteJSONL)
}

// RegisterPlan adds or replaces a handler (idempotent last-wins).
func RegisterPlan(format string, fn PlanWriter) { PlanWriters[format] = fn }

// WritePlan dispatches to the handler registered for format.
func WritePlan(format string, w io.Writer, list []plan.Record) error {
	fn, ok := PlanWriters[format]
	if !ok {
		return fmt.Errorf("unknown plan format %q (no writer registered)", format)
	}
	return fn(w, list)
}
