package output

import "strings"

// Output format names.
const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every supported format in help-text order.
var Formats = []string{FormatCSV, FormatTSV, FormatJSON, FormatJSONL}

// Columns is the canonical column order for delimited outputs.
// Keep this as the single source of truth; all writers should use it.
var Columns = []string{"Protein", "PDB_ID", "Mutation_Type", "Domain_Affected", "Analysis_Status"}

// CSVHeader is the header line of the CSV plan (no trailing newline).
var CSVHeader = strings.Join(Columns, ",")

// PlanBaseName is the plan file name without extension.
const PlanBaseName = "protein_structures_analysis_plan"

// FileName returns the plan file name for a format.
func FileName(format string) string {
	return PlanBaseName + "." + format
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
