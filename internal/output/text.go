// internal/output/text.go
package output

import (
	"encoding/csv"
	"io"

	"isoplan/internal/plan"
)

// WriteCSV writes the header and one comma-separated row per record.
func WriteCSV(w io.Writer, list []plan.Record) error {
	return writeDelimited(w, list, ',')
}

// WriteTSV is WriteCSV with tab separators.
func WriteTSV(w io.Writer, list []plan.Record) error {
	return writeDelimited(w, list, '\t')
}

func writeDelimited(w io.Writer, list []plan.Record, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range list {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
