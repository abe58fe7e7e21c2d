package pretty

import (
	"strings"
	"unicode/utf8"

	"isoplan/internal/output"
	"isoplan/internal/plan"
)

// Options control the console table rendering.
type Options struct {
	// Column separator. If empty, a single space is used.
	Sep string

	// Left-align cells instead of right-aligning them.
	LeftAlign bool

	// Shown in place of an empty cell (e.g. a missing PDB id).
	Empty string
}

// DefaultOptions mirrors a dataframe printout without the index column,
// where a missing value prints as None.
var DefaultOptions = Options{
	Sep:       " ",
	LeftAlign: false,
	Empty:     "None",
}

// RenderTable renders the plan with DefaultOptions.
func RenderTable(list []plan.Record) string {
	return RenderTableWithOptions(list, DefaultOptions)
}

// RenderTableWithOptions renders a header line plus one line per record,
// every column padded to its widest cell. Each line ends with '\n'.
func RenderTableWithOptions(list []plan.Record, opt Options) string {
	sep := opt.Sep
	if sep == "" {
		sep = " "
	}

	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, output.Columns)
	for _, r := range list {
		cells := output.Row(r)
		for i, c := range cells {
			if c == "" {
				cells[i] = opt.Empty
			}
		}
		rows = append(rows, cells)
	}

	widths := make([]int, len(output.Columns))
	for _, row := range rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, c := range row {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(pad(c, widths[i], opt.LeftAlign))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, width int, left bool) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", n)
	}
	return strings.Repeat(" ", n) + s
}
