// internal/app/options.go
package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"isoplan/internal/output"
	"isoplan/internal/report"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Config string // YAML catalog; built-in isoforms when empty

	// Output
	OutDir   string
	Format   string
	Manifest bool

	// Misc
	Quiet bool
}

// register wires the flags onto root. Config is persistent so subcommands see it.
func register(root *cobra.Command, o *Options) {
	pf := root.PersistentFlags()
	pf.StringVarP(&o.Config, "config", "c", "", "YAML isoform catalog (default: built-in isoforms)")

	f := root.Flags()
	f.StringVarP(&o.OutDir, "outdir", "d", report.DefaultOutDir, "results directory (created if absent)")
	f.StringVarP(&o.Format, "output", "o", output.FormatCSV, "plan format: "+strings.Join(output.Formats, " | "))
	f.BoolVar(&o.Manifest, "manifest", false, "also write a manifest with the plan's BLAKE2b-256 digest")
	f.BoolVarP(&o.Quiet, "quiet", "q", false, "only print the plan table (no progress, guidance or warnings)")
}

// Validate applies CLI invariants after parsing.
func (o Options) Validate() error {
	if !output.ValidFormat(o.Format) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Format, strings.Join(output.Formats, ", "))
	}
	if strings.TrimSpace(o.OutDir) == "" {
		return fmt.Errorf("--outdir must not be empty")
	}
	return nil
}
