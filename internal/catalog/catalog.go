// internal/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one configured isoform: a protein with a known splicing event.
type Entry struct {
	Protein  string `yaml:"protein"`
	RefPDB   string `yaml:"ref_pdb,omitempty"` // empty = no reference structure
	Mutation string `yaml:"mutation"`
	Domain   string `yaml:"domain"`
}

// HasReference reports whether the entry is anchored to a solved structure.
func (e Entry) HasReference() bool { return e.RefPDB != "" }

var builtin = []Entry{
	{Protein: "CCNB1", RefPDB: "4Y72", Mutation: "exon_skip_3", Domain: "NES"},
	{Protein: "ENO2", RefPDB: "2AKZ", Mutation: "exon_skip_3", Domain: "active_site"},
	{Protein: "CDK5RAP3", RefPDB: "8OJ5", Mutation: "intron_retention", Domain: "LXXLL_motif"},
	{Protein: "LUC7L", Mutation: "exon_skip_2", Domain: "RS_domain"},
}

// Builtin returns a copy of the validated isoform set shipped with the tool.
func Builtin() []Entry {
	return append([]Entry(nil), builtin...)
}

// Validate checks that every entry is complete and proteins are unique.
// All problems are reported together.
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("catalog has no isoforms")
	}
	var errs []error
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		pos := i + 1
		if e.Protein == "" {
			errs = append(errs, fmt.Errorf("isoform %d: protein is required", pos))
		} else if prev, dup := seen[e.Protein]; dup {
			errs = append(errs, fmt.Errorf("isoform %d: duplicate protein %q (first at %d)", pos, e.Protein, prev))
		} else {
			seen[e.Protein] = pos
		}
		if e.Mutation == "" {
			errs = append(errs, fmt.Errorf("isoform %d (%s): mutation is required", pos, e.Protein))
		}
		if e.Domain == "" {
			errs = append(errs, fmt.Errorf("isoform %d (%s): domain is required", pos, e.Protein))
		}
	}
	return errors.Join(errs...)
}

// Unreferenced returns the proteins that have no reference structure, in order.
func Unreferenced(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		if !e.HasReference() {
			out = append(out, e.Protein)
		}
	}
	return out
}

func normalize(e *Entry) {
	e.Protein = strings.TrimSpace(e.Protein)
	e.RefPDB = strings.TrimSpace(e.RefPDB)
	e.Mutation = strings.TrimSpace(e.Mutation)
	e.Domain = strings.TrimSpace(e.Domain)
}
