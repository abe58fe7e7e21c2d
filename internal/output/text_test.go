package output

import (
	"bytes"
	"testing"

	"isoplan/internal/plan"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample); err != nil {
		t.Fatalf("csv write: %v", err)
	}
	want := CSVHeader + "\n" +
		"CCNB1,4Y72,exon_skip_3,NES,Ready for RMSD/TM-score analysis\n" +
		"LUC7L,,exon_skip_2,RS_domain,Pending AlphaFold2 prediction\n"
	if buf.String() != want {
		t.Fatalf("csv mismatch:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestWriteCSV_QuotesSeparators(t *testing.T) {
	var buf bytes.Buffer
	list := []plan.Record{{Protein: "X", MutationType: "exon_skip_1,2", DomainAffected: "NES", Status: plan.StatusPending}}
	if err := WriteCSV(&buf, list); err != nil {
		t.Fatalf("csv write: %v", err)
	}
	want := CSVHeader + "\nX,,\"exon_skip_1,2\",NES,Pending AlphaFold2 prediction\n"
	if buf.String() != want {
		t.Fatalf("csv mismatch:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, sample[1:]); err != nil {
		t.Fatalf("tsv write: %v", err)
	}
	want := "Protein\tPDB_ID\tMutation_Type\tDomain_Affected\tAnalysis_Status\n" +
		"LUC7L\t\texon_skip_2\tRS_domain\tPending AlphaFold2 prediction\n"
	if buf.String() != want {
		t.Fatalf("tsv mismatch:\n got: %q\nwant: %q", buf.String(), want)
	}
}
