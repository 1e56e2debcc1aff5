package crosswalk

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/untoldecay/CrosswalkForge/internal/classify"
	"github.com/untoldecay/CrosswalkForge/internal/types"
)

// tenRowPairs builds the canonical worked example: 3 equal-to,
// 2 no-relationship, 1 withdrawn4, 4 intersects-with.
func tenRowPairs() []types.ControlPair {
	pairs := []types.ControlPair{
		{Source: "ac-1", Target: "ac-1", Indicator: "N", Row: 3},
		{Source: "ac-2", Target: "ac-2", Indicator: "N", Row: 4},
		{Source: "ac-3", Target: "ac-3", Indicator: "N", Row: 5},
		{Source: "ac-4", Indicator: "New Base Control", Row: 6},
		{Source: "ac-5", Indicator: "New Control Enhancement", Row: 7},
		{Source: "ac-6", Detail: "Previously withdrawn in Rev4.", Row: 8},
	}
	for i, id := range []string{"ac-7", "ac-8", "ac-9", "ac-10"} {
		pairs = append(pairs, types.ControlPair{
			Source:    id,
			Target:    id,
			Indicator: "Changes Control Text",
			Row:       9 + i,
		})
	}
	return pairs
}

func TestDeriveWorkedExample(t *testing.T) {
	res := Derive(tenRowPairs(), classify.New(classify.DefaultRules()))

	s := res.Summary
	if s.Total != 10 {
		t.Fatalf("Total = %d, want 10", s.Total)
	}
	if got := s.Mapped(); got != 7 {
		t.Errorf("Mapped() = %d, want 7", got)
	}
	if got := s.Gaps(); got != 2 {
		t.Errorf("Gaps() = %d, want 2", got)
	}
	if got := s.Excluded(); got != 1 {
		t.Errorf("Excluded() = %d, want 1", got)
	}
	if got := len(res.Included()); got != 9 {
		t.Errorf("len(Included()) = %d, want 9 (withdrawn4 row omitted)", got)
	}
	if len(s.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", s.Skipped)
	}
}

func TestDeriveSkipsBadRows(t *testing.T) {
	pairs := []types.ControlPair{
		{Source: "ac-1", Indicator: "N", Row: 3},
		{Source: "ac-2", Indicator: "Entirely Novel Wording", Row: 4},
		{Source: "ac-3", Row: 5}, // no indicator at all
		{Source: "ac-4", Indicator: "Adds Parameter", Row: 6},
	}

	res := Derive(pairs, classify.New(classify.DefaultRules()))

	if res.Summary.Total != 2 {
		t.Errorf("Total = %d, want 2 (bad rows excluded from counts)", res.Summary.Total)
	}
	if len(res.Summary.Skipped) != 2 {
		t.Fatalf("len(Skipped) = %d, want 2", len(res.Summary.Skipped))
	}
	if res.Summary.Skipped[0].Row != 4 || res.Summary.Skipped[1].Row != 5 {
		t.Errorf("Skipped rows = %d,%d, want 4,5",
			res.Summary.Skipped[0].Row, res.Summary.Skipped[1].Row)
	}
	if res.Summary.Mapped()+res.Summary.Gaps()+res.Summary.Excluded() != res.Summary.Total {
		t.Error("totals invariant broken after skips")
	}
}

func TestWriteCSV(t *testing.T) {
	res := Derive(tenRowPairs(), classify.New(classify.DefaultRules()))

	var buf bytes.Buffer
	src := "catalogs/NIST_SP-800-53_rev5/catalog.json"
	tgt := "catalogs/NIST_SP-800-53_rev4/catalog.json"
	if err := WriteCSV(&buf, res.All, src, tgt); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}

	// Header + descriptions + 9 data rows.
	if len(records) != 11 {
		t.Fatalf("len(records) = %d, want 11", len(records))
	}
	if records[0][0] != "$$Source_Resource" {
		t.Errorf("header[0] = %q", records[0][0])
	}
	if !strings.HasPrefix(records[1][0], "A reference to a resource") {
		t.Errorf("descriptions row[0] = %q", records[1][0])
	}

	// Withdrawn row (ac-6) must be absent.
	for _, rec := range records[2:] {
		if rec[2] == "ac-6" {
			t.Error("withdrawn4 row ac-6 leaked into CSV")
		}
	}

	// Source order preserved.
	wantOrder := []string{"ac-1", "ac-2", "ac-3", "ac-4", "ac-5", "ac-7", "ac-8", "ac-9", "ac-10"}
	for i, want := range wantOrder {
		if got := records[i+2][2]; got != want {
			t.Errorf("data row %d source = %q, want %q", i, got, want)
		}
	}

	// Template fields.
	row := records[2]
	if row[0] != src || row[1] != tgt {
		t.Errorf("resources = %q,%q", row[0], row[1])
	}
	if row[4] != "equal-to" || row[5] != "100%" || row[6] != "" {
		t.Errorf("relationship/confidence/coverage = %q,%q,%q", row[4], row[5], row[6])
	}

	// Gap rows (ac-4, ac-5) leave target, relationship, and confidence
	// empty so the converter records them as source gaps.
	for _, rec := range records[5:7] {
		if rec[3] != "" || rec[4] != "" || rec[5] != "" {
			t.Errorf("gap row %s target/relationship/confidence = %q,%q,%q, want all empty",
				rec[2], rec[3], rec[4], rec[5])
		}
	}
}

func TestWriteCSVDeterministic(t *testing.T) {
	res := Derive(tenRowPairs(), classify.New(classify.DefaultRules()))

	var a, b bytes.Buffer
	if err := WriteCSV(&a, res.All, "src.json", "tgt.json"); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(&b, res.All, "src.json", "tgt.json"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("WriteCSV output differs between identical runs")
	}
}

func TestSummaryMarkdownDeterministic(t *testing.T) {
	res := Derive(tenRowPairs(), classify.New(classify.DefaultRules()))

	first := SummaryMarkdown(res.Summary, "Rev5 to Rev4 Crosswalk")
	for i := 0; i < 3; i++ {
		if got := SummaryMarkdown(res.Summary, "Rev5 to Rev4 Crosswalk"); got != first {
			t.Fatal("SummaryMarkdown output differs between identical runs")
		}
	}

	if !strings.Contains(first, "| equal-to | 3 | 30.0% |") {
		t.Errorf("summary missing equal-to count:\n%s", first)
	}
	if !strings.Contains(first, "| intersects-with | 4 | 40.0% |") {
		t.Errorf("summary missing intersects-with percentage:\n%s", first)
	}
	if !strings.Contains(first, "- Mapped: 7") ||
		!strings.Contains(first, "- Gaps (no-relationship + restored5): 2") ||
		!strings.Contains(first, "- Excluded from CSV (withdrawn family): 1") {
		t.Errorf("summary missing derived totals:\n%s", first)
	}
	if !strings.Contains(first, "## Relationship definitions") ||
		!strings.Contains(first, "- **restored5**: withdrawn in Rev 4, restored in Rev 5") {
		t.Errorf("summary missing definitions section:\n%s", first)
	}
}

func TestSummaryMarkdownListsSkippedRows(t *testing.T) {
	pairs := []types.ControlPair{
		{Source: "ac-1", Indicator: "N", Row: 3},
		{Source: "ac-2", Indicator: "Mystery Indicator", Row: 4},
	}
	res := Derive(pairs, classify.New(classify.DefaultRules()))

	md := SummaryMarkdown(res.Summary, "Test")
	if !strings.Contains(md, "## Skipped rows (1)") {
		t.Errorf("summary missing skipped section:\n%s", md)
	}
	if !strings.Contains(md, "row 4 (ac-2)") {
		t.Errorf("summary missing skipped row detail:\n%s", md)
	}
}
