package crosswalk

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

func writeComparisonFixture(t *testing.T, dataRows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(ComparisonSheet); err != nil {
		t.Fatal(err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatal(err)
	}

	rows := [][]interface{}{
		{"Rev 5 Control", "Title", "Privacy", "Low", "Mod", "High", "Significant Change", "Changed Elements", "Change Details", "SORT-AS", "Rev 4 Info"},
		{"", "", "", "", "", "", "", "", "", "", ""},
	}
	rows = append(rows, dataRows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(ComparisonSheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseComparison(t *testing.T) {
	path := writeComparisonFixture(t, [][]interface{}{
		{"AC-1", "Policy and Procedures", "", "x", "x", "x", "Y", "Changes Control Text", "", "AC-01-00", "AC-1"},
		{"", "", "", "", "", "", "", "", "", "", ""}, // family separator
		{"AC-2(1)", "Automated Management", "", "", "x", "x", "N", "N", "", "AC-02-01", "AC-2 (1)"},
	})

	wb, err := workbook.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	pairs, err := ParseComparison(wb)
	if err != nil {
		t.Fatalf("ParseComparison() error = %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2 (separator row skipped)", len(pairs))
	}

	first := pairs[0]
	if first.Source != "ac-1" {
		t.Errorf("Source = %q, want ac-1", first.Source)
	}
	if first.Target != "ac-1" {
		t.Errorf("Target = %q, want ac-1", first.Target)
	}
	if first.Indicator != "Changes Control Text" {
		t.Errorf("Indicator = %q", first.Indicator)
	}
	if first.Row != 3 {
		t.Errorf("Row = %d, want 3", first.Row)
	}

	second := pairs[1]
	if second.Source != "ac-2.1" {
		t.Errorf("Source = %q, want ac-2.1", second.Source)
	}
	if second.Target != "ac-2.1" {
		t.Errorf("Target = %q, want ac-2.1", second.Target)
	}
}

func TestParseComparisonEmptySheet(t *testing.T) {
	path := writeComparisonFixture(t, nil)

	wb, err := workbook.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	if _, err := ParseComparison(wb); err == nil {
		t.Fatal("ParseComparison() on header-only sheet: want error")
	}
}

func TestParseComparisonMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "wrong.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	wb, err := workbook.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	if _, err := ParseComparison(wb); err == nil {
		t.Fatal("ParseComparison() without comparison sheet: want error")
	}
}
