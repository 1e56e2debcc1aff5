package catalog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

func writeCSFFixture(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(CSFSheet); err != nil {
		t.Fatal(err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatal(err)
	}

	rows := [][]interface{}{
		{"NIST Cybersecurity Framework 2.0 Core"}, // banner
		{"Function", "Category", "Subcategory", "Implementation Examples"},
		{"GOVERN (GV)", "", "", ""},
		{"", "Organizational Context (GV.OC): The circumstances are understood", "", ""},
		{"", "", "GV.OC-01: The organizational mission is understood", "Ex1: Share the mission"},
		{"", "", "GV.OC-02: Stakeholders are understood", ""},
		{"IDENTIFY (ID)", "", "", ""},
		{"", "Asset Management (ID.AM): Assets are managed", ""},
		{"", "", "ID.AM-01: Hardware inventories are maintained", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(CSFSheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "csf2.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildCSF(t *testing.T) {
	wb, err := workbook.Open(writeCSFFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	fixedUUID := func() string { return "11111111-1111-1111-1111-111111111111" }
	fixedNow := func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	doc, err := BuildCSF(wb, fixedUUID, fixedNow)
	if err != nil {
		t.Fatalf("BuildCSF() error = %v", err)
	}

	if doc.Catalog.UUID != fixedUUID() {
		t.Errorf("UUID = %q, want injected value", doc.Catalog.UUID)
	}
	if doc.Catalog.Metadata.LastModified != "2026-01-02T03:04:05Z" {
		t.Errorf("LastModified = %q, want fixed timestamp", doc.Catalog.Metadata.LastModified)
	}

	if len(doc.Catalog.Groups) != 2 {
		t.Fatalf("functions = %d, want 2", len(doc.Catalog.Groups))
	}
	gv := doc.Catalog.Groups[0]
	if gv.ID != "gv" || gv.Class != "function" {
		t.Errorf("function group = {%s %s}, want {gv function}", gv.ID, gv.Class)
	}
	if len(gv.Groups) != 1 {
		t.Fatalf("gv categories = %d, want 1", len(gv.Groups))
	}
	oc := gv.Groups[0]
	if oc.ID != "gv.oc" || oc.Class != "category" {
		t.Errorf("category group = {%s %s}, want {gv.oc category}", oc.ID, oc.Class)
	}
	if len(oc.Controls) != 2 {
		t.Fatalf("gv.oc controls = %d, want 2", len(oc.Controls))
	}

	c := oc.Controls[0]
	if c.ID != "gv.oc-01" {
		t.Errorf("control ID = %q, want gv.oc-01", c.ID)
	}
	if c.Title != "GV.OC-01" {
		t.Errorf("control title = %q, want GV.OC-01", c.Title)
	}
	if len(c.Parts) != 2 {
		t.Fatalf("gv.oc-01 parts = %d, want statement + example", len(c.Parts))
	}
	if c.Parts[0].Name != "statement" || c.Parts[0].Prose != "The organizational mission is understood" {
		t.Errorf("statement part = %+v", c.Parts[0])
	}
	if c.Parts[1].Name != "example" || c.Parts[1].ID != "gv.oc-01_eg" {
		t.Errorf("example part = %+v", c.Parts[1])
	}

	// Second subcategory has no example column value.
	if n := len(oc.Controls[1].Parts); n != 1 {
		t.Errorf("gv.oc-02 parts = %d, want statement only", n)
	}

	ids := doc.ControlIDs()
	for _, want := range []string{"gv.oc-01", "gv.oc-02", "id.am-01"} {
		if !ids[want] {
			t.Errorf("ControlIDs() missing %q", want)
		}
	}
}

func TestBuildCSFMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	wb, err := workbook.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	if _, err := BuildCSF(wb, NewUUID, time.Now); err == nil {
		t.Fatal("BuildCSF() without CSF sheet: want error")
	}
}
