package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

// CSFSheet is the sheet holding the framework core in NIST's CSF v2 workbook.
const CSFSheet = "CSF 2.0"

// csfColumns are the expected header names on the CSF core sheet.
var csfColumns = []string{"Function", "Category", "Subcategory", "Implementation Examples"}

// BuildCSF converts the CSF v2 core sheet into an OSCAL catalog: functions
// become top-level groups, categories nested groups, subcategories controls
// with a statement part and an optional example part.
//
// newUUID and now are injected so generation is reproducible under test.
func BuildCSF(wb *workbook.Workbook, newUUID func() string, now func() time.Time) (*Document, error) {
	rows, err := wb.Rows(CSFSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", CSFSheet)
	}

	// NIST ships one banner row above the real header.
	header := rows[1]
	cols := make(map[string]int, len(csfColumns))
	for _, name := range csfColumns {
		idx := workbook.FindColumn(header, name)
		if idx < 0 && name != "Implementation Examples" {
			return nil, fmt.Errorf("sheet %q missing column %q", CSFSheet, name)
		}
		cols[name] = idx
	}

	doc := &Document{
		Catalog: Catalog{
			UUID: newUUID(),
			Metadata: Metadata{
				Title:        "NIST Cybersecurity Framework (CSF) v2.0",
				LastModified: now().UTC().Format(time.RFC3339),
				Version:      "2.0",
				OSCALVersion: OSCALVersion,
			},
		},
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var currentFunc, currentCat *Group
	for i := 2; i < len(rows); i++ {
		row := rows[i]

		if fn := cell(row, cols["Function"]); fn != "" {
			currentFunc = &Group{
				ID:    CleanID(fn),
				Class: "function",
				Title: fn,
			}
			currentCat = nil
			doc.Catalog.Groups = append(doc.Catalog.Groups, currentFunc)
		}

		if cat := cell(row, cols["Category"]); cat != "" {
			currentCat = &Group{
				ID:    CleanID(cat),
				Class: "category",
				Title: cat,
			}
			if currentFunc != nil {
				currentFunc.Groups = append(currentFunc.Groups, currentCat)
			}
		}

		sub := cell(row, cols["Subcategory"])
		if sub == "" {
			continue
		}
		ctrlID := CleanID(sub)
		title, prose := splitStatement(sub)
		ctrl := &Control{
			ID:    ctrlID,
			Title: title,
			Parts: []*Part{{
				ID:    ctrlID + "_smt",
				Name:  "statement",
				Prose: prose,
			}},
		}
		if idx := cols["Implementation Examples"]; idx >= 0 {
			if eg := cell(row, idx); eg != "" {
				ctrl.Parts = append(ctrl.Parts, &Part{
					ID:    ctrlID + "_eg",
					Name:  "example",
					Prose: eg,
				})
			}
		}
		if currentCat != nil {
			currentCat.Controls = append(currentCat.Controls, ctrl)
		}
	}

	return doc, nil
}

// NewUUID is the default UUID source for BuildCSF.
func NewUUID() string {
	return uuid.NewString()
}

// CleanID derives an OSCAL-compliant ID from a workbook cell. The
// abbreviation in parentheses wins ("GOVERN (GV)" -> "gv",
// "Organizational Context (GV.OC): ..." -> "gv.oc"); otherwise the
// lowercased token before the first colon is used ("GV.OC-01: ..." ->
// "gv.oc-01").
func CleanID(text string) string {
	text = strings.TrimSpace(strings.SplitN(text, ":", 2)[0])
	if open := strings.Index(text, "("); open >= 0 {
		if close := strings.Index(text[open:], ")"); close >= 0 {
			return strings.ToLower(strings.TrimSpace(text[open+1 : open+close]))
		}
	}
	return strings.ToLower(text)
}

func splitStatement(sub string) (title, prose string) {
	parts := strings.SplitN(sub, ":", 2)
	title = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		prose = strings.TrimSpace(parts[1])
	}
	return title, prose
}
