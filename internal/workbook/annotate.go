package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/untoldecay/CrosswalkForge/internal/types"
)

// kindColors are the review fill colors per relationship kind, matching the
// legend reviewers already know from the comparison workbook.
var kindColors = map[types.RelationshipKind]string{
	types.KindEqualTo:        "C6EFCE", // green
	types.KindEquivalentTo:   "FFEB9C", // yellow
	types.KindSubsetOf:       "BDD7EE", // blue
	types.KindSupersetOf:     "FCE4D6", // orange
	types.KindIntersectsWith: "E2EFDA", // light green
	types.KindNoRelationship: "F2DCDB", // pink
	types.KindWithdrawn:      "808080", // dark grey
	types.KindWithdrawn4:     "D9D9D9", // grey
	types.KindRestored5:      "E2CFDD", // purple
	types.KindWithdrawn5:     "C9C9C9", // light grey
}

// errorColor flags rows that failed classification and need manual review.
const errorColor = "FF0000"

// Annotation is one value for the appended relationship column.
type Annotation struct {
	// Row is the 1-based sheet row to annotate.
	Row int
	// Kind is the classified relationship. Ignored when Failed is set.
	Kind types.RelationshipKind
	// Failed marks rows that could not be classified.
	Failed bool
}

// Annotate writes a copy of the workbook with a relationship column appended
// to the given sheet, one blank column after the existing data. The input
// file is never modified. Data rows are assumed to start at sheet row 3
// (NIST header plus sub-header).
func Annotate(inputPath, outputPath, sheet string, annotations []Annotation) error {
	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook %s: %w", inputPath, err)
	}
	defer f.Close()

	cols, err := f.GetCols(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	// Leave one blank column as a visual gap.
	col := len(cols) + 2

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Family: "Arial", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	subStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: "Arial", Size: 9},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"8EA9C1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create sub-header style: %w", err)
	}

	if err := setStyledCell(f, sheet, col, 1, "OSCAL Relationship\n(Rev5 → Rev4)", headerStyle); err != nil {
		return err
	}
	if err := setStyledCell(f, sheet, col, 2, "OSCAL Mapping (Rev5→Rev4)", subStyle); err != nil {
		return err
	}

	// Styles are deduplicated per color so a 1500-row workbook creates a
	// dozen styles, not thousands.
	cellStyles := make(map[string]int)
	styleFor := func(color string) (int, error) {
		if id, ok := cellStyles[color]; ok {
			return id, nil
		}
		id, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: "Arial", Size: 9},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to create cell style: %w", err)
		}
		cellStyles[color] = id
		return id, nil
	}

	for _, a := range annotations {
		value := string(a.Kind)
		color := kindColors[a.Kind]
		if a.Failed {
			value = "needs-review"
			color = errorColor
		}
		style, err := styleFor(color)
		if err != nil {
			return err
		}
		if err := setStyledCell(f, sheet, col, a.Row, value, style); err != nil {
			return err
		}
	}

	colName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Errorf("failed to resolve column name: %w", err)
	}
	if err := f.SetColWidth(sheet, colName, colName, 22); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to write annotated workbook %s: %w", outputPath, err)
	}
	return nil
}

func setStyledCell(f *excelize.File, sheet string, col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("failed to style cell %s: %w", cell, err)
	}
	return nil
}
