package crosswalk

import (
	"fmt"
	"strings"

	"github.com/untoldecay/CrosswalkForge/internal/oscalid"
	"github.com/untoldecay/CrosswalkForge/internal/types"
	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

// ComparisonSheet is the data sheet in NIST's Rev4-to-Rev5 comparison
// workbook.
const ComparisonSheet = "Rev4 Rev5 Compared"

// Fixed column positions on the comparison sheet, after the two header
// rows. The workbook's layout is stable across NIST releases of this
// document.
const (
	colRev5ID          = 0
	colChangedElements = 7
	colChangeDetails   = 8
	colSortAs          = 9
)

// comparisonHeaderRows is the banner row plus the sub-header row.
const comparisonHeaderRows = 2

// ParseComparison reads control pairs from the comparison workbook. Rows
// without a Rev 5 control ID are structural (family separators) and are
// ignored. IDs are normalized to catalog form here so downstream stages see
// only canonical IDs.
func ParseComparison(wb *workbook.Workbook) ([]types.ControlPair, error) {
	rows, err := wb.Rows(ComparisonSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) <= comparisonHeaderRows {
		return nil, fmt.Errorf("sheet %q has no data rows", ComparisonSheet)
	}

	var pairs []types.ControlPair
	for i := comparisonHeaderRows; i < len(rows); i++ {
		rev5 := strings.TrimSpace(workbook.Cell(rows, i, colRev5ID))
		if rev5 == "" {
			continue
		}
		pairs = append(pairs, types.ControlPair{
			Source:    oscalid.NormalizeRev5(rev5),
			Target:    oscalid.NormalizeRev4SortAs(workbook.Cell(rows, i, colSortAs)),
			Indicator: workbook.Cell(rows, i, colChangedElements),
			Detail:    workbook.Cell(rows, i, colChangeDetails),
			Row:       i + 1,
		})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("sheet %q contains no control rows", ComparisonSheet)
	}
	return pairs, nil
}
