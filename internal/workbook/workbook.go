// Package workbook wraps xlsx access for the NIST source documents. It keeps
// the excelize surface in one place: the rest of the tool works with plain
// string grids.
package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when a named sheet is absent from the file.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook is an open xlsx file. Callers must Close it.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open reads an xlsx workbook. A missing or unreadable file is fatal to the
// run, so the error carries the path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{f: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// Sheets lists the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// Rows returns the full cell grid of one sheet as strings. Rows are in
// sheet order; trailing empty cells may be absent, so callers index
// defensively.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	if !w.hasSheet(sheet) {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, w.path)
	}
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func (w *Workbook) hasSheet(name string) bool {
	for _, s := range w.f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

// Cell returns the value at (col, row) in a grid, or "" when the row is too
// short. Both indexes are 0-based.
func Cell(grid [][]string, row, col int) string {
	if row >= len(grid) {
		return ""
	}
	r := grid[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// FindColumn locates a header cell by name within a header row. Workbook
// headers embed newlines ("Focal Document\nElement"), so matching collapses
// whitespace. Returns -1 when absent.
func FindColumn(header []string, name string) int {
	want := collapseSpace(name)
	for i, h := range header {
		if collapseSpace(h) == want {
			return i
		}
	}
	return -1
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
