// Package crosswalk derives crosswalk rows from classified control pairs and
// emits them in the mapping-collection CSV template. Row order always
// follows the source workbook; nothing here sorts.
package crosswalk

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/untoldecay/CrosswalkForge/internal/classify"
	"github.com/untoldecay/CrosswalkForge/internal/types"
)

// Result is the outcome of one classification run over a workbook.
type Result struct {
	// All holds every successfully classified row, in source order,
	// including withdrawn rows that the CSV omits.
	All []types.CrosswalkRow
	// Summary aggregates counts; skipped rows live only here.
	Summary *types.Summary
}

// Included returns the rows that belong in the CSV: everything whose kind is
// outside the excluded (withdrawn) set.
func (r *Result) Included() []types.CrosswalkRow {
	out := make([]types.CrosswalkRow, 0, len(r.All))
	for _, row := range r.All {
		if !row.Kind.Excluded() {
			out = append(out, row)
		}
	}
	return out
}

// Derive classifies every control pair. Classification failures are recorded
// against the summary and the row is dropped from all outputs; they never
// abort the run.
func Derive(pairs []types.ControlPair, c *classify.Classifier) *Result {
	res := &Result{Summary: types.NewSummary()}
	for _, pair := range pairs {
		kind, err := c.Classify(pair)
		if err != nil {
			res.Summary.Skip(types.RowError{Row: pair.Row, Source: pair.Source, Err: err})
			continue
		}
		res.All = append(res.All, types.CrosswalkRow{Pair: pair, Kind: kind})
		res.Summary.Add(kind)
	}
	return res
}

// WriteCSV emits the included rows in template format. sourceResource and
// targetResource name the catalog files the IDs resolve against.
func WriteCSV(w io.Writer, rows []types.CrosswalkRow, sourceResource, targetResource string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ColumnNames); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.Write(ColumnDescriptions); err != nil {
		return fmt.Errorf("failed to write CSV descriptions: %w", err)
	}
	for _, row := range rows {
		if row.Kind.Excluded() {
			continue
		}
		record := []string{
			sourceResource,
			targetResource,
			row.Pair.Source,
			row.Pair.Target,
			string(row.Kind),
			DefaultConfidence,
			"",
		}
		if row.Kind.Gap() {
			// Empty target and relationship mark the row as a source
			// gap for the downstream csv-to-oscal-mc task.
			record[3], record[4], record[5] = "", "", ""
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", row.Pair.Row, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the crosswalk CSV to disk, creating parent
// directories. Reruns overwrite deterministically.
func WriteCSVFile(path string, rows []types.CrosswalkRow, sourceResource, targetResource string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV %s: %w", path, err)
	}
	if err := WriteCSV(f, rows, sourceResource, targetResource); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV %s: %w", path, err)
	}
	return nil
}
